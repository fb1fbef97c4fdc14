package server

import (
	"net/http"

	"github.com/thenoetrevino/kanban/internal/models"
	cardservice "github.com/thenoetrevino/kanban/internal/services/card"
)

// handleCardCreate appends a card to the bottom of a column.
func (s *Server) handleCardCreate(w http.ResponseWriter, r *http.Request) {
	columnID, ok := pathID(r, "columnID")
	if !ok {
		s.writeServiceError(w, r, cardservice.ErrColumnNotFound)
		return
	}
	body := decodeBody(r)

	req := cardservice.CreateCardRequest{
		ColumnID:    columnID,
		Title:       body.text("title"),
		Description: body.text("description"),
	}
	// Values that read as false mean "no label"
	if !body.falsy("label_color") {
		req.LabelColor = body.color("label_color")
	}

	card, err := s.app.CardService.CreateCard(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// handleCardUpdate applies a partial update to a card's content.
func (s *Server) handleCardUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "cardID")
	if !ok {
		s.writeServiceError(w, r, cardservice.ErrCardNotFound)
		return
	}
	body := decodeBody(r)

	req := cardservice.UpdateCardRequest{CardID: id}
	if body.has("title") {
		title := body.text("title")
		req.Title = &title
	}
	if body.has("description") {
		description := body.text("description")
		req.Description = &description
	}
	if body.has("label_color") {
		if lc := body.color("label_color"); lc != nil {
			req.LabelColor = models.Present(*lc)
		} else {
			req.LabelColor = models.Null[string]()
		}
	}

	card, err := s.app.CardService.UpdateCard(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// handleCardDelete removes a card.
func (s *Server) handleCardDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "cardID")
	if !ok {
		s.writeServiceError(w, r, cardservice.ErrCardNotFound)
		return
	}

	if err := s.app.CardService.DeleteCard(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCardMove is the drag-and-drop endpoint: it places a card in the target
// column and applies the full card order of that column.
func (s *Server) handleCardMove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "cardID")
	if !ok {
		s.writeServiceError(w, r, cardservice.ErrCardNotFound)
		return
	}

	// The card is looked up before the body is checked
	if _, err := s.app.CardService.GetCard(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	req, err := decodeMove(decodeBody(r))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	req.CardID = id

	card, err := s.app.CardService.MoveCard(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func decodeMove(body payload) (cardservice.MoveCardRequest, error) {
	var req cardservice.MoveCardRequest

	if body.isNull("target_column_id") {
		return req, cardservice.ErrTargetColumnMissing
	}
	target, err := body.integer("target_column_id")
	if err != nil {
		return req, cardservice.ErrTargetColumnInvalid
	}
	req.TargetColumnID = target

	if body.has("ordered_card_ids") {
		ids, err := body.intList("ordered_card_ids")
		if err != nil {
			return req, cardservice.ErrOrderNotList
		}
		req.OrderedCardIDs = ids
	}
	return req, nil
}
