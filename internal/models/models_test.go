package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Kinds(t *testing.T) {
	v := NewValidationError("Column title is required.")
	n := NewNotFoundError("Column not found.")

	if !IsValidation(v) || IsNotFound(v) {
		t.Errorf("validation error classified wrongly: %v", v)
	}
	if !IsNotFound(n) || IsValidation(n) {
		t.Errorf("not-found error classified wrongly: %v", n)
	}
	if v.Error() != "Column title is required." {
		t.Errorf("Expected caller-facing message, got %q", v.Error())
	}
}

func TestErrors_WrappedSentinel(t *testing.T) {
	sentinel := NewNotFoundError("Card not found.")
	wrapped := fmt.Errorf("failed to move card 7: %w", sentinel)

	if !errors.Is(wrapped, sentinel) {
		t.Error("wrapped error should match its sentinel")
	}
	if !IsNotFound(wrapped) {
		t.Error("wrapped error should keep its kind")
	}
	if errors.Is(wrapped, NewNotFoundError("Card not found.")) {
		t.Error("distinct sentinels with equal messages must not match")
	}
}

// ============================================================================
// Serialization Tests
// ============================================================================

func TestCard_NullLabelColor(t *testing.T) {
	data, err := json.Marshal(&Card{ID: 1, Title: "A"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	v, ok := out["label_color"]
	if !ok {
		t.Fatal("label_color should always be present")
	}
	if v != nil {
		t.Errorf("Expected null label_color, got %v", v)
	}
}

func TestColumn_WithCardsEmpty(t *testing.T) {
	col := &Column{ID: 3, Title: "Done", PositionIndex: 2}

	data, err := json.Marshal(col.WithCards())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	cards, ok := out["cards"].([]any)
	if !ok {
		t.Fatalf("Expected cards array, got %T", out["cards"])
	}
	if len(cards) != 0 {
		t.Errorf("Expected empty cards, got %d", len(cards))
	}

	// Without WithCards the cards key is omitted
	data, err = json.Marshal(col)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out = map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := out["cards"]; ok {
		t.Error("plain column should omit cards")
	}
}

// ============================================================================
// Optional Tests
// ============================================================================

func TestOptional_ThreeStates(t *testing.T) {
	var body struct {
		LabelColor Optional[string] `json:"label_color"`
	}

	if err := json.Unmarshal([]byte(`{}`), &body); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if body.LabelColor.Set {
		t.Error("absent field should not be Set")
	}

	body.LabelColor = Optional[string]{}
	if err := json.Unmarshal([]byte(`{"label_color": null}`), &body); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !body.LabelColor.Set || body.LabelColor.Valid {
		t.Errorf("null field should be Set and not Valid, got %+v", body.LabelColor)
	}
	if body.LabelColor.Ptr() != nil {
		t.Error("null field should convert to a nil pointer")
	}

	body.LabelColor = Optional[string]{}
	if err := json.Unmarshal([]byte(`{"label_color": "#fff"}`), &body); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got := body.LabelColor.Ptr(); got == nil || *got != "#fff" {
		t.Errorf("Expected #fff, got %v", got)
	}
}

func TestOptional_WrongType(t *testing.T) {
	var o Optional[string]
	if err := json.Unmarshal([]byte(`42`), &o); err == nil {
		t.Error("number should not decode into Optional[string]")
	}
}
