package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

var errNotList = errors.New("not a list of integers")

// payload is a decoded JSON object body, kept raw per field so handlers can
// tell an absent field from a null one and from one of the wrong type
type payload map[string]json.RawMessage

// decodeBody reads a JSON object body. A missing, malformed or non-object body
// decodes to an empty payload and surfaces later as a validation error.
func decodeBody(r *http.Request) payload {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return payload{}
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil || p == nil {
		return payload{}
	}
	return p
}

// has reports whether the field is present, null included
func (p payload) has(key string) bool {
	_, ok := p[key]
	return ok
}

// isNull reports whether the field is absent or JSON null
func (p payload) isNull(key string) bool {
	raw, ok := p[key]
	return !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// str returns the field as a string, ok=false when absent, null or not a string
func (p payload) str(key string) (string, bool) {
	raw, ok := p[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// text returns the field as a string, or "" for anything that is not a string
func (p payload) text(key string) string {
	s, _ := p.str(key)
	return s
}

// color returns the field for a label color check. Strings pass through; any
// other non-null value is returned as its raw JSON text so it fails the color
// rule with the usual message.
func (p payload) color(key string) *string {
	if p.isNull(key) {
		return nil
	}
	if s, ok := p.str(key); ok {
		return &s
	}
	raw := string(bytes.TrimSpace(p[key]))
	return &raw
}

// falsy reports whether the field is absent or a JSON value that reads as
// false: null, false, 0, "", [] or {}
func (p payload) falsy(key string) bool {
	if p.isNull(key) {
		return true
	}
	raw := string(bytes.TrimSpace(p[key]))
	switch raw {
	case "false", `""`, "[]", "{}":
		return true
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == 0 {
		return true
	}
	return false
}

// integer decodes the field as an int
func (p payload) integer(key string) (int, error) {
	var n int
	err := json.Unmarshal(p[key], &n)
	return n, err
}

// intList decodes the field as a list of ints. A null value is an error.
func (p payload) intList(key string) ([]int, error) {
	raw := p[key]
	if p.isNull(key) {
		return nil, errNotList
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, errNotList
	}
	return ids, nil
}

// pathID reads a numeric route parameter. The router only matches digits, so a
// failure here means the value overflows an int.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	return id, err == nil
}
