package models

import (
	"bytes"
	"encoding/json"
)

// Optional represents a field that can be absent, explicitly null, or have a value.
// Partial updates use it to tell "leave unchanged" from "clear".
//
//   - Set=false:             field absent from JSON (don't update)
//   - Set=true, Valid=false: field is JSON null (clear the value)
//   - Set=true, Valid=true:  field has a value (set to Value)
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Null returns an Optional that represents an explicit null
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Present returns an Optional with a concrete value
func Present[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Ptr returns the value as a pointer, nil when absent or null
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON sets the field state based on the JSON value.
// A JSON null sets Set=true, Valid=false. Any other value sets both true.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Valid = false
		return nil
	}
	o.Valid = true
	return json.Unmarshal(data, &o.Value)
}
