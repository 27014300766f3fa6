package domain

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional holds a value that may be absent. It separates three states a
// partial update can carry for one attribute: absent (key not sent),
// explicitly null, and present with a value.
//
// Partial updates currently treat null the same as absent; Get reports a
// value only for the present state.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional in the explicit-null state.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// Get returns the held value and true when a value is present.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// OrElse returns the held value, or fallback when no value is present.
func (o Optional[T]) OrElse(fallback T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return fallback
}

// IsPresent reports whether a non-null value is held.
func (o Optional[T]) IsPresent() bool {
	_, ok := o.Get()
	return ok
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the key
// exists in the payload, which is what lets absent and null be told apart.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
