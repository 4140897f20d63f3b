package helper

import (
	"errors"
	"fmt"
)

var ErrUnexpectedType = errors.New("unexpected type")

// CastOf safely asserts v to the expected type T.
// Returns an error wrapping ErrUnexpectedType if the assertion fails.
func CastOf[T any](v any) (T, error) {
	val, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedType, v, zero)
	}
	return val, nil
}

// GetTypedValueOf runs getFn and asserts its result to the expected type T.
// Errors from getFn are returned unchanged so callers can match them with errors.Is.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	res, err := getFn()
	if err != nil {
		var zero T
		return zero, err
	}
	return CastOf[T](res)
}

// MustCastOf is the panic-on-failure variant of CastOf.
func MustCastOf[T any](v any) T {
	res, err := CastOf[T](v)
	if err != nil {
		panic(err)
	}
	return res
}
