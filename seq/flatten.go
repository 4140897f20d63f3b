package seq

import (
	"iter"
	"reflect"

	"github.com/sotte/pelper/shared/helper"
)

// Flatten collects every leaf of an arbitrarily nested value in depth-first,
// left-to-right order.
//
// Slices, arrays and sequences (iter.Seq[E] for any E, or any func of the
// same shape) are descended into. Everything
// else is a leaf, including maps, nil and text: strings (any type whose kind
// is string) and byte slices are never split into their elements. A leaf at
// the top level is returned as a single-element slice.
//
//	Flatten([]any{1, []any{2, 2}, []any{3, []int{4, 4}}}) // [1 2 2 3 4 4]
//	Flatten([]any{"one", []string{"two", "three"}})    // [one two three]
//
// Recursion depth follows the nesting depth of the input and is not bounded.
func Flatten(nested any) []any {
	out := make([]any, 0)
	for v := range FlattenSeq(nested) {
		out = append(out, v)
	}
	return out
}

// FlattenSeq is the lazy form of Flatten.
func FlattenSeq(nested any) iter.Seq[any] {
	return func(yield func(any) bool) {
		walk(nested, yield)
	}
}

// FlattenOf flattens nested and asserts every leaf to T.
func FlattenOf[T any](nested any) ([]T, error) {
	out := make([]T, 0)
	for v := range FlattenSeq(nested) {
		t, err := helper.CastOf[T](v)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func walk(v any, yield func(any) bool) bool {
	switch s := v.(type) {
	case nil, string, []byte:
		return yield(v)
	case iter.Seq[any]:
		return walkSeq(s, yield)
	case func(func(any) bool):
		return walkSeq(s, yield)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return yield(v)
		}
		for i := range rv.Len() {
			if !walk(rv.Index(i).Interface(), yield) {
				return false
			}
		}
		return true
	case reflect.Func:
		if rv.IsNil() || !isSeqFunc(rv.Type()) {
			return yield(v)
		}
		return walkFunc(rv, yield)
	default:
		return yield(v)
	}
}

// isSeqFunc reports whether t has the shape func(func(E) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && !y.IsVariadic() &&
		y.NumIn() == 1 && y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

func walkFunc(rv reflect.Value, yield func(any) bool) bool {
	yt := rv.Type().In(0)
	more := true
	yf := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
		if more {
			more = walk(args[0].Interface(), yield)
		}
		return []reflect.Value{reflect.ValueOf(more).Convert(yt.Out(0))}
	})
	rv.Call([]reflect.Value{yf})
	return more
}

func walkSeq(s iter.Seq[any], yield func(any) bool) bool {
	for e := range s {
		if !walk(e, yield) {
			return false
		}
	}
	return true
}
