package pipe

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/sotte/pelper/shared/helper"
)

var ErrInvalidStep = errors.New("invalid pipeline step")

// Call is a step that invokes Fn with the running value as its first argument.
//
// When Options is nil, the remaining arguments are Args:
//
//	Call{Fn: strconv.ParseFloat, Args: []any{64}} // strconv.ParseFloat(v, 64)
//
// When Options is set, it is passed as the only extra argument and Args is
// ignored. This is the counterpart of calling a function with named
// parameters:
//
//	Call{Fn: render, Options: RenderOptions{Indent: 2}} // render(v, RenderOptions{Indent: 2})
type Call struct {
	Fn      any
	Args    []any
	Options any
}

var errorType = reflect.TypeFor[error]()

// Eval is the untyped counterpart of Pipe for step lists whose types change
// from step to step and are only known at runtime.
//
// A step is either a function taking exactly one argument or a Call. Step
// functions return a single value, or a value and an error. A non-nil error
// stops the evaluation and is returned unchanged alongside the last value
// produced. Steps that do not fit this shape produce an error wrapping
// ErrInvalidStep. Panics inside steps are not recovered.
func Eval(data any, steps ...any) (any, error) {
	for i, step := range steps {
		fn, args := step, []any(nil)
		if call, ok := step.(Call); ok {
			fn, args = call.Fn, call.Args
			if call.Options != nil {
				args = []any{call.Options}
			}
		}

		next, err := invoke(i, fn, data, args)
		if err != nil {
			return data, err
		}
		data = next
	}
	return data, nil
}

// EvalAs runs Eval and asserts the final value to T.
func EvalAs[T any](data any, steps ...any) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return Eval(data, steps...)
	})
}

func invoke(idx int, fn any, data any, args []any) (any, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: step %d: %T is not a function", ErrInvalidStep, idx, fn)
	}
	ft := fv.Type()

	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errorType {
			return nil, fmt.Errorf("%w: step %d: second result of %s is not an error", ErrInvalidStep, idx, ft)
		}
	default:
		return nil, fmt.Errorf("%w: step %d: %s must return a value or a value and an error", ErrInvalidStep, idx, ft)
	}

	all := append([]any{data}, args...)
	numFixed := ft.NumIn()
	if ft.IsVariadic() {
		numFixed--
		if len(all) < numFixed {
			return nil, fmt.Errorf("%w: step %d: %s takes at least %d arguments, got %d", ErrInvalidStep, idx, ft, numFixed, len(all))
		}
	} else if len(all) != numFixed {
		return nil, fmt.Errorf("%w: step %d: %s takes %d arguments, got %d", ErrInvalidStep, idx, ft, numFixed, len(all))
	}

	in := make([]reflect.Value, len(all))
	for i, a := range all {
		var pt reflect.Type
		if i < numFixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(ft.NumIn() - 1).Elem()
		}
		v, err := argValue(a, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d: argument %d: %w", ErrInvalidStep, idx, i, err)
		}
		in[i] = v
	}

	out := fv.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// argValue prepares a for a parameter of type pt. Untyped nil becomes the zero
// value of nillable types; numbers are converted between numeric kinds when
// the value survives unchanged, so 2 works for a float64 parameter while 2.9
// for an int or -1 for a uint8 is rejected.
func argValue(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not a valid %s", pt)
	}

	v := reflect.ValueOf(a)
	switch {
	case v.Type().AssignableTo(pt):
		return v, nil
	case isNumber(v.Kind()) && isNumber(pt.Kind()):
		if c, ok := convertExact(v, pt); ok {
			return c, nil
		}
	}
	return reflect.Value{}, fmt.Errorf("%T is not assignable to %s", a, pt)
}

// convertExact converts v to pt only if converting back yields v again and
// the sign is kept.
func convertExact(v reflect.Value, pt reflect.Type) (reflect.Value, bool) {
	from, to := v.Kind(), pt.Kind()

	if isFloat(from) && !isFloat(to) {
		f := v.Float()
		if f != math.Trunc(f) {
			return reflect.Value{}, false
		}
		if isSigned(to) && (f < -0x1p63 || f >= 0x1p63) {
			return reflect.Value{}, false
		}
		if isUnsigned(to) && (f < 0 || f >= 0x1p64) {
			return reflect.Value{}, false
		}
	}
	if isSigned(from) && isUnsigned(to) && v.Int() < 0 {
		return reflect.Value{}, false
	}

	c := v.Convert(pt)
	switch {
	case isUnsigned(from) && isSigned(to) && c.Int() < 0:
		return reflect.Value{}, false
	case isUnsigned(from) && isFloat(to) && c.Float() >= 0x1p64:
		return reflect.Value{}, false
	case isSigned(from) && isFloat(to) && c.Float() >= 0x1p63:
		return reflect.Value{}, false
	}
	if !c.Convert(v.Type()).Equal(v) {
		return reflect.Value{}, false
	}
	return c, true
}

func isNumber(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
