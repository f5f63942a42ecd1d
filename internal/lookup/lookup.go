// Package lookup implements ordinary attribute lookup over a Go value:
// exported methods first, then exported struct fields, found by
// reflection. It is the "normal lookup" half of attribute resolution; the
// delegation chain in pkg/api only runs when lookup here fails.
package lookup

import (
	"fmt"
	"reflect"
)

// Thunk adapts a reflected method to the engine's uniform calling
// convention. The receiver is already applied.
type Thunk func(args ...any) (any, error)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Attr looks name up on owner. Methods win over fields, matching Go's own
// selector shadowing for promoted members closely enough for our use.
// Only exported names are reachable; a miss returns (nil, false).
func Attr(owner any, name string) (any, bool) {
	if owner == nil || name == "" {
		return nil, false
	}

	rv := reflect.ValueOf(owner)
	if m := rv.MethodByName(name); m.IsValid() {
		return wrap(m), true
	}

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	f := rv.FieldByName(name)
	if f.IsValid() && f.CanInterface() {
		return f.Interface(), true
	}
	return nil, false
}

// wrap turns a bound reflect method into a Thunk, converting arguments in
// and results out.
func wrap(fn reflect.Value) Thunk {
	return func(args ...any) (any, error) {
		in, err := coerceArgs(fn.Type(), args)
		if err != nil {
			return nil, err
		}
		return splitResults(fn.Type(), fn.Call(in))
	}
}

func coerceArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("wrong number of arguments: have %d, want at least %d", len(args), fixed)
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("wrong number of arguments: have %d, want %d", len(args), fixed)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if i < fixed {
			want = t.In(i)
		} else {
			want = t.In(t.NumIn() - 1).Elem()
		}

		if arg == nil {
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
				reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(want)
				continue
			default:
				return nil, fmt.Errorf("argument %d: nil is not a valid %s", i, want)
			}
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("argument %d: have %T, want %s", i, arg, want)
		}
		in[i] = v
	}
	return in, nil
}

// splitResults maps reflected return values onto (any, error): a trailing
// error result is split off, a single remaining value is returned as-is,
// and multiple remaining values come back as []any.
func splitResults(t reflect.Type, out []reflect.Value) (any, error) {
	var err error
	n := len(out)
	if n > 0 && t.Out(n-1).Implements(errType) {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, err
	}
}
