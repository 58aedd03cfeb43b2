// Package check holds the construction-time payload validation shared by the
// container types. A "present" variant must never wrap a nil value, so every
// constructor funnels its payload through NonNil.
package check

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNilValue = errors.New("nil value")

// Absent reports whether v is an absence marker: an untyped nil, or a nil
// pointer, interface, map, slice, func or channel. Zero values of other kinds
// are ordinary values, not markers.
func Absent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// NonNil panics when v is absent. Wrapping a nil payload is a programming
// error, not a recoverable condition. site names the offending constructor.
func NonNil(site string, v any) {
	if Absent(v) {
		panic(fmt.Errorf("%w: %s requires a non-nil value", ErrNilValue, site))
	}
}
