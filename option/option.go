// Package option implements a two-variant optional value: Some wraps a value,
// None wraps nothing. The variant fixes the behaviour of every operation, and
// Some never holds a nil payload.
package option

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/tupyy/doodads/internal/check"
	"github.com/tupyy/doodads/internal/hashing"
)

// ErrNoValue is returned by Get on a None option.
var ErrNoValue = errors.New("no value present")

const (
	someTag byte = 0x01
	noneTag byte = 0x02
)

// Option holds either a value of type T or nothing. The zero value is None,
// so options embed safely. Options are immutable: combinators return new
// options and never touch their receiver.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps value. The value must not be nil in any form; wrapping a nil
// payload is a programming error and panics with an error wrapping
// check.ErrNilValue. Use From to bridge values that may legitimately be nil.
func Some[T any](value T) Option[T] {
	check.NonNil("option.Some", value)

	return Option[T]{value: value, present: true}
}

// None returns the empty option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From bridges from nil-convention APIs: a nil value becomes None, anything
// else Some. This is the only sanctioned entry point for nil values.
func From[T any](value T) Option[T] {
	if check.Absent(value) {
		return None[T]()
	}

	return Option[T]{value: value, present: true}
}

// FromPtr dereferences p into an option: nil pointer becomes None, otherwise
// the pointee goes through From.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return From(*p)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Kind returns the variant tag.
func (o Option[T]) Kind() Kind {
	if o.present {
		return SomeKind
	}

	return NoneKind
}

// GetOrDefault returns the wrapped value, or fallback on None.
func (o Option[T]) GetOrDefault(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// Get returns the wrapped value, or ErrNoValue on None.
func (o Option[T]) Get() (T, error) {
	if o.present {
		return o.value, nil
	}

	var none T
	return none, ErrNoValue
}

// GetOrErr returns the wrapped value; on None it fails with the error built
// by errFn. errFn runs at most once and only on the None path.
func (o Option[T]) GetOrErr(errFn func() error) (T, error) {
	if o.present {
		return o.value, nil
	}

	var none T
	return none, errFn()
}

// MustGet returns the wrapped value, panicking on None.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("called MustGet on a None option")
	}

	return o.value
}

// IfPresent runs fn with the wrapped value on Some. No-op on None.
func (o Option[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

// IfPresentOrElse runs fn with the wrapped value on Some, elseFn on None.
// Exactly one of the two runs.
func (o Option[T]) IfPresentOrElse(fn func(T), elseFn func()) {
	if o.present {
		fn(o.value)
		return
	}

	elseFn()
}

// Filter keeps the value only when pred holds. pred never runs on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}

	return None[T]()
}

// Or returns the receiver on Some, otherwise the option built by alt.
// alt never runs on Some.
func (o Option[T]) Or(alt func() Option[T]) Option[T] {
	if o.present {
		return o
	}

	return alt()
}

// Map transforms the wrapped value. fn never runs on None, and its result
// must satisfy the same non-nil rule as Some. Map is a package function
// because methods cannot introduce new type parameters.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}

	return Some(fn(o.value))
}

// FlatMap transforms the wrapped value into another option, avoiding the
// nested wrapping Map would produce. fn never runs on None.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}

	return fn(o.value)
}

// Equal reports structural equality: both None, or both Some wrapping equal
// values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.present != other.present {
		return false
	}

	if !o.present {
		return true
	}

	return reflect.DeepEqual(o.value, other.value)
}

// Hash is consistent with Equal: a fixed digest for None, a payload-derived
// digest for Some.
func (o Option[T]) Hash() uint64 {
	if !o.present {
		return hashing.Sum(noneTag)
	}

	return hashing.Sum(someTag, o.value)
}

func (o Option[T]) String() string {
	if !o.present {
		return "Option.None"
	}

	return fmt.Sprintf("Option.Some(%v)", o.value)
}
