// Package result implements a two-variant success/failure value with
// independent payload types for each variant.
package result

import (
	"fmt"
	"reflect"

	"github.com/tupyy/doodads/internal/check"
	"github.com/tupyy/doodads/internal/hashing"
)

const (
	okTag  byte = 0x11
	errTag byte = 0x12
)

// Result holds either a success value of type T or a failure value of type E.
// Both variants are terminal and immutable. The zero value is not a valid
// result; build one with Ok or Err.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a success value. The payload must be non-nil, same rule as
// option.Some.
func Ok[T, E any](value T) Result[T, E] {
	check.NonNil("result.Ok", value)

	return Result[T, E]{value: value, ok: true}
}

// Err wraps a failure value. The payload must be non-nil.
func Err[T, E any](err E) Result[T, E] {
	check.NonNil("result.Err", err)

	return Result[T, E]{err: err}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Kind returns the variant tag.
func (r Result[T, E]) Kind() Kind {
	if r.ok {
		return OkKind
	}

	return ErrKind
}

// Value returns the success payload and whether the result is Ok.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// ErrValue returns the failure payload and whether the result is Err.
func (r Result[T, E]) ErrValue() (E, bool) {
	return r.err, !r.ok
}

// UnwrapOr returns the success value, or fallback on Err.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}

	return fallback
}

// Unwrap returns the success value, panicking on Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on an Err result")
	}

	return r.value
}

// UnwrapErr returns the failure value, panicking on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("called UnwrapErr on an Ok result")
	}

	return r.err
}

// Copy returns a result with the same variant and payload. Results are plain
// values, so the receiver copy is already independent of the original.
func (r Result[T, E]) Copy() Result[T, E] {
	return r
}

// Map transforms the success value. fn never runs on Err, and its result must
// satisfy the non-nil rule of Ok.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Result[U, E]{err: r.err}
	}

	return Ok[U, E](fn(r.value))
}

// MapErr transforms the failure value. fn never runs on Ok.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Result[T, F]{value: r.value, ok: true}
	}

	return Err[T, F](fn(r.err))
}

// FlatMap transforms the success value into another result. fn never runs
// on Err.
func FlatMap[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Result[U, E]{err: r.err}
	}

	return fn(r.value)
}

// Equal reports structural equality: same variant, equal payload.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.ok != other.ok {
		return false
	}

	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}

	return reflect.DeepEqual(r.err, other.err)
}

// Hash is consistent with Equal; the variant tag keeps Ok and Err payloads
// from colliding.
func (r Result[T, E]) Hash() uint64 {
	if r.ok {
		return hashing.Sum(okTag, r.value)
	}

	return hashing.Sum(errTag, r.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Result.Ok(%v)", r.value)
	}

	return fmt.Sprintf("Result.Err(%v)", r.err)
}
