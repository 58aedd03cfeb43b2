// Package pair implements a plain immutable two-field aggregate.
package pair

import (
	"fmt"
	"reflect"

	"github.com/tupyy/doodads/internal/check"
	"github.com/tupyy/doodads/internal/hashing"
)

const pairTag byte = 0x21

// Pair aggregates two values. Both fields are set at construction and never
// change afterwards.
type Pair[A, B any] struct {
	a A
	b B
}

// New builds a pair. Both fields must be non-nil, same rule as option.Some.
func New[A, B any](a A, b B) Pair[A, B] {
	check.NonNil("pair.New", a)
	check.NonNil("pair.New", b)

	return Pair[A, B]{a: a, b: b}
}

func (p Pair[A, B]) A() A {
	return p.a
}

func (p Pair[A, B]) B() B {
	return p.b
}

// Copy returns a pair with the same field values. Pairs are plain values, so
// the receiver copy is already independent of the original.
func (p Pair[A, B]) Copy() Pair[A, B] {
	return p
}

// Swap returns the mirrored pair.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{a: p.b, b: p.a}
}

// Equal reports component-wise equality.
func (p Pair[A, B]) Equal(other Pair[A, B]) bool {
	return reflect.DeepEqual(p.a, other.a) && reflect.DeepEqual(p.b, other.b)
}

func (p Pair[A, B]) Hash() uint64 {
	return hashing.Sum(pairTag, p.a, p.b)
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("Pair(%v, %v)", p.a, p.b)
}
