package segtree

import (
	"fmt"
	"math"
)

// NoIndex is the index carried by the identity of Indexed. It is larger
// than any valid position.
const NoIndex = math.MaxInt

// Pair is an element of Indexed: a value and the position it came from.
type Pair[T any] struct {
	Value T
	Index int
}

// Indexed lifts a semilattice monoid (idempotent and commutative, such as
// min or max) to pairs, so that a range query also reports where the
// extremal value lives. Among equal values the left operand wins, which
// makes range queries return the leftmost position.
type Indexed[T comparable, M Monoid[T]] struct {
	Inner M
}

// Identity implements Monoid.Identity.
func (ix Indexed[T, M]) Identity() Pair[T] {
	return Pair[T]{Value: ix.Inner.Identity(), Index: NoIndex}
}

// Op implements Monoid.Op. It panics if the inner operation returns a value
// equal to neither operand.
func (ix Indexed[T, M]) Op(a, b Pair[T]) Pair[T] {
	// Identity operands pass through so that a real value equal to the
	// inner identity keeps its index.
	if a.Index == NoIndex {
		return b
	}
	if b.Index == NoIndex {
		return a
	}
	v := ix.Inner.Op(a.Value, b.Value)
	if v == a.Value {
		return Pair[T]{Value: v, Index: a.Index}
	}
	if v == b.Value {
		return Pair[T]{Value: v, Index: b.Index}
	}
	panic(fmt.Sprintf("segtree: Indexed inner op selected neither operand: op(%v, %v) = %v", a.Value, b.Value, v))
}

// NewIndexed builds a plain tree over Indexed{m} whose leaf i holds
// Pair{values[i], i}.
func NewIndexed[T comparable, M Monoid[T]](m M, values []T, opts ...Option) *SegTree[Pair[T], Indexed[T, M]] {
	pairs := make([]Pair[T], len(values))
	for i, v := range values {
		pairs[i] = Pair[T]{Value: v, Index: i}
	}
	return New(Indexed[T, M]{Inner: m}, pairs, opts...)
}
