// Package segtree provides array-backed segment trees over user supplied
// algebras.
//
// A SegTree aggregates values under a Monoid and supports point updates and
// range reductions. A LazySegTree aggregates values under an ExtMonoid and
// additionally supports applying an action to a whole range, deferring the
// work with lazy tags. Indexed lifts a min/max style monoid to (value, index)
// pairs so range queries also report where the extremum lives.
//
// The engine trusts the algebra: associativity, identity and the
// action laws documented on ExtMonoid are the caller's responsibility.
// Package lawcheck can verify them on sample data.
//
// Trees are not safe for concurrent use.
package segtree

// Tree is the read side shared by SegTree and LazySegTree.
type Tree[T any] interface {
	// Len returns the logical number of elements.
	Len() int

	// Query returns the left-to-right aggregate of ranze.
	Query(ranze Range) (T, error)

	// All returns the aggregate of every element.
	All() T
}
