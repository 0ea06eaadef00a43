package segtree

// Monoid is an associative operation with an identity element.
//
// Implementations must satisfy, for all a, b and c:
//
//	Op(Identity(), a) == Op(a, Identity()) == a
//	Op(Op(a, b), c) == Op(a, Op(b, c))
//
// Commutativity is not assumed: trees always combine operands in index
// order, left operand first.
type Monoid[T any] interface {
	Identity() T
	Op(a, b T) T
}

// ExtMonoid is a value monoid acted on by a monoid of actions F.
//
// Composition applies the older action first:
//
//	Mapping(x, Compose(newer, older)) == Mapping(Mapping(x, older), newer)
//
// Compose must be associative with ActionIdentity as its identity, and
// Mapping(x, ActionIdentity()) == x.
//
// Aggregate adapts f to an interval of length elements: applying
// Aggregate(f, length) once to the combination of length values must equal
// combining the values after mapping each of them by f. For range-add over
// range-sum, Aggregate(add(b), n) = add(b*n); for range-add over range-min
// Aggregate is the identity on f.
type ExtMonoid[X, F any] interface {
	Monoid[X]

	ActionIdentity() F
	Compose(newer, older F) F
	Mapping(x X, f F) X
	Aggregate(f F, length int) F
}

// ceilPow2 returns the smallest power of two >= n, and at least 1.
func ceilPow2(n int) int {
	sz := 1
	for sz < n {
		sz <<= 1
	}
	return sz
}
