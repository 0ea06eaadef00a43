// Package naive holds eager reference implementations that segment trees
// are checked against.
package naive

// Monoid mirrors segtree.Monoid.
type Monoid[T any] interface {
	Identity() T
	Op(a, b T) T
}

// Acted is the part of segtree.ExtMonoid an eager array needs.
type Acted[X, F any] interface {
	Monoid[X]
	Mapping(x X, f F) X
}

// Fold combines xs left to right.
func Fold[T any](m Monoid[T], xs []T) T {
	acc := m.Identity()
	for _, x := range xs {
		acc = m.Op(acc, x)
	}
	return acc
}

// Array applies every action to each element directly.
type Array[X, F any] struct {
	a  Acted[X, F]
	xs []X
}

// NewArray returns an Array holding a copy of values.
func NewArray[X, F any](a Acted[X, F], values []X) *Array[X, F] {
	xs := make([]X, len(values))
	copy(xs, values)
	return &Array[X, F]{a: a, xs: xs}
}

// Len returns the number of elements.
func (arr *Array[X, F]) Len() int {
	return len(arr.xs)
}

// Apply maps f over xs[l:r].
func (arr *Array[X, F]) Apply(l, r int, f F) {
	for i := l; i < r; i++ {
		arr.xs[i] = arr.a.Mapping(arr.xs[i], f)
	}
}

// Set overwrites xs[i].
func (arr *Array[X, F]) Set(i int, x X) {
	arr.xs[i] = x
}

// Get returns xs[i].
func (arr *Array[X, F]) Get(i int) X {
	return arr.xs[i]
}

// Query folds xs[l:r].
func (arr *Array[X, F]) Query(l, r int) X {
	return Fold(arr.a, arr.xs[l:r])
}

// MaxRight returns the largest r with pred(Query(l, r)).
func (arr *Array[X, F]) MaxRight(l int, pred func(X) bool) int {
	acc := arr.a.Identity()
	for r := l; r < len(arr.xs); r++ {
		acc = arr.a.Op(acc, arr.xs[r])
		if !pred(acc) {
			return r
		}
	}
	return len(arr.xs)
}

// MinLeft returns the smallest l with pred(Query(l, r)).
func (arr *Array[X, F]) MinLeft(r int, pred func(X) bool) int {
	acc := arr.a.Identity()
	for l := r - 1; l >= 0; l-- {
		acc = arr.a.Op(arr.xs[l], acc)
		if !pred(acc) {
			return l + 1
		}
	}
	return 0
}

// Values returns a copy of the elements.
func (arr *Array[X, F]) Values() []X {
	out := make([]X, len(arr.xs))
	copy(out, arr.xs)
	return out
}
