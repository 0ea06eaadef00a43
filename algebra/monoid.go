// Package algebra provides ready-made monoids and acted monoids for the
// segtree package.
//
// All algebras are small value types resolved statically by the trees'
// type parameters. Parameters such as a modulus or a min identity live in
// the algebra instance.
package algebra

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is addition with identity 0.
type Sum[T Number] struct{}

func (Sum[T]) Identity() T { return 0 }
func (Sum[T]) Op(a, b T) T { return a + b }

// Min keeps the smaller operand, the left one on ties. Top must be at least
// as large as every value stored in the tree, e.g. math.MaxInt64.
type Min[T constraints.Ordered] struct {
	Top T
}

func (m Min[T]) Identity() T { return m.Top }

func (Min[T]) Op(a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max keeps the larger operand, the left one on ties. Bottom must be at
// most as large as every value stored in the tree.
type Max[T constraints.Ordered] struct {
	Bottom T
}

func (m Max[T]) Identity() T { return m.Bottom }

func (Max[T]) Op(a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Xor is bitwise exclusive or.
type Xor[T constraints.Integer] struct{}

func (Xor[T]) Identity() T { return 0 }
func (Xor[T]) Op(a, b T) T { return a ^ b }

// GCD is the greatest common divisor, always non-negative, with identity 0.
type GCD[T constraints.Integer] struct{}

func (GCD[T]) Identity() T { return 0 }

func (GCD[T]) Op(a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
