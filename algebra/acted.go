package algebra

import "golang.org/x/exp/constraints"

// AddSum is range-add over range-sum.
type AddSum[T Number] struct {
	Sum[T]
}

func (AddSum[T]) ActionIdentity() T { return 0 }
func (AddSum[T]) Compose(newer, older T) T { return newer + older }
func (AddSum[T]) Mapping(x, f T) T { return x + f }
func (AddSum[T]) Aggregate(f T, length int) T { return f * T(length) }

// Assign is an overwrite action. The zero value leaves elements untouched.
type Assign[T any] struct {
	Set bool
	V   T
}

// To returns the action overwriting elements with v.
func To[T any](v T) Assign[T] {
	return Assign[T]{Set: true, V: v}
}

func composeAssign[T any](newer, older Assign[T]) Assign[T] {
	if newer.Set {
		return newer
	}
	return older
}

func mapAssign[T any](x T, f Assign[T]) T {
	if f.Set {
		return f.V
	}
	return x
}

// AssignSum is range-assign over range-sum.
type AssignSum[T Number] struct {
	Sum[T]
}

func (AssignSum[T]) ActionIdentity() Assign[T] { return Assign[T]{} }

func (AssignSum[T]) Compose(newer, older Assign[T]) Assign[T] {
	return composeAssign(newer, older)
}

func (AssignSum[T]) Mapping(x T, f Assign[T]) T {
	return mapAssign(x, f)
}

func (AssignSum[T]) Aggregate(f Assign[T], length int) Assign[T] {
	if !f.Set {
		return f
	}
	return To(f.V * T(length))
}

// AddMin is range-add over range-min.
type AddMin[T Number] struct {
	Min[T]
}

// NewAddMin returns AddMin whose min identity is top.
func NewAddMin[T Number](top T) AddMin[T] {
	return AddMin[T]{Min[T]{Top: top}}
}

func (AddMin[T]) ActionIdentity() T { return 0 }
func (AddMin[T]) Compose(newer, older T) T { return newer + older }
func (AddMin[T]) Mapping(x, f T) T { return x + f }
func (AddMin[T]) Aggregate(f T, _ int) T { return f }

// AddMax is range-add over range-max.
type AddMax[T Number] struct {
	Max[T]
}

// NewAddMax returns AddMax whose max identity is bottom.
func NewAddMax[T Number](bottom T) AddMax[T] {
	return AddMax[T]{Max[T]{Bottom: bottom}}
}

func (AddMax[T]) ActionIdentity() T { return 0 }
func (AddMax[T]) Compose(newer, older T) T { return newer + older }
func (AddMax[T]) Mapping(x, f T) T { return x + f }
func (AddMax[T]) Aggregate(f T, _ int) T { return f }

// AssignMin is range-assign over range-min.
type AssignMin[T constraints.Ordered] struct {
	Min[T]
}

// NewAssignMin returns AssignMin whose min identity is top.
func NewAssignMin[T constraints.Ordered](top T) AssignMin[T] {
	return AssignMin[T]{Min[T]{Top: top}}
}

func (AssignMin[T]) ActionIdentity() Assign[T] { return Assign[T]{} }

func (AssignMin[T]) Compose(newer, older Assign[T]) Assign[T] {
	return composeAssign(newer, older)
}

func (AssignMin[T]) Mapping(x T, f Assign[T]) T {
	return mapAssign(x, f)
}

func (AssignMin[T]) Aggregate(f Assign[T], _ int) Assign[T] { return f }
