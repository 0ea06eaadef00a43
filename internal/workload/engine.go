package workload

import (
	"errors"

	"github.com/AlexWan0/go-segtree"
	"github.com/AlexWan0/go-segtree/internal/naive"
)

var errNotLazy = errors.New("workload: algebra has no actions")

// engine is a tree, or its reference array, seen through int64 values.
type engine interface {
	Len() int
	Set(i int, v int64) error
	Apply(r segtree.Range, op Op) error
	Get(i int) (int64, error)
	Query(r segtree.Range) (int64, error)
	Values() []int64
}

// conv maps workload values and operations to an algebra's own types.
type conv[X, F any] struct {
	toX    func(int64) X
	fromX  func(X) int64
	action func(Op) F
}

func (c conv[X, F]) fromAll(xs []X) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = c.fromX(x)
	}
	return out
}

type plainTree[M segtree.Monoid[int64]] struct {
	st *segtree.SegTree[int64, M]
}

func (t *plainTree[M]) Len() int { return t.st.Len() }
func (t *plainTree[M]) Set(i int, v int64) error { return t.st.Set(i, v) }
func (t *plainTree[M]) Apply(segtree.Range, Op) error { return errNotLazy }
func (t *plainTree[M]) Get(i int) (int64, error) { return t.st.Get(i) }
func (t *plainTree[M]) Query(r segtree.Range) (int64, error) { return query[int64](t.st, r, identity) }
func (t *plainTree[M]) Values() []int64 { return t.st.Values() }

type lazyTree[X, F any, A segtree.ExtMonoid[X, F]] struct {
	lt *segtree.LazySegTree[X, F, A]
	c  conv[X, F]
}

func (t *lazyTree[X, F, A]) Len() int {
	return t.lt.Len()
}

func (t *lazyTree[X, F, A]) Set(i int, v int64) error {
	return t.lt.Set(i, t.c.toX(v))
}

func (t *lazyTree[X, F, A]) Apply(r segtree.Range, op Op) error {
	return t.lt.Apply(r, t.c.action(op))
}

func (t *lazyTree[X, F, A]) Get(i int) (int64, error) {
	x, err := t.lt.Get(i)
	if err != nil {
		return 0, err
	}
	return t.c.fromX(x), nil
}

func (t *lazyTree[X, F, A]) Query(r segtree.Range) (int64, error) {
	return query[X](t.lt, r, t.c.fromX)
}

// query answers r on either kind of tree.
func query[X any](t segtree.Tree[X], r segtree.Range, fromX func(X) int64) (int64, error) {
	if r.Bpos == 0 && r.Epos == t.Len() {
		return fromX(t.All()), nil
	}
	x, err := t.Query(r)
	if err != nil {
		return 0, err
	}
	return fromX(x), nil
}

func (t *lazyTree[X, F, A]) Values() []int64 {
	return t.c.fromAll(t.lt.Values())
}

// reference replays operations on a naive.Array. Callers must only hand
// it operations that are in range.
type reference[X, F any] struct {
	arr *naive.Array[X, F]
	c   conv[X, F]
}

func (r *reference[X, F]) Len() int {
	return r.arr.Len()
}

func (r *reference[X, F]) Set(i int, v int64) error {
	r.arr.Set(i, r.c.toX(v))
	return nil
}

func (r *reference[X, F]) Apply(ranze segtree.Range, op Op) error {
	r.arr.Apply(ranze.Bpos, ranze.Epos, r.c.action(op))
	return nil
}

func (r *reference[X, F]) Get(i int) (int64, error) {
	return r.c.fromX(r.arr.Get(i)), nil
}

func (r *reference[X, F]) Query(ranze segtree.Range) (int64, error) {
	return r.c.fromX(r.arr.Query(ranze.Bpos, ranze.Epos)), nil
}

func (r *reference[X, F]) Values() []int64 {
	return r.c.fromAll(r.arr.Values())
}

// plainActed lets a naive.Array hold a monoid without actions.
type plainActed[M segtree.Monoid[int64]] struct {
	m M
}

func (p plainActed[M]) Identity() int64 { return p.m.Identity() }
func (p plainActed[M]) Op(a, b int64) int64 { return p.m.Op(a, b) }
func (p plainActed[M]) Mapping(x int64, _ struct{}) int64 { return x }
