package workload

import (
	"fmt"
	"math"
	"sort"

	"github.com/AlexWan0/go-segtree"
	"github.com/AlexWan0/go-segtree/algebra"
	"github.com/AlexWan0/go-segtree/internal/naive"
	"github.com/AlexWan0/go-segtree/lawcheck"
)

// builder returns a tree over values and a reference array holding the
// same values.
type builder func(mod uint64, values []int64, opts []segtree.Option) (tree, ref engine)

// Algebra is a registered algebra over int64 values.
type Algebra struct {
	Name    string
	Summary string
	// Lazy algebras support apply operations.
	Lazy bool

	// Random values are drawn from [lo, hi).
	lo, hi int64
	build  builder
	laws   func(mod uint64) error
}

// CheckLaws runs lawcheck over sample values of the algebra.
func (a *Algebra) CheckLaws(mod uint64) error {
	if mod == 0 {
		mod = DefaultMod
	}
	return a.laws(mod)
}

var (
	samples        = []int64{-9, -1, 0, 1, 2, 7, 30}
	naturalSamples = []int64{0, 1, 4, 6, 9, 12, 35}
	sampleOps      = []Op{{Value: 0}, {Value: 3}, {Value: -4, Mul: ptr(2)}, {Value: 5, Mul: ptr(0)}}
)

func ptr(v int64) *int64 { return &v }

var registry = map[string]*Algebra{}

func register(a *Algebra) {
	if a.hi == 0 {
		a.lo, a.hi = -1000, 1000
	}
	registry[a.Name] = a
}

func init() {
	register(&Algebra{Name: "sum", Summary: "range sum", build: plain(algebra.Sum[int64]{}), laws: monoidLaws(algebra.Sum[int64]{}, samples)})
	register(&Algebra{Name: "min", Summary: "range minimum", build: plain(algebra.Min[int64]{Top: math.MaxInt64}), laws: monoidLaws(algebra.Min[int64]{Top: math.MaxInt64}, samples)})
	register(&Algebra{Name: "max", Summary: "range maximum", build: plain(algebra.Max[int64]{Bottom: math.MinInt64}), laws: monoidLaws(algebra.Max[int64]{Bottom: math.MinInt64}, samples)})
	register(&Algebra{Name: "xor", Summary: "range bitwise xor", build: plain(algebra.Xor[int64]{}), laws: monoidLaws(algebra.Xor[int64]{}, samples)})
	register(&Algebra{Name: "gcd", Summary: "range greatest common divisor", lo: 0, hi: 1000, build: plain(algebra.GCD[int64]{}), laws: monoidLaws(algebra.GCD[int64]{}, naturalSamples)})

	register(&Algebra{
		Name: "add-sum", Summary: "range add, range sum", Lazy: true,
		build: fixed(lazy[int64, int64](algebra.AddSum[int64]{}, addConv)),
		laws:  actedLaws[int64, int64](algebra.AddSum[int64]{}, addConv),
	})
	register(&Algebra{
		Name: "assign-sum", Summary: "range assign, range sum", Lazy: true,
		build: fixed(lazy[int64, algebra.Assign[int64]](algebra.AssignSum[int64]{}, assignConv)),
		laws:  actedLaws[int64, algebra.Assign[int64]](algebra.AssignSum[int64]{}, assignConv),
	})
	register(&Algebra{
		Name: "add-min", Summary: "range add, range minimum", Lazy: true,
		build: fixed(lazy[int64, int64](algebra.NewAddMin[int64](math.MaxInt64), addConv)),
		laws:  actedLaws[int64, int64](algebra.NewAddMin[int64](math.MaxInt64), addConv),
	})
	register(&Algebra{
		Name: "add-max", Summary: "range add, range maximum", Lazy: true,
		build: fixed(lazy[int64, int64](algebra.NewAddMax[int64](math.MinInt64), addConv)),
		laws:  actedLaws[int64, int64](algebra.NewAddMax[int64](math.MinInt64), addConv),
	})
	register(&Algebra{
		Name: "assign-min", Summary: "range assign, range minimum", Lazy: true,
		build: fixed(lazy[int64, algebra.Assign[int64]](algebra.NewAssignMin[int64](math.MaxInt64), assignConv)),
		laws:  actedLaws[int64, algebra.Assign[int64]](algebra.NewAssignMin[int64](math.MaxInt64), assignConv),
	})
	register(&Algebra{
		Name: "affine-sum", Summary: "range x -> mul*x + value, range sum modulo mod", Lazy: true,
		build: func(mod uint64, values []int64, opts []segtree.Option) (engine, engine) {
			return lazy[uint64, algebra.Affine](algebra.NewAffineSum(mod), affineConv(mod))(values, opts)
		},
		laws: func(mod uint64) error {
			return actedLaws[uint64, algebra.Affine](algebra.NewAffineSum(mod), affineConv(mod))(mod)
		},
	})
}

// Lookup returns the algebra registered under name.
func Lookup(name string) (*Algebra, error) {
	a, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown algebra %q", name)
	}
	return a, nil
}

// Algebras returns every registered algebra, sorted by name.
func Algebras() []*Algebra {
	out := make([]*Algebra, 0, len(registry))
	for _, a := range registry {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func identity(v int64) int64 { return v }

var (
	addConv = conv[int64, int64]{
		toX:    identity,
		fromX:  identity,
		action: func(op Op) int64 { return op.Value },
	}
	assignConv = conv[int64, algebra.Assign[int64]]{
		toX:    identity,
		fromX:  identity,
		action: func(op Op) algebra.Assign[int64] { return algebra.To(op.Value) },
	}
	plainConv = conv[int64, struct{}]{
		toX:    identity,
		fromX:  identity,
		action: func(Op) struct{} { return struct{}{} },
	}
)

// reduce maps v to [0, mod). mod must not exceed math.MaxInt64.
func reduce(v int64, mod uint64) uint64 {
	r := v % int64(mod)
	if r < 0 {
		r += int64(mod)
	}
	return uint64(r)
}

func affineConv(mod uint64) conv[uint64, algebra.Affine] {
	return conv[uint64, algebra.Affine]{
		toX:   func(v int64) uint64 { return reduce(v, mod) },
		fromX: func(x uint64) int64 { return int64(x) },
		action: func(op Op) algebra.Affine {
			return algebra.Affine{A: reduce(op.mul(), mod), B: reduce(op.Value, mod)}
		},
	}
}

func plain[M segtree.Monoid[int64]](m M) builder {
	return func(_ uint64, values []int64, opts []segtree.Option) (engine, engine) {
		tree := &plainTree[M]{st: segtree.New(m, values, opts...)}
		ref := &reference[int64, struct{}]{arr: naive.NewArray[int64, struct{}](plainActed[M]{m: m}, values), c: plainConv}
		return tree, ref
	}
}

func lazy[X, F any, A segtree.ExtMonoid[X, F]](a A, c conv[X, F]) func([]int64, []segtree.Option) (engine, engine) {
	return func(values []int64, opts []segtree.Option) (engine, engine) {
		xs := make([]X, len(values))
		for i, v := range values {
			xs[i] = c.toX(v)
		}
		tree := &lazyTree[X, F, A]{lt: segtree.NewLazy[X, F](a, xs, opts...), c: c}
		ref := &reference[X, F]{arr: naive.NewArray[X, F](a, xs), c: c}
		return tree, ref
	}
}

// fixed adapts a builder that does not depend on the modulus.
func fixed(b func([]int64, []segtree.Option) (engine, engine)) builder {
	return func(_ uint64, values []int64, opts []segtree.Option) (engine, engine) {
		return b(values, opts)
	}
}

func eq[T comparable](a, b T) bool { return a == b }

func monoidLaws[M segtree.Monoid[int64]](m M, xs []int64) func(uint64) error {
	return func(uint64) error {
		return lawcheck.Monoid[int64](m, xs, eq[int64])
	}
}

func actedLaws[X comparable, F any, A segtree.ExtMonoid[X, F]](a A, c conv[X, F]) func(uint64) error {
	return func(uint64) error {
		xs := make([]X, len(samples))
		for i, v := range samples {
			xs[i] = c.toX(v)
		}
		fs := make([]F, len(sampleOps))
		for i, op := range sampleOps {
			fs[i] = c.action(op)
		}
		return lawcheck.ExtMonoid[X, F](a, xs, fs, 4, eq[X])
	}
}
