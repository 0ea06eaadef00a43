package segtree

// Builder collects values and builds a SegTree from them.
// A user calls PushBack()s followed by Build().
type Builder[T any, M Monoid[T]] struct {
	m    M
	vals []T
	opts []Option
}

// NewBuilder returns a Builder for trees over m.
func NewBuilder[T any, M Monoid[T]](m M, opts ...Option) *Builder[T, M] {
	return &Builder[T, M]{m: m, opts: opts}
}

// PushBack appends val to the sequence.
func (b *Builder[T, M]) PushBack(val T) {
	b.vals = append(b.vals, val)
}

// Len returns the number of values pushed so far.
func (b *Builder[T, M]) Len() int {
	return len(b.vals)
}

// Build returns a tree over the values pushed so far. The builder can keep
// receiving values afterwards; later trees are independent of earlier ones.
func (b *Builder[T, M]) Build() *SegTree[T, M] {
	return New(b.m, b.vals, b.opts...)
}

// LazyBuilder collects values and builds a LazySegTree from them.
type LazyBuilder[X, F any, A ExtMonoid[X, F]] struct {
	a    A
	vals []X
	opts []Option
}

// NewLazyBuilder returns a LazyBuilder for trees over a.
func NewLazyBuilder[X, F any, A ExtMonoid[X, F]](a A, opts ...Option) *LazyBuilder[X, F, A] {
	return &LazyBuilder[X, F, A]{a: a, opts: opts}
}

// PushBack appends val to the sequence.
func (b *LazyBuilder[X, F, A]) PushBack(val X) {
	b.vals = append(b.vals, val)
}

// Len returns the number of values pushed so far.
func (b *LazyBuilder[X, F, A]) Len() int {
	return len(b.vals)
}

// Build returns a lazy tree over the values pushed so far.
func (b *LazyBuilder[X, F, A]) Build() *LazySegTree[X, F, A] {
	return NewLazy[X, F](b.a, b.vals, b.opts...)
}
