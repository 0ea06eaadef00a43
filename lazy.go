package segtree

import (
	"math/bits"

	"github.com/sirupsen/logrus"
)

// LazySegTree is a segment tree over the acted monoid A supporting range
// actions and range queries.
//
// Every internal node k carries a pending tag lz[k]. While dirty[k] is set,
// d[k] already reflects lz[k] over its whole subtree but neither child has
// received it. push delivers the tag to both children and clears the node;
// it runs on every node of a descent path before its children are read or
// written.
type LazySegTree[X, F any, A ExtMonoid[X, F]] struct {
	a     A
	d     []X
	lz    []F
	dirty []bool
	n     int
	sz    int
	log   logrus.FieldLogger
}

// NewLazy builds a lazy tree holding a copy of values with every tag clean.
func NewLazy[X, F any, A ExtMonoid[X, F]](a A, values []X, opts ...Option) *LazySegTree[X, F, A] {
	lt := &LazySegTree[X, F, A]{a: a}
	lt.init(len(values), opts)
	copy(lt.d[lt.sz:], values)
	for k := lt.sz - 1; k >= 1; k-- {
		lt.update(k)
	}
	lt.log.Debug("built lazy segment tree")
	return lt
}

// NewLazyEmpty builds a lazy tree of n identity elements. It panics if
// n < 0.
func NewLazyEmpty[X, F any, A ExtMonoid[X, F]](a A, n int, opts ...Option) *LazySegTree[X, F, A] {
	if n < 0 {
		panic("segtree: negative length")
	}
	lt := &LazySegTree[X, F, A]{a: a}
	lt.init(n, opts)
	lt.log.Debug("built empty lazy segment tree")
	return lt
}

func (lt *LazySegTree[X, F, A]) init(n int, opts []Option) {
	lt.n = n
	lt.sz = ceilPow2(n)
	lt.d = make([]X, 2*lt.sz)
	lt.lz = make([]F, lt.sz)
	lt.dirty = make([]bool, lt.sz)
	e, id := lt.a.Identity(), lt.a.ActionIdentity()
	for i := range lt.d {
		lt.d[i] = e
	}
	for i := range lt.lz {
		lt.lz[i] = id
	}
	lt.log = buildOptions(opts).entry(lt.n, lt.sz)
}

func (lt *LazySegTree[X, F, A]) reject(err error, fields logrus.Fields) error {
	if lt.log != nil {
		lt.log.WithFields(fields).WithError(err).Debug("rejected call")
	}
	return err
}

// height returns the number of levels above the leaves.
func (lt *LazySegTree[X, F, A]) height() int {
	return bits.TrailingZeros(uint(lt.sz))
}

// nodeLen returns the number of leaves under node k.
func (lt *LazySegTree[X, F, A]) nodeLen(k int) int {
	return lt.sz >> (bits.Len(uint(k)) - 1)
}

func (lt *LazySegTree[X, F, A]) update(k int) {
	lt.d[k] = lt.a.Op(lt.d[2*k], lt.d[2*k+1])
}

// applyAll applies f to the whole subtree of node k, which has length
// leaves.
func (lt *LazySegTree[X, F, A]) applyAll(k, length int, f F) {
	lt.d[k] = lt.a.Mapping(lt.d[k], lt.a.Aggregate(f, length))
	if k < lt.sz {
		lt.lz[k] = lt.a.Compose(f, lt.lz[k])
		lt.dirty[k] = true
	}
}

func (lt *LazySegTree[X, F, A]) push(k int) {
	if !lt.dirty[k] {
		return
	}
	half := lt.nodeLen(k) / 2
	lt.applyAll(2*k, half, lt.lz[k])
	lt.applyAll(2*k+1, half, lt.lz[k])
	lt.lz[k] = lt.a.ActionIdentity()
	lt.dirty[k] = false
}

// pushPath pushes every ancestor of leaf p, root first.
func (lt *LazySegTree[X, F, A]) pushPath(p int) {
	for h := lt.height(); h >= 1; h-- {
		lt.push(p >> h)
	}
}

// Len returns the number of elements in the tree.
func (lt *LazySegTree[X, F, A]) Len() int {
	return lt.n
}

// Apply applies f to every element of T[ranze.Bpos, ranze.Epos).
// An empty range is a no-op.
func (lt *LazySegTree[X, F, A]) Apply(ranze Range, f F) error {
	if err := checkRange(ranze, lt.n); err != nil {
		return lt.reject(err, logrus.Fields{"bpos": ranze.Bpos, "epos": ranze.Epos})
	}
	if ranze.Empty() {
		return nil
	}
	lt.apply(1, 0, lt.sz, ranze.Bpos, ranze.Epos, f)
	return nil
}

func (lt *LazySegTree[X, F, A]) apply(k, lo, hi, l, r int, f F) {
	if r <= lo || hi <= l {
		return
	}
	if l <= lo && hi <= r {
		lt.applyAll(k, hi-lo, f)
		return
	}
	lt.push(k)
	mid := (lo + hi) / 2
	lt.apply(2*k, lo, mid, l, r, f)
	lt.apply(2*k+1, mid, hi, l, r, f)
	lt.update(k)
}

// ApplyAt applies f to the element at index i.
func (lt *LazySegTree[X, F, A]) ApplyAt(i int, f F) error {
	if err := checkIndex(i, lt.n); err != nil {
		return lt.reject(err, logrus.Fields{"index": i})
	}
	return lt.Apply(Range{i, i + 1}, f)
}

// Set overwrites the element at index i with x.
func (lt *LazySegTree[X, F, A]) Set(i int, x X) error {
	if err := checkIndex(i, lt.n); err != nil {
		return lt.reject(err, logrus.Fields{"index": i})
	}
	p := i + lt.sz
	lt.pushPath(p)
	lt.d[p] = x
	for p >>= 1; p >= 1; p >>= 1 {
		lt.update(p)
	}
	return nil
}

// Get returns the element at index i with every pending action applied.
func (lt *LazySegTree[X, F, A]) Get(i int) (X, error) {
	if err := checkIndex(i, lt.n); err != nil {
		var zero X
		return zero, lt.reject(err, logrus.Fields{"index": i})
	}
	p := i + lt.sz
	lt.pushPath(p)
	return lt.d[p], nil
}

// Query returns Op folded over T[ranze.Bpos, ranze.Epos) in index order.
// An empty range yields the identity.
func (lt *LazySegTree[X, F, A]) Query(ranze Range) (X, error) {
	if err := checkRange(ranze, lt.n); err != nil {
		var zero X
		return zero, lt.reject(err, logrus.Fields{"bpos": ranze.Bpos, "epos": ranze.Epos})
	}
	if ranze.Empty() {
		return lt.a.Identity(), nil
	}
	return lt.query(1, 0, lt.sz, ranze.Bpos, ranze.Epos), nil
}

func (lt *LazySegTree[X, F, A]) query(k, lo, hi, l, r int) X {
	if r <= lo || hi <= l {
		return lt.a.Identity()
	}
	if l <= lo && hi <= r {
		return lt.d[k]
	}
	lt.push(k)
	mid := (lo + hi) / 2
	return lt.a.Op(lt.query(2*k, lo, mid, l, r), lt.query(2*k+1, mid, hi, l, r))
}

// All returns the aggregate of the whole tree.
func (lt *LazySegTree[X, F, A]) All() X {
	if lt.d == nil {
		return lt.a.Identity()
	}
	return lt.d[1]
}

// Values returns the elements in index order. Every pending tag is
// delivered to the leaves on the way.
func (lt *LazySegTree[X, F, A]) Values() []X {
	for k := 1; k < lt.sz; k++ {
		lt.push(k)
	}
	out := make([]X, lt.n)
	copy(out, lt.d[lt.sz:lt.sz+lt.n])
	return out
}

// MaxRight returns the largest r such that pred(Query(Range{l, r})) holds,
// assuming pred is monotone (true, then false, as r grows).
// pred must hold for the identity; MaxRight panics otherwise.
func (lt *LazySegTree[X, F, A]) MaxRight(l int, pred func(X) bool) (int, error) {
	if err := checkBound(l, lt.n); err != nil {
		return 0, lt.reject(err, logrus.Fields{"bpos": l})
	}
	if !pred(lt.a.Identity()) {
		panic("segtree: MaxRight predicate must hold for the identity")
	}
	if l == lt.n {
		return lt.n, nil
	}
	l += lt.sz
	lt.pushPath(l)
	sm := lt.a.Identity()
	for {
		for l%2 == 0 {
			l >>= 1
		}
		if !pred(lt.a.Op(sm, lt.d[l])) {
			for l < lt.sz {
				lt.push(l)
				l = 2 * l
				if next := lt.a.Op(sm, lt.d[l]); pred(next) {
					sm = next
					l++
				}
			}
			return l - lt.sz, nil
		}
		sm = lt.a.Op(sm, lt.d[l])
		l++
		if l&-l == l {
			break
		}
	}
	return lt.n, nil
}

// MinLeft returns the smallest l such that pred(Query(Range{l, r})) holds,
// assuming pred is monotone (true, then false, as l shrinks).
// pred must hold for the identity; MinLeft panics otherwise.
func (lt *LazySegTree[X, F, A]) MinLeft(r int, pred func(X) bool) (int, error) {
	if err := checkBound(r, lt.n); err != nil {
		return 0, lt.reject(err, logrus.Fields{"epos": r})
	}
	if !pred(lt.a.Identity()) {
		panic("segtree: MinLeft predicate must hold for the identity")
	}
	if r == 0 {
		return 0, nil
	}
	r += lt.sz
	lt.pushPath(r - 1)
	sm := lt.a.Identity()
	for {
		r--
		for r > 1 && r%2 == 1 {
			r >>= 1
		}
		if !pred(lt.a.Op(lt.d[r], sm)) {
			for r < lt.sz {
				lt.push(r)
				r = 2*r + 1
				if next := lt.a.Op(lt.d[r], sm); pred(next) {
					sm = next
					r--
				}
			}
			return r + 1 - lt.sz, nil
		}
		sm = lt.a.Op(lt.d[r], sm)
		if r&-r == r {
			break
		}
	}
	return 0, nil
}
