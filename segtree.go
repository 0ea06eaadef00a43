package segtree

import (
	"github.com/sirupsen/logrus"
)

// SegTree is a segment tree over the monoid M supporting point updates and
// range queries.
//
// Nodes live in one flat slice: the root is d[1], the children of d[i] are
// d[2i] and d[2i+1], and the leaves are d[sz:2sz]. Leaves past Len() hold
// the identity.
type SegTree[T any, M Monoid[T]] struct {
	m   M
	d   []T
	n   int
	sz  int
	log logrus.FieldLogger
}

// New builds a tree holding a copy of values.
func New[T any, M Monoid[T]](m M, values []T, opts ...Option) *SegTree[T, M] {
	st := &SegTree[T, M]{m: m}
	st.init(len(values), opts)
	copy(st.d[st.sz:], values)
	st.build()
	st.log.Debug("built segment tree")
	return st
}

// NewEmpty builds a tree of n identity elements. It panics if n < 0.
func NewEmpty[T any, M Monoid[T]](m M, n int, opts ...Option) *SegTree[T, M] {
	if n < 0 {
		panic("segtree: negative length")
	}
	st := &SegTree[T, M]{m: m}
	st.init(n, opts)
	st.log.Debug("built empty segment tree")
	return st
}

func (st *SegTree[T, M]) init(n int, opts []Option) {
	st.n = n
	st.sz = ceilPow2(n)
	st.d = make([]T, 2*st.sz)
	e := st.m.Identity()
	for i := range st.d {
		st.d[i] = e
	}
	st.log = buildOptions(opts).entry(st.n, st.sz)
}

func (st *SegTree[T, M]) build() {
	for i := st.sz - 1; i >= 1; i-- {
		st.update(i)
	}
}

func (st *SegTree[T, M]) update(k int) {
	st.d[k] = st.m.Op(st.d[2*k], st.d[2*k+1])
}

func (st *SegTree[T, M]) reject(err error, fields logrus.Fields) error {
	if st.log != nil {
		st.log.WithFields(fields).WithError(err).Debug("rejected call")
	}
	return err
}

// Len returns the number of elements in the tree.
func (st *SegTree[T, M]) Len() int {
	return st.n
}

// Set overwrites the element at index i with v.
func (st *SegTree[T, M]) Set(i int, v T) error {
	if err := checkIndex(i, st.n); err != nil {
		return st.reject(err, logrus.Fields{"index": i})
	}
	p := i + st.sz
	st.d[p] = v
	st.repair(p)
	return nil
}

// Modify lets fn edit the element at index i in place. Ancestors are
// recomputed as soon as fn returns.
func (st *SegTree[T, M]) Modify(i int, fn func(v *T)) error {
	if err := checkIndex(i, st.n); err != nil {
		return st.reject(err, logrus.Fields{"index": i})
	}
	p := i + st.sz
	fn(&st.d[p])
	st.repair(p)
	return nil
}

// repair recomputes every ancestor of node p.
func (st *SegTree[T, M]) repair(p int) {
	for p >>= 1; p >= 1; p >>= 1 {
		st.update(p)
	}
}

// Get returns the element at index i.
func (st *SegTree[T, M]) Get(i int) (T, error) {
	if err := checkIndex(i, st.n); err != nil {
		var zero T
		return zero, st.reject(err, logrus.Fields{"index": i})
	}
	return st.d[i+st.sz], nil
}

// Query returns Op folded over T[ranze.Bpos, ranze.Epos) in index order.
// An empty range yields the identity.
func (st *SegTree[T, M]) Query(ranze Range) (T, error) {
	if err := checkRange(ranze, st.n); err != nil {
		var zero T
		return zero, st.reject(err, logrus.Fields{"bpos": ranze.Bpos, "epos": ranze.Epos})
	}
	sml, smr := st.m.Identity(), st.m.Identity()
	l, r := ranze.Bpos+st.sz, ranze.Epos+st.sz
	for l < r {
		if l&1 == 1 {
			sml = st.m.Op(sml, st.d[l])
			l++
		}
		if r&1 == 1 {
			r--
			smr = st.m.Op(st.d[r], smr)
		}
		l >>= 1
		r >>= 1
	}
	return st.m.Op(sml, smr), nil
}

// All returns the aggregate of the whole tree.
func (st *SegTree[T, M]) All() T {
	if st.d == nil {
		return st.m.Identity()
	}
	return st.d[1]
}

// Values returns a copy of the elements in index order.
func (st *SegTree[T, M]) Values() []T {
	out := make([]T, st.n)
	copy(out, st.d[st.sz:st.sz+st.n])
	return out
}

// MaxRight returns the largest r such that pred(Query(Range{l, r})) holds,
// assuming pred is monotone (true, then false, as r grows).
// pred must hold for the identity; MaxRight panics otherwise.
func (st *SegTree[T, M]) MaxRight(l int, pred func(T) bool) (int, error) {
	if err := checkBound(l, st.n); err != nil {
		return 0, st.reject(err, logrus.Fields{"bpos": l})
	}
	if !pred(st.m.Identity()) {
		panic("segtree: MaxRight predicate must hold for the identity")
	}
	if l == st.n {
		return st.n, nil
	}
	l += st.sz
	sm := st.m.Identity()
	for {
		for l%2 == 0 {
			l >>= 1
		}
		if !pred(st.m.Op(sm, st.d[l])) {
			for l < st.sz {
				l = 2 * l
				if next := st.m.Op(sm, st.d[l]); pred(next) {
					sm = next
					l++
				}
			}
			return l - st.sz, nil
		}
		sm = st.m.Op(sm, st.d[l])
		l++
		if l&-l == l {
			break
		}
	}
	return st.n, nil
}

// MinLeft returns the smallest l such that pred(Query(Range{l, r})) holds,
// assuming pred is monotone (true, then false, as l shrinks).
// pred must hold for the identity; MinLeft panics otherwise.
func (st *SegTree[T, M]) MinLeft(r int, pred func(T) bool) (int, error) {
	if err := checkBound(r, st.n); err != nil {
		return 0, st.reject(err, logrus.Fields{"epos": r})
	}
	if !pred(st.m.Identity()) {
		panic("segtree: MinLeft predicate must hold for the identity")
	}
	if r == 0 {
		return 0, nil
	}
	r += st.sz
	sm := st.m.Identity()
	for {
		r--
		for r > 1 && r%2 == 1 {
			r >>= 1
		}
		if !pred(st.m.Op(st.d[r], sm)) {
			for r < st.sz {
				r = 2*r + 1
				if next := st.m.Op(st.d[r], sm); pred(next) {
					sm = next
					r--
				}
			}
			return r + 1 - st.sz, nil
		}
		sm = st.m.Op(st.d[r], sm)
		if r&-r == r {
			break
		}
	}
	return 0, nil
}
