package segtree

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	rng "github.com/leesper/go_rng"
	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/mat"

	"github.com/AlexWan0/go-segtree/algebra"
	"github.com/AlexWan0/go-segtree/internal/naive"
)

func randIntn(u *rng.UniformGenerator, n int) int {
	return int(u.Int64n(int64(n)))
}

func generateRange(u *rng.UniformGenerator, num int) Range {
	bpos := randIntn(u, num+1)
	epos := bpos + randIntn(u, num-bpos+1)
	return Range{bpos, epos}
}

func randomInts(u *rng.UniformGenerator, num int, lo, hi int64) []int64 {
	vals := make([]int64, num)
	for i := range vals {
		vals[i] = u.Int64Range(lo, hi)
	}
	return vals
}

func TestSegTree(t *testing.T) {
	Convey("When a tree is empty", t, func() {
		st := NewEmpty[int](algebra.Sum[int]{}, 0)
		So(st.Len(), ShouldEqual, 0)
		So(st.All(), ShouldEqual, 0)
		v, err := st.Query(Range{0, 0})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 0)
		So(errors.Is(st.Set(0, 1), ErrIndexOutOfRange), ShouldBeTrue)
		So(st.Values(), ShouldBeEmpty)
	})
	Convey("Given [1, 2, 3, 4, 5] under addition", t, func() {
		st := New(algebra.Sum[int]{}, []int{1, 2, 3, 4, 5})
		total, err := st.Query(Range{0, 5})
		So(err, ShouldBeNil)
		So(total, ShouldEqual, 15)
		So(st.All(), ShouldEqual, 15)

		Convey("point updates reach every ancestor", func() {
			So(st.Set(2, 10), ShouldBeNil)
			total, _ := st.Query(Range{0, 5})
			So(total, ShouldEqual, 22)
			v, _ := st.Get(2)
			So(v, ShouldEqual, 10)
			mid, _ := st.Query(Range{1, 4})
			So(mid, ShouldEqual, 16)
		})
		Convey("Modify repairs ancestors when it returns", func() {
			So(st.Modify(4, func(v *int) { *v *= 3 }), ShouldBeNil)
			So(st.All(), ShouldEqual, 25)
			tail, _ := st.Query(Range{3, 5})
			So(tail, ShouldEqual, 19)
		})
		Convey("an empty range yields the identity", func() {
			v, err := st.Query(Range{3, 3})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 0)
		})
		Convey("bad ranges fail and leave the tree untouched", func() {
			_, err := st.Query(Range{3, 2})
			So(errors.Is(err, ErrInvalidRange), ShouldBeTrue)
			_, err = st.Query(Range{0, 6})
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			_, err = st.Query(Range{-1, 2})
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			So(errors.Is(st.Set(5, 1), ErrIndexOutOfRange), ShouldBeTrue)
			So(errors.Is(st.Set(-1, 1), ErrIndexOutOfRange), ShouldBeTrue)
			_, err = st.Get(5)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			So(errors.Is(st.Modify(7, func(*int) {}), ErrIndexOutOfRange), ShouldBeTrue)
			So(cmp.Diff([]int{1, 2, 3, 4, 5}, st.Values()), ShouldBeEmpty)
		})
	})
	Convey("When random values are updated", t, func() {
		u := rng.NewUniformGenerator(0xDEADBEEF)
		for _, num := range []int{1, 2, 7, 37, 64} {
			orig := randomInts(u, num, -1000, 1000)
			st := New(algebra.Sum[int64]{}, orig)
			for i := 0; i < 50; i++ {
				ind := randIntn(u, num)
				x := u.Int64Range(-1000, 1000)
				orig[ind] = x
				So(st.Set(ind, x), ShouldBeNil)

				ranze := generateRange(u, num)
				v, err := st.Query(ranze)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, naive.Fold[int64](algebra.Sum[int64]{}, orig[ranze.Bpos:ranze.Epos]))
			}
			for l := 0; l <= num; l++ {
				for r := l; r <= num; r++ {
					v, _ := st.Query(Range{l, r})
					So(v, ShouldEqual, naive.Fold[int64](algebra.Sum[int64]{}, orig[l:r]))
				}
			}
			So(cmp.Diff(orig, st.Values()), ShouldBeEmpty)
		}
	})
	Convey("When the operation is not commutative", t, func() {
		const mod = 998244353
		u := rng.NewUniformGenerator(42)
		m := algebra.AffineCompose{Mod: mod}
		num := 23
		orig := make([]algebra.Affine, num)
		for i := range orig {
			orig[i] = algebra.Affine{A: uint64(u.Int64Range(0, mod)), B: uint64(u.Int64Range(0, mod))}
		}
		st := New(m, orig)
		for i := 0; i < 100; i++ {
			if i%3 == 0 {
				ind := randIntn(u, num)
				orig[ind] = algebra.Affine{A: uint64(u.Int64Range(0, mod)), B: uint64(u.Int64Range(0, mod))}
				So(st.Set(ind, orig[ind]), ShouldBeNil)
			}
			ranze := generateRange(u, num)
			v, _ := st.Query(ranze)
			So(v, ShouldResemble, naive.Fold[algebra.Affine](m, orig[ranze.Bpos:ranze.Epos]))
		}
	})
	Convey("When matrices are multiplied in index order", t, func() {
		m := algebra.MatProduct{Dim: 2}
		orig := []*mat.Dense{
			mat.NewDense(2, 2, []float64{1, 1, 0, 1}),
			mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
			mat.NewDense(2, 2, []float64{2, 0, 0, 1}),
			mat.NewDense(2, 2, []float64{1, 0, 3, 1}),
			mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
		}
		st := New(m, orig)
		for l := 0; l <= len(orig); l++ {
			for r := l; r <= len(orig); r++ {
				v, err := st.Query(Range{l, r})
				So(err, ShouldBeNil)
				So(mat.Equal(v, naive.Fold[*mat.Dense](m, orig[l:r])), ShouldBeTrue)
			}
		}
		swapped, _ := st.Query(Range{0, 2})
		So(mat.Equal(swapped, mat.NewDense(2, 2, []float64{1, 1, 1, 0})), ShouldBeTrue)
	})
	Convey("MaxRight and MinLeft agree with a linear scan", t, func() {
		u := rng.NewUniformGenerator(7)
		num := 41
		orig := randomInts(u, num, 0, 20)
		st := New(algebra.Sum[int64]{}, orig)
		arr := naive.NewArray[int64, int64](algebra.AddSum[int64]{}, orig)
		for i := 0; i < 200; i++ {
			limit := u.Int64Range(0, 300)
			pred := func(v int64) bool { return v <= limit }
			l := randIntn(u, num+1)
			got, err := st.MaxRight(l, pred)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, arr.MaxRight(l, pred))
			r := randIntn(u, num+1)
			got, err = st.MinLeft(r, pred)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, arr.MinLeft(r, pred))
		}
		_, err := st.MaxRight(num+1, func(int64) bool { return true })
		So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		So(func() { st.MinLeft(num, func(v int64) bool { return v < 0 }) }, ShouldPanic)
	})
	Convey("Min trees keep float infinities as identity", t, func() {
		st := New(algebra.Min[float64]{Top: math.Inf(1)}, []float64{3.5, -1, 2})
		So(st.All(), ShouldEqual, -1)
		v, _ := st.Query(Range{2, 2})
		So(math.IsInf(v, 1), ShouldBeTrue)
	})
}

// -----------------------------------------------------------------------------
// Benchmarks
//

const (
	N = 1 << 20
)

type benchFixture struct {
	st   *SegTree[int64, algebra.Sum[int64]]
	lt   *LazySegTree[int64, int64, algebra.AddSum[int64]]
	u    *rng.UniformGenerator
	vals []int64
}

var bf *benchFixture // = nil

func fixture() *benchFixture {
	if bf != nil {
		return bf
	}
	u := rng.NewUniformGenerator(1)
	vals := randomInts(u, N, 0, 1<<20)
	bf = &benchFixture{
		st:   New(algebra.Sum[int64]{}, vals),
		lt:   NewLazy[int64, int64](algebra.AddSum[int64]{}, vals),
		u:    u,
		vals: vals,
	}
	return bf
}

func BenchmarkSegTree_Build(b *testing.B) {
	f := fixture()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(algebra.Sum[int64]{}, f.vals)
	}
}

func BenchmarkSegTree_Set(b *testing.B) {
	f := fixture()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.st.Set(randIntn(f.u, N), int64(i))
	}
}

func BenchmarkSegTree_Query(b *testing.B) {
	f := fixture()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.st.Query(generateRange(f.u, N))
	}
}

func BenchmarkRaw_Query(b *testing.B) {
	f := fixture()
	b.ResetTimer()
	dummy := int64(0)
	for i := 0; i < b.N; i++ {
		ranze := generateRange(f.u, N)
		for _, v := range f.vals[ranze.Bpos:ranze.Epos] {
			dummy += v
		}
	}
}
