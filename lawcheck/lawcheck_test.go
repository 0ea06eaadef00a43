package lawcheck_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/AlexWan0/go-segtree/algebra"
	"github.com/AlexWan0/go-segtree/lawcheck"
)

type subtract struct{}

func (subtract) Identity() int { return 0 }
func (subtract) Op(a, b int) int { return a - b }

// flatSum forgets to scale the added amount by the node length.
type flatSum struct {
	algebra.AddSum[int]
}

func (flatSum) Aggregate(f int, _ int) int { return f }

// reversed composes actions newest first.
type reversed struct {
	algebra.AffineSum
}

func (r reversed) Compose(newer, older algebra.Affine) algebra.Affine {
	return r.AffineSum.Compose(older, newer)
}

func eq[T comparable](a, b T) bool { return a == b }

func lawOf(err error) string {
	var le *lawcheck.LawError
	if errors.As(err, &le) {
		return le.Law
	}
	return ""
}

func TestLawcheck(t *testing.T) {
	Convey("A lawful algebra passes", t, func() {
		So(lawcheck.Monoid[int](algebra.Sum[int]{}, []int{1, 2, 3}, eq[int]), ShouldBeNil)
		So(lawcheck.Monoid[int](algebra.Sum[int]{}, nil, eq[int]), ShouldBeNil)
		So(lawcheck.ExtMonoid[int, int](algebra.AddSum[int]{}, nil, []int{1}, 3, eq[int]), ShouldBeNil)
	})
	Convey("Subtraction breaks the left identity", t, func() {
		err := lawcheck.Monoid[int](subtract{}, []int{0, 1, 2}, eq[int])
		So(err, ShouldNotBeNil)
		So(lawOf(err), ShouldEqual, "left identity")
		So(err.Error(), ShouldContainSubstring, "a=1")
	})
	Convey("An unscaled aggregate breaks the aggregate law", t, func() {
		err := lawcheck.ExtMonoid[int, int](flatSum{}, []int{1, 2, 3}, []int{0, 4}, 3, eq[int])
		So(lawOf(err), ShouldEqual, "aggregate")
		So(err.Error(), ShouldContainSubstring, "length=2")
	})
	Convey("Newest first composition breaks the order law", t, func() {
		a := reversed{algebra.NewAffineSum(1000003)}
		fs := []algebra.Affine{{A: 1}, {A: 2, B: 1}, {A: 3}}
		err := lawcheck.ExtMonoid[uint64, algebra.Affine](a, []uint64{5}, fs, 2, eq[uint64])
		So(lawOf(err), ShouldEqual, "compose order")
	})
}
