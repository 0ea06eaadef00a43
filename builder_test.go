package segtree

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/AlexWan0/go-segtree/algebra"
)

func TestBuilder(t *testing.T) {
	Convey("When values are pushed back", t, func() {
		b := NewBuilder[int](algebra.Sum[int]{})
		for _, v := range []int{4, 8, 15, 16, 23, 42} {
			b.PushBack(v)
		}
		So(b.Len(), ShouldEqual, 6)
		st := b.Build()
		So(st.All(), ShouldEqual, 108)

		Convey("later pushes do not leak into built trees", func() {
			b.PushBack(1)
			So(st.Len(), ShouldEqual, 6)
			So(b.Build().All(), ShouldEqual, 109)
		})
	})
	Convey("When a lazy builder is used", t, func() {
		b := NewLazyBuilder[int, int](algebra.AddSum[int]{})
		b.PushBack(1)
		b.PushBack(2)
		lt := b.Build()
		So(lt.Apply(Range{0, 2}, 10), ShouldBeNil)
		So(lt.All(), ShouldEqual, 23)
		So(b.Build().All(), ShouldEqual, 3)
	})
	Convey("An empty builder yields an empty tree", t, func() {
		st := NewBuilder[int](algebra.Sum[int]{}).Build()
		So(st.Len(), ShouldEqual, 0)
		So(st.All(), ShouldEqual, 0)
	})
}
