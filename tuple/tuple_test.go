package tuple_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/funcpipe/tuple"
)

func TestMk(t *testing.T) {
	c := qt.New(t)
	c.Assert(tuple.MkT0(), qt.Equals, tuple.T0{})
	c.Assert(tuple.MkT1(1), qt.Equals, tuple.T1[int]{V0: 1})
	c.Assert(tuple.MkT2(1, "a"), qt.Equals, tuple.T2[int, string]{V0: 1, V1: "a"})
	c.Assert(tuple.MkT3(1, "a", true), qt.Equals, tuple.T3[int, string, bool]{V0: 1, V1: "a", V2: true})
}

func TestT(t *testing.T) {
	c := qt.New(t)
	tuple.MkT0().T()

	c.Assert(tuple.MkT1("x").T(), qt.Equals, "x")

	a, b := tuple.MkT2(1, "a").T()
	c.Assert(a, qt.Equals, 1)
	c.Assert(b, qt.Equals, "a")

	x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12, x13, x14, x15 := tuple.MkT16(
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	).T()
	c.Assert([]int{x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12, x13, x14, x15}, qt.DeepEquals, []int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	})
}

func TestValueSemantics(t *testing.T) {
	c := qt.New(t)
	t1 := tuple.MkT2(1, []int{1, 2})
	t2 := t1
	t2.V0 = 99
	c.Assert(t1.V0, qt.Equals, 1)
	c.Assert(t2.V0, qt.Equals, 99)
}

func TestNested(t *testing.T) {
	c := qt.New(t)
	n := tuple.MkT1(tuple.MkT2(4, 8))
	c.Assert(n.V0.V1, qt.Equals, 8)
	c.Assert(n, qt.Equals, tuple.T1[tuple.T2[int, int]]{V0: tuple.T2[int, int]{V0: 4, V1: 8}})
}
