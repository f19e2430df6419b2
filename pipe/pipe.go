package pipe

import "github.com/rogpeppe/funcpipe/tuple"

//go:generate go run ../internal/cmd/pipegen -config ../gen.hcl pipe

// Func is implemented by a pipeline stage. A stage takes all its
// arguments as a single value of type I, usually a tuple, and
// produces a value of type O.
type Func[I, O any] interface {
	Call(I) O
}

// FuncOf returns a stage that calls f directly. Unlike F1, it
// does not wrap the result in a tuple.
func FuncOf[I, O any](f func(I) O) Func[I, O] {
	return fn[I, O](f)
}

type fn[I, O any] func(I) O

func (f fn[I, O]) Call(x I) O {
	return f(x)
}

// Map is a stage that calls A and passes its result to B.
// I is the input type of A, which is also the input type
// of the composite stage.
type Map[I, M, O any] struct {
	A Func[I, M]
	B Func[M, O]
}

// Call implements Func.
func (m Map[I, M, O]) Call(x I) O {
	return m.B.Call(m.A.Call(x))
}

// Compose returns a stage that calls a and then calls b with
// the result. The output type of a must be exactly the input
// type of b: Compose never spreads or wraps the value passed
// between them. See Spread and Wrap for that.
//
// The dynamic type of the result is Map[I, M, O].
func Compose[I, M, O any](a Func[I, M], b Func[M, O]) Func[I, O] {
	return Map[I, M, O]{a, b}
}

// SpreadMap is a stage that calls A and passes the contents of
// its single-element result to B.
type SpreadMap[I, M, O any] struct {
	A Func[I, tuple.T1[M]]
	B Func[M, O]
}

// Call implements Func.
func (m SpreadMap[I, M, O]) Call(x I) O {
	return m.B.Call(m.A.Call(x).V0)
}

// Spread is like Compose except that the value produced by a is
// taken out of its one-element tuple before being passed to b.
//
// This lets a single-argument stage that returns a tuple feed a stage
// taking several arguments: with
//
//	split := F1(func(x int) tuple.T2[int, int] { ... })
//	add := F2(func(x, y int) int { ... })
//
// Spread(split, add) passes the two elements of split's result
// as the two arguments of add.
func Spread[I, M, O any](a Func[I, tuple.T1[M]], b Func[M, O]) Func[I, O] {
	return SpreadMap[I, M, O]{a, b}
}

// WrapMap is a stage that calls A and passes its result
// to B inside a one-element tuple.
type WrapMap[I, M, O any] struct {
	A Func[I, M]
	B Func[tuple.T1[M], O]
}

// Call implements Func.
func (m WrapMap[I, M, O]) Call(x I) O {
	return m.B.Call(tuple.MkT1(m.A.Call(x)))
}

// Wrap is like Compose except that the value produced by a is
// always passed to b as a single value, even when it is itself
// a tuple that could otherwise be spread over b's arguments.
func Wrap[I, M, O any](a Func[I, M], b Func[tuple.T1[M], O]) Func[I, O] {
	return WrapMap[I, M, O]{a, b}
}

// Wrap3 composes three stages, passing each result to the following
// stage as a single value. It is equivalent to Wrap(Wrap(a, b), c).
func Wrap3[I, M0, M1, O any](a Func[I, M0], b Func[tuple.T1[M0], M1], c Func[tuple.T1[M1], O]) Func[I, O] {
	return Wrap(Wrap(a, b), c)
}

// Seq composes any number of stages that all take and return
// the same type, from left to right. With no stages, it returns
// a stage that returns its argument unchanged.
func Seq[T any](fs ...Func[T, T]) Func[T, T] {
	if len(fs) == 0 {
		return FuncOf(func(x T) T {
			return x
		})
	}
	f := fs[0]
	for _, g := range fs[1:] {
		f = Compose(f, g)
	}
	return f
}

// Identity returns a single-argument stage that returns its argument.
func Identity[T any]() Func[tuple.T1[T], tuple.T1[T]] {
	return F1(func(x T) T {
		return x
	})
}
