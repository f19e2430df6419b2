// Package pipe composes ordinary functions into pipelines.
//
// Each stage of a pipeline implements Func[I, O]: it takes all its
// arguments as a single value of type I, a tuple from package tuple,
// and returns a value of type O. The functions F0 to F16 turn a
// function with that many arguments into a stage.
//
// The result of a stage follows a convention that makes
// most compositions line up without any glue code:
//
//   - a stage made from a single-argument function returns its
//     result wrapped in a tuple.T1, matching the input of another
//     single-argument stage;
//   - a stage made from a function with zero or two or more
//     arguments returns its result as is. When that result is a
//     tuple.T2, for example, it is exactly the input of a stage
//     taking two arguments.
//
// Compose joins two stages whose types line up exactly, and Chain3 to
// Chain8 join longer lists of stages. All type checking happens at
// compile time: a pipeline whose stages do not fit together fails to
// build, and a pipeline that builds cannot fail to pass its values
// along.
//
// When the convention does not give the desired shape, Spread and
// Wrap make the choice explicit: Spread unpacks a one-element tuple
// into the arguments of the next stage, and Wrap passes a result as
// one value even when it is a tuple. Wrap3 applies Wrap at both
// joins of a three stage pipeline.
//
// For example:
//
//	pair := pipe.F0(func() tuple.T2[int, int] {
//		return tuple.MkT2(4, 8)
//	})
//	add := pipe.F2(func(x, y int) int {
//		return x + y
//	})
//	sum := pipe.Compose(pair, add)
//	sum.Call(tuple.MkT0()) // 12
package pipe
