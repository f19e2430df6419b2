// Package tuple is a collection of generic struct types
// that hold a specific number of values.
//
// A tuple type TN holds N values in fields V0 to VN-1.
// T0 is the empty tuple. Two tuple types are the same
// exactly when they hold the same types in the same order.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run ../internal/cmd/pipegen -config ../gen.hcl tuple
