// Package tuplefunc provides functions that convert between multiple-argument
// and multiple-return functions and single-argument, single-return functions.
// This makes it trivial to pass arbitrary functions to generic operations
// that are designed to operate on arbitrary functions.
//
// The names of the functions in this package match the following regular expression:
//
//	(ToA|FromA|ToR)_[0-9]+
//
// The number is the number of argument parameters (for ToA and FromA)
// or return parameters (for ToR) of the multiple-value form.
//
// So, for example:
//
//	ToA_2
//
// converts from (for some types A0, A1 and R)
//
//	func(A0, A1) R
//
// to:
//
//	func(tuple.T2[A0, A1]) R
//
// and FromA_2 converts back again. Similarly, ToR_3
// converts from
//
//	func(A) (R0, R1, R2)
//
// to:
//
//	func(A) tuple.T3[R0, R1, R2]
//
// ToR_0 converts a function with no results to one
// that returns the empty tuple.
package tuplefunc

//go:generate go run ../../internal/cmd/pipegen -config ../../gen.hcl tuplefunc
