/*
Package matrix implements dense numeric matrices for the calculator.

A Matrix has a shape of rows × columns and stores its elements in row-major
order. A 1×1 matrix is interchangeable with a scalar: in every arithmetic
operation it is broadcast into the shape of the other operand.

The zero value is the null matrix. It is the result of every operation which
is not defined for its operands (shape mismatch, invalid literal, non-positive
dimensions). Arithmetic never fails otherwise; callers check IsNull() on
results and report errors as they see fit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The personal-calc Authors

*/
package matrix

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pcalc.matrix'.
func tracer() tracing.Trace {
	return tracing.Select("pcalc.matrix")
}
