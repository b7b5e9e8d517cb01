/*
Package variables implements the variable store of the calculator.

A store maps names to matrix values. Lookup is by exact, case-sensitive
name; enumeration follows the order of creation. The number of variables
is bounded by the capacity of a store.

Every store holds the implicit result variable 'ans', which is created
together with the store and receives the result of every expression that
is not assigned to a named variable:

   #1 pcalc> 2+3
   	ans = 5
   #2 pcalc> x = ans * 2
   	x = 10

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The personal-calc Authors

*/
package variables

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pcalc.variables'.
func tracer() tracing.Trace {
	return tracing.Select("pcalc.variables")
}
