package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("pcalc.cli")
}
