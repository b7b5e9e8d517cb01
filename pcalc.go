/*
Package pcalc is a calculator for numbers and dense matrices.

Input is read one line at a time. Every line is tokenized, its literals
are resolved, operator precedence is annotated and the result is evaluated
and stored into a variable. Sub-packages implement the pipeline stages:

	grammar    ⟶ tokenizer and literal resolver
	evaluator  ⟶ precedence annotation, statement dispatch, evaluation
	variables  ⟶ the bounded variable store
	matrix     ⟶ the value type every stage operates on

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The personal-calc Authors

*/
package pcalc

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ConfigInt returns an integer configuration value, or dflt if no
// configuration has been loaded or the key is unset.
func ConfigInt(key string, dflt int) int {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.Int(key)
}

// ConfigBool returns a boolean configuration value, or dflt if no
// configuration has been loaded or the key is unset.
func ConfigBool(key string, dflt bool) bool {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.Bool(key)
}
