// Command pcalc is an interactive calculator for numbers and matrices.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2026 The personal-calc Authors
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/pcalc/cli"
)

func main() {
	var stop context.CancelFunc
	pcalc.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
