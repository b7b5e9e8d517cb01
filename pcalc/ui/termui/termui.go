// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2026 The personal-calc Authors
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'pcalc.cli'.
func trace() tracing.Trace {
	return tracing.Select("pcalc.cli")
}

// Formatter writes an item to w. It returns false if it does not know how
// to format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, tables and errors. Applications embed
// it into their own formatters and delegate every item they do not handle.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		if _, err := io.WriteString(w, "\t"+t+"\n"); err != nil {
			return false, err
		}
		return true, nil
	case table.Writer:
		if t == nil {
			io.WriteString(w, "\t(empty table)\n")
		} else {
			io.WriteString(w, t.Render())
			w.Write([]byte{'\n'})
		}
		return true, nil
	case error:
		_, err := io.WriteString(w, prtxt.FgRed.Sprint("\tError: "+t.Error())+"\n")
		return err == nil, err
	default:
		_, err := io.WriteString(w, fmt.Sprintf("\tobject of type %T\n", t))
		return err == nil, err
	}
}
