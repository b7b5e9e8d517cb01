// Package cli implements the pcalc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2026 The personal-calc Authors
//
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/pcalc/ui/termui"
	"github.com/Asaurus1/personal-calc/variables"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pcalc [file ...]",
	Short: "A calculator for numbers and matrices",
	Long: `Welcome to pcalc V0.2

pcalc evaluates arithmetic expressions over numbers and matrices and keeps
results in named variables.

pcalc is able to run in interactive mode or execute files and commands in
batch-mode. Without files or commands it prompts for user input in a
terminal REPL.

`,
	Run: runCalcCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by pcalc.main().
func Execute() {
	if rootCmd.Execute() != nil {
		pcalc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	flags := rootCmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Force run in interactive mode")
	flags.String("logfile", "stderr", "URL of log output location")
	flags.String("config", "", "Configuration file (.yaml or .toml)")
	flags.StringArrayP("command", "c", nil, "Evaluate a line of input (repeatable)")
	flags.Int("capacity", variables.DefaultCapacity, "Maximum number of variables")
	flags.Int("precision", 6, "Number of fractional digits in output")
	flags.Bool("echo", true, "Echo lines read from files")
}

func runCalcCmd(cmd *cobra.Command, args []string) {
	tracer().Infof("pcalc interpreter called")
	store := variables.NewStore(pcalc.ConfigInt("store.capacity", variables.DefaultCapacity))
	s := newSession(store, NewFormatter(), os.Stdout, os.Stderr)
	s.echo = pcalc.ConfigBool("repl.echo", true)
	commands, _ := cmd.Flags().GetStringArray("command")
	interactive, _ := cmd.Flags().GetBool("interactive")
	if !batch(s, commands, args) {
		pcalc.Exit(exitCode(s))
	}
	if !interactive && (len(commands) > 0 || len(args) > 0) {
		pcalc.Exit(exitCode(s))
	}
	runREPL(s)
}

// batch executes commands, then files. It returns false if the session
// has been ended by one of them.
func batch(s *session, commands []string, files []string) bool {
	for _, c := range commands {
		if s.Execute(c) {
			return false
		}
	}
	for _, path := range files {
		if err := s.open(path); err != nil {
			s.failures++
			s.print(err, s.errw)
		}
		if s.quit {
			return false
		}
	}
	return true
}

func exitCode(s *session) int {
	if s.failures > 0 {
		return 1
	}
	return 0
}

func runREPL(s *session) {
	var history string
	if paths := locateLogDir(); paths != nil {
		history = paths.HistoryFile()
	}
	intp := &calcIntpr{session: s}
	intp.BaseREPL = termui.NewBaseREPL("pcalc", "0.2", history)
	intp.Interpreter = intp
	intp.out, intp.errw = intp.Outputs()
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, `
pcalc will interpret the following statements:

  <expression>            : evaluate and store the result in 'ans'
  <name> = <expression>   : assign to a variable (also +=, -=, *=, /=)
  <name>++ | <name>--     : increment or decrement a variable
  who                     : list all variables
  clear                   : remove all variables
  open <file>             : execute the lines of a file

Numbers are decimals like 3 or 0.25, matrices are written as [1, 2; 3, 4].
Operators are + - * / \ % ^ with the usual precedence, ^ binding tightest.

`)
	}
	intp.AddCompletions(
		readline.PcItem("who"),
		readline.PcItem("clear"),
		readline.PcItem("open", readline.PcItemDynamic(listFiles)),
	)
	intp.Prompt(true)
}

type calcIntpr struct {
	*termui.BaseREPL
	*session
}

var _ termui.LineCounter = (*calcIntpr)(nil)

// InterpretCommand is part of interface termui.REPLCommandInterpreter.
func (intp *calcIntpr) InterpretCommand(command string) {
	if intp.session.Execute(command) {
		pcalc.Exit(exitCode(intp.session))
	}
}

// listFiles completes file names for 'open'.
func listFiles(line string) []string {
	names, err := filepath.Glob("*")
	if err != nil {
		return nil
	}
	return names
}
