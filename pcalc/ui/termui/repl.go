package termui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Asaurus1/personal-calc"
	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

// BaseREPL is a line-oriented read-eval-print loop on a terminal. It handles
// a small set of administrative commands itself and sends every other line
// to its Interpreter. Tools embed it and set Interpreter and Helper.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // receives all non-administrative lines
	Helper      func(io.Writer)        // prints tool specific help, may be nil
	rl          *readline.Instance
	completer   *readline.PrefixCompleter
	tool        string
	version     string
	lineno      int    // lines sent to the interpreter, starting at 1
	prompt      string // set by 'setprompt', replaces the numbered prompt
	vimode      bool
}

// REPLCommandInterpreter interprets a line of user input.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// LineCounter is implemented by interpreters which count the lines they
// evaluated. The prompt then shows the number of the next evaluation
// instead of the number of lines entered.
type LineCounter interface {
	Lines() int
}

// adminCommand is a command the REPL executes itself. run returns true
// if the REPL should stop.
type adminCommand struct {
	args  string
	usage string
	run   func(repl *BaseREPL, args []string, line string) bool
}

var adminCommands map[string]adminCommand

func init() {
	adminCommands = map[string]adminCommand{
		"help":      {"", "print this message", (*BaseREPL).help},
		"bye":       {"", "quit application", (*BaseREPL).bye},
		"quit":      {"", "quit application", (*BaseREPL).bye},
		"mode":      {"[vi|emacs]", "display or set current editing mode", (*BaseREPL).mode},
		"setprompt": {"[prompt]", "set current prompt [to default]", (*BaseREPL).setPrompt},
	}
}

// NewBaseREPL creates a REPL for a tool. Input history is kept in the file
// history; if empty, a file in the temp directory is used.
func NewBaseREPL(tool, version, history string) *BaseREPL {
	repl := &BaseREPL{
		tool:    tool,
		version: version,
		lineno:  1,
	}
	repl.completer = readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("quit"),
		readline.PcItem("mode", readline.PcItem("vi"), readline.PcItem("emacs")),
		readline.PcItem("setprompt"),
	)
	if history == "" {
		history = filepath.Join(os.TempDir(), tool+"-repl-history.tmp")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              repl.currentPrompt(),
		HistoryFile:         history,
		AutoComplete:        repl.completer,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: blockCtrlZ,
	})
	if err != nil {
		panic(err)
	}
	repl.rl = rl
	return repl
}

// AddCompletions extends the completion tree of the REPL with the
// interpreter's commands.
func (repl *BaseREPL) AddCompletions(items ...readline.PrefixCompleterInterface) {
	repl.completer.SetChildren(append(repl.completer.GetChildren(), items...))
}

// Outputs returns the terminal's stdout and stderr.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.rl.Stdout(), repl.rl.Stderr()
}

// Prompt reads and executes lines until the user quits or input ends.
// If exitOnBye is set, the application is terminated afterwards.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.rl.Close()
	fmt.Fprintf(repl.rl.Stderr(), "Welcome to %s [V%s]\n", repl.tool, repl.version)
	for !repl.step() {
		repl.rl.SetPrompt(repl.currentPrompt())
	}
	if exitOnBye {
		pcalc.Exit(0)
	}
}

// step reads and executes one line. It returns true when the loop should end.
func (repl *BaseREPL) step() bool {
	line, err := repl.rl.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return len(line) == 0
	case err == io.EOF:
		return true
	case err != nil:
		trace().Errorf("reading input: %v", err)
		return true
	}
	line = strings.TrimSpace(line)
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	if cmd, ok := adminCommands[words[0]]; ok && (cmd.args != "" || len(words) == 1) {
		return cmd.run(repl, words[1:], line)
	}
	if repl.Interpreter != nil {
		trace().Debugf("call interpreter on: '%s'", line)
		repl.Interpreter.InterpretCommand(line)
		repl.lineno++
	}
	return false
}

func (repl *BaseREPL) currentPrompt() string {
	if repl.prompt != "" {
		return repl.prompt
	}
	n := repl.lineno
	if lc, ok := repl.Interpreter.(LineCounter); ok {
		n = lc.Lines() + 1
	}
	return prtxt.FgGreen.Sprintf("#%d %s> ", n, repl.tool)
}

func (repl *BaseREPL) help(args []string, line string) bool {
	w := repl.rl.Stderr()
	fmt.Fprintf(w, "%s %s\n\nThe following commands are available:\n\n", repl.tool, repl.version)
	names := make([]string, 0, len(adminCommands))
	for name := range adminCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := adminCommands[name]
		fmt.Fprintf(w, "  %-20s : %s\n", strings.TrimSpace(name+" "+cmd.args), cmd.usage)
	}
	if repl.Helper != nil {
		repl.Helper(w)
	}
	return false
}

func (repl *BaseREPL) bye(args []string, line string) bool {
	io.WriteString(repl.rl.Stderr(), "> goodbye!\n")
	return true
}

func (repl *BaseREPL) mode(args []string, line string) bool {
	if len(args) == 1 && (args[0] == "vi" || args[0] == "emacs") {
		repl.vimode = args[0] == "vi"
		repl.rl.SetVimMode(repl.vimode)
		return false
	}
	m := "emacs"
	if repl.vimode {
		m = "vi"
	}
	fmt.Fprintf(repl.rl.Stderr(), "> current input mode: %s\n", m)
	return false
}

func (repl *BaseREPL) setPrompt(args []string, line string) bool {
	p := strings.TrimSpace(strings.TrimPrefix(line, "setprompt"))
	if p == "" {
		repl.prompt = ""
	} else {
		repl.prompt = p + " "
	}
	return false
}

func blockCtrlZ(r rune) (rune, bool) {
	return r, r != readline.CharCtrlZ
}
