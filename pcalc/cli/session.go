package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/evaluator"
	"github.com/Asaurus1/personal-calc/pcalc/ui/termui"
	"github.com/Asaurus1/personal-calc/variables"
)

// maxOpenDepth limits nested 'open' commands, which would otherwise recurse
// forever for a file opening itself.
const maxOpenDepth = 16

// session executes input lines against a variable store. It handles the
// session commands (who, clear, open, quit) and sends everything else to
// the interpreter.
type session struct {
	store    *variables.Store
	intp     *evaluator.Interpreter
	format   termui.Formatter
	out      io.Writer // results
	errw     io.Writer // errors
	echo     bool      // echo lines read from files
	depth    int       // nesting of 'open'
	lines    int       // number of evaluated lines
	failures int       // number of lines with errors
	quit     bool
}

func newSession(store *variables.Store, format termui.Formatter, out, errw io.Writer) *session {
	return &session{
		store:  store,
		intp:   evaluator.NewInterpreter(store),
		format: format,
		out:    out,
		errw:   errw,
		echo:   true,
	}
}

// Execute runs a single line of input. It returns true if the session
// should end.
func (s *session) Execute(line string) bool {
	line = strings.TrimSpace(strings.Trim(line, "\x00"))
	words := strings.Fields(line)
	if len(words) == 0 {
		return s.quit
	}
	switch {
	case words[0] == "who" && len(words) == 1:
		s.print(s.store.Enumerate(), s.out)
	case words[0] == "clear" && len(words) == 1:
		s.store.Reset()
		s.print("variables cleared", s.out)
	case words[0] == "open" && len(words) == 2:
		if err := s.open(words[1]); err != nil {
			s.failures++
			s.print(err, s.errw)
		}
	case (words[0] == "quit" || words[0] == "bye") && len(words) == 1:
		s.quit = true
	default:
		s.evaluate(line)
	}
	return s.quit
}

// Lines returns the number of lines sent to the interpreter. Session
// commands are not counted.
func (s *session) Lines() int {
	return s.lines
}

func (s *session) evaluate(line string) {
	s.lines++
	v, err := s.intp.EvaluateLine(line)
	if err != nil {
		s.failures++
		tracer().Errorf("line %d: %v", s.lines, err)
		s.print(err, s.errw)
		return
	}
	s.print(v, s.out)
}

// open executes the lines of a file.
func (s *session) open(path string) error {
	if s.depth >= maxOpenDepth {
		return fmt.Errorf("cannot open %q: files nested too deeply", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	tracer().Infof("executing file %q", path)
	s.depth++
	defer func() { s.depth-- }()
	return s.run(f)
}

// run executes every line from r until the input is exhausted, a line
// ends the session or the application is interrupted.
func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx := pcalc.SignalContext; ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if s.echo && strings.TrimSpace(line) != "" {
			fmt.Fprintf(s.out, "> %s\n", line)
		}
		if s.Execute(line) {
			break
		}
	}
	return scanner.Err()
}

func (s *session) print(item interface{}, w io.Writer) {
	if ok, err := s.format.Format(item, w); !ok && err != nil {
		tracer().Errorf("output failed: %v", err)
	}
}
