// Copyright © 2026 The peek authors

// Package prompt implements the interactive command loop that runs while
// a script is suspended.  The loop only dispatches inspection commands
// (vars/get/set/print) against the current session; any other input is
// handed to the host runtime for evaluation, so read-eval-print behavior
// stays with the host.
package prompt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/google/shlex"

	"github.com/peeklua/peek/host"
	"github.com/peeklua/peek/session"
)

// DefaultPrompt is the prompt string shown while suspended.
const DefaultPrompt = "(peek) "

type config struct {
	stdin   io.ReadCloser
	out     io.Writer
	prompt  string
	history string
}

// Option configures Run.
type Option func(*config)

// WithStdin overrides the prompt's input.  This is primarily useful for
// testing, where a pipe replaces the terminal.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) { c.stdin = stdin }
}

// WithOutput overrides where prompt output is written.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithPrompt overrides the prompt string.
func WithPrompt(prompt string) Option {
	return func(c *config) { c.prompt = prompt }
}

// WithHistoryFile overrides the readline history path.  An empty string
// disables history.
func WithHistoryFile(path string) Option {
	return func(c *config) { c.history = path }
}

// Run drives the interactive prompt for one suspension and returns when
// the user resumes the script (cont command, or end of input).  Run never
// lets a failed command escape: all errors are reported on the prompt's
// output and the loop continues.
func Run(s *session.Session, opts ...Option) {
	cfg := &config{
		out:     os.Stderr,
		prompt:  DefaultPrompt,
		history: historyPath(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	h := &handler{s: s, out: cfg.out}

	rlCfg := &readline.Config{
		Stdout:            cfg.out,
		Stderr:            cfg.out,
		Prompt:            cfg.prompt,
		HistoryFile:       cfg.history,
		HistorySearchFold: true,
		AutoComplete:      &nameCompleter{s: s},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		// The prompt must never take the suspended script down with it.
		fmt.Fprintf(cfg.out, "prompt unavailable: %v\n", err)
		return
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			// EOF or a closed terminal resumes the script.
			return
		}
		text := strings.TrimSpace(string(line))
		if text == "" {
			// Empty input repeats the last command (GDB convention).
			text = h.lastCmd
			if text == "" {
				continue
			}
		}
		if h.dispatch(text) {
			return
		}
	}
}

// handler holds per-suspension prompt state.
type handler struct {
	s       *session.Session
	out     io.Writer
	lastCmd string
}

// dispatch runs one command line.  It returns true when the script
// should resume.
func (h *handler) dispatch(line string) bool {
	parts, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(h.out, "parse error: %v\n", err) //nolint:errcheck
		return false
	}
	if len(parts) == 0 {
		return false
	}
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "cont", "c", "continue":
		return true
	case "help", "h":
		showHelp(h.out)
	case "vars", "v":
		h.doVars(args)
	case "get", "g":
		h.doGet(args)
	case "set":
		h.doSet(line)
	case "print", "p":
		h.doPrint(args)
	default:
		h.doEval(line)
	}
	h.lastCmd = line
	return false
}

func (h *handler) doGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: get NAME") //nolint:errcheck
		return
	}
	v, err := h.s.Get(args[0], 0)
	if err != nil {
		fmt.Fprintln(h.out, err) //nolint:errcheck
		return
	}
	fmt.Fprintln(h.out, h.s.Format(v)) //nolint:errcheck
}

func (h *handler) doPrint(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "usage: print NAME") //nolint:errcheck
		return
	}
	if err := h.s.Print(h.out, args[0], 0); err != nil {
		fmt.Fprintln(h.out, err) //nolint:errcheck
	}
}

// doSet parses the raw line rather than shlex tokens so that string
// literals keep their quotes for the literal parser.
func (h *handler) doSet(line string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "set"))
	name, litText := splitWord(rest)
	if name == "" || litText == "" {
		fmt.Fprintln(h.out, "usage: set NAME LITERAL") //nolint:errcheck
		return
	}
	lit, err := parseLiteral(litText)
	if err != nil {
		fmt.Fprintln(h.out, err) //nolint:errcheck
		return
	}
	v := h.s.Runtime().FromLiteral(lit)
	old, cur, err := h.s.Set(name, v, 0)
	if err != nil {
		fmt.Fprintln(h.out, err) //nolint:errcheck
		return
	}
	fmt.Fprintf(h.out, "%s = %s -> %s\n", name, h.s.Format(old), h.s.Format(cur)) //nolint:errcheck
}

// doEval hands the line to the host runtime.  Evaluation output goes
// wherever the host normally writes.
func (h *handler) doEval(line string) {
	ev, ok := h.s.Runtime().(host.Evaluator)
	if !ok {
		fmt.Fprintln(h.out, `unrecognized command and the host cannot evaluate input (try "help")`) //nolint:errcheck
		return
	}
	if err := ev.EvalText(line); err != nil {
		fmt.Fprintln(h.out, err) //nolint:errcheck
	}
}

// splitWord splits s into its first whitespace-delimited word and the
// trimmed remainder.
func splitWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".peek_history")
}
