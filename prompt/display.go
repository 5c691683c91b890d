// Copyright © 2026 The peek authors

package prompt

import (
	"fmt"
	"io"

	"github.com/gobwas/glob"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// doVars lists the current directory with live values, optionally
// filtered by a glob pattern over display names.
func (h *handler) doVars(args []string) {
	names := h.s.Names()
	if len(args) > 0 {
		g, err := glob.Compile(args[0])
		if err != nil {
			fmt.Fprintf(h.out, "bad pattern %q: %v\n", args[0], err) //nolint:errcheck
			return
		}
		var kept []string
		for _, name := range names {
			if g.Match(name) {
				kept = append(kept, name)
			}
		}
		names = kept
	}
	if len(names) == 0 {
		fmt.Fprintln(h.out, "  (no variables)") //nolint:errcheck
		return
	}
	for _, name := range names {
		rec, ok := h.s.Lookup(name)
		if !ok {
			continue
		}
		v, err := h.s.Get(name, 0)
		if err != nil {
			fmt.Fprintf(h.out, "  %-20s  %v\n", name, err) //nolint:errcheck
			continue
		}
		if name == rec.OriginalName {
			fmt.Fprintf(h.out, "  %-20s = %s\n", name, h.s.Format(v)) //nolint:errcheck
		} else {
			fmt.Fprintf(h.out, "  %-20s = %s  (%s)\n", name, h.s.Format(v), rec.OriginalName) //nolint:errcheck
		}
	}
}

const helpIntro = "Inspection commands operate on the variable names listed at " +
	"suspension time. Anything that is not a command is evaluated by the " +
	"host runtime in the suspended state."

func showHelp(w io.Writer) {
	fmt.Fprintln(w, indent.String(wordwrap.String(helpIntro, 72), 2)) //nolint:errcheck
	help := `Commands:
  vars (v) [PATTERN]  List variables, optionally filtered by glob pattern
  get (g) NAME        Show the value of a variable
  print (p) NAME      Show "NAME = value"
  set NAME LITERAL    Overwrite a variable (string, number, true/false, nil)
  cont (c)            Resume the script
  help (h)            Show this help

Empty input repeats the last command.`
	fmt.Fprintln(w, help) //nolint:errcheck
}
