// Copyright © 2026 The peek authors

package prompt

import (
	"sort"
	"strings"

	"github.com/peeklua/peek/session"
)

var commandVerbs = []string{
	"cont", "get", "help", "print", "set", "vars",
}

// nameCompleter implements readline.AutoCompleter by enumerating the
// session's display names and the prompt's command verbs.
type nameCompleter struct {
	s *session.Session
}

func (c *nameCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.collect(prefix, start == 0)
	if len(candidates) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	result := make([][]rune, 0, len(candidates))
	for _, name := range candidates {
		result = append(result, []rune(name[len(prefix):]))
	}
	return result, len(prefix)
}

// collect gathers matching candidates: command verbs only complete in
// the first word position, display names complete anywhere.
func (c *nameCompleter) collect(prefix string, first bool) []string {
	seen := make(map[string]bool)
	var result []string
	if first {
		for _, verb := range commandVerbs {
			if strings.HasPrefix(verb, prefix) && !seen[verb] {
				seen[verb] = true
				result = append(result, verb)
			}
		}
	}
	for _, name := range c.s.Names() {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
