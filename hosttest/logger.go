// Copyright © 2026 The peek authors

package hosttest

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// LogWriter forwards listing and prompt output to a test's log, one line
// per entry, so suspension transcripts interleave with the test's own
// failure messages.  Partial lines are held until their newline arrives.
type LogWriter struct {
	tb      testing.TB
	pending bytes.Buffer
}

var _ io.Writer = (*LogWriter)(nil)

// NewLogWriter returns a writer logging through tb.
func NewLogWriter(tb testing.TB) *LogWriter {
	return &LogWriter{tb: tb}
}

func (w *LogWriter) Write(p []byte) (int, error) {
	w.pending.Write(p)
	for {
		line, err := w.pending.ReadString('\n')
		if err != nil {
			// No newline yet; keep the partial line for the next write.
			w.pending.WriteString(line)
			return len(p), nil
		}
		w.tb.Log(strings.TrimSuffix(line, "\n"))
	}
}

// Flush logs a trailing line that never received its newline.
func (w *LogWriter) Flush() {
	if w.pending.Len() == 0 {
		return
	}
	w.tb.Log(w.pending.String())
	w.pending.Reset()
}
