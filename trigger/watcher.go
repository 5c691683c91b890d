// Copyright © 2026 The peek authors

package trigger

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watcher arms itself when the marker file appears.  It watches the
// marker's directory, not the marker itself, so it observes creation of
// a file that does not exist yet.  The event goroutine only flips an
// atomic flag; all suspension work stays on the script's goroutine.
type Watcher struct {
	path  string
	fsw   *fsnotify.Watcher
	armed atomic.Bool
}

// Watch starts watching for the marker at path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, err
	}
	w := &Watcher{path: abs, fsw: fsw}
	// The marker may predate the watch.
	if _, err := os.Stat(abs); err == nil {
		w.armed.Store(true)
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name == w.path && (ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write)) {
				w.armed.Store(true)
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Armed reports whether the marker has appeared since the last Reset.
func (w *Watcher) Armed() bool {
	return w.armed.Load()
}

// Reset clears the armed state after the marker has been consumed.
func (w *Watcher) Reset() {
	w.armed.Store(false)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
