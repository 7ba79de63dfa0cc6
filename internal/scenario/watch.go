package scenario

import (
	"os"
	"time"
)

// Watcher polls config file modification times and triggers a callback on
// change, so a long-running server can invalidate its loader cache when a
// scenario file is edited or appears.
type Watcher struct {
	paths    []string
	interval time.Duration
	onChange func(path string)

	stopCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewWatcher creates a watcher for the given paths. Paths that do not
// exist yet are fine; their later creation counts as a change.
func NewWatcher(paths []string, interval time.Duration, onChange func(string)) *Watcher {
	return &Watcher{
		paths:     paths,
		interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start begins polling in a goroutine.
func (w *Watcher) Start() {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		w.scanAll(true)
		for {
			select {
			case <-ticker.C:
				w.scanAll(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

// scanAll compares mtimes against the previous scan and fires onChange for
// every path that moved forward or showed up for the first time. prime
// records the current state without firing anything.
func (w *Watcher) scanAll(prime bool) {
	for _, p := range w.paths {
		fi, err := os.Stat(p)
		if err != nil {
			continue // not there yet
		}
		mt := fi.ModTime()
		last, seen := w.lastMTime[p]
		if seen && !mt.After(last) {
			continue
		}
		w.lastMTime[p] = mt
		if prime || w.onChange == nil {
			continue
		}
		w.onChange(p)
	}
}
