package preset

import (
	"os"
	"time"
)

// Watcher polls one preset file's modification time and invokes a callback
// when it moves.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func(path string)
	stopCh   chan struct{}
	last     time.Time
}

// NewWatcher creates a watcher for path. onChange runs on the watcher's
// goroutine.
func NewWatcher(path string, interval time.Duration, onChange func(path string)) *Watcher {
	return &Watcher{
		path:     path,
		interval: interval,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}
}

// Start begins polling in a goroutine.
func (w *Watcher) Start() {
	if fi, err := os.Stat(w.path); err == nil {
		w.last = fi.ModTime()
	}
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scan()
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

func (w *Watcher) scan() {
	fi, err := os.Stat(w.path)
	if err != nil {
		// file temporarily missing (editor save dance); keep polling
		return
	}
	mt := fi.ModTime()
	if mt.After(w.last) {
		w.last = mt
		if w.onChange != nil {
			w.onChange(w.path)
		}
	}
}
