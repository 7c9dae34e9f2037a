package preset

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnModTimeChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("version: \"1\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan string, 1)
	w := NewWatcher(path, 10*time.Millisecond, func(p string) {
		select {
		case fired <- p:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-fired:
		if p != path {
			t.Fatalf("callback path: got %q", p)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never fired")
	}
}

func TestWatcherStaysQuietWithoutChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("version: \"1\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	w := NewWatcher(path, 10*time.Millisecond, func(string) { fired <- struct{}{} })
	w.Start()
	defer w.Stop()

	select {
	case <-fired:
		t.Fatal("watcher fired without a modification")
	case <-time.After(100 * time.Millisecond):
	}
}
