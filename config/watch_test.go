package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsTuningWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// non-tuning files are filtered out; only the yaml write surfaces
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	target := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(target, []byte("screen: {width: 1, height: 1}"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != target {
			t.Fatalf("event path = %q, want %q", got, target)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s of writing tuning.yaml")
	}
}

func TestWatcherCloseReleasesChannels(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// queue writes nobody drains, then shut down; Close must not hang or
	// panic on a pending send, and the channels must end up closed
	for i := 0; i < 4; i++ {
		name := filepath.Join(dir, "tuning.yaml")
		if err := os.WriteFile(name, []byte("screen: {width: 1, height: 1}"), 0o644); err != nil {
			t.Fatalf("write yaml: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed within 2s of Close")
		}
	}
}
