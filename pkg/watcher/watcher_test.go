package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("bodies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(100 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	var calls atomic.Int32
	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(file string) {
		calls.Add(1)
		changed <- file
	}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("bodies: []\n# edit\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case file := <-changed:
		abs, _ := filepath.Abs(path)
		if file != abs {
			t.Errorf("expected callback for %s, got %s", abs, file)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}

	// Give a second debounce window a chance to fire if it was going to
	time.Sleep(300 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("expected a single debounced callback, got %d", n)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("bodies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(file string) { changed <- file }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case file := <-changed:
		t.Errorf("unexpected callback for %s", file)
	case <-time.After(300 * time.Millisecond):
	}
}
