package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("before\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(Config{
		Paths:            []string{dir},
		DebounceInterval: 20 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var fired atomic.Int64
	done := make(chan struct{})
	go func() {
		w.Run(ctx, func() { fired.Add(1) })
		close(done)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(file, []byte("after\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for fired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if fired.Load() == 0 {
		t.Fatal("watcher never fired after a write")
	}

	cancel()
	<-done
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(Config{
		Paths:            []string{dir},
		DebounceInterval: 150 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int64
	go w.Run(ctx, func() { fired.Add(1) })

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(file, []byte("burst\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(400 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("burst of writes fired %d times, want 1", got)
	}
}

func TestWatcherIgnoresFilteredExtensions(t *testing.T) {
	dir := t.TempDir()

	w, err := New(Config{
		Paths:            []string{dir},
		Extensions:       []string{".go"},
		DebounceInterval: 20 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int64
	go w.Run(ctx, func() { fired.Add(1) })

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("write to filtered extension fired %d times, want 0", got)
	}
}

func TestWatcherMissingPath(t *testing.T) {
	w, err := New(Config{Paths: []string{"/does/not/exist"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Run(context.Background(), func() {}); err == nil {
		t.Fatal("Run succeeded on a missing path")
	}
}
