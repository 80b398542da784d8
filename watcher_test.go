package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// pollUntil polls w until it reports a non-empty change set or the
// deadline passes. fsnotify delivery is asynchronous, so tests cannot
// assert on a single immediate poll.
func pollUntil(t *testing.T, w *fileWatcher, d time.Duration) []string {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		changed, err := w.poll()
		if err != nil {
			t.Fatalf("poll: %v", err)
		}
		if len(changed) > 0 {
			return changed
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func TestWatcherDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shader.kage")
	writeFile(t, path, "a")

	w, err := newFileWatcher()
	if err != nil {
		t.Fatalf("newFileWatcher: %v", err)
	}
	defer w.close()
	if err := w.watch(path); err != nil {
		t.Fatalf("watch: %v", err)
	}

	if changed, err := w.poll(); err != nil || len(changed) != 0 {
		t.Fatalf("expected quiet watcher, got %v, %v", changed, err)
	}

	writeFile(t, path, "b")
	changed := pollUntil(t, w, 2*time.Second)
	if len(changed) != 1 || changed[0] != path {
		t.Fatalf("expected [%s], got %v", path, changed)
	}
}

func TestWatcherDedupesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shader.kage")
	writeFile(t, path, "a")

	w, err := newFileWatcher()
	if err != nil {
		t.Fatalf("newFileWatcher: %v", err)
	}
	defer w.close()
	if err := w.watch(path); err != nil {
		t.Fatalf("watch: %v", err)
	}

	writeFile(t, path, "b")
	writeFile(t, path, "c")
	writeFile(t, path, "d")
	// Let the burst land before draining, so one poll sees all events.
	time.Sleep(300 * time.Millisecond)

	changed, err := w.poll()
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(changed) != 1 || changed[0] != path {
		t.Fatalf("expected one deduped entry for %s, got %v", path, changed)
	}
}

func TestWatcherIgnoresUnwatchedPaths(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.frag")
	other := filepath.Join(dir, "other.frag")
	writeFile(t, watched, "a")
	writeFile(t, other, "a")

	w, err := newFileWatcher()
	if err != nil {
		t.Fatalf("newFileWatcher: %v", err)
	}
	defer w.close()
	if err := w.watch(watched); err != nil {
		t.Fatalf("watch: %v", err)
	}

	writeFile(t, other, "b")
	if changed := pollUntil(t, w, 300*time.Millisecond); len(changed) != 0 {
		t.Fatalf("unwatched path reported: %v", changed)
	}
}

func TestWatchMissingPath(t *testing.T) {
	w, err := newFileWatcher()
	if err != nil {
		t.Fatalf("newFileWatcher: %v", err)
	}
	defer w.close()

	err = w.watch(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, errWatchAdd) {
		t.Fatalf("expected errWatchAdd, got %v", err)
	}
}

func TestWatcherTwoPaths(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "photo.png")
	sh := filepath.Join(dir, "red.kage")
	writeFile(t, img, "a")
	writeFile(t, sh, "a")

	w, err := newFileWatcher()
	if err != nil {
		t.Fatalf("newFileWatcher: %v", err)
	}
	defer w.close()
	if err := w.watch(img); err != nil {
		t.Fatalf("watch image: %v", err)
	}
	if err := w.watch(sh); err != nil {
		t.Fatalf("watch shader: %v", err)
	}

	writeFile(t, sh, "b")
	changed := pollUntil(t, w, 2*time.Second)
	if len(changed) != 1 || changed[0] != sh {
		t.Fatalf("expected shader change only, got %v", changed)
	}
}
