package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher wraps fsnotify behind a non-blocking poll so the render loop
// can check for changes once per frame without ever stalling on the OS
// event queue.
type fileWatcher struct {
	fw      *fsnotify.Watcher
	watched map[string]bool
}

func newFileWatcher() (*fileWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errWatchInit, err)
	}
	return &fileWatcher{fw: fw, watched: make(map[string]bool)}, nil
}

// watch registers path for write notifications. The path must exist.
func (w *fileWatcher) watch(path string) error {
	if err := w.fw.Add(path); err != nil {
		return fmt.Errorf("%w %s: %v", errWatchAdd, path, err)
	}
	w.watched[path] = true
	return nil
}

// poll drains all pending events and returns the watched paths written to
// since the last call, deduped so a burst of writes yields one entry per
// path. It never blocks; a quiet watcher yields an empty set. Events for
// paths that were never registered and operations other than writes are
// ignored.
func (w *fileWatcher) poll() ([]string, error) {
	var changed []string
	seen := make(map[string]bool)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return changed, fmt.Errorf("%w: event channel closed", errFileEvent)
			}
			if !ev.Has(fsnotify.Write) {
				continue
			}
			if !w.watched[ev.Name] || seen[ev.Name] {
				continue
			}
			seen[ev.Name] = true
			changed = append(changed, ev.Name)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return changed, fmt.Errorf("%w: error channel closed", errFileEvent)
			}
			return changed, fmt.Errorf("%w: %v", errFileEvent, err)
		default:
			return changed, nil
		}
	}
}

func (w *fileWatcher) close() {
	if w.fw != nil {
		w.fw.Close()
	}
}
