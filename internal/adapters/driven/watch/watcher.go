// Package watch reports changes to a single file using fsnotify.
//
// The parent directory is watched rather than the file itself so that
// editors and exporters that replace the file through a rename keep
// being observed.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/relnote/internal/logger"
)

// DefaultDebounce is the quiet period after the last event before a
// change is reported.
const DefaultDebounce = 300 * time.Millisecond

// FileWatcher reports changes to one file.
type FileWatcher struct {
	path     string
	base     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a watcher for path. A debounce of zero or less uses
// DefaultDebounce.
func New(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{
		path:     abs,
		base:     filepath.Base(abs),
		debounce: debounce,
		watcher:  w,
	}, nil
}

// Path returns the absolute path of the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Watch emits the file path once per burst of changes. The channel is
// closed when ctx is cancelled or the watcher is closed.
func (w *FileWatcher) Watch(ctx context.Context) <-chan string {
	changes := make(chan string, 1)

	go func() {
		defer close(changes)

		timer := time.NewTimer(w.debounce)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if w.handleEvent(event) {
					timer.Reset(w.debounce)
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch %s: %v", w.path, err)
			case <-timer.C:
				select {
				case changes <- w.path:
				default:
					// A change is already pending.
				}
			}
		}
	}()

	return changes
}

// handleEvent reports whether an event concerns the watched file and
// means new content is available.
func (w *FileWatcher) handleEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.base {
		return false
	}
	if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
		logger.Debug("watch: %s %s", event.Op, event.Name)
		return true
	}
	return false
}

// Close stops watching.
func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}
