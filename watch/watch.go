// Package watch calls back when a storage file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long the watcher waits for writes to settle.
const DefaultDelay = 100 * time.Millisecond

// Watcher debounces filesystem events for one file.
type Watcher struct {
	path     string
	onChange func(context.Context) error
	delay    time.Duration
	logger   *slog.Logger
	fs       *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		w.delay = d
	}
}

// New starts watching the directory of path. The directory is watched rather
// than the file so atomic replacements, which swap the inode, keep firing.
// Events for sibling files sharing the file's name as a prefix, such as a
// SQLite write-ahead log, count as changes too.
func New(path string, onChange func(context.Context) error, opts ...Option) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		delay:    DefaultDelay,
		logger:   slog.Default().With("component", "watch"),
		fs:       fs,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run processes events until ctx is cancelled. onChange is never called
// concurrently with itself; an error from it is logged and watching goes on.
func (w *Watcher) Run(ctx context.Context) error {
	var debounce *time.Timer
	fire := make(chan struct{}, 1)

	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
		_ = w.fs.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("file event", "name", event.Name, "op", event.Op.String())

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.delay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if err := w.onChange(ctx); err != nil {
				w.logger.Warn("change handler failed", "error", err)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), filepath.Base(w.path))
}
