// Package watcher notices catalog file changes so the browser can
// reload without being restarted.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/catwalk-tui/catwalk/internal/debug"
	"github.com/catwalk-tui/catwalk/internal/loader"
)

// Watcher watches a catalog root for manifest changes.
type Watcher struct {
	root     string
	matches  func(name string) bool
	onChange func()
	debounce time.Duration
}

// New creates a watcher over root. matches decides which base names
// count as catalog files; onChange fires debounced after a change.
func New(root string, matches func(string) bool, onChange func()) *Watcher {
	return &Watcher{
		root:     root,
		matches:  matches,
		onChange: onChange,
		debounce: 300 * time.Millisecond,
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch blocks until the context is cancelled or the watcher fails.
// Directories created while watching are added on the fly, so new
// catalog files are picked up too.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := w.addRecursive(fsw, w.root); err != nil {
		return err
	}
	debug.Logf("Debug: watching %s for catalog changes\n", w.root)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !loader.ExcludeDir(filepath.Base(event.Name)) {
						_ = w.addRecursive(fsw, event.Name)
					}
					continue
				}
			}

			if !w.matches(filepath.Base(event.Name)) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			// Editors fire bursts of events per save.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				debug.Logf("Debug: catalog changed: %s\n", event.Name)
				w.onChange()
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			debug.Logf("Debug: watcher error: %v\n", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fsw.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && loader.ExcludeDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			debug.Logf("Debug: cannot watch %s: %v\n", path, err)
		}
		return nil
	})
}
