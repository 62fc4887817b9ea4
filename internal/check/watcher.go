package check

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs the checker whenever markdown under the book's source
// directory changes. Rapid bursts of events (editor save, git checkout) are
// debounced into a single run.
type Watcher struct {
	root     string
	checker  *Checker
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onResult func(*Result)
}

// NewWatcher creates a watcher over the book rooted at path. onResult is
// invoked after every (re-)scan, including the initial one.
func NewWatcher(path string, onResult func(*Result)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve book path: %w", err)
	}

	return &Watcher{
		root:     absPath,
		checker:  &Checker{},
		watcher:  watcher,
		debounce: 500 * time.Millisecond,
		onResult: onResult,
	}, nil
}

// Run performs the initial scan and then blocks, re-scanning on markdown
// changes until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	src, err := sourceDir(w.root)
	if err != nil {
		return err
	}
	if err := w.addRecursive(src); err != nil {
		return err
	}

	slog.Info("Watching for markdown changes", "path", src)
	w.scan()

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			// Newly created directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				_ = w.addRecursive(event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			w.scan()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", "error", err)
		}
	}
}

func (w *Watcher) scan() {
	result, err := w.checker.CheckBook(w.root)
	if err != nil {
		slog.Error("Scan failed", "error", err)
		return
	}
	w.onResult(result)
}

// relevant filters events down to markdown files and directory creation.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	if strings.EqualFold(filepath.Ext(event.Name), ".md") {
		return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
			event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
	}
	return event.Op.Has(fsnotify.Create)
}

// addRecursive watches dir and every non-hidden subdirectory. Paths that are
// not directories are ignored.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}
