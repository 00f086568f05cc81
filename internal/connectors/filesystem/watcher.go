// Package filesystem watches a local inbox directory for evidence files.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/legalmind/internal/logger"
)

// DefaultSettle is how long a file must stay unchanged before it is handled.
const DefaultSettle = 500 * time.Millisecond

// ignoredSuffixes mark partial downloads and editor temp files.
var ignoredSuffixes = []string{"~", ".tmp", ".part", ".crdownload", ".swp"}

// Handler processes one settled file.
type Handler func(ctx context.Context, path string) error

// Watcher reports files created or modified directly inside a directory.
// Subdirectories are not watched.
type Watcher struct {
	root    string
	handler Handler
	settle  time.Duration

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewWatcher creates a watcher for root. A zero settle uses DefaultSettle.
func NewWatcher(root string, settle time.Duration, handler Handler) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{
		root:    root,
		handler: handler,
		settle:  settle,
		pending: make(map[string]time.Time),
	}
}

// Scan handles every eligible file already present, in name order.
// It returns the number of files handled without error.
func (w *Watcher) Scan(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return 0, fmt.Errorf("read inbox %s: %w", w.root, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	handled := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return handled, ctx.Err()
		}
		path := filepath.Join(w.root, entry.Name())
		if !eligible(path) {
			continue
		}
		if w.dispatch(ctx, path) {
			handled++
		}
	}
	return handled, nil
}

// Run watches the directory until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.root); err != nil {
		return fmt.Errorf("watch %s: %w", w.root, err)
	}
	logger.Info("watching %s", w.root)

	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending[event.Name] = time.Now()
			w.mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("inbox watcher: %v", err)

		case <-ticker.C:
			for _, path := range w.settled() {
				if eligible(path) {
					w.dispatch(ctx, path)
				}
			}
		}
	}
}

// settled removes and returns pending paths untouched for the settle period.
func (w *Watcher) settled() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := time.Now().Add(-w.settle)
	var ready []string
	for path, last := range w.pending {
		if last.Before(cutoff) {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	sort.Strings(ready)
	return ready
}

func (w *Watcher) dispatch(ctx context.Context, path string) bool {
	if err := w.handler(ctx, path); err != nil {
		logger.Warn("handle %s: %v", path, err)
		return false
	}
	return true
}

// eligible reports whether path is a regular, visible, complete file.
func eligible(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	for _, suffix := range ignoredSuffixes {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
