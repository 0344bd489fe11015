package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/runestone-dev/runestone/internal/spec"
	"github.com/runestone-dev/runestone/internal/validator"
)

const (
	DefaultDebounceWindow = 300 * time.Millisecond
	defaultMaxBatch       = 64
)

// Watcher re-validates every spec file under a directory whenever one of
// them changes. Change bursts are debounced into a single run.
type Watcher struct {
	dir       string
	v         *validator.Validator
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	onRun     func(*validator.RunResult)

	mu      sync.Mutex
	pending sync.WaitGroup
}

// New builds a Watcher over dir. onRun receives the result of every
// validation run, including the initial one.
func New(dir string, strict bool, window time.Duration, onRun func(*validator.RunResult)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		dir:       dir,
		v:         validator.New(strict),
		fsWatcher: fsWatcher,
		onRun:     onRun,
	}
	w.debouncer = NewDebouncer(window, defaultMaxBatch, w.onFlush)

	if err := w.addRecursive(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	return w, nil
}

// addRecursive registers dir and every subdirectory with the fs watcher.
// Hidden directories are skipped.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

// Run validates the directory once, then blocks processing file events
// until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.runValidation()

	for {
		select {
		case <-ctx.Done():
			w.debouncer.Stop()
			w.pending.Wait()
			return w.fsWatcher.Close()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New subdirectories need to be watched before files land in them.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !strings.HasPrefix(filepath.Base(event.Name), ".") {
				w.addRecursive(event.Name)
			}
			return
		}
	}

	if filepath.Ext(event.Name) != spec.Extension {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.debouncer.Add(event.Name)
}

// onFlush runs one validation pass per debounced batch. The changed
// paths themselves do not matter; the whole directory is re-checked so
// cross-file state like the run summary stays consistent.
func (w *Watcher) onFlush(_ []string) {
	w.pending.Add(1)
	go func() {
		defer w.pending.Done()
		w.runValidation()
	}()
}

// runValidation is serialized so overlapping flushes cannot interleave
// their callbacks.
func (w *Watcher) runValidation() {
	w.mu.Lock()
	defer w.mu.Unlock()

	reports, err := w.v.ValidateDirectory(w.dir)
	if err != nil {
		return
	}
	if w.onRun != nil {
		w.onRun(validator.NewRunResult(reports))
	}
}
