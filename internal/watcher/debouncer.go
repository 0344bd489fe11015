package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of file change notifications into a single
// flush. Editors tend to produce several events per save; one validation
// run per burst is enough.
type Debouncer struct {
	window   time.Duration
	maxBatch int
	paths    map[string]struct{}
	mu       sync.Mutex
	timer    *time.Timer
	onFlush  func([]string)
	stopped  bool
}

func NewDebouncer(window time.Duration, maxBatch int, onFlush func([]string)) *Debouncer {
	return &Debouncer{
		window:   window,
		maxBatch: maxBatch,
		paths:    make(map[string]struct{}),
		onFlush:  onFlush,
	}
}

// Add records a changed path and arms the flush timer. When the batch
// reaches maxBatch the flush happens immediately.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.paths[path] = struct{}{}

	if len(d.paths) >= d.maxBatch {
		d.flushLocked()
		return
	}

	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if !d.stopped {
			d.flushLocked()
		} else {
			d.mu.Unlock()
		}
	})

	d.mu.Unlock()
}

// flushLocked is called with d.mu held and releases it before invoking
// the callback, so the callback may call back into the Debouncer.
func (d *Debouncer) flushLocked() {
	paths := make([]string, 0, len(d.paths))
	for path := range d.paths {
		paths = append(paths, path)
	}

	d.paths = make(map[string]struct{})

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.mu.Unlock()

	if len(paths) > 0 && d.onFlush != nil {
		d.onFlush(paths)
	}
}

// Stop flushes any pending batch and rejects further Adds.
func (d *Debouncer) Stop() {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if len(d.paths) > 0 {
		d.flushLocked()
	} else {
		d.mu.Unlock()
	}
}
