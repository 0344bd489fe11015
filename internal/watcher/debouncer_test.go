package watcher

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type flushRecorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *flushRecorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *flushRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func (r *flushRecorder) last() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.batches) == 0 {
		return nil
	}
	return r.batches[len(r.batches)-1]
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &flushRecorder{}
	d := NewDebouncer(30*time.Millisecond, 100, rec.record)
	defer d.Stop()

	d.Add("a.rune")
	d.Add("b.rune")
	d.Add("a.rune")

	require.Eventually(t, func() bool { return rec.count() == 1 },
		time.Second, 5*time.Millisecond)

	// Duplicate paths collapse into one entry.
	assert.Len(t, rec.last(), 2)
}

func TestDebouncerMaxBatchFlushesImmediately(t *testing.T) {
	rec := &flushRecorder{}
	d := NewDebouncer(time.Hour, 2, rec.record)
	defer d.Stop()

	d.Add("a.rune")
	assert.Equal(t, 0, rec.count())
	d.Add("b.rune")
	assert.Equal(t, 1, rec.count())
}

func TestDebouncerStopFlushesPending(t *testing.T) {
	rec := &flushRecorder{}
	d := NewDebouncer(time.Hour, 100, rec.record)

	d.Add("a.rune")
	d.Stop()

	assert.Equal(t, 1, rec.count())

	// Adds after Stop are dropped.
	d.Add("b.rune")
	assert.Equal(t, 1, rec.count())
}

func TestDebouncerStopIdempotent(t *testing.T) {
	d := NewDebouncer(time.Hour, 100, nil)
	d.Stop()
	d.Stop()
}
