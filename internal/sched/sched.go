// Package sched runs the periodic gate evaluation in interval mode. Event
// mode needs no scheduler; the host triggers ticks directly on save and
// focus events.
package sched

import (
	"sync"
	"time"
)

// Handle controls a running repeating job.
type Handle struct {
	mu      sync.Mutex
	stop    chan struct{}
	stopped bool
}

// Stop cancels the job. A tick already in flight finishes; no further ticks
// fire. Stop is idempotent.
func (h *Handle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	close(h.stop)
}

// Stopped reports whether Stop has been called.
func (h *Handle) Stopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

// Every starts a goroutine that calls fn once per interval until the returned
// handle is stopped. The first call fires one interval after Every returns,
// not immediately. The timer is re-armed only after fn returns, so a slow fn
// never stacks concurrent runs.
func Every(interval time.Duration, fn func()) *Handle {
	h := &Handle{stop: make(chan struct{})}

	go func() {
		t := time.NewTimer(interval)
		defer t.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-t.C:
				fn()
				t.Reset(interval)
			}
		}
	}()

	return h
}
