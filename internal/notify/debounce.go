package notify

import "time"

// DefaultWindow is the minimum spacing between two delivered notifications.
const DefaultWindow = 500 * time.Millisecond

// Debounced wraps a sink with a sliding debounce window: a call is delivered
// only when at least the window has elapsed since the previous call, delivered
// or not. The timestamp advances on every call, so a steady stream of calls
// inside the window keeps suppressing delivery; the window slides relative to
// the latest call, not the latest delivery.
type Debounced struct {
	sink   Sink
	window time.Duration
	last   time.Time
	now    func() time.Time
}

// NewDebounced wraps sink with the given window. A zero or negative window
// disables debouncing.
func NewDebounced(sink Sink, window time.Duration) *Debounced {
	return &Debounced{
		sink:   sink,
		window: window,
		now:    time.Now,
	}
}

// Notify forwards to the wrapped sink unless the previous call was less than
// one window ago. The very first call always delivers.
func (d *Debounced) Notify(level Severity, message string) {
	now := d.now()
	deliver := d.last.IsZero() || now.Sub(d.last) >= d.window
	d.last = now
	if deliver {
		d.sink.Notify(level, message)
	}
}
