package preview

import (
	"sync"
	"time"
)

// Debouncer runs a callback once the input has been quiet for the configured
// delay. It is the timer half of Tracker for callers without an event loop
// of their own, such as the command line watch mode.
type Debouncer struct {
	tracker *Tracker
	delay   time.Duration
	onFetch func(url string)
	onClear func()

	mu    sync.Mutex
	timer *time.Timer
	// one count per scheduled timer, released when it is stopped or its
	// callback returns
	pending sync.WaitGroup
}

func NewDebouncer(delay time.Duration, onFetch func(url string), onClear func()) *Debouncer {
	return &Debouncer{
		tracker: NewTracker(),
		delay:   delay,
		onFetch: onFetch,
		onClear: onClear,
	}
}

// Tracker exposes the underlying tracker so callers can check staleness of
// responses that arrive after the fetch was triggered.
func (d *Debouncer) Tracker() *Tracker {
	return d.tracker
}

func (d *Debouncer) Input(value string) {
	tag := d.tracker.Input(value)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()

	d.pending.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.pending.Done()
		d.fire(tag)
	})
}

func (d *Debouncer) fire(tag int) {
	switch decision, url := d.tracker.Fire(tag); decision {
	case Fetch:
		if d.onFetch != nil {
			d.onFetch(url)
		}
	case Clear:
		if d.onClear != nil {
			d.onClear()
		}
	}
}

// Wait blocks until the last scheduled timer has fired and its callback
// returned, or it was stopped.
func (d *Debouncer) Wait() {
	d.pending.Wait()
}

// Stop cancels a pending timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.tracker.Reset()
}

func (d *Debouncer) stopLocked() {
	if d.timer == nil {
		return
	}
	if d.timer.Stop() {
		d.pending.Done()
	}
	d.timer = nil
}
