// Package preview decides when a metadata preview should be fetched while the
// user is still typing a URL.
package preview

import (
	"strings"
	"sync"
	"time"

	"TUI_yt_companion/internal/core/domain"
)

// DebounceDelay is the input inactivity required before a preview fetch.
const DebounceDelay = 500 * time.Millisecond

// Decision tells the caller what to do when a debounce timer fires.
type Decision int

const (
	// Ignore means a newer input superseded the timer.
	Ignore Decision = iota
	// Clear means the input is not a YouTube URL: drop preview and error.
	Clear
	// Fetch means the preview for URL should be requested now.
	Fetch
)

// Tracker hands out a generation tag for every input change. Only the timer
// carrying the latest tag may trigger a fetch, so a burst of keystrokes ends
// in at most one request.
type Tracker struct {
	mu    sync.Mutex
	tag   int
	input string
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Input records the new input value and returns the tag its timer must carry.
func (t *Tracker) Input(value string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tag++
	t.input = value
	return t.tag
}

// Fire is called when the timer for tag elapses.
func (t *Tracker) Fire(tag int) (Decision, string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tag != t.tag {
		return Ignore, ""
	}
	url := strings.TrimSpace(t.input)
	if url == "" || !domain.IsValidYouTubeURL(url) {
		return Clear, ""
	}
	return Fetch, url
}

// Current reports whether url is still what the user has typed. Responses for
// anything else are stale and must be discarded.
func (t *Tracker) Current(url string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(t.input) == url
}

// Reset forgets the input and invalidates any pending timer.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tag++
	t.input = ""
}
