package preview

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func TestTrackerOnlyLatestTagFires(t *testing.T) {
	tracker := NewTracker()

	first := tracker.Input("https://www.you")
	second := tracker.Input("https://www.youtube.com/watch?v=dQw")
	third := tracker.Input(validURL)

	decision, _ := tracker.Fire(first)
	assert.Equal(t, Ignore, decision)
	decision, _ = tracker.Fire(second)
	assert.Equal(t, Ignore, decision)

	decision, url := tracker.Fire(third)
	assert.Equal(t, Fetch, decision)
	assert.Equal(t, validURL, url)
}

func TestTrackerClearsForNonYouTubeInput(t *testing.T) {
	tracker := NewTracker()

	for _, input := range []string{"", "   ", "hello world", "https://vimeo.com/1234", "dQw4w9WgXcQ"} {
		tag := tracker.Input(input)
		decision, url := tracker.Fire(tag)
		assert.Equal(t, Clear, decision, input)
		assert.Empty(t, url)
	}
}

func TestTrackerTrimsInput(t *testing.T) {
	tracker := NewTracker()
	tag := tracker.Input("  " + validURL + "  ")

	decision, url := tracker.Fire(tag)
	assert.Equal(t, Fetch, decision)
	assert.Equal(t, validURL, url)
	assert.True(t, tracker.Current(validURL))
}

func TestTrackerCurrentDetectsStaleResponses(t *testing.T) {
	tracker := NewTracker()
	tracker.Input(validURL)
	assert.True(t, tracker.Current(validURL))

	tracker.Input("https://youtu.be/aaaaaaaaaaa")
	assert.False(t, tracker.Current(validURL))
}

func TestTrackerReset(t *testing.T) {
	tracker := NewTracker()
	tag := tracker.Input(validURL)
	tracker.Reset()

	decision, _ := tracker.Fire(tag)
	assert.Equal(t, Ignore, decision)
	assert.False(t, tracker.Current(validURL))
}

type recorder struct {
	mu      sync.Mutex
	fetches []string
	clears  int
}

func (r *recorder) fetch(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches = append(r.fetches, url)
}

func (r *recorder) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

func (r *recorder) snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.fetches...), r.clears
}

func TestDebouncerFiresOnceAfterBurst(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(50*time.Millisecond, rec.fetch, rec.clear)
	defer d.Stop()

	for i := 1; i <= len(validURL); i++ {
		d.Input(validURL[:i])
	}

	require.Eventually(t, func() bool {
		fetches, _ := rec.snapshot()
		return len(fetches) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(150 * time.Millisecond)
	fetches, clears := rec.snapshot()
	assert.Equal(t, []string{validURL}, fetches)
	assert.Zero(t, clears)
}

func TestDebouncerClearsInvalidInput(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(10*time.Millisecond, rec.fetch, rec.clear)
	defer d.Stop()

	d.Input("not a url")

	require.Eventually(t, func() bool {
		_, clears := rec.snapshot()
		return clears == 1
	}, time.Second, 5*time.Millisecond)

	fetches, _ := rec.snapshot()
	assert.Empty(t, fetches)
}

func TestDebouncerStopCancelsPendingFetch(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(30*time.Millisecond, rec.fetch, rec.clear)

	d.Input(validURL)
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	fetches, clears := rec.snapshot()
	assert.Empty(t, fetches)
	assert.Zero(t, clears)
}

func TestDebouncerWaitReturnsAfterCallback(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.fetch, rec.clear)
	defer d.Stop()

	d.Input("x")
	d.Input(validURL)
	d.Wait()

	fetches, clears := rec.snapshot()
	assert.Equal(t, []string{validURL}, fetches)
	assert.Zero(t, clears)
}

func TestDebouncerWaitAfterStop(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(time.Hour, rec.fetch, rec.clear)

	d.Input(validURL)
	d.Stop()
	d.Wait()

	fetches, _ := rec.snapshot()
	assert.Empty(t, fetches)
}
