package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackerCount(t *testing.T) {
	tracker := NewTracker(30 * time.Second)
	assert.Equal(t, 0, tracker.Count())

	tracker.Touch(1)
	tracker.Touch(2)
	tracker.Touch(1)
	assert.Equal(t, 2, tracker.Count())
}

func TestTrackerExpiry(t *testing.T) {
	tracker := NewTracker(30 * time.Second)

	now := time.Now()
	tracker.now = func() time.Time { return now }

	tracker.Touch(1)
	tracker.Touch(2)
	assert.Equal(t, 2, tracker.Count())

	// user 2 keeps polling, user 1 goes quiet
	now = now.Add(20 * time.Second)
	tracker.Touch(2)

	now = now.Add(15 * time.Second)
	assert.Equal(t, 1, tracker.Count())

	now = now.Add(time.Minute)
	assert.Equal(t, 0, tracker.Count())
}

func TestTrackerDefaultWindow(t *testing.T) {
	tracker := NewTracker(0)
	assert.Equal(t, DefaultWindow, tracker.window)
}
