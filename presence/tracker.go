package presence

import (
	"sync"
	"time"
)

const DefaultWindow = 30 * time.Second

// Tracker remembers when each user was last seen on an authenticated
// request. A user counts as online while inside the window; the count is
// what the 10s user-count poll reads.
type Tracker struct {
	mu       sync.Mutex
	lastSeen map[uint]time.Time
	window   time.Duration
	now      func() time.Time
}

func NewTracker(window time.Duration) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{
		lastSeen: make(map[uint]time.Time),
		window:   window,
		now:      time.Now,
	}
}

func (t *Tracker) Touch(userID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen[userID] = t.now()
}

// Count prunes stale entries while counting so the map never grows past
// the set of recently seen users.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-t.window)
	count := 0
	for id, seen := range t.lastSeen {
		if seen.Before(cutoff) {
			delete(t.lastSeen, id)
			continue
		}
		count++
	}
	return count
}
