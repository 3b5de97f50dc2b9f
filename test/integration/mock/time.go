package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock. Once set, it keeps ticking from the chosen instant.
type Time struct {
	mu       sync.RWMutex
	anchor   time.Time
	anchored time.Time
}

func NewTime() *Time {
	now := time.Now()
	return &Time{
		anchor:   now,
		anchored: now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.anchor = currentTime
	t.anchored = time.Now()
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.anchor.Add(time.Since(t.anchored))
}
