package engine

import (
	"sync"
	"time"
)

// TimeProvider is the wall clock read by the pausable clock
type TimeProvider interface {
	Now() time.Time
}

// TimeFunc adapts a plain function to TimeProvider
type TimeFunc func() time.Time

func (f TimeFunc) Now() time.Time { return f() }

// SystemTime reads time.Now, which carries the monotonic reading
var SystemTime TimeProvider = TimeFunc(time.Now)

// ManualClock only moves when advanced, for deterministic scheduler tests
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
