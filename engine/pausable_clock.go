package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that freezes while paused
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startTime time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
	resumedAt   time.Time // zero until the first resume
}

// NewPausableClock creates a running clock over the given provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = SystemTime
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns game time since start, excluding paused spans
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Sub(pc.startTime) - pc.totalPaused
	}
	return pc.provider.Now().Sub(pc.startTime) - pc.totalPaused
}

// Pause stops game time advancement, idempotent
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues game time advancement, idempotent
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	now := pc.provider.Now()
	pc.totalPaused += now.Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
	pc.resumedAt = now
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// SinceResume returns real time since the last resume, -1 if never resumed
func (pc *PausableClock) SinceResume() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	if pc.resumedAt.IsZero() {
		return -1
	}
	return pc.provider.Now().Sub(pc.resumedAt)
}
