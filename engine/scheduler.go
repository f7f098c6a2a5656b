package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/resonance-arena/input"
	"github.com/lixenwraith/resonance-arena/parameter"
)

// TickSource identifies who requests simulation time
type TickSource uint8

const (
	SourcePrimary    TickSource = iota // presentation frame loop
	SourceBackground                   // fallback timer while the frame loop is suspended
)

func (s TickSource) String() string {
	if s == SourceBackground {
		return "background"
	}
	return "primary"
}

// Scheduler converts elapsed game time into fixed ticks
// Only the active source advances the simulation; the other is ignored
// Backlog beyond the catch-up window is dropped, pause freezes accumulation,
// and resume waits out a grace period during which only the settle hook runs
type Scheduler struct {
	mu sync.Mutex

	world    *World
	clock    *PausableClock
	interval time.Duration
	maxTicks int
	grace    time.Duration

	source      TickSource
	accumulator time.Duration
	lastSample  time.Duration
	graceActive bool

	// settle runs with real elapsed time while ticks are held back by grace
	settle func(dt time.Duration)
	// intent is sampled once per tick, before the systems run
	intent func() input.Intent

	statTicks   *atomic.Int64
	statDropped *atomic.Int64
	statSource  *atomic.Int64
}

// NewScheduler creates a scheduler driving world from clock
func NewScheduler(world *World, clock *PausableClock) *Scheduler {
	return &Scheduler{
		world:       world,
		clock:       clock,
		interval:    parameter.TickInterval,
		maxTicks:    parameter.MaxCatchUpTicks,
		grace:       parameter.UnpauseGrace,
		lastSample:  clock.Elapsed(),
		statTicks:   world.Status.Ints.Get("scheduler.ticks"),
		statDropped: world.Status.Ints.Get("scheduler.dropped"),
		statSource:  world.Status.Ints.Get("scheduler.source"),
	}
}

// SetSettleHook installs the cosmetic hook run during the unpause grace
func (s *Scheduler) SetSettleHook(fn func(dt time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settle = fn
}

// SetIntentSource installs the per-tick input sampler
func (s *Scheduler) SetIntentSource(fn func() input.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intent = fn
}

// SetSource hands simulation ownership to src
func (s *Scheduler) SetSource(src TickSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = src
	s.statSource.Store(int64(src))
}

// Source returns the active tick source
func (s *Scheduler) Source() TickSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Pause freezes accumulation; no partial tick survives
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.Pause()
	s.accumulator = 0
}

// Resume restarts the clock behind the grace delay
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.clock.IsPaused() {
		return
	}
	s.clock.Resume()
	s.lastSample = s.clock.Elapsed()
	s.accumulator = 0
	s.graceActive = true
}

// Paused reports clock pause state
func (s *Scheduler) Paused() bool {
	return s.clock.IsPaused()
}

// Advance samples the clock on behalf of src and runs due ticks
// Returns the number of ticks executed
func (s *Scheduler) Advance(src TickSource) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src != s.source {
		return 0
	}

	now := s.clock.Elapsed()
	elapsed := now - s.lastSample
	s.lastSample = now

	if s.clock.IsPaused() {
		return 0
	}
	if s.world.Phase != PhasePlaying {
		s.clock.Pause()
		s.accumulator = 0
		return 0
	}

	if s.graceActive {
		if since := s.clock.SinceResume(); since >= 0 && since < s.grace {
			if s.settle != nil && elapsed > 0 {
				s.settle(elapsed)
			}
			return 0
		}
		s.graceActive = false
		// Time spent in grace is not simulated
		return 0
	}

	if elapsed <= 0 {
		return 0
	}
	s.accumulator += elapsed

	due := int(s.accumulator / s.interval)
	if due > s.maxTicks {
		s.statDropped.Add(int64(due - s.maxTicks))
		due = s.maxTicks
		s.accumulator = 0
	} else {
		s.accumulator -= time.Duration(due) * s.interval
	}

	ran := 0
	for ran < due {
		if s.intent != nil {
			in := s.intent()
			s.world.RunSafe(func() {
				s.world.Intent = in
				s.world.StepLocked(s.interval)
			})
		} else {
			s.world.Step(s.interval)
		}
		ran++
		if s.world.Phase != PhasePlaying {
			s.clock.Pause()
			s.accumulator = 0
			break
		}
	}
	s.statTicks.Add(int64(ran))
	return ran
}

// Run drives the scheduler from both sources until ctx ends
// onFrame runs on every frame tick, also while the primary source is suspended
func (s *Scheduler) Run(ctx context.Context, onFrame func()) {
	frame := time.NewTicker(parameter.FrameInterval)
	defer frame.Stop()
	background := time.NewTicker(parameter.BackgroundInterval)
	defer background.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-frame.C:
			s.Advance(SourcePrimary)
			if onFrame != nil {
				onFrame()
			}
		case <-background.C:
			s.Advance(SourceBackground)
		}
	}
}
