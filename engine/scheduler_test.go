package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/resonance-arena/input"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

type countingSystem struct {
	name     string
	priority int
	calls    int
	log      *[]string
}

func (s *countingSystem) Name() string  { return s.name }
func (s *countingSystem) Priority() int { return s.priority }
func (s *countingSystem) Update(w *World, dt time.Duration) {
	s.calls++
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

func newTestScheduler(t *testing.T) (*Scheduler, *ManualClock, *countingSystem) {
	t.Helper()
	mock := NewManualClock(time.Unix(0, 0))
	clock := NewPausableClock(mock)
	w := NewWorld(WorldConfig{Seed: 1})
	sys := &countingSystem{name: "count"}
	w.AddSystem(sys)
	return NewScheduler(w, clock), mock, sys
}

func TestSchedulerFixedStep(t *testing.T) {
	s, mock, sys := newTestScheduler(t)

	mock.Advance(parameter.TickInterval*3 + parameter.TickInterval/2)
	if ran := s.Advance(SourcePrimary); ran != 3 {
		t.Fatalf("ran %d ticks, want 3", ran)
	}

	// Leftover half tick completes with the next half
	mock.Advance(parameter.TickInterval / 2)
	if ran := s.Advance(SourcePrimary); ran != 1 {
		t.Fatalf("ran %d ticks, want 1", ran)
	}
	if sys.calls != 4 {
		t.Errorf("system updated %d times, want 4", sys.calls)
	}
}

func TestSchedulerCatchUpWatchdog(t *testing.T) {
	s, mock, sys := newTestScheduler(t)

	mock.Advance(parameter.TickInterval * 500)
	if ran := s.Advance(SourcePrimary); ran != parameter.MaxCatchUpTicks {
		t.Fatalf("ran %d ticks, want %d", ran, parameter.MaxCatchUpTicks)
	}

	// Dropped backlog is not replayed
	if ran := s.Advance(SourcePrimary); ran != 0 {
		t.Errorf("ran %d ticks after drop, want 0", ran)
	}
	if sys.calls != parameter.MaxCatchUpTicks {
		t.Errorf("calls = %d", sys.calls)
	}
}

func TestSchedulerSourceExclusion(t *testing.T) {
	s, mock, _ := newTestScheduler(t)

	mock.Advance(parameter.TickInterval * 2)
	if ran := s.Advance(SourceBackground); ran != 0 {
		t.Fatalf("inactive source ran %d ticks", ran)
	}

	s.SetSource(SourceBackground)
	mock.Advance(parameter.TickInterval * 2)
	if ran := s.Advance(SourcePrimary); ran != 0 {
		t.Errorf("suspended primary ran %d ticks", ran)
	}
	mock.Advance(parameter.TickInterval * 2)
	if ran := s.Advance(SourceBackground); ran == 0 {
		t.Error("active background source should tick")
	}
}

func TestSchedulerBackgroundHandoff(t *testing.T) {
	s, mock, sys := newTestScheduler(t)

	// Frame loop suspended: only the background timer advances
	s.SetSource(SourceBackground)
	background := 0
	for i := 0; i < 10; i++ {
		mock.Advance(parameter.BackgroundInterval)
		if ran := s.Advance(SourcePrimary); ran != 0 {
			t.Fatalf("suspended primary ran %d ticks", ran)
		}
		background += s.Advance(SourceBackground)
	}
	want := int(10 * parameter.BackgroundInterval / parameter.TickInterval)
	if background != want {
		t.Errorf("background ran %d ticks over 1s, want %d", background, want)
	}

	// Focus back: primary resumes from where background left off
	s.SetSource(SourcePrimary)
	mock.Advance(parameter.TickInterval * 2)
	if ran := s.Advance(SourceBackground); ran != 0 {
		t.Errorf("background ran %d ticks after handoff", ran)
	}
	if ran := s.Advance(SourcePrimary); ran != 2 {
		t.Errorf("primary ran %d ticks, want 2", ran)
	}
	if sys.calls != want+2 {
		t.Errorf("calls = %d, want %d", sys.calls, want+2)
	}
}

func TestSchedulerPauseAndGrace(t *testing.T) {
	s, mock, sys := newTestScheduler(t)

	settled := 0
	s.SetSettleHook(func(dt time.Duration) { settled++ })

	s.Pause()
	mock.Advance(time.Second)
	if ran := s.Advance(SourcePrimary); ran != 0 {
		t.Fatalf("paused scheduler ran %d ticks", ran)
	}

	s.Resume()
	mock.Advance(parameter.UnpauseGrace / 2)
	if ran := s.Advance(SourcePrimary); ran != 0 {
		t.Fatalf("ran %d ticks inside grace", ran)
	}
	if settled != 1 {
		t.Errorf("settle hook ran %d times, want 1", settled)
	}

	mock.Advance(parameter.UnpauseGrace)
	s.Advance(SourcePrimary) // grace expires, elapsed grace time discarded
	if sys.calls != 0 {
		t.Fatalf("grace time was simulated: %d calls", sys.calls)
	}

	mock.Advance(parameter.TickInterval * 2)
	if ran := s.Advance(SourcePrimary); ran != 2 {
		t.Errorf("ran %d ticks after grace, want 2", ran)
	}
}

func TestSchedulerFreezesOnPhaseChange(t *testing.T) {
	s, mock, sys := newTestScheduler(t)
	s.world.Phase = PhaseLegendary

	mock.Advance(parameter.TickInterval * 5)
	if ran := s.Advance(SourcePrimary); ran != 0 {
		t.Fatalf("ran %d ticks during legendary selection", ran)
	}
	if !s.Paused() {
		t.Error("scheduler should pause itself outside the playing phase")
	}
	if sys.calls != 0 {
		t.Errorf("calls = %d", sys.calls)
	}
}

type intentProbe struct {
	seen []float64
}

func (p *intentProbe) Name() string  { return "probe" }
func (p *intentProbe) Priority() int { return 0 }
func (p *intentProbe) Update(w *World, dt time.Duration) {
	p.seen = append(p.seen, w.Intent.Move.X)
}

func TestSchedulerSamplesIntentPerTick(t *testing.T) {
	s, mock, _ := newTestScheduler(t)
	probe := &intentProbe{}
	s.world.AddSystem(probe)

	samples := 0
	s.SetIntentSource(func() input.Intent {
		samples++
		return input.Intent{Move: vmath.V(float64(samples), 0)}
	})

	mock.Advance(parameter.TickInterval * 3)
	if ran := s.Advance(SourcePrimary); ran != 3 {
		t.Fatalf("ran %d ticks, want 3", ran)
	}
	if samples != 3 {
		t.Fatalf("sampled %d intents, want 3", samples)
	}
	for i, x := range probe.seen {
		if x != float64(i+1) {
			t.Errorf("tick %d saw move %v, want %d", i, x, i+1)
		}
	}
}
