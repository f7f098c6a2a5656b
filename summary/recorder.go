package summary

import (
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
)

// Recorder builds the summary when the run ends and hands it off without blocking the tick
type Recorder struct {
	Seed uint64
	out  chan *RunSummary
}

func NewRecorder(seed uint64) *Recorder {
	return &Recorder{Seed: seed, out: make(chan *RunSummary, 1)}
}

// Summaries delivers one summary per finished run
func (r *Recorder) Summaries() <-chan *RunSummary { return r.out }

func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventRunEnded}
}

func (r *Recorder) HandleEvent(w *engine.World, ev event.GameEvent) {
	s := Build(w)
	s.Seed = r.Seed
	if p, ok := ev.Payload.(*event.RunEndedPayload); ok && s.Cause == "" {
		s.Cause = p.Cause
		s.describe(w.Log)
	}
	select {
	case r.out <- s:
	default:
		w.Log.WithField("run", s.ID).Warn("summary dropped, previous run not consumed")
	}
}
