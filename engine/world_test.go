package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/resonance-arena/event"
	"github.com/pixil98/go-testutil"
)

type recordingHandler struct {
	got []event.EventType
}

func (h *recordingHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventCue, event.EventLevelUp}
}

func (h *recordingHandler) HandleEvent(w *World, ev event.GameEvent) {
	h.got = append(h.got, ev.Type)
}

func TestWorldSystemOrder(t *testing.T) {
	w := NewWorld(WorldConfig{Seed: 1})
	var log []string
	w.AddSystem(&countingSystem{name: "loot", priority: 600, log: &log})
	w.AddSystem(&countingSystem{name: "director", priority: 100, log: &log})
	w.AddSystem(&countingSystem{name: "enemy", priority: 300, log: &log})

	w.Step(time.Millisecond)

	testutil.AssertEqual(t, "order", len(log), 3)
	testutil.AssertEqual(t, "first", log[0], "director")
	testutil.AssertEqual(t, "second", log[1], "enemy")
	testutil.AssertEqual(t, "third", log[2], "loot")
	testutil.AssertEqual(t, "tick", w.Tick, uint64(1))
}

func TestWorldEventDispatch(t *testing.T) {
	w := NewWorld(WorldConfig{Seed: 1})
	h := &recordingHandler{}
	w.AddHandler(h)

	w.Cue("hit")
	w.PushEvent(event.EventRunEnded, nil)
	w.PushEvent(event.EventLevelUp, &event.LevelUpPayload{Level: 2})
	w.Step(time.Millisecond)

	testutil.AssertEqual(t, "handled", len(h.got), 2)
	testutil.AssertEqual(t, "first", h.got[0], event.EventCue)
	testutil.AssertEqual(t, "pending", w.Events.Len(), 0)
}

func TestWorldStepFrozenOutsidePlaying(t *testing.T) {
	w := NewWorld(WorldConfig{Seed: 1})
	sys := &countingSystem{name: "s"}
	w.AddSystem(sys)
	w.Phase = PhaseEnded

	w.Step(time.Millisecond)
	testutil.AssertEqual(t, "calls", sys.calls, 0)
	testutil.AssertEqual(t, "tick", w.Tick, uint64(0))
}
