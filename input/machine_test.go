package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/resonance-arena/vmath"
)

func TestMachineMovementHold(t *testing.T) {
	m := NewMachine()
	start := time.Unix(0, 0)

	m.PressRune('d', start)
	m.PressRune('w', start)

	in := m.Sample(start.Add(10 * time.Millisecond))
	if in.Move != vmath.V(1, -1) {
		t.Fatalf("Move = %v, want (1,-1)", in.Move)
	}
	if l := in.Axis().Len(); l > 1.0000001 {
		t.Errorf("Axis length = %f, want <= 1", l)
	}

	in = m.Sample(start.Add(HoldWindow + time.Millisecond))
	if !in.Move.IsZero() {
		t.Errorf("Move after hold window = %v, want zero", in.Move)
	}
}

func TestMachineSkillEdgeDebounce(t *testing.T) {
	m := NewMachine()
	start := time.Unix(0, 0)

	m.PressRune('1', start)
	in := m.Sample(start)
	if !in.Skills[0] {
		t.Fatal("first press should produce an edge")
	}

	// Autorepeat within the window holds but does not re-trigger
	m.PressRune('1', start.Add(50*time.Millisecond))
	in = m.Sample(start.Add(60 * time.Millisecond))
	if in.Skills[0] {
		t.Error("autorepeat should not produce a new edge")
	}
	if !in.Held[0] {
		t.Error("autorepeat should keep the skill held")
	}

	m.PressRune('1', start.Add(time.Second))
	in = m.Sample(start.Add(time.Second))
	if !in.Skills[0] {
		t.Error("press after release should produce an edge")
	}
}

func TestMachineSystemIntentsQueue(t *testing.T) {
	m := NewMachine()
	now := time.Unix(0, 0)

	m.PressKey(tcell.KeyEscape, now)
	m.PressRune('x', now)

	if in := m.Sample(now); in.Type != IntentPause {
		t.Errorf("first intent = %v, want pause", in.Type)
	}
	in := m.Sample(now)
	if in.Type != IntentChoose || in.Choice != 1 {
		t.Errorf("second intent = %v/%d, want choose/1", in.Type, in.Choice)
	}
	if in := m.Sample(now); in.Type != IntentNone {
		t.Errorf("third intent = %v, want none", in.Type)
	}
}

func TestMachineTickSamplingKeepsSystemQueue(t *testing.T) {
	m := NewMachine()
	now := time.Unix(0, 0)

	m.PressKey(tcell.KeyCtrlQ, now)
	m.PressRune('d', now)

	in := m.SampleTick(now)
	if in.Type != IntentNone {
		t.Errorf("tick sample carried system intent %v", in.Type)
	}
	if in.Move.X != 1 {
		t.Errorf("move x = %v, want 1", in.Move.X)
	}

	sys, ok := m.NextSystem()
	if !ok || sys.Type != IntentQuit {
		t.Errorf("next system = %v/%v, want quit", sys.Type, ok)
	}
	if _, ok := m.NextSystem(); ok {
		t.Error("queue should be empty")
	}
}

func TestMachineFocusEvents(t *testing.T) {
	m := NewMachine()
	now := time.Unix(0, 0)

	m.Feed(tcell.NewEventFocus(false), now)
	m.Feed(tcell.NewEventFocus(true), now)

	for _, want := range []IntentType{IntentFocusLost, IntentFocusGained} {
		in, ok := m.NextSystem()
		if !ok || in.Type != want {
			t.Errorf("next system = %v/%v, want %v", in.Type, ok, want)
		}
	}
}
