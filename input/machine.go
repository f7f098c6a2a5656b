package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// HoldWindow is how long a key counts as held after its last press or repeat
// Terminals report no key release, so holds are inferred from autorepeat
const HoldWindow = 150 * time.Millisecond

// Machine folds terminal key events into per-tick intents
// Feed runs on the input goroutine, Sample on the tick goroutine
type Machine struct {
	mu       sync.Mutex
	keyTable *KeyTable

	moveSeen  map[[2]int8]time.Time
	skillSeen [MaxSkillSlots]time.Time
	edges     [MaxSkillSlots]bool
	pending   []Intent // system intents, delivered one per Sample
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		moveSeen: make(map[[2]int8]time.Time),
	}
}

// Feed records one terminal event at time now
func (m *Machine) Feed(ev tcell.Event, now time.Time) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		m.mu.Lock()
		m.pending = append(m.pending, Intent{Type: IntentResize})
		m.mu.Unlock()
	case *tcell.EventFocus:
		in := Intent{Type: IntentFocusGained}
		if !e.Focused {
			in.Type = IntentFocusLost
		}
		m.mu.Lock()
		m.pending = append(m.pending, in)
		m.mu.Unlock()
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			m.PressRune(e.Rune(), now)
			return
		}
		m.PressKey(e.Key(), now)
	}
}

// PressRune records a printable key press
func (m *Machine) PressRune(r rune, now time.Time) {
	if entry, ok := m.keyTable.Runes[r]; ok {
		m.press(entry, now)
	}
}

// PressKey records a special key press
func (m *Machine) PressKey(k tcell.Key, now time.Time) {
	if entry, ok := m.keyTable.SpecialKeys[k]; ok {
		m.press(entry, now)
	}
}

func (m *Machine) press(entry KeyEntry, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch entry.Behavior {
	case BehaviorMove:
		m.moveSeen[entry.Dir] = now
	case BehaviorSkill:
		if entry.Slot < MaxSkillSlots {
			// Autorepeat inside the hold window is not a new edge
			if now.Sub(m.skillSeen[entry.Slot]) > HoldWindow {
				m.edges[entry.Slot] = true
			}
			m.skillSeen[entry.Slot] = now
		}
	case BehaviorSystem:
		m.pending = append(m.pending, Intent{Type: entry.IntentType, Choice: entry.Slot})
	}
}

// Sample returns the intent for one tick with at most one pending system intent
func (m *Machine) Sample(now time.Time) Intent {
	in := m.SampleTick(now)
	if sys, ok := m.NextSystem(); ok {
		in.Type = sys.Type
		in.Choice = sys.Choice
	}
	return in
}

// SampleTick returns movement and skill state for one tick and clears consumed edges
// System intents stay queued for NextSystem
func (m *Machine) SampleTick(now time.Time) Intent {
	m.mu.Lock()
	defer m.mu.Unlock()

	var in Intent
	for dir, seen := range m.moveSeen {
		if now.Sub(seen) > HoldWindow {
			delete(m.moveSeen, dir)
			continue
		}
		in.Move = in.Move.Add(vmath.V(float64(dir[0]), float64(dir[1])))
	}
	in.Move = vmath.V(vmath.Clamp(in.Move.X, -1, 1), vmath.Clamp(in.Move.Y, -1, 1))

	for i := range m.edges {
		in.Skills[i] = m.edges[i]
		in.Held[i] = !m.skillSeen[i].IsZero() && now.Sub(m.skillSeen[i]) <= HoldWindow
		m.edges[i] = false
	}
	return in
}

// NextSystem pops the oldest queued system intent
func (m *Machine) NextSystem() (Intent, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return Intent{}, false
	}
	in := m.pending[0]
	m.pending = m.pending[1:]
	return in, true
}
