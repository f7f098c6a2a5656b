package input

import "github.com/lixenwraith/resonance-arena/vmath"

// IntentType discriminates system-level actions outside movement and skills
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentPause
	IntentToggleMute
	IntentChoose // legendary selection, Choice holds the option index
	IntentResize
	IntentFocusLost   // terminal lost focus, the frame loop suspends
	IntentFocusGained // terminal regained focus
)

// MaxSkillSlots bounds skill edge slots per tick
const MaxSkillSlots = 4

// Intent is the per-tick debounced input vector consumed by the simulation
// Pure data struct with no engine dependencies
type Intent struct {
	Move   vmath.Vec2 // axes in [-1, 1], not normalized
	Skills [MaxSkillSlots]bool
	Held   [MaxSkillSlots]bool // hold state for channeled skills
	Type   IntentType
	Choice int
}

// Axis returns the movement direction clamped to unit length
func (i Intent) Axis() vmath.Vec2 {
	return i.Move.ClampLen(1)
}
