package event

import (
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// CuePayload names an audio cue
type CuePayload struct {
	Name string
}

// ParticleBurstPayload describes a cosmetic burst
type ParticleBurstPayload struct {
	Pos     vmath.Vec2
	Count   int
	Speed   float64
	Palette string
}

// EnemyKilledPayload describes a resolved death
type EnemyKilledPayload struct {
	ID         core.Entity
	Shape      component.Shape
	Tier       component.Tier
	Pos        vmath.Vec2
	Score      float64
	XP         float64
	Reanimated bool // corpse was converted
}

// LevelUpPayload carries the new level
type LevelUpPayload struct {
	Level    int
	XPNeeded float64
}

// WorldEventPayload names a director event
type WorldEventPayload struct {
	Kind component.WorldEvent
	At   time.Duration
}

// LegendaryPayload lists offered hex choices
type LegendaryPayload struct {
	Options []component.HexType
}

// RunEndedPayload carries the terminal cause
type RunEndedPayload struct {
	Cause    string
	Survived time.Duration
}
