package component

import "time"

// BossMechanic names a layered boss behavior
type BossMechanic uint8

const (
	MechanicNone BossMechanic = iota
	// Tier 2
	MechanicBerserk
	MechanicBarrage
	MechanicThorns
	MechanicBeam
	MechanicCharge
	// Tier 3
	MechanicPull
	MechanicDeflect
	MechanicShielding
	MechanicOrbital
	MechanicDrain
)

func (m BossMechanic) String() string {
	switch m {
	case MechanicBerserk:
		return "berserk"
	case MechanicBarrage:
		return "barrage"
	case MechanicThorns:
		return "thorns"
	case MechanicBeam:
		return "beam"
	case MechanicCharge:
		return "charge"
	case MechanicPull:
		return "pull"
	case MechanicDeflect:
		return "deflect"
	case MechanicShielding:
		return "shielding"
	case MechanicOrbital:
		return "orbital"
	case MechanicDrain:
		return "drain"
	default:
		return "none"
	}
}

// BossPhase is the cooldown-gated state of one layered mechanic
type BossPhase struct {
	Mechanic  BossMechanic
	Cooldown  time.Duration // counts down to next activation
	Remaining time.Duration // active time left, zero when idle
	Count     int           // sub-actions left (barrage dashes)
	Angle     float64       // locked heading for dash/charge/beam
	Hit       bool          // one hit per activation
}

// Active reports whether the mechanic is currently running
func (p *BossPhase) Active() bool { return p.Remaining > 0 }

// BossLayer holds tier 2 and tier 3 mechanics layered on the base brain
type BossLayer struct {
	Tier2 BossPhase
	Tier3 BossPhase
}

// BossMechanics returns the tier 2 and tier 3 mechanics for a shape
func BossMechanics(shape Shape) (BossMechanic, BossMechanic) {
	switch shape {
	case ShapeCircle:
		return MechanicBerserk, MechanicPull
	case ShapeTriangle:
		return MechanicBarrage, MechanicDeflect
	case ShapeSquare:
		return MechanicThorns, MechanicShielding
	case ShapeDiamond:
		return MechanicBeam, MechanicOrbital
	case ShapePentagon:
		return MechanicCharge, MechanicDrain
	default:
		return MechanicBerserk, MechanicShielding
	}
}

// NewBossLayer builds the layer for a shape with both cooldowns primed
func NewBossLayer(shape Shape, tier2Cooldown, tier3Cooldown time.Duration) *BossLayer {
	m2, m3 := BossMechanics(shape)
	return &BossLayer{
		Tier2: BossPhase{Mechanic: m2, Cooldown: tier2Cooldown},
		Tier3: BossPhase{Mechanic: m3, Cooldown: tier3Cooldown},
	}
}
