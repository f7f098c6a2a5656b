package component

import (
	"time"

	"github.com/lixenwraith/resonance-arena/core"
)

// Brain is the per-variant AI scratch state of an enemy
// Each concrete type belongs to exactly one behavior family; AI code reaches it through a type switch
type Brain interface {
	BrainName() string
}

// ChaserBrain drives circles and zombies: direct pursuit
type ChaserBrain struct {
	// TrailTimer counts down to the next damage-zone drop (elite circle)
	TrailTimer time.Duration
}

func (*ChaserBrain) BrainName() string { return "chaser" }

// DashState is the triangle state machine phase
type DashState uint8

const (
	DashIdle DashState = iota
	DashActive
	DashGap
)

// DasherBrain drives triangles
type DasherBrain struct {
	State       DashState
	Timer       time.Duration // time spent idle, or remaining in dash/gap
	LockedAngle float64
	ChainLeft   int
}

func (*DasherBrain) BrainName() string { return "dasher" }

// BulwarkBrain drives squares
type BulwarkBrain struct {
	SlamTimer time.Duration
}

func (*BulwarkBrain) BrainName() string { return "bulwark" }

// SniperState is the diamond state machine phase
type SniperState uint8

const (
	SniperKite SniperState = iota
	SniperCharge
	SniperFire
	SniperCooldown
)

func (s SniperState) String() string {
	switch s {
	case SniperKite:
		return "kite"
	case SniperCharge:
		return "charge"
	case SniperFire:
		return "fire"
	case SniperCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// SniperBrain drives diamonds; normal diamonds only use Kite and FireTimer
type SniperBrain struct {
	State     SniperState
	Timer     time.Duration
	FireTimer time.Duration
	AimAngle  float64
	BeamHit   bool // one hit per burst
	Strafe    float64
}

func (*SniperBrain) BrainName() string { return "sniper" }

// HiveState is the pentagon state machine phase
type HiveState uint8

const (
	HivePassive HiveState = iota
	HiveTelegraph
	HiveReleasing
)

// HiveBrain drives pentagons
type HiveBrain struct {
	State        HiveState
	Timer        time.Duration
	Minions      core.EntityList
	ReleaseTimer time.Duration
	BlinkTimer   time.Duration
}

func (*HiveBrain) BrainName() string { return "hive" }

// MinionState is the minion state machine phase
type MinionState uint8

const (
	MinionOrbiting MinionState = iota
	MinionReleased
)

// MinionBrain drives hive minions
type MinionBrain struct {
	State MinionState
	Phase float64 // waver phase accumulator
}

func (*MinionBrain) BrainName() string { return "minion" }

// WardenBrain drives the legion lead
type WardenBrain struct {
	Assembled bool
}

func (*WardenBrain) BrainName() string { return "warden" }

// FormationBrain drives legion members
type FormationBrain struct {
	Slot    int
	InPlace bool
}

func (*FormationBrain) BrainName() string { return "formation" }

// WeaverBrain drives the soul web host
type WeaverBrain struct {
	Orbit float64
}

func (*WeaverBrain) BrainName() string { return "weaver" }

// AllyBrain drives friendly reanimated units
type AllyBrain struct {
	TargetID    core.Entity
	HitCooldown time.Duration
}

func (*AllyBrain) BrainName() string { return "ally" }

// WanderBrain drives neutral units until provoked
type WanderBrain struct {
	Heading float64
}

func (*WanderBrain) BrainName() string { return "wander" }

// NewBrain returns the default brain for a shape/tier/unique combination
func NewBrain(shape Shape, unique UniqueKind) Brain {
	switch shape {
	case ShapeTriangle:
		return &DasherBrain{}
	case ShapeSquare:
		return &BulwarkBrain{}
	case ShapeDiamond:
		return &SniperBrain{}
	case ShapePentagon:
		return &HiveBrain{}
	case ShapeMinion:
		return &MinionBrain{}
	case ShapeUnique:
		switch unique {
		case UniqueWarden:
			return &WardenBrain{}
		case UniqueWeaver:
			return &WeaverBrain{}
		}
	}
	return &ChaserBrain{}
}
