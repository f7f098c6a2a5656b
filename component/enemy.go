package component

import (
	"time"

	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// Shape is the enemy silhouette and selects the base behavior family
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeTriangle
	ShapeSquare
	ShapeDiamond
	ShapePentagon
	ShapeMinion
	ShapeUnique
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	case ShapeSquare:
		return "square"
	case ShapeDiamond:
		return "diamond"
	case ShapePentagon:
		return "pentagon"
	case ShapeMinion:
		return "minion"
	case ShapeUnique:
		return "unique"
	default:
		return "unknown"
	}
}

// Tier is the escalation level of an enemy
type Tier uint8

const (
	TierNormal Tier = iota
	TierElite
	TierBoss
)

func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierElite:
		return "elite"
	case TierBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Role is a bitmask of ownership and allegiance flags
type Role uint8

const (
	RoleZombie Role = 1 << iota
	RoleFriendly
	RoleNeutral
	RoleLegion
	RoleSoulLinked
)

// Has reports whether all bits of f are set
func (r Role) Has(f Role) bool { return r&f == f }

// UniqueKind selects the behavior of ShapeUnique enemies
type UniqueKind uint8

const (
	UniqueNone UniqueKind = iota
	UniqueWarden
	UniqueWeaver
)

// Enemy holds the fields every enemy shares
// Behavior-specific scratch lives in Brain and Boss, reachable only through a type switch
type Enemy struct {
	ID     core.Entity
	Shape  Shape
	Tier   Tier
	Unique UniqueKind
	Roles  Role

	// BossTier is an explicit tier tag (1-3), zero derives it from elapsed time
	BossTier int

	Pos       vmath.Vec2
	Vel       vmath.Vec2
	Knockback vmath.Vec2

	HP    float64
	MaxHP float64
	Speed float64
	Size  float64

	// Defense
	Armor               float64
	TakenMultiplier     float64
	CollisionReduction  float64
	ProjectileReduction float64
	Shield              float64 // flat personal barrier, granted by boss shielding

	ContactDamage   float64
	ContactCooldown time.Duration

	Age        time.Duration
	Lifetime   time.Duration // non-zero for expiring units (friendly reanimations)
	Dead       bool
	Reanimated bool
	Provoked   bool
	Telegraph  bool   // blink flag for renderers, non-authoritative
	Palette    string // visual tag, non-authoritative

	// Ownership links, re-validated every tick through the store
	ParentID        core.Entity
	LegionID        uint32
	LegionLeadID    core.Entity
	SoulLinkHostID  core.Entity
	SoulLinkTargets core.EntityList

	Brain Brain
	Boss  *BossLayer
}

// Hostile reports whether the enemy attacks the player
func (e *Enemy) Hostile() bool {
	return !e.Roles.Has(RoleFriendly) && !(e.Roles.Has(RoleNeutral) && !e.Provoked)
}

// Alive reports whether the enemy still participates in gameplay
func (e *Enemy) Alive() bool {
	return e != nil && !e.Dead
}

// IsBoss reports boss tier
func (e *Enemy) IsBoss() bool { return e.Tier == TierBoss }

// IsElite reports elite tier
func (e *Enemy) IsElite() bool { return e.Tier == TierElite }
