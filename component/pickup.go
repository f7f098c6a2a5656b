package component

import (
	"time"

	"github.com/lixenwraith/resonance-arena/vmath"
)

// PickupKind identifies collectible drops
type PickupKind uint8

const (
	PickupXP PickupKind = iota
	PickupHeal
	PickupMagnet
	PickupShard
)

// Pickup is a collectible lying in the arena
type Pickup struct {
	Kind      PickupKind
	Pos       vmath.Vec2
	Value     float64
	Age       time.Duration
	Attracted bool
	Collected bool
	Shard     *Shard
}

// Particle is cosmetic only and never read by gameplay
type Particle struct {
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Life    time.Duration
	Palette string
}
