package component

import (
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// Owner identifies which side a damage source belongs to
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
	OwnerAlly
)

// Channel classifies incoming damage for the reduction table
type Channel uint8

const (
	ChannelCollision Channel = iota
	ChannelProjectile
	ChannelArea
	ChannelLaser
	ChannelThorns
	ChannelDrain
	ChannelCount
)

func (c Channel) String() string {
	switch c {
	case ChannelCollision:
		return "collision"
	case ChannelProjectile:
		return "projectile"
	case ChannelArea:
		return "area"
	case ChannelLaser:
		return "laser"
	case ChannelThorns:
		return "thorns"
	case ChannelDrain:
		return "drain"
	default:
		return "unknown"
	}
}

// Bullet is a player or enemy projectile
type Bullet struct {
	Owner    Owner
	SourceID core.Entity
	Source   string // cause tag for the damage breakdown
	Channel  Channel

	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
	Damage float64
	Crit   bool

	// Pierce counts remaining extra hits, below zero the bullet is spent
	Pierce   int
	Lifetime int // ticks
	Hits     core.EntityList

	Orbiting    bool
	OrbitAngle  float64
	OrbitRadius float64
	OrbitSpeed  float64 // rad/s

	Bounces      int
	HomingTarget core.Entity
}

// Expired reports whether the bullet must be removed this tick
func (b *Bullet) Expired() bool {
	return b.Pierce < 0 || b.Lifetime <= 0
}

// HasHit reports whether id was already struck
func (b *Bullet) HasHit(id core.Entity) bool {
	return b.Hits.Contains(id)
}

// MarkHit records a strike and spends one pierce
func (b *Bullet) MarkHit(id core.Entity) {
	b.Hits = append(b.Hits, id)
	b.Pierce--
}
