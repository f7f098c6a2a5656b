package component

import (
	"time"

	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// AreaKind discriminates area effect behavior
type AreaKind uint8

const (
	AreaDamageZone AreaKind = iota
	AreaChannelZone
	AreaGravityWell
	AreaDelayedStrike
	AreaDecal
)

func (k AreaKind) String() string {
	switch k {
	case AreaDamageZone:
		return "damage_zone"
	case AreaChannelZone:
		return "channel_zone"
	case AreaGravityWell:
		return "gravity_well"
	case AreaDelayedStrike:
		return "delayed_strike"
	case AreaDecal:
		return "decal"
	default:
		return "unknown"
	}
}

// AreaEffect is a stationary or player-anchored zone
type AreaEffect struct {
	Kind      AreaKind
	Owner     Owner
	SourceID  core.Entity
	Source    string
	Center    vmath.Vec2
	Radius    float64
	Remaining time.Duration

	// Damage is per pulse for zones, total for delayed strikes
	Damage        float64
	PulseInterval time.Duration
	PulseTimer    time.Duration

	// Strength is pull speed for gravity wells
	Strength float64

	// FollowPlayer re-anchors the center on the player every tick
	FollowPlayer bool

	Fired bool
}

// Expired reports whether on-expire behavior is due
func (a *AreaEffect) Expired() bool {
	return a.Remaining <= 0
}
