package system

import (
	"math"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// thinkAlly hunts the nearest hostile and rams it; with nothing in range it escorts the player
func thinkAlly(w *engine.World, e *component.Enemy, b *component.AllyBrain, dt time.Duration) vmath.Vec2 {
	if b.HitCooldown > 0 {
		b.HitCooldown -= dt
	}
	target := lookupAlive(w, b.TargetID)
	if target == nil || !target.Hostile() {
		target = nearestEnemy(w, e.Pos, parameter.FriendlySeekRange, func(o *component.Enemy) bool {
			return o.ID != e.ID && o.Hostile()
		})
		b.TargetID = core.None
		if target != nil {
			b.TargetID = target.ID
		}
	}
	if target == nil {
		if vmath.WithinRadius(e.Pos, w.Player.Pos, 80) {
			return vmath.Vec2{}
		}
		return chase(e, w.Player.Pos, e.Speed)
	}

	reach := e.Size + target.Size
	if b.HitCooldown <= 0 && vmath.WithinRadius(e.Pos, target.Pos, reach) {
		b.HitCooldown = parameter.FriendlyHitCooldown
		DamageEnemy(w, target, e.ContactDamage, component.ChannelCollision, "ally")
		// Ramming is mutual: a surviving hostile hits back with its own contact damage
		if target.Alive() {
			DamageEnemy(w, e, target.ContactDamage, component.ChannelCollision, causeTag(target))
		}
	}
	return chase(e, target.Pos, e.Speed)
}

// thinkWander drifts until provoked, then hands over to the shape's own brain
func thinkWander(w *engine.World, e *component.Enemy, b *component.WanderBrain, dt time.Duration) vmath.Vec2 {
	if e.Provoked {
		e.Brain = component.NewBrain(e.Shape, e.Unique)
		e.Speed /= parameter.NeutralSpeedMult
		return chase(e, w.Player.Pos, e.Speed)
	}
	sec := dt.Seconds()
	b.Heading += (w.Rng.Float64()*2 - 1) * parameter.NeutralWanderTurn * sec
	vel := vmath.FromAngle(b.Heading, e.Speed)
	if !w.Geometry.InBounds(e.Pos.Add(vel.Scale(sec * 10))) {
		b.Heading += math.Pi
		vel = vel.Scale(-1)
	}
	return vel
}
