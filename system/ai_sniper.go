package system

import (
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// kite holds the preferred range, strafing inside the band
// A strafe that would leave the arena flips direction
func kite(w *engine.World, e *component.Enemy, b *component.SniperBrain, dt time.Duration) vmath.Vec2 {
	toPlayer := w.Player.Pos.Sub(e.Pos)
	dist := toPlayer.Len()
	dir := toPlayer.Normalize()

	var vel vmath.Vec2
	switch {
	case dist < parameter.DiamondPreferredRange-parameter.DiamondRangeSlack:
		vel = dir.Scale(-e.Speed)
	case dist > parameter.DiamondPreferredRange+parameter.DiamondRangeSlack:
		vel = dir.Scale(e.Speed)
	default:
		if b.Strafe == 0 {
			b.Strafe = 1
		}
		vel = dir.Perp().Scale(e.Speed * 0.6 * b.Strafe)
	}

	if !w.Geometry.InBounds(e.Pos.Add(vel.Scale(dt.Seconds() * 10))) {
		b.Strafe = -b.Strafe
		vel = dir.Perp().Scale(e.Speed * 0.6 * b.Strafe).Add(dir.Scale(e.Speed * 0.4))
	}
	return vel
}

// thinkSniper kites and shoots; elites run charge, beam and cooldown instead
func thinkSniper(w *engine.World, e *component.Enemy, b *component.SniperBrain, dt time.Duration) vmath.Vec2 {
	if !e.Hostile() {
		b.State = component.SniperKite
		return kite(w, e, b, dt)
	}
	if !e.IsElite() {
		b.FireTimer -= dt
		if b.FireTimer <= 0 {
			b.FireTimer = parameter.DiamondFireInterval
			angle := w.Player.Pos.Sub(e.Pos).Angle()
			fireEnemyBullet(w, e, angle, parameter.DiamondBulletSpeed, parameter.DiamondBulletDamage, parameter.DiamondBulletLifetime)
		}
		return kite(w, e, b, dt)
	}

	switch b.State {
	case component.SniperCharge:
		e.Telegraph = true
		b.Timer -= dt
		if b.Timer <= 0 {
			b.State = component.SniperFire
			b.Timer = parameter.EliteDiamondBeamDuration
			b.BeamHit = false
			w.Cue("beam")
		}
		return vmath.Vec2{}

	case component.SniperFire:
		b.Timer -= dt
		if !b.BeamHit && beamHits(w, e.Pos, b.AimAngle, parameter.BeamLength, parameter.BeamHalfWidth) {
			b.BeamHit = true
			DamagePlayer(w, e.MaxHP*parameter.EliteBeamDamageFraction, component.ChannelLaser, causeTag(e)+" beam")
		}
		if b.Timer <= 0 {
			b.State = component.SniperCooldown
			b.Timer = parameter.EliteDiamondCooldown
		}
		return vmath.Vec2{}

	case component.SniperCooldown:
		b.Timer -= dt
		if b.Timer <= 0 {
			b.State = component.SniperKite
			b.FireTimer = parameter.DiamondFireInterval
		}
		return kite(w, e, b, dt)

	default:
		b.State = component.SniperKite
		b.FireTimer -= dt
		if b.FireTimer <= 0 {
			b.State = component.SniperCharge
			b.Timer = parameter.EliteDiamondChargeDuration
			b.AimAngle = w.Player.Pos.Sub(e.Pos).Angle()
		}
		return kite(w, e, b, dt)
	}
}

// beamHits tests the player against a beam segment from origin
func beamHits(w *engine.World, origin vmath.Vec2, angle, length, halfWidth float64) bool {
	end := origin.Add(vmath.FromAngle(angle, length))
	reach := halfWidth + parameter.PlayerRadius
	return pointSegmentDistSq(w.Player.Pos, origin, end) <= reach*reach
}
