package system

import (
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// thinkChaser is direct pursuit; elite circles drop a damaging trail
func thinkChaser(w *engine.World, e *component.Enemy, b *component.ChaserBrain, dt time.Duration) vmath.Vec2 {
	if e.IsElite() && e.Shape == component.ShapeCircle && e.Hostile() {
		b.TrailTimer -= dt
		if b.TrailTimer <= 0 {
			b.TrailTimer = parameter.EliteCircleTrailInterval
			w.Areas = append(w.Areas, &component.AreaEffect{
				Kind:          component.AreaDamageZone,
				Owner:         component.OwnerEnemy,
				SourceID:      e.ID,
				Source:        causeTag(e) + " trail",
				Center:        e.Pos,
				Radius:        parameter.EliteCircleTrailRadius,
				Remaining:     parameter.EliteCircleTrailDuration,
				Damage:        parameter.EliteCircleTrailDPS * parameter.AreaPulseInterval.Seconds(),
				PulseInterval: parameter.AreaPulseInterval,
			})
		}
	}
	return chase(e, w.Player.Pos, e.Speed)
}

// thinkDasher chases, and every interval dashes on a locked angle
// Elites chain several dashes with short gaps
func thinkDasher(w *engine.World, e *component.Enemy, b *component.DasherBrain, dt time.Duration) vmath.Vec2 {
	target := w.Player.Pos
	switch b.State {
	case component.DashActive:
		b.Timer -= dt
		vel := vmath.FromAngle(b.LockedAngle, e.Speed*parameter.TriangleDashSpeedMult)
		if b.Timer <= 0 {
			if b.ChainLeft > 0 {
				b.State = component.DashGap
				b.Timer = parameter.EliteTriangleChainGap
			} else {
				b.State = component.DashIdle
				b.Timer = 0
			}
		}
		return vel

	case component.DashGap:
		b.Timer -= dt
		e.Telegraph = true
		if b.Timer <= 0 {
			b.ChainLeft--
			b.State = component.DashActive
			b.Timer = parameter.TriangleDashDuration
			b.LockedAngle = target.Sub(e.Pos).Angle()
		}
		return vmath.Vec2{}

	default:
		b.State = component.DashIdle
		b.Timer += dt
		if b.Timer >= parameter.TriangleDashInterval {
			b.State = component.DashActive
			b.Timer = parameter.TriangleDashDuration
			b.LockedAngle = target.Sub(e.Pos).Angle()
			b.ChainLeft = 0
			if e.IsElite() {
				b.ChainLeft = parameter.EliteTriangleChain - 1
			}
		}
		return chase(e, target, e.Speed)
	}
}

// thinkBulwark is a slow chase; elite squares call delayed ground slams on the player
func thinkBulwark(w *engine.World, e *component.Enemy, b *component.BulwarkBrain, dt time.Duration) vmath.Vec2 {
	if e.IsElite() && e.Hostile() {
		b.SlamTimer += dt
		if b.SlamTimer >= parameter.EliteSquareSlamInterval {
			b.SlamTimer = 0
			w.Areas = append(w.Areas, &component.AreaEffect{
				Kind:      component.AreaDelayedStrike,
				Owner:     component.OwnerEnemy,
				SourceID:  e.ID,
				Source:    causeTag(e) + " slam",
				Center:    w.Player.Pos,
				Radius:    parameter.EliteSquareSlamRadius,
				Remaining: parameter.EliteSquareSlamDelay,
				Damage:    parameter.EliteSquareSlamDamage,
			})
			w.Cue("slam_warn")
		}
	}
	return chase(e, w.Player.Pos, e.Speed)
}
