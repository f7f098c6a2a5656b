package system

import (
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// MechanicInterval is the cooldown between activations of a boss mechanic
func MechanicInterval(m component.BossMechanic) time.Duration {
	switch m {
	case component.MechanicBerserk:
		return parameter.BossBerserkInterval
	case component.MechanicBarrage:
		return parameter.BossBarrageInterval
	case component.MechanicThorns:
		return parameter.BossThornsInterval
	case component.MechanicBeam:
		return parameter.BossBeamInterval
	case component.MechanicCharge:
		return parameter.BossChargeInterval
	case component.MechanicPull:
		return parameter.BossPullInterval
	case component.MechanicDeflect:
		return parameter.BossDeflectInterval
	case component.MechanicShielding:
		return parameter.BossShieldInterval
	case component.MechanicOrbital:
		return parameter.BossOrbitalInterval
	case component.MechanicDrain:
		return parameter.BossDrainInterval
	default:
		return 10 * time.Second
	}
}

// BossTier returns the explicit tier tag, or the tier unlocked by elapsed time
func BossTier(w *engine.World, e *component.Enemy) int {
	if e.BossTier > 0 {
		return e.BossTier
	}
	switch {
	case w.Elapsed >= parameter.BossTier3After:
		return 3
	case w.Elapsed >= parameter.BossTier2After:
		return 2
	default:
		return 1
	}
}

// updateBoss layers tier mechanics over the base movement; tier 2 resolves before tier 3
func updateBoss(w *engine.World, e *component.Enemy, vel vmath.Vec2, dt time.Duration) vmath.Vec2 {
	tier := BossTier(w, e)
	if tier >= 2 {
		vel = runMechanic(w, e, &e.Boss.Tier2, vel, dt)
	}
	if tier >= 3 && !e.Dead {
		vel = runMechanic(w, e, &e.Boss.Tier3, vel, dt)
	}
	return vel
}

func isBossMechanicActive(e *component.Enemy, m component.BossMechanic) bool {
	if e.Boss == nil {
		return false
	}
	return (e.Boss.Tier2.Mechanic == m && e.Boss.Tier2.Active()) ||
		(e.Boss.Tier3.Mechanic == m && e.Boss.Tier3.Active())
}

func runMechanic(w *engine.World, e *component.Enemy, ph *component.BossPhase, vel vmath.Vec2, dt time.Duration) vmath.Vec2 {
	if ph.Active() {
		ph.Remaining -= dt
		vel = activeMechanic(w, e, ph, vel, dt)
		if ph.Remaining <= 0 {
			ph.Remaining = 0
			ph.Cooldown = MechanicInterval(ph.Mechanic)
		}
		return vel
	}
	ph.Cooldown -= dt
	if ph.Cooldown > 0 {
		return vel
	}
	activateMechanic(w, e, ph)
	if !ph.Active() {
		// Instant mechanics go straight back on cooldown
		ph.Cooldown = MechanicInterval(ph.Mechanic)
	}
	return vel
}

func activateMechanic(w *engine.World, e *component.Enemy, ph *component.BossPhase) {
	aim := w.Player.Pos.Sub(e.Pos).Angle()
	ph.Hit = false
	ph.Angle = aim
	switch ph.Mechanic {
	case component.MechanicBerserk:
		ph.Remaining = parameter.BossBerserkDuration
		w.Cue("boss_berserk")
	case component.MechanicBarrage:
		ph.Count = parameter.BossBarrageDashes
		ph.Remaining = time.Duration(ph.Count) * (parameter.BossTelegraph + parameter.TriangleDashDuration)
	case component.MechanicThorns:
		ph.Remaining = parameter.BossThornsDuration
		w.Cue("boss_thorns")
	case component.MechanicBeam:
		ph.Remaining = parameter.BossBeamCharge + parameter.BossBeamDuration
	case component.MechanicCharge:
		ph.Remaining = parameter.BossTelegraph + parameter.BossChargeDuration
	case component.MechanicPull:
		ph.Remaining = parameter.BossPullDuration
		w.Areas = append(w.Areas, &component.AreaEffect{
			Kind:      component.AreaGravityWell,
			Owner:     component.OwnerEnemy,
			SourceID:  e.ID,
			Source:    causeTag(e) + " pull",
			Center:    e.Pos,
			Radius:    parameter.BossPullRadius,
			Remaining: parameter.BossPullDuration,
			Strength:  parameter.BossPullStrength,
		})
		w.Cue("boss_pull")
	case component.MechanicDeflect:
		ph.Remaining = parameter.BossDeflectWindow
	case component.MechanicShielding:
		for _, ally := range enemiesWithin(w, e.Pos, parameter.BossShieldRadius, isHostile) {
			ally.Shield += parameter.BossShieldAmount
		}
		w.Cue("boss_shield")
	case component.MechanicOrbital:
		for i := 0; i < parameter.BossOrbitalStrikes; i++ {
			at := w.Player.Pos
			if i > 0 {
				at = at.Add(vmath.FromAngle(w.Rng.Angle(), w.Rng.Range(0, parameter.BossOrbitalSpread)))
			}
			w.Areas = append(w.Areas, &component.AreaEffect{
				Kind:      component.AreaDelayedStrike,
				Owner:     component.OwnerEnemy,
				SourceID:  e.ID,
				Source:    causeTag(e) + " orbital",
				Center:    at,
				Radius:    parameter.BossOrbitalRadius,
				Remaining: parameter.BossOrbitalDelay,
				Damage:    parameter.BossOrbitalDamage,
			})
		}
		w.Cue("boss_orbital")
	case component.MechanicDrain:
		ph.Remaining = parameter.BossDrainDuration
	}
}

// activeMechanic shapes velocity and applies per-tick effects of a running mechanic
func activeMechanic(w *engine.World, e *component.Enemy, ph *component.BossPhase, vel vmath.Vec2, dt time.Duration) vmath.Vec2 {
	switch ph.Mechanic {
	case component.MechanicBerserk:
		return vel.Scale(parameter.BossBerserkSpeedMul)

	case component.MechanicBarrage:
		per := parameter.BossTelegraph + parameter.TriangleDashDuration
		within := ph.Remaining % per
		if within > parameter.TriangleDashDuration {
			// Telegraph before each dash re-aims
			e.Telegraph = true
			ph.Angle = w.Player.Pos.Sub(e.Pos).Angle()
			return vmath.Vec2{}
		}
		return vmath.FromAngle(ph.Angle, e.Speed*parameter.TriangleDashSpeedMult)

	case component.MechanicCharge:
		if ph.Remaining > parameter.BossChargeDuration {
			e.Telegraph = true
			return vmath.Vec2{}
		}
		return vmath.FromAngle(ph.Angle, e.Speed*parameter.BossChargeSpeedMul)

	case component.MechanicBeam:
		if ph.Remaining > parameter.BossBeamDuration {
			e.Telegraph = true
			return vmath.Vec2{}
		}
		if !ph.Hit && beamHits(w, e.Pos, ph.Angle, parameter.BeamLength, parameter.BeamHalfWidth*1.5) {
			ph.Hit = true
			DamagePlayer(w, parameter.BossBeamDamage, component.ChannelLaser, causeTag(e)+" beam")
		}
		return vmath.Vec2{}

	case component.MechanicDrain:
		if vmath.WithinRadius(e.Pos, w.Player.Pos, parameter.BossDrainRange) {
			lost := DamagePlayer(w, parameter.BossDrainPerSecond*dt.Seconds(), component.ChannelDrain, causeTag(e)+" drain")
			e.HP = min(e.MaxHP, e.HP+lost)
		}
		return vel.Scale(0.5)

	case component.MechanicDeflect:
		e.Telegraph = true
		return vel
	}
	return vel
}
