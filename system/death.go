package system

import (
	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/resonance"
)

// KillEnemy runs the death pipeline once per enemy
// Returns false when the enemy was already dead; a second call changes nothing
func KillEnemy(w *engine.World, e *component.Enemy) bool {
	if e == nil || e.Dead {
		return false
	}
	e.Dead = true
	e.HP = 0

	// Ownership links resolve first so dependants degrade this tick
	releaseMinions(w, e)
	unlinkSoulWeb(w, e)
	leaveLegion(w, e)

	if e.Roles.Has(component.RoleFriendly) {
		w.Burst(e.Pos, parameter.ParticleBurst/2, "ally")
		return true
	}

	score, xp := killReward(e)
	p := w.Player
	p.Score += score
	p.Kills++
	switch e.Tier {
	case component.TierElite:
		p.EliteKills++
	case component.TierBoss:
		p.BossKills++
	}
	GrantXP(w, xp)
	rollLoot(w, e)
	converted := reanimate(w, e)

	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		ID: e.ID, Shape: e.Shape, Tier: e.Tier, Pos: e.Pos,
		Score: score, XP: xp, Reanimated: converted,
	})
	w.Burst(e.Pos, parameter.ParticleBurst, e.Palette)

	if e.IsBoss() {
		w.Cue("boss_down")
		w.Log.WithField("shape", e.Shape.String()).WithField("elapsed", w.Elapsed.String()).Info("boss defeated")
		offerLegendary(w)
	} else {
		w.Cue("kill")
	}
	return true
}

// killReward returns score and base XP by tier and role
func killReward(e *component.Enemy) (score, xp float64) {
	switch {
	case e.IsBoss():
		score, xp = parameter.ScoreBoss, parameter.XPBoss
	case e.Shape == component.ShapeUnique:
		score, xp = parameter.ScoreUnique, parameter.XPUnique
	case e.IsElite():
		score, xp = parameter.ScoreElite, parameter.XPElite
	case e.Shape == component.ShapeMinion:
		score, xp = parameter.ScoreMinion, parameter.XPMinion
	default:
		score, xp = parameter.ScoreNormal, parameter.XPNormal
	}
	if e.Reanimated {
		score *= parameter.ScoreReanimatedMult
		xp *= parameter.ScoreReanimatedMult
	}
	return score, xp
}

// reanimate converts a corpse into a friendly or a zombie, never both
func reanimate(w *engine.World, e *component.Enemy) bool {
	if e.Reanimated || e.IsBoss() || e.Shape == component.ShapeMinion || e.Shape == component.ShapeUnique {
		return false
	}

	var role component.Role
	switch {
	case w.Rng.Chance(w.Player.Stat(component.StatReanimateChance)):
		role = component.RoleFriendly
	case w.Director.Is(component.WorldEventBloodMoon) && w.Rng.Chance(parameter.BloodMoonZombieChance):
		role = component.RoleZombie
	default:
		return false
	}

	r := &component.Enemy{
		Shape:           e.Shape,
		Tier:            e.Tier,
		Roles:           role,
		Pos:             e.Pos,
		MaxHP:           e.MaxHP,
		HP:              e.MaxHP * parameter.ReanimatedHPFraction,
		Speed:           e.Speed,
		Size:            e.Size,
		Armor:           e.Armor,
		TakenMultiplier: 1,
		ContactDamage:   e.ContactDamage,
		Reanimated:      true,
		Palette:         "zombie",
	}
	if role == component.RoleFriendly {
		r.Brain = &component.AllyBrain{}
		r.Lifetime = parameter.FriendlyLifetime
		r.ContactDamage = parameter.FriendlyContactDamage
		r.Palette = "ally"
	} else {
		r.Brain = &component.ChaserBrain{}
		r.Speed *= parameter.ZombieSpeedMult
	}
	w.Enemies.Spawn(r)
	w.Cue("reanimate")
	return true
}

// releaseMinions frees every orbiting minion of a dying hive this tick
func releaseMinions(w *engine.World, e *component.Enemy) {
	hive, ok := e.Brain.(*component.HiveBrain)
	if !ok {
		return
	}
	for _, id := range hive.Minions {
		m, ok := w.Enemies.Lookup(id)
		if !ok {
			continue
		}
		if mb, ok := m.Brain.(*component.MinionBrain); ok {
			mb.State = component.MinionReleased
		}
		m.ParentID = core.None
	}
	hive.Minions = hive.Minions[:0]
}

// unlinkSoulWeb clears links pointing at or from the dying enemy
func unlinkSoulWeb(w *engine.World, e *component.Enemy) {
	if len(e.SoulLinkTargets) > 0 {
		for _, id := range e.SoulLinkTargets {
			if peer, ok := w.Enemies.Lookup(id); ok {
				peer.Roles &^= component.RoleSoulLinked
				peer.SoulLinkHostID = core.None
			}
		}
		e.SoulLinkTargets = nil
		return
	}
	if !e.SoulLinkHostID.Valid() {
		return
	}
	if host, ok := w.Enemies.Lookup(e.SoulLinkHostID); ok {
		host.SoulLinkTargets = host.SoulLinkTargets.Remove(e.ID)
	}
	e.SoulLinkHostID = core.None
	e.Roles &^= component.RoleSoulLinked
}

// leaveLegion drops a member from its legion; the pooled shield shrinks with it
func leaveLegion(w *engine.World, e *component.Enemy) {
	if e.LegionID == 0 {
		return
	}
	l, ok := w.Legions[e.LegionID]
	if !ok {
		return
	}
	l.Members = l.Members.Remove(e.ID)
	if l.Assembled {
		l.Shield = min(l.Shield, float64(len(l.Members))*parameter.LegionShieldPerMember)
	}
}

// offerLegendary pauses the run on a hex selection, skipped when nothing is left to offer
func offerLegendary(w *engine.World) {
	options := resonance.LegendaryOptions(w.Sockets, w.Rng, 3)
	if len(options) == 0 {
		return
	}
	w.LegendaryOptions = options
	w.Phase = engine.PhaseLegendary
	w.PushEvent(event.EventLegendaryOffered, &event.LegendaryPayload{Options: options})
}

// endRun records the terminal transition exactly once
func endRun(w *engine.World, cause string) {
	if w.Phase == engine.PhaseEnded {
		return
	}
	w.Phase = engine.PhaseEnded
	w.PushEvent(event.EventRunEnded, &event.RunEndedPayload{Cause: cause, Survived: w.Elapsed})
	w.Cue("death")
	w.Log.WithField("cause", cause).WithField("survived", w.Elapsed.String()).Info("run ended")
}
