package system

import (
	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// Reduction lists which mitigation layers a damage channel passes through
type Reduction struct {
	TakenMultiplier bool
	Armor           bool
	Reducer         component.StatKey // empty when no percentage reducer applies
}

// ReductionTable is the per-channel mitigation rule set
// Collision follows the contact rule (armor then collision reducer, no taken multiplier);
// lasers respect armor only; thorns and drain bypass mitigation
var ReductionTable = [component.ChannelCount]Reduction{
	component.ChannelCollision:  {Armor: true, Reducer: component.StatCollisionReduction},
	component.ChannelProjectile: {TakenMultiplier: true, Armor: true, Reducer: component.StatProjectileReduction},
	component.ChannelArea:       {TakenMultiplier: true, Armor: true},
	component.ChannelLaser:      {Armor: true},
	component.ChannelThorns:     {},
	component.ChannelDrain:      {},
}

// Defense is the mitigation profile of a damage target
type Defense struct {
	TakenMultiplier     float64
	Armor               float64
	ArmorCap            float64
	CollisionReduction  float64
	ProjectileReduction float64
}

// ArmorReduction is the saturating curve a/(a+K), zero for non-positive armor, capped
func ArmorReduction(armor, limit float64) float64 {
	if armor <= 0 || armor != armor {
		return 0
	}
	return vmath.Clamp(armor/(armor+parameter.ArmorK), 0, limit)
}

// Mitigate runs raw damage through the channel's reduction layers
// Shields are not applied here; the result is the damage reaching the shield layers
func Mitigate(raw float64, ch component.Channel, d Defense) float64 {
	dmg := vmath.NonNeg(raw)
	if int(ch) >= len(ReductionTable) {
		return dmg
	}
	rule := ReductionTable[ch]

	if rule.TakenMultiplier {
		m := d.TakenMultiplier
		if m <= 0 {
			m = 1
		}
		dmg *= m
	}
	if rule.Armor {
		capv := d.ArmorCap
		if capv <= 0 {
			capv = parameter.ArmorCap
		}
		dmg *= 1 - ArmorReduction(d.Armor, capv)
	}
	switch rule.Reducer {
	case component.StatCollisionReduction:
		dmg *= 1 - vmath.Clamp(d.CollisionReduction, 0, parameter.ReducerCap)
	case component.StatProjectileReduction:
		dmg *= 1 - vmath.Clamp(d.ProjectileReduction, 0, parameter.ReducerCap)
	}
	return vmath.NonNeg(dmg)
}

// PlayerDefense builds the player's mitigation profile from current stats
func PlayerDefense(p *component.Player) Defense {
	capv := parameter.ArmorCap
	if p.Stat(component.StatArmorCap) > 0 {
		capv = parameter.ArmorCapUpgraded
	}
	return Defense{
		TakenMultiplier:     1,
		Armor:               p.Stat(component.StatArmor),
		ArmorCap:            capv,
		CollisionReduction:  p.Stat(component.StatCollisionReduction),
		ProjectileReduction: p.Stat(component.StatProjectileReduction),
	}
}

// EnemyDefense builds an enemy's mitigation profile
func EnemyDefense(e *component.Enemy) Defense {
	return Defense{
		TakenMultiplier:     e.TakenMultiplier,
		Armor:               e.Armor,
		ArmorCap:            parameter.ArmorCap,
		CollisionReduction:  e.CollisionReduction,
		ProjectileReduction: e.ProjectileReduction,
	}
}

// DamagePlayer resolves a hit on the player and returns HP lost
// Shield chunks absorb oldest-first after mitigation
func DamagePlayer(w *engine.World, raw float64, ch component.Channel, source string) float64 {
	p := w.Player
	if p.Dead || raw <= 0 || p.Invulnerable > 0 {
		return 0
	}

	dmg := Mitigate(raw, ch, PlayerDefense(p))
	rest := p.AbsorbShields(dmg)
	lost := min(rest, p.HP)
	p.HP = vmath.NonNeg(p.HP - rest)
	if lost > 0 {
		p.DamageTaken[source] += lost
	}
	p.LastHitBy = source

	if p.HP <= 0 {
		resolvePlayerDeath(w)
	}
	return lost
}

// DamageEnemy resolves a hit on an enemy and returns HP removed from it
// Layers: mitigation, legion pooled shield, personal shield, HP, then soul-link sharing
func DamageEnemy(w *engine.World, e *component.Enemy, raw float64, ch component.Channel, source string) float64 {
	if !e.Alive() || raw <= 0 {
		return 0
	}
	dmg := Mitigate(raw, ch, EnemyDefense(e))
	if e.Roles.Has(component.RoleNeutral) {
		e.Provoked = true
	}

	// Thorns reflect on direct hits from the player side
	if isBossMechanicActive(e, component.MechanicThorns) &&
		(ch == component.ChannelCollision || ch == component.ChannelProjectile || ch == component.ChannelArea) {
		DamagePlayer(w, dmg*parameter.BossThornsReflect, component.ChannelThorns, "boss thorns")
	}

	dmg = absorbLegionShield(w, e, dmg)
	if e.Shield > 0 {
		take := min(e.Shield, dmg)
		e.Shield -= take
		dmg -= take
	}
	if dmg <= 0 {
		return 0
	}

	if web := soulWeb(w, e); len(web) > 1 {
		return shareSoulDamage(w, web, dmg, source)
	}
	return applyEnemyHP(w, e, dmg, source)
}

func applyEnemyHP(w *engine.World, e *component.Enemy, dmg float64, source string) float64 {
	dealt := min(dmg, e.HP)
	e.HP = vmath.NonNeg(e.HP - dmg)
	if !e.Roles.Has(component.RoleFriendly) {
		w.Player.DamageDealt += dealt
	}
	if e.HP <= 0 {
		KillEnemy(w, e)
	}
	return dealt
}

func absorbLegionShield(w *engine.World, e *component.Enemy, dmg float64) float64 {
	if !e.Roles.Has(component.RoleLegion) {
		return dmg
	}
	l, ok := w.Legions[e.LegionID]
	if !ok || !l.Assembled || l.Shield <= 0 {
		return dmg
	}
	take := min(l.Shield, dmg)
	l.Shield -= take
	return dmg - take
}

// soulWeb returns the live web an enemy belongs to: host first, then linked peers
func soulWeb(w *engine.World, e *component.Enemy) []*component.Enemy {
	hostID := core.None
	switch {
	case len(e.SoulLinkTargets) > 0:
		hostID = e.ID
	case e.Roles.Has(component.RoleSoulLinked) && e.SoulLinkHostID.Valid():
		hostID = e.SoulLinkHostID
	default:
		return nil
	}
	host, ok := w.Enemies.Lookup(hostID)
	if !ok {
		return nil
	}
	web := []*component.Enemy{host}
	for _, id := range host.SoulLinkTargets {
		if peer, ok := w.Enemies.Lookup(id); ok {
			web = append(web, peer)
		}
	}
	return web
}

// shareSoulDamage splits damage evenly over the web
func shareSoulDamage(w *engine.World, web []*component.Enemy, dmg float64, source string) float64 {
	share := dmg / float64(len(web))
	total := 0.0
	for _, m := range web {
		if m.Alive() {
			total += applyEnemyHP(w, m, share, source)
		}
	}
	return total
}

// resolvePlayerDeath consumes a revive or ends the run, exactly once
func resolvePlayerDeath(w *engine.World) {
	p := w.Player
	if p.Dead || p.HP > 0 {
		return
	}
	if p.ReviveCharges > 0 {
		p.ReviveCharges--
		p.HP = p.MaxHP() * parameter.ReviveHealFraction
		p.Invulnerable = parameter.ReviveInvulnerable
		w.PushEvent(event.EventPlayerRevived, nil)
		w.Cue("revive")
		w.Log.WithField("charges_left", p.ReviveCharges).Info("player revived")
		return
	}
	p.Dead = true
	p.DeathCause = p.LastHitBy
	if p.DeathCause == "" {
		p.DeathCause = "unknown"
	}
	endRun(w, p.DeathCause)
}
