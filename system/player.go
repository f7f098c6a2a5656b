package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/resonance"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// PlayerSystem applies intent, skills, auto-fire and contact damage
type PlayerSystem struct {
	channelZone *component.AreaEffect

	statHP       *atomic.Int64
	statShots    *atomic.Int64
	statContacts *atomic.Int64
	statChassis  *atomic.Int64
}

func NewPlayerSystem(world *engine.World) *PlayerSystem {
	return &PlayerSystem{
		statHP:       world.Status.Ints.Get("player.hp"),
		statShots:    world.Status.Ints.Get("player.shots"),
		statContacts: world.Status.Ints.Get("player.contacts"),
		statChassis:  world.Status.Ints.Get("player.chassis_pct"),
	}
}

func (s *PlayerSystem) Init() {
	s.channelZone = nil
}

func (s *PlayerSystem) Name() string  { return "player" }
func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update(w *engine.World, dt time.Duration) {
	p := w.Player
	if p.Dead {
		return
	}
	sec := dt.Seconds()

	// Hex-derived stat terms are recomputed every tick since kills-since-level moves
	resonance.ApplyToPlayer(w.Sockets, p)
	chassis := resonance.ChassisResonance(w.Sockets, resonance.Boost(w.Sockets, p.Kills))
	s.statChassis.Store(int64(chassis * 100))

	if p.Invulnerable > 0 {
		p.Invulnerable = max(0, p.Invulnerable-dt)
	}
	p.PruneShields(w.Elapsed)
	if regen := p.Stat(component.StatRegen); regen > 0 {
		p.Heal(regen * sec)
	}
	p.ClampHP()

	s.move(w, sec)
	s.skills(w, dt, chassis)
	s.fire(w, dt)
	s.contact(w)

	s.statHP.Store(int64(p.HP))
}

func (s *PlayerSystem) move(w *engine.World, sec float64) {
	p := w.Player
	axis := w.Intent.Axis()
	p.Vel = axis.Scale(p.Stat(component.StatSpeed))
	if !axis.IsZero() {
		p.Facing = axis.Angle()
	}

	next := p.Pos.Add(p.Vel.Add(p.Knockback).Scale(sec))
	if !w.Geometry.InBounds(next) {
		next = w.Geometry.Clamp(next)
	}
	p.Pos = next
	p.Knockback = p.Knockback.Scale(math.Exp(-parameter.KnockbackDecay * sec))
}

func (s *PlayerSystem) skills(w *engine.World, dt time.Duration, chassis float64) {
	p := w.Player
	power := 1 + chassis
	for i := range p.Skills {
		sk := &p.Skills[i]
		if sk.Remaining > 0 {
			sk.Remaining = max(0, sk.Remaining-dt)
		}
		pressed, held := false, false
		if sk.Bind >= 0 && sk.Bind < len(w.Intent.Skills) {
			pressed = w.Intent.Skills[sk.Bind]
			held = w.Intent.Held[sk.Bind]
		}

		if sk.ID == component.SkillChannel {
			s.channel(w, sk, pressed || held, dt, power)
			continue
		}
		if !pressed || !sk.Ready() {
			continue
		}
		sk.Remaining = sk.Cooldown
		switch sk.ID {
		case component.SkillNova:
			castNova(w, power)
		case component.SkillBlink:
			castBlink(w, power)
		case component.SkillAegis:
			p.AddShield(parameter.AegisShield*power, w.Elapsed+parameter.AegisDuration)
			w.Cue("aegis")
		case component.SkillOrbit:
			castOrbit(w, power)
		}
	}
}

func castNova(w *engine.World, power float64) {
	p := w.Player
	radius := parameter.NovaRadius * p.Stat(component.StatAreaSize)
	for _, e := range enemiesWithin(w, p.Pos, radius, isPlayerTarget) {
		DamageEnemy(w, e, parameter.NovaDamage*power, component.ChannelArea, "nova")
	}
	w.Burst(p.Pos, parameter.ParticleBurst*3, "nova")
	w.Cue("nova")
}

func castBlink(w *engine.World, power float64) {
	p := w.Player
	dir := w.Intent.Axis().Normalize()
	if dir.IsZero() {
		dir = vmath.FromAngle(p.Facing, 1)
	}
	target := p.Pos.Add(dir.Scale(parameter.BlinkDistance * power))
	if !w.Geometry.InBounds(target) {
		target = w.Geometry.Clamp(target)
	}
	w.Burst(p.Pos, parameter.ParticleBurst, "blink")
	p.Pos = target
	p.Knockback = vmath.Vec2{}
	w.Cue("blink")
}

func castOrbit(w *engine.World, power float64) {
	p := w.Player
	dmg := p.Stat(component.StatDamage) * power
	for i := 0; i < parameter.OrbitCount; i++ {
		w.Bullets = append(w.Bullets, &component.Bullet{
			Owner:       component.OwnerPlayer,
			Source:      "orbit",
			Channel:     component.ChannelProjectile,
			Pos:         p.Pos,
			Radius:      6,
			Damage:      dmg,
			Pierce:      math.MaxInt32,
			Lifetime:    parameter.OrbitLifetime,
			Orbiting:    true,
			OrbitAngle:  2 * math.Pi * float64(i) / parameter.OrbitCount,
			OrbitRadius: parameter.OrbitRadius,
			OrbitSpeed:  parameter.OrbitSpeed,
		})
	}
	w.Cue("orbit")
}

// channel keeps a zone on the player while the bind is held, up to the max time
func (s *PlayerSystem) channel(w *engine.World, sk *component.Skill, active bool, dt time.Duration, power float64) {
	if sk.InUse {
		sk.Active += dt
		if active && sk.Active < parameter.ChannelMaxTime {
			return
		}
		sk.InUse = false
		sk.Remaining = sk.Cooldown
		if s.channelZone != nil {
			s.channelZone.Remaining = 0
			s.channelZone = nil
		}
		return
	}
	if !active || !sk.Ready() {
		return
	}
	sk.InUse = true
	sk.Active = 0
	p := w.Player
	zone := &component.AreaEffect{
		Kind:          component.AreaChannelZone,
		Owner:         component.OwnerPlayer,
		Source:        "channel",
		Center:        p.Pos,
		Radius:        parameter.ChannelRadius * p.Stat(component.StatAreaSize),
		Remaining:     parameter.ChannelMaxTime,
		Damage:        parameter.ChannelDPS * power * parameter.ChannelPulseEvery.Seconds(),
		PulseInterval: parameter.ChannelPulseEvery,
		FollowPlayer:  true,
	}
	w.Areas = append(w.Areas, zone)
	s.channelZone = zone
	w.Cue("channel")
}

// fire shoots at the nearest target when the fire timer allows
func (s *PlayerSystem) fire(w *engine.World, dt time.Duration) {
	p := w.Player
	p.FireTimer -= dt
	if p.FireTimer > 0 {
		return
	}
	target := nearestEnemy(w, p.Pos, parameter.PlayerTargetRange, isHostile)
	if target == nil {
		p.FireTimer = 0
		return
	}
	rate := max(0.1, p.Stat(component.StatFireRate))
	p.FireTimer += time.Duration(float64(time.Second) / rate)

	dmg := p.Stat(component.StatDamage)
	crit := w.Rng.Chance(p.Stat(component.StatCritChance))
	if crit {
		dmg *= max(1, p.Stat(component.StatCritMultiplier))
	}
	dir := vmath.Toward(p.Pos, target.Pos)
	bolt := &component.Bullet{
		Owner:    component.OwnerPlayer,
		Source:   "bolt",
		Channel:  component.ChannelProjectile,
		Pos:      p.Pos,
		Vel:      dir.Scale(p.Stat(component.StatProjectileSpeed)),
		Radius:   4,
		Damage:   dmg,
		Crit:     crit,
		Pierce:   int(p.Stat(component.StatPierce)),
		Lifetime: parameter.PlayerBulletLifetime,
	}
	// Crits ricochet once; conduit bolts track their target
	if crit {
		bolt.Bounces = 1
	}
	if p.Class == component.ClassConduit {
		bolt.HomingTarget = target.ID
	}
	w.Bullets = append(w.Bullets, bolt)
	p.Facing = dir.Angle()
	s.statShots.Add(1)
}

// contact applies body damage from overlapping hostiles, once per enemy cooldown
func (s *PlayerSystem) contact(w *engine.World) {
	p := w.Player
	for _, e := range enemiesWithin(w, p.Pos, parameter.PlayerRadius, isHostile) {
		if e.ContactCooldown > 0 || e.ContactDamage <= 0 {
			continue
		}
		e.ContactCooldown = parameter.ContactHitCooldown
		DamagePlayer(w, e.ContactDamage, component.ChannelCollision, causeTag(e))
		p.Knockback = p.Knockback.Add(vmath.Toward(e.Pos, p.Pos).Scale(parameter.ContactKnockback))
		s.statContacts.Add(1)
		if p.Dead {
			return
		}
	}
}
