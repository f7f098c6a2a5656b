package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// EnemySystem runs every live enemy's brain, boss layer and movement
type EnemySystem struct {
	statThinks  *atomic.Int64
	statExpired *atomic.Int64
}

func NewEnemySystem(world *engine.World) *EnemySystem {
	return &EnemySystem{
		statThinks:  world.Status.Ints.Get("enemy.thinks"),
		statExpired: world.Status.Ints.Get("enemy.expired"),
	}
}

func (s *EnemySystem) Name() string  { return "enemy" }
func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) Update(w *engine.World, dt time.Duration) {
	sec := dt.Seconds()
	frenzy := w.Director.Is(component.WorldEventFrenzy)

	// Enemies spawned during this pass start moving next tick
	enemies := w.Enemies.All()
	n := len(enemies)
	for i := 0; i < n; i++ {
		e := enemies[i]
		if e.Dead {
			continue
		}
		e.Age += dt
		if e.ContactCooldown > 0 {
			e.ContactCooldown = max(0, e.ContactCooldown-dt)
		}
		if e.Lifetime > 0 && e.Age >= e.Lifetime {
			despawn(w, e)
			s.statExpired.Add(1)
			continue
		}

		e.Telegraph = false
		vel := think(w, e, dt)
		if e.Dead {
			continue
		}
		if e.Boss != nil {
			vel = updateBoss(w, e, vel, dt)
		}
		if frenzy && e.Hostile() {
			vel = vel.Scale(parameter.FrenzySpeedMult)
		}

		e.Vel = vel
		next := e.Pos.Add(vel.Add(e.Knockback).Scale(sec))
		if !w.Geometry.InBounds(next) {
			next = w.Geometry.Clamp(next)
		}
		e.Pos = next
		if !e.Knockback.IsZero() {
			e.Knockback = e.Knockback.Scale(math.Exp(-parameter.KnockbackDecay * sec))
		}
	}
	s.statThinks.Add(int64(n))

	updateLegions(w)
}

// think dispatches on the brain variant; scratch state is reachable only through its own case
func think(w *engine.World, e *component.Enemy, dt time.Duration) vmath.Vec2 {
	switch b := e.Brain.(type) {
	case *component.ChaserBrain:
		return thinkChaser(w, e, b, dt)
	case *component.DasherBrain:
		return thinkDasher(w, e, b, dt)
	case *component.BulwarkBrain:
		return thinkBulwark(w, e, b, dt)
	case *component.SniperBrain:
		return thinkSniper(w, e, b, dt)
	case *component.HiveBrain:
		return thinkHive(w, e, b, dt)
	case *component.MinionBrain:
		return thinkMinion(w, e, b, dt)
	case *component.WardenBrain:
		return thinkWarden(w, e, b)
	case *component.FormationBrain:
		return thinkFormation(w, e, b, dt)
	case *component.WeaverBrain:
		return thinkWeaver(w, e, b, dt)
	case *component.AllyBrain:
		return thinkAlly(w, e, b, dt)
	case *component.WanderBrain:
		return thinkWander(w, e, b, dt)
	default:
		e.Brain = &component.ChaserBrain{}
		return chase(e, w.Player.Pos, e.Speed)
	}
}

// chase returns a velocity straight at target
func chase(e *component.Enemy, target vmath.Vec2, speed float64) vmath.Vec2 {
	return vmath.Toward(e.Pos, target).Scale(speed)
}

// seek moves toward target without overshooting it this tick
func seek(e *component.Enemy, target vmath.Vec2, speed float64, dt time.Duration) vmath.Vec2 {
	sec := dt.Seconds()
	if sec <= 0 {
		return vmath.Vec2{}
	}
	return target.Sub(e.Pos).Scale(1 / sec).ClampLen(speed)
}

// despawn removes an enemy without rewards, resolving its links like a death
func despawn(w *engine.World, e *component.Enemy) {
	if e.Dead {
		return
	}
	e.Dead = true
	e.HP = 0
	releaseMinions(w, e)
	unlinkSoulWeb(w, e)
	leaveLegion(w, e)
	w.Burst(e.Pos, parameter.ParticleBurst/2, e.Palette)
}

// fireEnemyBullet launches a straight enemy projectile
func fireEnemyBullet(w *engine.World, e *component.Enemy, angle, speed, damage float64, lifetime int) {
	w.Bullets = append(w.Bullets, &component.Bullet{
		Owner:    component.OwnerEnemy,
		SourceID: e.ID,
		Source:   causeTag(e),
		Channel:  component.ChannelProjectile,
		Pos:      e.Pos,
		Vel:      vmath.FromAngle(angle, speed),
		Radius:   5,
		Damage:   damage,
		Lifetime: lifetime,
	})
}
