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

// ProjectileSystem advances bullets and resolves their impacts
type ProjectileSystem struct {
	statHits      *atomic.Int64
	statDeflected *atomic.Int64
	statActive    *atomic.Int64
}

func NewProjectileSystem(world *engine.World) *ProjectileSystem {
	return &ProjectileSystem{
		statHits:      world.Status.Ints.Get("bullet.hits"),
		statDeflected: world.Status.Ints.Get("bullet.deflected"),
		statActive:    world.Status.Ints.Get("bullet.active"),
	}
}

func (s *ProjectileSystem) Name() string  { return "projectile" }
func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) Update(w *engine.World, dt time.Duration) {
	sec := dt.Seconds()
	p := w.Player

	n := len(w.Bullets)
	for i := 0; i < n; i++ {
		b := w.Bullets[i]
		if b.Expired() {
			continue
		}
		b.Lifetime--

		if b.Orbiting {
			prev := b.OrbitAngle
			b.OrbitAngle += b.OrbitSpeed * sec
			// Each full revolution may hit the same enemies again
			if math.Floor(prev/(2*math.Pi)) != math.Floor(b.OrbitAngle/(2*math.Pi)) {
				b.Hits = b.Hits[:0]
			}
			b.Pos = p.Pos.Add(vmath.FromAngle(b.OrbitAngle, b.OrbitRadius))
		} else {
			steerHoming(w, b, sec)
			b.Pos = b.Pos.Add(b.Vel.Scale(sec))
			if !w.Geometry.InBounds(b.Pos) {
				b.Lifetime = 0
				continue
			}
		}

		switch b.Owner {
		case component.OwnerEnemy:
			s.hitPlayer(w, b)
		default:
			s.hitEnemies(w, b)
		}
		if w.Phase == engine.PhaseEnded {
			break
		}
	}

	live := w.Bullets[:0]
	for _, b := range w.Bullets {
		if !b.Expired() {
			live = append(live, b)
		}
	}
	clear(w.Bullets[len(live):])
	w.Bullets = live
	s.statActive.Store(int64(len(w.Bullets)))
}

// steerHoming turns a bullet toward its live homing target, dropping a lost target
func steerHoming(w *engine.World, b *component.Bullet, sec float64) {
	if !b.HomingTarget.Valid() {
		return
	}
	t := lookupAlive(w, b.HomingTarget)
	if t == nil {
		b.HomingTarget = 0
		return
	}
	speed := b.Vel.Len()
	desired := vmath.Toward(b.Pos, t.Pos)
	b.Vel = b.Vel.Normalize().Lerp(desired, min(1, 6*sec)).Normalize().Scale(speed)
}

func (s *ProjectileSystem) hitPlayer(w *engine.World, b *component.Bullet) {
	if !vmath.WithinRadius(b.Pos, w.Player.Pos, b.Radius+parameter.PlayerRadius) {
		return
	}
	DamagePlayer(w, b.Damage, b.Channel, b.Source)
	b.Lifetime = 0
	s.statHits.Add(1)
}

func (s *ProjectileSystem) hitEnemies(w *engine.World, b *component.Bullet) {
	keep := isPlayerTarget
	if b.Owner == component.OwnerAlly {
		keep = isHostile
	}
	for _, e := range enemiesWithin(w, b.Pos, b.Radius, keep) {
		if b.HasHit(e.ID) || !e.Alive() {
			continue
		}
		if !b.Orbiting && isBossMechanicActive(e, component.MechanicDeflect) {
			deflect(b, e)
			s.statDeflected.Add(1)
			return
		}
		DamageEnemy(w, e, b.Damage, b.Channel, b.Source)
		b.MarkHit(e.ID)
		s.statHits.Add(1)
		if b.Pierce >= 0 {
			continue
		}
		if b.Bounces > 0 {
			bounce(w, b)
		}
		return
	}
}

// deflect turns a player bullet around as an enemy bullet
func deflect(b *component.Bullet, e *component.Enemy) {
	b.Owner = component.OwnerEnemy
	b.SourceID = e.ID
	b.Source = causeTag(e) + " deflect"
	b.Vel = b.Vel.Scale(-1)
	b.Hits = b.Hits[:0]
	b.HomingTarget = 0
	b.Pierce = 0
}

// bounce retargets a spent bullet to the nearest enemy it has not hit
func bounce(w *engine.World, b *component.Bullet) bool {
	next := nearestEnemy(w, b.Pos, parameter.PlayerTargetRange/2, func(o *component.Enemy) bool {
		return isPlayerTarget(o) && !b.HasHit(o.ID)
	})
	if next == nil {
		return false
	}
	b.Bounces--
	b.Pierce = 0
	b.Vel = vmath.Toward(b.Pos, next.Pos).Scale(b.Vel.Len())
	return true
}
