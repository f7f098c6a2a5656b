package system

import (
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// particleSalt separates the cosmetic stream from the gameplay stream of the same seed
const particleSalt = 0x9e3779b97f4a7c15

// ParticleSystem owns cosmetic particles; it never touches gameplay state
// Bursts draw from their own source so visuals cannot shift gameplay rolls
type ParticleSystem struct {
	rng *vmath.FastRand
}

func NewParticleSystem(world *engine.World) *ParticleSystem {
	return &ParticleSystem{rng: vmath.NewFastRand(world.Seed ^ particleSalt)}
}

func (s *ParticleSystem) Name() string  { return "particle" }
func (s *ParticleSystem) Priority() int { return parameter.PriorityParticle }

func (s *ParticleSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventParticleBurst}
}

func (s *ParticleSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ParticleBurstPayload)
	if !ok {
		return
	}
	for i := 0; i < p.Count && len(w.Particles) < parameter.ParticleMax; i++ {
		w.Particles = append(w.Particles, component.Particle{
			Pos:     p.Pos,
			Vel:     vmath.FromAngle(s.rng.Angle(), p.Speed*s.rng.Range(0.4, 1)),
			Life:    parameter.ParticleLifetime,
			Palette: p.Palette,
		})
	}
}

func (s *ParticleSystem) Update(w *engine.World, dt time.Duration) {
	Settle(w, dt)
}

// Settle advances cosmetic particles only; safe to call while the simulation is frozen
func Settle(w *engine.World, dt time.Duration) {
	sec := dt.Seconds()
	live := w.Particles[:0]
	for _, pt := range w.Particles {
		pt.Life -= dt
		if pt.Life <= 0 {
			continue
		}
		pt.Pos = pt.Pos.Add(pt.Vel.Scale(sec))
		pt.Vel = pt.Vel.Scale(1 - min(1, 3*sec))
		live = append(live, pt)
	}
	w.Particles = live
}
