package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// AreaSystem ticks area effects: pulses, pulls and on-expire detonations
type AreaSystem struct {
	statPulses *atomic.Int64
	statActive *atomic.Int64
}

func NewAreaSystem(world *engine.World) *AreaSystem {
	return &AreaSystem{
		statPulses: world.Status.Ints.Get("area.pulses"),
		statActive: world.Status.Ints.Get("area.active"),
	}
}

func (s *AreaSystem) Name() string  { return "area" }
func (s *AreaSystem) Priority() int { return parameter.PriorityArea }

func (s *AreaSystem) Update(w *engine.World, dt time.Duration) {
	sec := dt.Seconds()

	// Effects created by expiries this tick start next tick
	n := len(w.Areas)
	for i := 0; i < n; i++ {
		a := w.Areas[i]
		if a.Expired() {
			continue
		}
		s.anchor(w, a)
		if a.Expired() {
			continue
		}
		a.Remaining -= dt

		switch a.Kind {
		case component.AreaDamageZone, component.AreaChannelZone:
			a.PulseTimer -= dt
			if a.PulseTimer <= 0 {
				interval := a.PulseInterval
				if interval <= 0 {
					interval = parameter.AreaPulseInterval
				}
				a.PulseTimer += interval
				pulseArea(w, a)
				s.statPulses.Add(1)
			}
		case component.AreaGravityWell:
			pullArea(w, a, sec)
		}

		if a.Remaining <= 0 {
			expireArea(w, a)
		}
		if w.Phase == engine.PhaseEnded {
			break
		}
	}

	live := w.Areas[:0]
	for _, a := range w.Areas {
		if !a.Expired() {
			live = append(live, a)
		}
	}
	clear(w.Areas[len(live):])
	w.Areas = live
	s.statActive.Store(int64(len(w.Areas)))
}

// anchor keeps attached effects on their owner; a lost enemy source cancels the effect
func (s *AreaSystem) anchor(w *engine.World, a *component.AreaEffect) {
	if a.FollowPlayer {
		a.Center = w.Player.Pos
		return
	}
	if a.Kind != component.AreaGravityWell || !a.SourceID.Valid() {
		return
	}
	src := lookupAlive(w, a.SourceID)
	if src == nil {
		a.Remaining = 0
		a.Fired = true
		return
	}
	a.Center = src.Pos
}

// pulseArea applies one damage instance to everything the effect's owner opposes
func pulseArea(w *engine.World, a *component.AreaEffect) {
	if a.Damage <= 0 {
		return
	}
	switch a.Owner {
	case component.OwnerEnemy:
		if vmath.WithinRadius(w.Player.Pos, a.Center, a.Radius+parameter.PlayerRadius) {
			DamagePlayer(w, a.Damage, component.ChannelArea, a.Source)
		}
	case component.OwnerPlayer:
		for _, e := range enemiesWithin(w, a.Center, a.Radius, isPlayerTarget) {
			DamageEnemy(w, e, a.Damage, component.ChannelArea, a.Source)
		}
	case component.OwnerAlly:
		for _, e := range enemiesWithin(w, a.Center, a.Radius, isHostile) {
			DamageEnemy(w, e, a.Damage, component.ChannelArea, a.Source)
		}
	}
}

// pullArea drags the player toward an enemy well, stronger near the center
func pullArea(w *engine.World, a *component.AreaEffect, sec float64) {
	if a.Owner != component.OwnerEnemy || a.Radius <= 0 {
		return
	}
	p := w.Player
	d := p.Pos.Dist(a.Center)
	if d > a.Radius || d < 1 {
		return
	}
	falloff := 1 - d/a.Radius*0.5
	step := min(d, a.Strength*falloff*sec)
	next := p.Pos.Add(vmath.Toward(p.Pos, a.Center).Scale(step))
	if !w.Geometry.InBounds(next) {
		next = w.Geometry.Clamp(next)
	}
	p.Pos = next
}

// expireArea runs the type-specific on-expire behavior exactly once
func expireArea(w *engine.World, a *component.AreaEffect) {
	if a.Fired {
		return
	}
	a.Fired = true
	switch a.Kind {
	case component.AreaDelayedStrike:
		pulseArea(w, a)
		w.Areas = append(w.Areas, &component.AreaEffect{
			Kind:      component.AreaDecal,
			Owner:     a.Owner,
			Source:    a.Source,
			Center:    a.Center,
			Radius:    a.Radius,
			Remaining: parameter.DecalDuration,
		})
		w.Burst(a.Center, parameter.ParticleBurst*2, "strike")
		w.Cue("strike")
	case component.AreaGravityWell:
		pulseArea(w, a)
	}
}
