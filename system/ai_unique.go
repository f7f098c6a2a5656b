package system

import (
	"math"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// formationSlot is the ring position of member i of n around a center
func formationSlot(center vmath.Vec2, i, n int) vmath.Vec2 {
	if n <= 0 {
		return center
	}
	angle := 2 * math.Pi * float64(i) / float64(n)
	return center.Add(vmath.FromAngle(angle, parameter.LegionFormationRadius))
}

// thinkWarden advances slowly until its legion has formed up
func thinkWarden(w *engine.World, e *component.Enemy, b *component.WardenBrain) vmath.Vec2 {
	speed := e.Speed
	if !b.Assembled {
		speed *= 0.4
	}
	return chase(e, w.Player.Pos, speed)
}

// thinkFormation holds the member's slot around the lead; a lost lead degrades to pursuit
func thinkFormation(w *engine.World, e *component.Enemy, b *component.FormationBrain, dt time.Duration) vmath.Vec2 {
	lead := lookupAlive(w, e.LegionLeadID)
	if lead == nil {
		b.InPlace = false
		e.LegionLeadID = core.None
		return chase(e, w.Player.Pos, e.Speed)
	}
	slot := formationSlot(lead.Pos, b.Slot, parameter.LegionSize-1)
	b.InPlace = vmath.WithinRadius(e.Pos, slot, parameter.LegionSlotTolerance)
	return seek(e, slot, e.Speed*1.5, dt)
}

// updateLegions raises the pooled shield once every surviving member stands in formation
func updateLegions(w *engine.World) {
	for _, l := range w.Legions {
		if l.Assembled {
			continue
		}
		lead := lookupAlive(w, l.LeadID)
		if lead == nil {
			continue
		}
		ready, live := true, 0
		for _, id := range l.Members {
			m := lookupAlive(w, id)
			if m == nil {
				continue
			}
			live++
			if fb, ok := m.Brain.(*component.FormationBrain); ok && !fb.InPlace {
				ready = false
			}
		}
		if !ready || live == 0 {
			continue
		}
		l.Assembled = true
		l.Shield = float64(live) * parameter.LegionShieldPerMember
		if wb, ok := lead.Brain.(*component.WardenBrain); ok {
			wb.Assembled = true
		}
		w.Cue("legion_shield")
		w.Log.WithField("legion", l.ID).WithField("shield", l.Shield).Debug("legion assembled")
	}
}

// thinkWeaver circles the player at range and severs links stretched past the leash
func thinkWeaver(w *engine.World, e *component.Enemy, b *component.WeaverBrain, dt time.Duration) vmath.Vec2 {
	kept := e.SoulLinkTargets[:0]
	for _, id := range e.SoulLinkTargets {
		peer := lookupAlive(w, id)
		if peer == nil {
			continue
		}
		if !vmath.WithinRadius(peer.Pos, e.Pos, parameter.SoulLinkRange) {
			peer.Roles &^= component.RoleSoulLinked
			peer.SoulLinkHostID = core.None
			continue
		}
		kept = append(kept, id)
	}
	e.SoulLinkTargets = kept

	b.Orbit += 0.5 * dt.Seconds()
	target := w.Player.Pos.Add(vmath.FromAngle(b.Orbit, parameter.SoulWebSpawnRadius*0.6))
	return seek(e, target, e.Speed, dt)
}
