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

// thinkHive runs the spawn cycle, proximity release and aging of a pentagon
func thinkHive(w *engine.World, e *component.Enemy, b *component.HiveBrain, dt time.Duration) vmath.Vec2 {
	orbiting := liveOrbiting(w, b)

	// Proximity releases every orbiting minion at once
	if len(orbiting) > 0 && vmath.WithinRadius(w.Player.Pos, e.Pos, parameter.HiveReleaseRange) && e.Hostile() {
		for _, m := range orbiting {
			releaseMinion(m)
		}
		orbiting = orbiting[:0]
		w.Cue("hive_release")
	}

	if e.Age >= parameter.HiveAgeLimit {
		if b.State != component.HiveReleasing {
			b.State = component.HiveReleasing
			b.ReleaseTimer = 0
		}
		if len(orbiting) == 0 {
			// Fully released hives collapse
			despawn(w, e)
			return vmath.Vec2{}
		}
		b.ReleaseTimer -= dt
		if b.ReleaseTimer <= 0 {
			b.ReleaseTimer = parameter.HiveReleaseStagger
			releaseMinion(orbiting[0])
		}
		return chase(e, w.Player.Pos, e.Speed)
	}

	switch b.State {
	case component.HiveTelegraph:
		b.Timer -= dt
		b.BlinkTimer += dt
		e.Telegraph = int(b.BlinkTimer/parameter.HiveBlinkPeriod)%2 == 0
		if b.Timer <= 0 {
			spawnMinions(w, e, b)
			b.State = component.HivePassive
			b.Timer = 0
			b.BlinkTimer = 0
		}
		return vmath.Vec2{}
	default:
		b.State = component.HivePassive
		b.Timer += dt
		if b.Timer >= parameter.HiveSpawnCycle {
			b.State = component.HiveTelegraph
			b.Timer = parameter.HiveTelegraphDuration
			b.BlinkTimer = 0
		}
		return chase(e, w.Player.Pos, e.Speed)
	}
}

// liveOrbiting prunes dead minions from the hive and returns the orbiting ones in slot order
func liveOrbiting(w *engine.World, b *component.HiveBrain) []*component.Enemy {
	alive := b.Minions[:0]
	var orbiting []*component.Enemy
	for _, id := range b.Minions {
		m, ok := w.Enemies.Lookup(id)
		if !ok {
			continue
		}
		alive = append(alive, id)
		if mb, ok := m.Brain.(*component.MinionBrain); ok && mb.State == component.MinionOrbiting {
			orbiting = append(orbiting, m)
		}
	}
	b.Minions = alive
	return orbiting
}

func releaseMinion(m *component.Enemy) {
	if mb, ok := m.Brain.(*component.MinionBrain); ok {
		mb.State = component.MinionReleased
	}
}

func spawnMinions(w *engine.World, host *component.Enemy, b *component.HiveBrain) {
	count := parameter.HiveMinionCount
	if host.IsElite() || host.IsBoss() {
		count = parameter.HiveEliteMinionCount
	}
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		m := SpawnEnemy(w, component.SpawnRequest{
			Pos:   host.Pos.Add(vmath.FromAngle(angle, parameter.MinionOrbitRadius)),
			Shape: component.ShapeMinion,
			Roles: host.Roles & (component.RoleZombie | component.RoleFriendly),
		})
		m.ParentID = host.ID
		b.Minions = append(b.Minions, m.ID)
	}
	w.Cue("hive_spawn")
}

// thinkMinion holds a formation slot around a live host, or pursues once released
// A missing or dead host forces release
func thinkMinion(w *engine.World, e *component.Enemy, b *component.MinionBrain, dt time.Duration) vmath.Vec2 {
	if b.State == component.MinionOrbiting {
		host := lookupAlive(w, e.ParentID)
		var hive *component.HiveBrain
		if host != nil {
			hive, _ = host.Brain.(*component.HiveBrain)
		}
		if hive == nil {
			b.State = component.MinionReleased
			e.ParentID = core.None
		} else {
			return orbitSlot(w, e, host, hive, dt)
		}
	}

	sec := dt.Seconds()
	b.Phase += parameter.MinionWaverFrequency * sec
	desired := vmath.Toward(e.Pos, w.Player.Pos)
	heading := e.Vel.Normalize()
	if heading.IsZero() {
		heading = desired
	}
	heading = heading.Lerp(desired, min(1, parameter.MinionAimCorrection*sec)).Normalize()
	heading = heading.Rotate(parameter.MinionWaverAmplitude * math.Sin(b.Phase))
	return heading.Scale(e.Speed)
}

// orbitSlot places the minion by its index among live orbiting siblings
func orbitSlot(w *engine.World, e *component.Enemy, host *component.Enemy, hive *component.HiveBrain, dt time.Duration) vmath.Vec2 {
	idx, n := 0, 0
	for _, id := range hive.Minions {
		m, ok := w.Enemies.Lookup(id)
		if !ok {
			continue
		}
		mb, ok := m.Brain.(*component.MinionBrain)
		if !ok || mb.State != component.MinionOrbiting {
			continue
		}
		if id == e.ID {
			idx = n
		}
		n++
	}
	if n == 0 {
		n = 1
	}
	angle := 2*math.Pi*float64(idx)/float64(n) + w.Elapsed.Seconds()*parameter.MinionOrbitSpeed
	slot := host.Pos.Add(vmath.FromAngle(angle, parameter.MinionOrbitRadius))
	return seek(e, slot, e.Speed*parameter.MinionOrbitCatchUpMul, dt)
}
