package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// familyEvents are the scheduled families, checked in alternating order per cycle
var familyEvents = [2]component.WorldEvent{component.WorldEventLegion, component.WorldEventSoulWeb}

// generalEvents are the random events rolled after the general gate
var generalEvents = []component.WorldEvent{
	component.WorldEventBloodMoon,
	component.WorldEventFrenzy,
	component.WorldEventAmbush,
}

// DirectorSystem schedules world events and drains the delayed spawn queue
// At most one event is active at any time
type DirectorSystem struct {
	statStarted *atomic.Int64
	statQueued  *atomic.Int64
}

func NewDirectorSystem(world *engine.World) *DirectorSystem {
	return &DirectorSystem{
		statStarted: world.Status.Ints.Get("director.started"),
		statQueued:  world.Status.Ints.Get("director.queued"),
	}
}

func (s *DirectorSystem) Name() string  { return "director" }
func (s *DirectorSystem) Priority() int { return parameter.PriorityDirector }

func (s *DirectorSystem) Update(w *engine.World, dt time.Duration) {
	d := &w.Director
	processSpawnQueue(w)
	s.upkeep(w, dt)

	if w.Elapsed >= d.NextCheck {
		d.NextCheck += parameter.DirectorCheckInterval
		if kind := s.roll(w); kind != component.WorldEventNone {
			beginEvent(w, kind)
			s.statStarted.Add(1)
		}
	}
	s.statQueued.Store(int64(len(d.Queue)))
}

// roll picks the event to start at a check, or none
// A family success consumes the check; the general roll only runs when no family started
func (s *DirectorSystem) roll(w *engine.World) component.WorldEvent {
	d := &w.Director
	if d.Active != nil {
		return component.WorldEventNone
	}
	now := w.Elapsed

	if now >= parameter.DirectorFamilyGate {
		cycle := int(now / parameter.DirectorFamilyCycle)
		order := familyEvents
		if cycle%2 == 1 {
			order[0], order[1] = order[1], order[0]
		}
		for _, kind := range order {
			if d.FamilyCycle[kind] == cycle {
				continue
			}
			if w.Rng.Chance(parameter.DirectorFamilyChance) {
				d.FamilyCycle[kind] = cycle
				return kind
			}
		}
	}

	if now >= parameter.DirectorGeneralGate && w.Rng.Chance(parameter.DirectorGeneralChance) {
		return generalEvents[w.Rng.Intn(len(generalEvents))]
	}
	return component.WorldEventNone
}

// StartEvent forces an event if none is active; returns false otherwise
func StartEvent(w *engine.World, kind component.WorldEvent) bool {
	if w.Director.Active != nil || kind == component.WorldEventNone || kind >= component.WorldEventCount {
		return false
	}
	beginEvent(w, kind)
	return true
}

func beginEvent(w *engine.World, kind component.WorldEvent) {
	d := &w.Director
	now := w.Elapsed
	active := &component.ActiveEvent{Kind: kind, StartedAt: now}
	d.Active = active

	switch kind {
	case component.WorldEventBloodMoon:
		active.Remaining = parameter.BloodMoonDuration
	case component.WorldEventFrenzy:
		active.Remaining = parameter.FrenzyDuration
	case component.WorldEventAmbush:
		shapes := unlockedShapes(now)
		for i := 0; i < parameter.AmbushCount; i++ {
			angle := 2 * math.Pi * float64(i) / parameter.AmbushCount
			d.Queue = append(d.Queue, component.SpawnRequest{
				Due:   now + time.Duration(i+1)*parameter.AmbushStagger,
				Pos:   w.Player.Pos.Add(vmath.FromAngle(angle, parameter.AmbushRadius)),
				Shape: shapes[w.Rng.Intn(len(shapes))],
			})
		}
	case component.WorldEventLegion:
		startLegion(w, active)
	case component.WorldEventSoulWeb:
		startSoulWeb(w, active)
	}

	w.PushEvent(event.EventWorldEventStarted, &event.WorldEventPayload{Kind: kind, At: now})
	w.Cue("event_" + kind.String())
	w.Log.WithField("event", kind.String()).WithField("elapsed", now.String()).Info("world event started")
}

func startLegion(w *engine.World, active *component.ActiveEvent) {
	d := &w.Director
	id := d.NextLegionID
	d.NextLegionID++

	origin := ringPosition(w, w.Player.Pos, parameter.LegionSpawnRadius)
	lead := SpawnEnemy(w, component.SpawnRequest{
		Pos: origin, Shape: component.ShapeUnique, Unique: component.UniqueWarden,
		Roles: component.RoleLegion, LegionID: id,
	})
	legion := &component.Legion{ID: id, LeadID: lead.ID, Members: core.EntityList{lead.ID}}

	n := parameter.LegionSize - 1
	for i := 0; i < n; i++ {
		slot := formationSlot(origin, i, n)
		m := SpawnEnemy(w, component.SpawnRequest{
			Pos: slot, Shape: component.ShapeSquare, Roles: component.RoleLegion, LegionID: id,
		})
		m.LegionLeadID = lead.ID
		m.Brain = &component.FormationBrain{Slot: i}
		legion.Members = append(legion.Members, m.ID)
	}
	w.Legions[id] = legion
	active.LegionID = id
	active.Members = append(core.EntityList(nil), legion.Members...)
}

func startSoulWeb(w *engine.World, active *component.ActiveEvent) {
	origin := ringPosition(w, w.Player.Pos, parameter.SoulWebSpawnRadius)
	host := SpawnEnemy(w, component.SpawnRequest{
		Pos: origin, Shape: component.ShapeUnique, Unique: component.UniqueWeaver,
	})
	shapes := unlockedShapes(w.Elapsed)
	for i := 0; i < parameter.SoulWebSize; i++ {
		peer := SpawnEnemy(w, component.SpawnRequest{
			Pos:   ringPosition(w, origin, parameter.SoulLinkRange/2),
			Shape: shapes[w.Rng.Intn(len(shapes))],
			Roles: component.RoleSoulLinked,
		})
		peer.SoulLinkHostID = host.ID
		host.SoulLinkTargets = append(host.SoulLinkTargets, peer.ID)
	}
	active.HostID = host.ID
	active.Members = append(core.EntityList{host.ID}, host.SoulLinkTargets...)
}

// upkeep advances the active event and ends it when its completion rule holds
func (s *DirectorSystem) upkeep(w *engine.World, dt time.Duration) {
	a := w.Director.Active
	if a == nil {
		return
	}
	done := false
	switch a.Kind {
	case component.WorldEventBloodMoon, component.WorldEventFrenzy:
		a.Remaining -= dt
		done = a.Remaining <= 0
	case component.WorldEventAmbush:
		done = len(w.Director.Queue) == 0
	case component.WorldEventLegion:
		// Persists until every member is dead, regardless of time
		done = true
		for _, id := range a.Members {
			if _, ok := w.Enemies.Lookup(id); ok {
				done = false
				break
			}
		}
		if done {
			delete(w.Legions, a.LegionID)
		}
	case component.WorldEventSoulWeb:
		_, alive := w.Enemies.Lookup(a.HostID)
		done = !alive
	default:
		done = true
	}
	if done {
		EndEvent(w)
	}
}

// EndEvent closes the active event and records it in history
func EndEvent(w *engine.World) {
	d := &w.Director
	a := d.Active
	if a == nil {
		return
	}
	d.History = append(d.History, component.EventRecord{Kind: a.Kind, StartedAt: a.StartedAt, EndedAt: w.Elapsed})
	d.Active = nil
	w.PushEvent(event.EventWorldEventEnded, &event.WorldEventPayload{Kind: a.Kind, At: w.Elapsed})
	w.Log.WithField("event", a.Kind.String()).Info("world event ended")
}

// processSpawnQueue spawns every request whose due time has passed, preserving order of the rest
func processSpawnQueue(w *engine.World) {
	d := &w.Director
	if len(d.Queue) == 0 {
		return
	}
	rest := d.Queue[:0]
	for _, req := range d.Queue {
		if req.Due <= w.Elapsed {
			SpawnEnemy(w, req)
			continue
		}
		rest = append(rest, req)
	}
	d.Queue = rest
}
