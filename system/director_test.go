package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/pixil98/go-testutil"
)

func TestDirectorMutualExclusion(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		w := newTestWorld(t)
		for i := uint64(0); i < seed; i++ {
			w.Rng.Next()
		}
		d := NewDirectorSystem(w)
		step := time.Second
		for w.Elapsed = 0; w.Elapsed < 60*time.Minute; w.Elapsed += step {
			before := w.Director.Active
			d.Update(w, step)
			after := w.Director.Active
			if before != nil && after != nil && before != after {
				t.Fatalf("seed %d: event %v replaced %v without ending", seed, after.Kind, before.Kind)
			}
			// Members spawned by the director die off so formation events can end
			if w.Elapsed%(30*time.Second) == 0 {
				for _, e := range w.Enemies.All() {
					KillEnemy(w, e)
				}
				w.Enemies.Sweep()
			}
		}

		hist := w.Director.History
		for i := 1; i < len(hist); i++ {
			if hist[i].StartedAt < hist[i-1].EndedAt {
				t.Fatalf("seed %d: %v started at %v before %v ended at %v",
					seed, hist[i].Kind, hist[i].StartedAt, hist[i-1].Kind, hist[i-1].EndedAt)
			}
		}
		for _, rec := range hist {
			switch rec.Kind {
			case component.WorldEventLegion, component.WorldEventSoulWeb:
				if rec.StartedAt < parameter.DirectorFamilyGate {
					t.Errorf("seed %d: family %v before gate at %v", seed, rec.Kind, rec.StartedAt)
				}
			default:
				if rec.StartedAt < parameter.DirectorGeneralGate {
					t.Errorf("seed %d: general %v before gate at %v", seed, rec.Kind, rec.StartedAt)
				}
			}
		}
	}
}

func TestDirectorFamilyOncePerCycle(t *testing.T) {
	w := newTestWorld(t)
	w.Elapsed = parameter.DirectorFamilyGate
	d := NewDirectorSystem(w)

	seen := map[component.WorldEvent]int{}
	for i := 0; i < 200; i++ {
		if kind := d.roll(w); kind == component.WorldEventLegion || kind == component.WorldEventSoulWeb {
			seen[kind]++
		}
	}
	if seen[component.WorldEventLegion] > 1 || seen[component.WorldEventSoulWeb] > 1 {
		t.Errorf("family rolled more than once in a cycle: %v", seen)
	}
}

func TestStartEventRejectsSecond(t *testing.T) {
	w := newTestWorld(t)
	testutil.AssertEqual(t, "first", StartEvent(w, component.WorldEventFrenzy), true)
	testutil.AssertEqual(t, "second", StartEvent(w, component.WorldEventBloodMoon), false)
	testutil.AssertEqual(t, "active", w.ActiveEvent(), component.WorldEventFrenzy)
}

func TestTimedEventEnds(t *testing.T) {
	w := newTestWorld(t)
	d := NewDirectorSystem(w)
	StartEvent(w, component.WorldEventBloodMoon)

	for elapsed := time.Duration(0); elapsed <= parameter.BloodMoonDuration; elapsed += time.Second {
		d.upkeep(w, time.Second)
	}
	testutil.AssertEqual(t, "ended", w.ActiveEvent(), component.WorldEventNone)
	testutil.AssertEqual(t, "history", len(w.Director.History), 1)
}

func TestAmbushDrainsQueue(t *testing.T) {
	w := newTestWorld(t)
	d := NewDirectorSystem(w)
	StartEvent(w, component.WorldEventAmbush)
	testutil.AssertEqual(t, "queued", len(w.Director.Queue), parameter.AmbushCount)

	w.Elapsed += parameter.AmbushStagger
	d.Update(w, parameter.AmbushStagger)
	testutil.AssertEqual(t, "first due spawned", w.Enemies.LiveCount(), 1)

	w.Elapsed += parameter.AmbushStagger * parameter.AmbushCount
	d.Update(w, parameter.AmbushStagger)
	testutil.AssertEqual(t, "all spawned", w.Enemies.LiveCount(), parameter.AmbushCount)
	d.Update(w, parameter.AmbushStagger)
	testutil.AssertEqual(t, "ended", w.ActiveEvent(), component.WorldEventNone)
}

func TestLegionPersistsUntilMembersDead(t *testing.T) {
	w := newTestWorld(t)
	d := NewDirectorSystem(w)
	StartEvent(w, component.WorldEventLegion)
	a := w.Director.Active
	testutil.AssertEqual(t, "members", len(a.Members), parameter.LegionSize)

	d.upkeep(w, time.Hour)
	testutil.AssertEqual(t, "still active", w.ActiveEvent(), component.WorldEventLegion)

	for _, id := range a.Members[1:] {
		KillEnemy(w, lookupAlive(w, id))
	}
	d.upkeep(w, time.Second)
	testutil.AssertEqual(t, "lead alive", w.ActiveEvent(), component.WorldEventLegion)

	KillEnemy(w, lookupAlive(w, a.Members[0]))
	d.upkeep(w, time.Second)
	testutil.AssertEqual(t, "ended", w.ActiveEvent(), component.WorldEventNone)
	testutil.AssertEqual(t, "legion removed", len(w.Legions), 0)
}

func TestLegionAssemblesShield(t *testing.T) {
	w := newTestWorld(t)
	StartEvent(w, component.WorldEventLegion)
	l := w.Legions[w.Director.Active.LegionID]

	// Members spawn on their slots, so the first pass forms up
	sys := NewEnemySystem(w)
	w.RebuildGrid()
	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "assembled", l.Assembled, true)
	testutil.AssertEqual(t, "shield", l.Shield, float64(parameter.LegionSize)*parameter.LegionShieldPerMember)
}
