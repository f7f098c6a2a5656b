package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
)

// TimekeeperSystem runs last: run clock, per-arena split, removal sweep, counters
type TimekeeperSystem struct {
	statEnemies  *atomic.Int64
	statBullets  *atomic.Int64
	statAreas    *atomic.Int64
	statSwept    *atomic.Int64
	statElapsed  *atomic.Int64
	statKills    *atomic.Int64
	statLevel    *atomic.Int64
	statScore    *atomic.Int64
	statArena    *atomic.Int64
	statWorldEvt *atomic.Int64
}

func NewTimekeeperSystem(world *engine.World) *TimekeeperSystem {
	return &TimekeeperSystem{
		statEnemies:  world.Status.Ints.Get("enemy.count"),
		statBullets:  world.Status.Ints.Get("bullet.count"),
		statAreas:    world.Status.Ints.Get("area.count"),
		statSwept:    world.Status.Ints.Get("enemy.swept"),
		statElapsed:  world.Status.Ints.Get("run.elapsed_ms"),
		statKills:    world.Status.Ints.Get("run.kills"),
		statLevel:    world.Status.Ints.Get("run.level"),
		statScore:    world.Status.Ints.Get("run.score"),
		statArena:    world.Status.Ints.Get("run.arena"),
		statWorldEvt: world.Status.Ints.Get("director.active"),
	}
}

func (s *TimekeeperSystem) Name() string  { return "timekeeper" }
func (s *TimekeeperSystem) Priority() int { return parameter.PriorityTimekeeper }

func (s *TimekeeperSystem) Update(w *engine.World, dt time.Duration) {
	w.Elapsed += dt

	arena := w.Geometry.ArenaAt(w.Player.Pos)
	if arena >= 0 {
		w.ArenaTime[arena] += dt
	}

	// Dead enemies are inert for exactly the tick they died in
	s.statSwept.Add(int64(w.Enemies.Sweep()))

	s.statEnemies.Store(int64(w.Enemies.LiveCount()))
	s.statBullets.Store(int64(len(w.Bullets)))
	s.statAreas.Store(int64(len(w.Areas)))
	s.statElapsed.Store(w.Elapsed.Milliseconds())
	s.statKills.Store(int64(w.Player.Kills))
	s.statLevel.Store(int64(w.Player.Level))
	s.statScore.Store(int64(w.Player.Score))
	s.statArena.Store(int64(arena))
	s.statWorldEvt.Store(int64(w.ActiveEvent()))
}
