package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// SpawnEnemy builds an enemy from its archetype scaled by tier and run time, and stores it
func SpawnEnemy(w *engine.World, req component.SpawnRequest) *component.Enemy {
	idx := int(req.Shape)
	if idx >= len(parameter.EnemyArchetypes) {
		idx = 0
	}
	base := parameter.EnemyArchetypes[idx]

	hp := base.HP * (1 + parameter.EnemyHPGrowthPerMinute*w.Elapsed.Minutes())
	size, dmg := base.Size, base.ContactDamage
	switch req.Tier {
	case component.TierElite:
		hp *= parameter.EliteHPMult
		size *= parameter.EliteSizeMult
		dmg *= parameter.EliteDamageMult
	case component.TierBoss:
		hp *= parameter.BossHPMult
		size *= parameter.BossSizeMult
		dmg *= parameter.BossDamageMult
	}
	if req.HPMult > 0 {
		hp *= req.HPMult
	}
	if req.Shape == component.ShapeSquare {
		dmg *= parameter.SquareContactMult
	}

	e := &component.Enemy{
		Shape:           req.Shape,
		Tier:            req.Tier,
		Unique:          req.Unique,
		Roles:           req.Roles,
		Pos:             w.Geometry.Clamp(req.Pos),
		HP:              hp,
		MaxHP:           hp,
		Speed:           base.Speed,
		Size:            size,
		Armor:           base.Armor,
		TakenMultiplier: 1,
		ContactDamage:   dmg,
		LegionID:        req.LegionID,
		Palette:         req.Shape.String(),
		Brain:           component.NewBrain(req.Shape, req.Unique),
	}
	if req.Roles.Has(component.RoleNeutral) {
		e.Brain = &component.WanderBrain{Heading: w.Rng.Angle()}
		e.Speed *= parameter.NeutralSpeedMult
		e.Palette = "neutral"
	}
	if req.Tier == component.TierBoss {
		m2, m3 := component.BossMechanics(req.Shape)
		e.Boss = component.NewBossLayer(req.Shape, MechanicInterval(m2), MechanicInterval(m3))
	}
	if sb, ok := e.Brain.(*component.SniperBrain); ok {
		sb.FireTimer = parameter.DiamondFireInterval
		if w.Rng.Chance(0.5) {
			sb.Strafe = 1
		} else {
			sb.Strafe = -1
		}
	}
	w.Enemies.Spawn(e)
	return e
}

// ringPosition picks a point on a ring around center, kept inside the arena
func ringPosition(w *engine.World, center vmath.Vec2, radius float64) vmath.Vec2 {
	return w.Geometry.Clamp(center.Add(vmath.FromAngle(w.Rng.Angle(), radius)))
}

// unlockedShapes returns the base shapes available at an elapsed run time
func unlockedShapes(elapsed time.Duration) []component.Shape {
	shapes := []component.Shape{component.ShapeCircle, component.ShapeTriangle}
	if elapsed >= time.Minute {
		shapes = append(shapes, component.ShapeSquare)
	}
	if elapsed >= 2*time.Minute {
		shapes = append(shapes, component.ShapeDiamond)
	}
	if elapsed >= 3*time.Minute {
		shapes = append(shapes, component.ShapePentagon)
	}
	return shapes
}

// SpawnSystem drives ambient waves with periodic elite and boss escalation
type SpawnSystem struct {
	waveTimer  time.Duration
	eliteTimer time.Duration
	bossTimer  time.Duration
	bossIndex  int

	statSpawned *atomic.Int64
	statSkipped *atomic.Int64
}

func NewSpawnSystem(world *engine.World) *SpawnSystem {
	s := &SpawnSystem{
		statSpawned: world.Status.Ints.Get("spawn.total"),
		statSkipped: world.Status.Ints.Get("spawn.skipped"),
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.waveTimer = 0
	s.eliteTimer = parameter.WaveEliteEvery
	s.bossTimer = parameter.WaveBossEvery
	s.bossIndex = 0
}

func (s *SpawnSystem) Name() string  { return "spawn" }
func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

// WaveInterval returns the ambient spawn cadence at an elapsed run time
func WaveInterval(elapsed time.Duration) time.Duration {
	decay := time.Duration(elapsed.Minutes() * float64(parameter.WaveIntervalDecayPerMinute))
	return max(parameter.WaveMinInterval, parameter.WaveBaseInterval-decay)
}

func (s *SpawnSystem) Update(w *engine.World, dt time.Duration) {
	if w.Enemies.LiveCount() >= parameter.WaveMaxEnemies {
		s.statSkipped.Add(1)
		return
	}
	center := w.Player.Pos
	shapes := unlockedShapes(w.Elapsed)

	s.waveTimer -= dt
	if s.waveTimer <= 0 {
		s.waveTimer += WaveInterval(w.Elapsed)
		req := component.SpawnRequest{
			Pos:   ringPosition(w, center, parameter.WaveSpawnRadius),
			Shape: shapes[w.Rng.Intn(len(shapes))],
		}
		if w.Rng.Chance(parameter.WaveNeutralChance) {
			req.Roles = component.RoleNeutral
		}
		SpawnEnemy(w, req)
		s.statSpawned.Add(1)
	}

	s.eliteTimer -= dt
	if s.eliteTimer <= 0 {
		s.eliteTimer += parameter.WaveEliteEvery
		SpawnEnemy(w, component.SpawnRequest{
			Pos:   ringPosition(w, center, parameter.WaveSpawnRadius),
			Shape: shapes[w.Rng.Intn(len(shapes))],
			Tier:  component.TierElite,
		})
		s.statSpawned.Add(1)
		w.Cue("elite")
	}

	s.bossTimer -= dt
	if s.bossTimer <= 0 {
		s.bossTimer += parameter.WaveBossEvery
		shape := component.Shape(s.bossIndex % int(component.ShapeMinion))
		s.bossIndex++
		boss := SpawnEnemy(w, component.SpawnRequest{
			Pos:   ringPosition(w, center, parameter.WaveSpawnRadius),
			Shape: shape,
			Tier:  component.TierBoss,
		})
		s.statSpawned.Add(1)
		w.Cue("boss")
		w.Log.WithField("shape", shape.String()).WithField("id", uint64(boss.ID)).Info("boss spawned")
	}
}
