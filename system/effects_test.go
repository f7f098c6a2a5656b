package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
	"github.com/pixil98/go-testutil"
)

func TestDelayedStrikeDetonatesOnce(t *testing.T) {
	w := newTestWorld(t)
	sys := NewAreaSystem(w)
	w.Areas = append(w.Areas, &component.AreaEffect{
		Kind:      component.AreaDelayedStrike,
		Owner:     component.OwnerEnemy,
		Source:    "slam",
		Center:    w.Player.Pos,
		Radius:    50,
		Remaining: 2 * parameter.TickInterval,
		Damage:    20,
	})
	start := w.Player.HP

	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "pending", w.Player.HP, start)

	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "detonated", w.Player.HP, start-20)
	testutil.AssertEqual(t, "decal left", len(w.Areas), 1)
	testutil.AssertEqual(t, "decal kind", w.Areas[0].Kind, component.AreaDecal)

	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "single hit", w.Player.HP, start-20)
}

func TestDamageZonePulses(t *testing.T) {
	w := newTestWorld(t)
	sys := NewAreaSystem(w)
	e := addEnemy(w, component.ShapeCircle, vmath.V(30, 0), 100)
	w.RebuildGrid()
	w.Areas = append(w.Areas, &component.AreaEffect{
		Kind:          component.AreaDamageZone,
		Owner:         component.OwnerPlayer,
		Source:        "zone",
		Radius:        40,
		Remaining:     time.Second,
		Damage:        5,
		PulseInterval: 250 * time.Millisecond,
	})
	for i := 0; i < 4; i++ {
		sys.Update(w, 250*time.Millisecond)
	}
	testutil.AssertEqual(t, "four pulses", e.HP, 80.0)
	testutil.AssertEqual(t, "expired", len(w.Areas), 0)
}

func TestGravityWellPullsPlayer(t *testing.T) {
	w := newTestWorld(t)
	boss := addEnemy(w, component.ShapeCircle, vmath.V(200, 0), 100)
	sys := NewAreaSystem(w)
	w.Areas = append(w.Areas, &component.AreaEffect{
		Kind: component.AreaGravityWell, Owner: component.OwnerEnemy, SourceID: boss.ID,
		Radius: 300, Remaining: time.Second, Strength: 100,
	})
	sys.Update(w, parameter.TickInterval)
	if w.Player.Pos.X <= 0 {
		t.Errorf("player not pulled: %v", w.Player.Pos)
	}

	// Losing the source cancels the well
	KillEnemy(w, boss)
	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "cancelled", len(w.Areas), 0)
}

func TestBulletPierceDedup(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w)
	a := addEnemy(w, component.ShapeCircle, vmath.V(100, 0), 100)
	b := addEnemy(w, component.ShapeCircle, vmath.V(104, 0), 100)
	w.RebuildGrid()
	w.Bullets = append(w.Bullets, &component.Bullet{
		Owner: component.OwnerPlayer, Channel: component.ChannelProjectile, Source: "bolt",
		Pos: vmath.V(100, 0), Radius: 4, Damage: 10, Pierce: 1, Lifetime: 10,
	})

	sys.Update(w, time.Millisecond)
	sys.Update(w, time.Millisecond)
	testutil.AssertEqual(t, "a hit once", a.HP, 90.0)
	testutil.AssertEqual(t, "b hit once", b.HP, 90.0)
	testutil.AssertEqual(t, "spent", len(w.Bullets), 0)
}

func TestBulletLifetimeExpires(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w)
	w.Bullets = append(w.Bullets, &component.Bullet{Owner: component.OwnerPlayer, Pos: vmath.V(500, 500), Lifetime: 2})
	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "alive", len(w.Bullets), 1)
	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "removed same tick", len(w.Bullets), 0)
}

func TestDeflectReturnsBullet(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w)
	boss := addEnemy(w, component.ShapeTriangle, vmath.V(100, 0), 1000)
	boss.Tier = component.TierBoss
	boss.Boss = component.NewBossLayer(component.ShapeTriangle, 0, 0)
	boss.Boss.Tier3.Remaining = parameter.BossDeflectWindow
	w.RebuildGrid()
	bullet := &component.Bullet{
		Owner: component.OwnerPlayer, Channel: component.ChannelProjectile, Source: "bolt",
		Pos: vmath.V(95, 0), Vel: vmath.V(60, 0), Radius: 4, Damage: 10, Lifetime: 30,
	}
	w.Bullets = append(w.Bullets, bullet)

	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "boss untouched", boss.HP, 1000.0)
	testutil.AssertEqual(t, "owner flipped", bullet.Owner, component.OwnerEnemy)
	if bullet.Vel.X >= 0 {
		t.Errorf("bullet not reversed: %v", bullet.Vel)
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w)
	w.Player.Stats[component.StatProjectileReduction].Base = 0.5
	w.Bullets = append(w.Bullets, &component.Bullet{
		Owner: component.OwnerEnemy, Channel: component.ChannelProjectile, Source: "diamond",
		Pos: vmath.V(5, 0), Radius: 5, Damage: 10, Lifetime: 10,
	})
	start := w.Player.HP
	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "reduced hit", w.Player.HP, start-5)
	testutil.AssertEqual(t, "consumed", len(w.Bullets), 0)
}

func TestContactDamageCooldown(t *testing.T) {
	w := newTestWorld(t)
	sys := NewPlayerSystem(w)
	e := addEnemy(w, component.ShapeCircle, vmath.V(5, 0), 100)
	e.ContactDamage = 10
	w.RebuildGrid()
	start := w.Player.HP

	sys.contact(w)
	sys.contact(w)
	testutil.AssertEqual(t, "one hit inside cooldown", w.Player.HP, start-10)
	testutil.AssertEqual(t, "cause", w.Player.LastHitBy, "circle")
	if w.Player.Knockback.X >= 0 {
		t.Errorf("knockback should push away, got %v", w.Player.Knockback)
	}
}

func TestPlayerAutoFire(t *testing.T) {
	w := newTestWorld(t)
	sys := NewPlayerSystem(w)
	addEnemy(w, component.ShapeCircle, vmath.V(200, 0), 100)
	w.RebuildGrid()

	sys.fire(w, parameter.TickInterval)
	testutil.AssertEqual(t, "shot", len(w.Bullets), 1)
	if w.Bullets[0].Vel.X <= 0 {
		t.Errorf("bolt aimed wrong: %v", w.Bullets[0].Vel)
	}
	sys.fire(w, parameter.TickInterval)
	testutil.AssertEqual(t, "rate limited", len(w.Bullets), 1)
}

func TestSkillsCast(t *testing.T) {
	w := newTestWorld(t)
	sys := NewPlayerSystem(w)
	w.Player.SetClass(component.ClassBastion) // aegis, nova, blink

	w.Intent.Skills[0] = true
	sys.skills(w, parameter.TickInterval, 0)
	testutil.AssertEqual(t, "aegis shield", w.Player.ShieldTotal(), parameter.AegisShield)
	testutil.AssertEqual(t, "on cooldown", w.Player.Skill(component.SkillAegis).Ready(), false)

	w.Intent.Skills[0] = false
	w.Intent.Skills[2] = true
	w.Intent.Move = vmath.V(1, 0)
	sys.skills(w, parameter.TickInterval, 0)
	testutil.AssertEqual(t, "blinked", w.Player.Pos.X, parameter.BlinkDistance)
}

func TestChannelHoldsZone(t *testing.T) {
	w := newTestWorld(t)
	sys := NewPlayerSystem(w)
	w.Player.SetClass(component.ClassConduit) // channel first

	w.Intent.Held[0] = true
	sys.skills(w, parameter.TickInterval, 0)
	testutil.AssertEqual(t, "zone", len(w.Areas), 1)
	testutil.AssertEqual(t, "in use", w.Player.Skill(component.SkillChannel).InUse, true)

	w.Intent.Held[0] = false
	sys.skills(w, parameter.TickInterval, 0)
	testutil.AssertEqual(t, "released", w.Player.Skill(component.SkillChannel).InUse, false)
	testutil.AssertEqual(t, "zone ended", w.Areas[0].Expired(), true)
}

func TestLootCollectAndMagnet(t *testing.T) {
	w := newTestWorld(t)
	sys := NewLootSystem(w)
	w.Pickups = append(w.Pickups,
		&component.Pickup{Kind: component.PickupXP, Pos: vmath.V(1500, 0), Value: 3},
		&component.Pickup{Kind: component.PickupMagnet, Pos: vmath.V(5, 0)},
	)
	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "magnet consumed", len(w.Pickups), 1)
	testutil.AssertEqual(t, "xp attracted", w.Pickups[0].Attracted, true)

	for i := 0; i < 600 && len(w.Pickups) > 0; i++ {
		sys.Update(w, parameter.TickInterval)
	}
	testutil.AssertEqual(t, "xp collected", w.Player.XP, 3.0)
}

func TestShardAutoSocket(t *testing.T) {
	w := newTestWorld(t)
	s := RollShard(w.Rng, component.TierBoss)
	if s.Rarity < component.RarityEpic {
		t.Fatalf("boss shard rarity %v", s.Rarity)
	}
	testutil.AssertEqual(t, "perks by rarity", len(s.Perks), int(s.Rarity)+1)

	socketShard(w, s)
	testutil.AssertEqual(t, "first slot", w.Sockets.Shards[0], s)
}

func TestParticleBurstAndSettle(t *testing.T) {
	w := newTestWorld(t)
	sys := NewParticleSystem(w)
	w.AddHandler(sys)
	w.Burst(vmath.V(0, 0), 5, "test")
	w.DispatchEvents()
	testutil.AssertEqual(t, "spawned", len(w.Particles), 5)

	Settle(w, parameter.ParticleLifetime)
	testutil.AssertEqual(t, "faded", len(w.Particles), 0)
}

func TestTimekeeperSweepAndSplit(t *testing.T) {
	w := newTestWorld(t)
	sys := NewTimekeeperSystem(w)
	e := addEnemy(w, component.ShapeCircle, vmath.V(100, 0), 10)
	e.Dead = true

	sys.Update(w, parameter.TickInterval)
	testutil.AssertEqual(t, "swept", w.Enemies.Len(), 0)
	testutil.AssertEqual(t, "elapsed", w.Elapsed, parameter.TickInterval)
	testutil.AssertEqual(t, "arena split", w.ArenaTime[0], parameter.TickInterval)
}

func TestWaveInterval(t *testing.T) {
	testutil.AssertEqual(t, "start", WaveInterval(0), parameter.WaveBaseInterval)
	testutil.AssertEqual(t, "floor", WaveInterval(10*time.Hour), parameter.WaveMinInterval)
}

func TestSpawnEnemyScaling(t *testing.T) {
	w := newTestWorld(t)
	normal := SpawnEnemy(w, component.SpawnRequest{Shape: component.ShapeSquare})
	boss := SpawnEnemy(w, component.SpawnRequest{Shape: component.ShapeSquare, Tier: component.TierBoss})

	base := parameter.EnemyArchetypes[component.ShapeSquare]
	testutil.AssertEqual(t, "square contact", normal.ContactDamage, base.ContactDamage*parameter.SquareContactMult)
	testutil.AssertEqual(t, "boss hp", boss.MaxHP, base.HP*parameter.BossHPMult)
	testutil.AssertEqual(t, "boss layer", boss.Boss != nil, true)
	testutil.AssertEqual(t, "normal layer", normal.Boss == nil, true)
}

func TestPipelineRuns(t *testing.T) {
	w := newTestWorld(t)
	RegisterAll(w)
	w.Player.ReviveCharges = 1000
	ended := 0
	w.AddHandler(handlerFunc{types: []event.EventType{event.EventRunEnded}, fn: func() { ended++ }})

	for i := 0; i < 60*parameter.TickRate; i++ {
		w.Intent.Move = vmath.V(1, 0).Rotate(float64(i) / 120)
		w.Step(parameter.TickInterval)
		if w.Phase == engine.PhaseLegendary {
			if err := ChooseLegendary(w, 0); err != nil {
				t.Fatalf("choose: %v", err)
			}
		}
	}
	testutil.AssertEqual(t, "still running", w.Phase, engine.PhasePlaying)
	testutil.AssertEqual(t, "no run end", ended, 0)
	if w.Enemies.LiveCount() == 0 && w.Player.Kills == 0 {
		t.Error("nothing spawned in a minute")
	}
}

type handlerFunc struct {
	types []event.EventType
	fn    func()
}

func (h handlerFunc) EventTypes() []event.EventType                 { return h.types }
func (h handlerFunc) HandleEvent(w *engine.World, ev event.GameEvent) { h.fn() }

func TestParticleBurstLeavesGameplayRngAlone(t *testing.T) {
	w := newTestWorld(t)
	twin := *w.Rng

	sys := NewParticleSystem(w)
	w.AddHandler(sys)
	w.Burst(vmath.V(0, 0), 20, "test")
	w.DispatchEvents()
	testutil.AssertEqual(t, "spawned", len(w.Particles), 20)

	testutil.AssertEqual(t, "gameplay stream", w.Rng.Next(), twin.Next())
}
