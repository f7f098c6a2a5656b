package system

import (
	"testing"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
	"github.com/pixil98/go-testutil"
)

func TestArmorReductionMonotonic(t *testing.T) {
	for _, limit := range []float64{parameter.ArmorCap, parameter.ArmorCapUpgraded} {
		prev := 0.0
		for a := 0.0; a <= 20000; a += 7.5 {
			r := ArmorReduction(a, limit)
			if r < prev {
				t.Fatalf("reduction decreased at armor %v: %v < %v", a, r, prev)
			}
			if r > limit {
				t.Fatalf("reduction %v above cap %v", r, limit)
			}
			prev = r
		}
		testutil.AssertEqual(t, "saturates at cap", ArmorReduction(1e9, limit), limit)
	}
	testutil.AssertEqual(t, "negative armor", ArmorReduction(-50, parameter.ArmorCap), 0.0)
}

func TestMitigateChannels(t *testing.T) {
	def := Defense{
		TakenMultiplier:     2,
		Armor:               100, // 50%
		CollisionReduction:  0.5,
		ProjectileReduction: 0.5,
	}
	tests := []struct {
		name string
		ch   component.Channel
		want float64
	}{
		{"collision skips taken multiplier", component.ChannelCollision, 25},
		{"projectile applies everything", component.ChannelProjectile, 50},
		{"area has no reducer", component.ChannelArea, 100},
		{"laser respects armor only", component.ChannelLaser, 50},
		{"thorns bypass", component.ChannelThorns, 100},
		{"drain bypass", component.ChannelDrain, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mitigate(100, tt.ch, def)
			if !almostEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMitigateReducerCap(t *testing.T) {
	got := Mitigate(100, component.ChannelProjectile, Defense{ProjectileReduction: 5})
	if !almostEqual(got, 100*(1-parameter.ReducerCap)) {
		t.Errorf("got %v, want reducer capped", got)
	}
	testutil.AssertEqual(t, "negative raw", Mitigate(-10, component.ChannelArea, Defense{}), 0.0)
}

func TestCollisionDamageExample(t *testing.T) {
	w := newTestWorld(t)
	e := addEnemy(w, component.ShapeSquare, vmath.V(300, 0), 100)
	e.TakenMultiplier = 1.2
	e.Armor = 300.0 / 7.0 // 30% reduction
	e.CollisionReduction = 0.10

	DamageEnemy(w, e, 50, component.ChannelCollision, "test")

	if !almostEqual(e.HP, 68.5) {
		t.Errorf("HP = %v, want 68.5", e.HP)
	}
	testutil.AssertEqual(t, "alive", e.Dead, false)
}

func TestPlayerShieldOrder(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player
	p.AddShield(10, parameter.AegisDuration)
	p.AddShield(20, 2*parameter.AegisDuration)
	start := p.HP

	DamagePlayer(w, 25, component.ChannelDrain, "probe")
	testutil.AssertEqual(t, "hp untouched", p.HP, start)
	testutil.AssertEqual(t, "chunks left", len(p.Shields), 1)
	testutil.AssertEqual(t, "newest remains", p.Shields[0].Amount, 5.0)

	lost := DamagePlayer(w, 20, component.ChannelDrain, "probe")
	testutil.AssertEqual(t, "hp lost", lost, 15.0)
	testutil.AssertEqual(t, "shields gone", len(p.Shields), 0)
	testutil.AssertEqual(t, "breakdown", p.DamageTaken["probe"], 15.0)
}

func TestPlayerArmorCapUpgrade(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player
	p.Stats[component.StatArmor].Base = 1e9
	testutil.AssertEqual(t, "default cap", PlayerDefense(p).ArmorCap, parameter.ArmorCap)
	p.Stats[component.StatArmorCap].Base = 1
	testutil.AssertEqual(t, "upgraded cap", PlayerDefense(p).ArmorCap, parameter.ArmorCapUpgraded)
}

func TestPlayerReviveThenDeath(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player
	p.ReviveCharges = 1

	DamagePlayer(w, 1e6, component.ChannelDrain, "big hit")
	testutil.AssertEqual(t, "revived", p.Dead, false)
	testutil.AssertEqual(t, "revive hp", p.HP, p.MaxHP()*parameter.ReviveHealFraction)
	testutil.AssertEqual(t, "charges", p.ReviveCharges, 0)
	testutil.AssertEqual(t, "invulnerable drops hits", DamagePlayer(w, 10, component.ChannelDrain, "x"), 0.0)

	p.Invulnerable = 0
	DamagePlayer(w, 1e6, component.ChannelDrain, "square")
	testutil.AssertEqual(t, "dead", p.Dead, true)
	testutil.AssertEqual(t, "cause", p.DeathCause, "square")
	testutil.AssertEqual(t, "phase", w.Phase, engine.PhaseEnded)
	testutil.AssertEqual(t, "hp floor", p.HP, 0.0)
}

func TestLegionShieldAbsorbsFirst(t *testing.T) {
	w := newTestWorld(t)
	e := addEnemy(w, component.ShapeSquare, vmath.V(100, 0), 50)
	e.Roles = component.RoleLegion
	e.LegionID = 3
	w.Legions[3] = &component.Legion{ID: 3, Members: core.EntityList{e.ID}, Shield: 30, Assembled: true}

	DamageEnemy(w, e, 40, component.ChannelArea, "test")
	testutil.AssertEqual(t, "legion shield", w.Legions[3].Shield, 0.0)
	testutil.AssertEqual(t, "hp", e.HP, 40.0)
}

func TestSoulLinkSharesDamage(t *testing.T) {
	w := newTestWorld(t)
	host := addEnemy(w, component.ShapeUnique, vmath.V(0, 100), 100)
	a := addEnemy(w, component.ShapeCircle, vmath.V(0, 120), 100)
	b := addEnemy(w, component.ShapeCircle, vmath.V(0, 140), 100)
	for _, peer := range []*component.Enemy{a, b} {
		peer.Roles = component.RoleSoulLinked
		peer.SoulLinkHostID = host.ID
		host.SoulLinkTargets = append(host.SoulLinkTargets, peer.ID)
	}

	DamageEnemy(w, a, 30, component.ChannelArea, "test")
	for _, e := range []*component.Enemy{host, a, b} {
		testutil.AssertEqual(t, "shared hp", e.HP, 90.0)
	}

	KillEnemy(w, host)
	testutil.AssertEqual(t, "links cleared", a.Roles.Has(component.RoleSoulLinked), false)
	DamageEnemy(w, a, 30, component.ChannelArea, "test")
	testutil.AssertEqual(t, "unshared hp", a.HP, 60.0)
}

func TestBossThornsReflect(t *testing.T) {
	w := newTestWorld(t)
	boss := addEnemy(w, component.ShapeSquare, vmath.V(100, 0), 1000)
	boss.Tier = component.TierBoss
	boss.Boss = component.NewBossLayer(component.ShapeSquare, 0, 0)
	boss.Boss.Tier2.Remaining = parameter.BossThornsDuration
	start := w.Player.HP

	DamageEnemy(w, boss, 100, component.ChannelProjectile, "bolt")
	if !almostEqual(start-w.Player.HP, 100*parameter.BossThornsReflect) {
		t.Errorf("reflected %v", start-w.Player.HP)
	}
	testutil.AssertEqual(t, "thorns cause", w.Player.DamageTaken["boss thorns"] > 0, true)
}
