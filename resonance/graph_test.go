package resonance

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/vmath"
	"github.com/pixil98/go-testutil"
)

func shard(r component.Rarity, q float64, perks ...component.Perk) *component.Shard {
	return &component.Shard{Rarity: r, Quality: q, Perks: perks}
}

func perk(k component.PerkKind, base float64) component.Perk {
	return component.Perk{Kind: k, Base: base}
}

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNeighbors(t *testing.T) {
	tests := []struct {
		slot int
		want []int
	}{
		{0, []int{5, 1, 6}},
		{3, []int{2, 4, 9}},
		{5, []int{4, 0, 11}},
		{6, []int{0}},
		{11, []int{5}},
		{12, nil},
		{-1, nil},
	}
	for _, tt := range tests {
		got := Neighbors(tt.slot)
		if len(got) != len(tt.want) {
			t.Errorf("Neighbors(%d) = %v, want %v", tt.slot, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Neighbors(%d) = %v, want %v", tt.slot, got, tt.want)
				break
			}
		}
	}
	if HexShardSlots(5) != [4]int{5, 11, 0, 6} {
		t.Errorf("HexShardSlots(5) = %v", HexShardSlots(5))
	}
}

func TestEmptyGridBaselines(t *testing.T) {
	g := &component.SocketGrid{}
	testutil.AssertEqual(t, "chassis", ChassisResonance(g, 0), 0.0)
	for h := 0; h < 6; h++ {
		testutil.AssertEqual(t, "hex multiplier", HexSlotMultiplier(g, h, 0), 1.0)
	}
	testutil.AssertEqual(t, "missing hex", HexMultiplier(g, component.HexFury, 0), 1.0)
	testutil.AssertEqual(t, "nil grid", HexMultiplier(nil, component.HexFury, 0), 1.0)
	testutil.AssertEqual(t, "legendary", LegendaryBonus(g, 100, component.StatDamage, false), 0.0)
}

func TestMeteoriteEfficiencyPerks(t *testing.T) {
	g := &component.SocketGrid{}
	g.Shards[0] = shard(component.RarityRare, 0,
		perk(component.PerkLattice, 0.10),
		perk(component.PerkHarmonic, 0.05),
		perk(component.PerkPrism, 0.20),
		perk(component.PerkMirror, 0.07),
		perk(component.PerkKeystone, 0.03),
	)
	g.Shards[1] = shard(component.RarityRare, 0)      // same rarity neighbor
	g.Shards[5] = shard(component.RarityLegendary, 0) // higher rarity neighbor
	g.Shards[6] = shard(component.RarityCommon, 0)    // mirror
	g.Hexes[0] = component.HexSlot{Type: component.HexFury, Level: 1}

	// lattice 3, harmonic 1, prism 1, mirror 1, keystone 1 (hex 0 of hexes {0,5})
	want := 3*0.10 + 1*0.05 + 1*0.20 + 1*0.07 + 1*0.03
	if got := MeteoriteEfficiency(g, 0, 0); !almost(got, want) {
		t.Errorf("efficiency = %f, want %f", got, want)
	}

	// Quality scales base, boost adds per counted neighbor
	g.Shards[0].Quality = 50
	g.Shards[0].Perks = []component.Perk{perk(component.PerkLattice, 0.10)}
	want = 3 * (0.10*1.5 + 0.02)
	if got := MeteoriteEfficiency(g, 0, 0.02); !almost(got, want) {
		t.Errorf("efficiency with quality/boost = %f, want %f", got, want)
	}
}

func TestResonanceNonNegative(t *testing.T) {
	rng := vmath.NewFastRand(7)
	kinds := []component.PerkKind{
		component.PerkLattice, component.PerkHarmonic, component.PerkMirror,
		component.PerkPrism, component.PerkKeystone,
	}
	for trial := 0; trial < 200; trial++ {
		g := &component.SocketGrid{}
		for s := range g.Shards {
			if rng.Chance(0.5) {
				continue
			}
			sh := shard(component.Rarity(rng.Intn(5)), rng.Range(-50, 100))
			for p := 0; p < rng.Intn(4); p++ {
				// Negative bases exercise the clamp
				sh.Perks = append(sh.Perks, perk(kinds[rng.Intn(len(kinds))], rng.Range(-0.5, 0.3)))
			}
			g.Shards[s] = sh
		}
		for h := range g.Hexes {
			if rng.Chance(0.5) {
				g.Hexes[h] = component.HexSlot{Type: component.HexType(1 + h), Level: 1 + rng.Intn(5)}
			}
		}

		if c := ChassisResonance(g, 0); c < 0 {
			t.Fatalf("trial %d: chassis %f < 0", trial, c)
		}
		for h := 0; h < 6; h++ {
			if m := HexSlotMultiplier(g, h, 0); m < 1 {
				t.Fatalf("trial %d: hex %d multiplier %f < 1", trial, h, m)
			}
		}
	}
}

func TestLegendaryBonusEcoXP(t *testing.T) {
	g := &component.SocketGrid{}
	if err := PlaceHex(g, 2, component.HexEcoXP, 10, 0); err != nil {
		t.Fatal(err)
	}
	// Feed hex 2 through shards {2, 8, 3, 9}
	g.Shards[2] = shard(component.RarityCommon, 0, perk(component.PerkMirror, 0.1))
	g.Shards[8] = shard(component.RarityCommon, 0)

	mult := HexMultiplier(g, component.HexEcoXP, 0)
	if !almost(mult, 1.1) {
		t.Fatalf("hex multiplier = %f, want 1.1", mult)
	}

	got := LegendaryBonus(g, 60, component.BonusXPPerKill, false)
	if want := 50 * 1 * mult; !almost(got, want) {
		t.Errorf("legendary bonus = %f, want %f", got, want)
	}
	if got := LegendaryBonus(g, 60, component.BonusXPPerKill, true); !almost(got, 50) {
		t.Errorf("skipped multiplier bonus = %f, want 50", got)
	}
}

func TestLegendaryBonusStampFallback(t *testing.T) {
	// A loaded hex without level stamps falls back to acquisition kills
	g := &component.SocketGrid{}
	g.Hexes[0] = component.HexSlot{Type: component.HexEcoXP, Level: 1, AcquiredKills: 10}
	if got := LegendaryBonus(g, 60, component.BonusXPPerKill, true); !almost(got, 50) {
		t.Errorf("fallback bonus = %f, want 50", got)
	}

	// Kills below the stamp never go negative
	if got := LegendaryBonus(g, 5, component.BonusXPPerKill, true); got != 0 {
		t.Errorf("bonus before stamp = %f, want 0", got)
	}
}

func TestLegendaryBonusLevelStamps(t *testing.T) {
	g := &component.SocketGrid{}
	_ = PlaceHex(g, 0, component.HexEcoXP, 0, 0)
	for lvl := 2; lvl <= 5; lvl++ {
		if err := LevelUpHex(g, 0, 100*(lvl-1), 0); err != nil {
			t.Fatal(err)
		}
	}
	// L1 rate 1 since 0 kills, L5 rate 0.5 since 400 kills
	want := 500*1.0 + 100*0.5
	if got := LegendaryBonus(g, 500, component.BonusXPPerKill, true); !almost(got, want) {
		t.Errorf("bonus = %f, want %f", got, want)
	}
}

func TestResonanceBoostRecursion(t *testing.T) {
	g := &component.SocketGrid{}
	_ = PlaceHex(g, 0, component.HexAmplifier, 0, 0)
	g.Shards[0] = shard(component.RarityCommon, 0, perk(component.PerkKeystone, 0.1))

	boost := Boost(g, 0)
	if !almost(boost, 0.02) {
		t.Fatalf("boost = %f, want 0.02", boost)
	}
	// Keystone counts hex 0 only; boost adds once per count
	if got := MeteoriteEfficiency(g, 0, boost); !almost(got, 0.12) {
		t.Errorf("efficiency = %f, want 0.12", got)
	}
	// Full evaluation terminates and scales the flat boost by the hex multiplier
	if got := LegendaryBonus(g, 0, component.BonusResonanceBoost, false); !almost(got, 0.02*1.12) {
		t.Errorf("boost bonus = %f, want %f", got, 0.02*1.12)
	}
}

func TestSocketOperations(t *testing.T) {
	g := &component.SocketGrid{}

	testutil.AssertErrorContains(t, PlaceHex(g, 6, component.HexFury, 0, 0), "out of range")
	if err := PlaceHex(g, 1, component.HexFury, 3, 5); err != nil {
		t.Fatal(err)
	}
	if err := PlaceHex(g, 1, component.HexVital, 0, 0); !errors.Is(err, ErrSlotOccupied) {
		t.Errorf("got %v, want ErrSlotOccupied", err)
	}
	if err := PlaceHex(g, 2, component.HexFury, 0, 0); !errors.Is(err, ErrDuplicateHex) {
		t.Errorf("got %v, want ErrDuplicateHex", err)
	}

	for i := 0; i < 4; i++ {
		if err := LevelUpHex(g, 1, 10+i, 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := LevelUpHex(g, 1, 99, 0); !errors.Is(err, ErrMaxLevel) {
		t.Errorf("got %v, want ErrMaxLevel", err)
	}
	hex := g.Hexes[1]
	testutil.AssertEqual(t, "level", hex.Level, 5)
	testutil.AssertEqual(t, "level 1 stamp", hex.LevelKills[1], 3)
	testutil.AssertEqual(t, "level 3 stamp", hex.LevelKills[3], 11)

	testutil.AssertErrorContains(t, LevelUpHex(g, 0, 0, 0), "slot empty")

	if _, err := PlaceShard(g, 12, shard(0, 0)); !errors.Is(err, ErrSlotRange) {
		t.Errorf("got %v, want ErrSlotRange", err)
	}
	first := shard(component.RarityCommon, 1)
	_, _ = PlaceShard(g, 3, first)
	prev, err := PlaceShard(g, 3, shard(component.RarityEpic, 1))
	if err != nil || prev != first {
		t.Errorf("replace returned %v, %v", prev, err)
	}
	if _, err := RemoveShard(g, 4); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("got %v, want ErrSlotEmpty", err)
	}

	p := component.NewPlayer(vmath.Vec2{})
	SetClass(g, p, component.ClassConduit)
	testutil.AssertEqual(t, "class", g.Class, component.ClassConduit)
	testutil.AssertEqual(t, "first skill", p.Skills[0].ID, component.SkillChannel)
}

func TestLegendaryOptionsAndApply(t *testing.T) {
	g := &component.SocketGrid{}
	rng := vmath.NewFastRand(3)

	opts := LegendaryOptions(g, rng, 3)
	testutil.AssertEqual(t, "options", len(opts), 3)
	seen := map[component.HexType]bool{}
	for _, o := range opts {
		if seen[o] {
			t.Errorf("duplicate option %v", o)
		}
		seen[o] = true
	}

	if err := ApplyLegendary(g, opts[0], 5, 0); err != nil {
		t.Fatal(err)
	}
	if err := ApplyLegendary(g, opts[0], 8, 0); err != nil {
		t.Fatal(err)
	}
	h := g.FindHex(opts[0])
	testutil.AssertEqual(t, "level", g.Hexes[h].Level, 2)
}

func TestApplyToPlayer(t *testing.T) {
	g := &component.SocketGrid{}
	_ = PlaceHex(g, 0, component.HexFury, 0, 0)
	_ = PlaceHex(g, 1, component.HexEcoXP, 0, 0)

	p := component.NewPlayer(vmath.Vec2{})
	p.Kills = 100
	ApplyToPlayer(g, p)

	// Fury: 100 kills * 0.05 percent points
	if got := p.Stats[component.StatDamage].HexMult; !almost(got, 0.05) {
		t.Errorf("damage hex mult = %f, want 0.05", got)
	}
	// EcoXP: 100 kills * 1 xp per kill, flat
	xp := p.Stats[component.StatXPGain]
	if !almost(xp.HexFlat, 100) {
		t.Errorf("xp hex flat = %f, want 100", xp.HexFlat)
	}
	if xp.HexMult != 0 {
		t.Errorf("xp hex mult = %f, want 0", xp.HexMult)
	}

	// Terms are rewritten, not accumulated
	ApplyToPlayer(g, p)
	if got := p.Stats[component.StatDamage].HexMult; !almost(got, 0.05) {
		t.Errorf("second apply damage hex mult = %f", got)
	}
}
