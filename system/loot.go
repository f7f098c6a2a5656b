package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/resonance"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// LootSystem moves and collects pickups
type LootSystem struct {
	statActive    *atomic.Int64
	statCollected *atomic.Int64
}

func NewLootSystem(world *engine.World) *LootSystem {
	return &LootSystem{
		statActive:    world.Status.Ints.Get("loot.active"),
		statCollected: world.Status.Ints.Get("loot.collected"),
	}
}

func (s *LootSystem) Name() string  { return "loot" }
func (s *LootSystem) Priority() int { return parameter.PriorityLoot }

func (s *LootSystem) Update(w *engine.World, dt time.Duration) {
	p := w.Player
	sec := dt.Seconds()
	radius := p.Stat(component.StatPickupRadius)

	for _, pk := range w.Pickups {
		if pk.Collected {
			continue
		}
		pk.Age += dt
		if pk.Age >= parameter.PickupLifetime {
			pk.Collected = true
			continue
		}
		if !pk.Attracted && vmath.WithinRadius(pk.Pos, p.Pos, radius) {
			pk.Attracted = true
		}
		if pk.Attracted {
			step := parameter.PickupAttract * sec
			if pk.Pos.Dist(p.Pos) <= step {
				pk.Pos = p.Pos
			} else {
				pk.Pos = pk.Pos.Add(vmath.Toward(pk.Pos, p.Pos).Scale(step))
			}
		}
		if vmath.WithinRadius(pk.Pos, p.Pos, parameter.PickupCollectAt+parameter.PlayerRadius) {
			collect(w, pk)
			s.statCollected.Add(1)
		}
	}

	live := w.Pickups[:0]
	for _, pk := range w.Pickups {
		if !pk.Collected {
			live = append(live, pk)
		}
	}
	clear(w.Pickups[len(live):])
	w.Pickups = live
	s.statActive.Store(int64(len(w.Pickups)))
}

func collect(w *engine.World, pk *component.Pickup) {
	pk.Collected = true
	p := w.Player
	switch pk.Kind {
	case component.PickupXP:
		GrantXP(w, pk.Value)
	case component.PickupHeal:
		p.Heal(pk.Value)
		w.Cue("heal")
	case component.PickupMagnet:
		for _, other := range w.Pickups {
			if other.Kind == component.PickupXP && !other.Collected &&
				vmath.WithinRadius(other.Pos, p.Pos, parameter.LootMagnetRange) {
				other.Attracted = true
			}
		}
		w.Cue("magnet")
	case component.PickupShard:
		socketShard(w, pk.Shard)
		w.Cue("shard")
	}
}

// socketShard places a shard in the first empty inner slot, then outer
// A full grid swaps it for the weakest shard when it is of higher rarity
func socketShard(w *engine.World, s *component.Shard) {
	if s == nil {
		return
	}
	g := w.Sockets
	weakest := -1
	for i, cur := range g.Shards {
		if cur == nil {
			if _, err := resonance.PlaceShard(g, i, s); err == nil {
				return
			}
			continue
		}
		if weakest < 0 || cur.Rarity < g.Shards[weakest].Rarity {
			weakest = i
		}
	}
	if weakest >= 0 && g.Shards[weakest].Rarity < s.Rarity {
		if _, err := resonance.PlaceShard(g, weakest, s); err != nil {
			w.Log.WithError(err).Debug("shard swap rejected")
		}
	}
}

// rollLoot drops pickups for a kill; rare drops gain pity on every miss
func rollLoot(w *engine.World, e *component.Enemy) {
	rng := w.Rng
	pity := float64(w.LootMisses) * parameter.LootPityStep

	if rng.Chance(parameter.LootXPChance) || e.Tier != component.TierNormal {
		value := parameter.LootXPShardValue
		switch e.Tier {
		case component.TierElite:
			value *= parameter.XPElite
		case component.TierBoss:
			value *= parameter.XPBoss
		}
		dropPickup(w, component.PickupXP, e.Pos, value, nil)
	}

	switch {
	case rng.Chance(parameter.LootMagnetChance + pity/4):
		dropPickup(w, component.PickupMagnet, e.Pos, 0, nil)
		w.LootMisses = 0
	case rng.Chance(parameter.LootHealChance + pity):
		dropPickup(w, component.PickupHeal, e.Pos, parameter.LootHealAmount, nil)
		w.LootMisses = 0
	default:
		w.LootMisses++
	}

	if e.IsBoss() || (e.IsElite() && rng.Chance(parameter.LootShardEliteChance)) {
		dropPickup(w, component.PickupShard, e.Pos, 0, RollShard(rng, e.Tier))
	}
}

func dropPickup(w *engine.World, kind component.PickupKind, pos vmath.Vec2, value float64, s *component.Shard) {
	w.Pickups = append(w.Pickups, &component.Pickup{Kind: kind, Pos: pos, Value: value, Shard: s})
}

// RollShard creates a shard graded by the dropping tier
func RollShard(rng *vmath.FastRand, tier component.Tier) *component.Shard {
	rarity := component.RarityCommon
	roll := rng.Float64()
	switch {
	case tier == component.TierBoss && roll < 0.3:
		rarity = component.RarityLegendary
	case tier == component.TierBoss:
		rarity = component.RarityEpic
	case roll < 0.05:
		rarity = component.RarityEpic
	case roll < 0.2:
		rarity = component.RarityRare
	case roll < 0.5:
		rarity = component.RarityUncommon
	}

	s := &component.Shard{Rarity: rarity, Quality: rng.Range(0, 100)}
	for i := 0; i <= int(rarity); i++ {
		s.Perks = append(s.Perks, component.Perk{
			Kind: component.PerkKind(rng.Intn(int(component.PerkKeystone) + 1)),
			Base: rng.Range(parameter.ShardPerkBaseMin, parameter.ShardPerkBaseMax),
		})
	}
	return s
}
