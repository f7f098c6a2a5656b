// Package resonance derives multipliers from the socket grid
// Every function is pure over the grid and recomputed each tick, nothing is cached
package resonance

import (
	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/parameter"
)

const ring = parameter.InnerRingSize

// Neighbors returns adjacent shard slots
// Inner i touches inner i±1 and its outer mirror i+6; outer j touches only inner j-6
func Neighbors(slot int) []int {
	switch {
	case slot >= 0 && slot < ring:
		return []int{(slot + ring - 1) % ring, (slot + 1) % ring, slot + ring}
	case slot >= ring && slot < parameter.ShardSlotCount:
		return []int{slot - ring}
	default:
		return nil
	}
}

// Mirror returns the mirror partner of a shard slot, -1 when out of range
func Mirror(slot int) int {
	switch {
	case slot >= 0 && slot < ring:
		return slot + ring
	case slot >= ring && slot < parameter.ShardSlotCount:
		return slot - ring
	default:
		return -1
	}
}

// HexShardSlots returns the four shard slots feeding hex slot h: h, h+6, m, m+6 with m = (h+1) mod 6
func HexShardSlots(h int) [4]int {
	m := (h + 1) % ring
	return [4]int{h, h + ring, m, m + ring}
}

// adjacentHexes returns hex slots whose shard set covers the inner column of slot
func adjacentHexes(slot int) [2]int {
	i := slot % ring
	return [2]int{i, (i + ring - 1) % ring}
}

// perkCount counts qualifying neighbors or partners for one perk
func perkCount(g *component.SocketGrid, slot int, self *component.Shard, kind component.PerkKind) int {
	count := 0
	switch kind {
	case component.PerkLattice:
		for _, n := range Neighbors(slot) {
			if g.Shards[n] != nil {
				count++
			}
		}
	case component.PerkHarmonic:
		for _, n := range Neighbors(slot) {
			if s := g.Shards[n]; s != nil && s.Rarity == self.Rarity {
				count++
			}
		}
	case component.PerkPrism:
		for _, n := range Neighbors(slot) {
			if s := g.Shards[n]; s != nil && s.Rarity > self.Rarity {
				count++
			}
		}
	case component.PerkMirror:
		if m := Mirror(slot); m >= 0 && g.Shards[m] != nil {
			count = 1
		}
	case component.PerkKeystone:
		for _, h := range adjacentHexes(slot) {
			if !g.Hexes[h].Empty() {
				count++
			}
		}
	}
	return count
}

// MeteoriteEfficiency sums the perk contributions of the shard in slot as a fraction
// value = count * (base * (1 + quality*scale) + boost), clamped at zero
func MeteoriteEfficiency(g *component.SocketGrid, slot int, boost float64) float64 {
	if g == nil || slot < 0 || slot >= parameter.ShardSlotCount {
		return 0
	}
	shard := g.Shards[slot]
	if shard == nil {
		return 0
	}
	quality := max(0, shard.Quality)
	total := 0.0
	for _, p := range shard.Perks {
		count := perkCount(g, slot, shard, p.Kind)
		if count == 0 {
			continue
		}
		total += float64(count) * (p.Base*(1+quality*parameter.ShardQualityScale) + boost)
	}
	return max(0, total)
}

// ChassisResonance is the summed efficiency of the inner ring
func ChassisResonance(g *component.SocketGrid, boost float64) float64 {
	total := 0.0
	for slot := 0; slot < ring; slot++ {
		total += MeteoriteEfficiency(g, slot, boost)
	}
	return total
}

// HexSlotMultiplier is 1 + efficiency of the four shards feeding hex slot h
func HexSlotMultiplier(g *component.SocketGrid, h int, boost float64) float64 {
	if h < 0 || h >= parameter.HexSlotCount {
		return 1
	}
	total := 0.0
	for _, s := range HexShardSlots(h) {
		total += MeteoriteEfficiency(g, s, boost)
	}
	return 1 + total
}

// HexMultiplier resolves the socket holding t, 1 when not socketed
func HexMultiplier(g *component.SocketGrid, t component.HexType, boost float64) float64 {
	if g == nil {
		return 1
	}
	h := g.FindHex(t)
	if h < 0 {
		return 1
	}
	return HexSlotMultiplier(g, h, boost)
}

// LegendaryBonus sums every socketed hex's contribution to stat
// Kill-scaling unlocks add (kills since the unlock level) * rate * hex multiplier,
// the rest add their flat value * hex multiplier.
// skipMultiplier evaluates hexes at multiplier 1, which breaks the recursion through
// the resonance boost term that the multiplier itself depends on
func LegendaryBonus(g *component.SocketGrid, kills int, stat component.StatKey, skipMultiplier bool) float64 {
	if g == nil {
		return 0
	}

	boost := 0.0
	if !skipMultiplier {
		boost = LegendaryBonus(g, kills, component.BonusResonanceBoost, true)
	}

	total := 0.0
	for h := range g.Hexes {
		hex := &g.Hexes[h]
		if hex.Empty() {
			continue
		}
		mult := 1.0
		if !skipMultiplier {
			mult = HexSlotMultiplier(g, h, boost)
		}
		for _, u := range Catalog(hex.Type).Unlocks {
			if u.Stat != stat || hex.Level < u.Level {
				continue
			}
			if u.Rate != 0 {
				since := max(0, kills-hex.KillsAtLevel(u.Level))
				total += float64(since) * u.Rate * mult
			} else {
				total += u.Flat * mult
			}
		}
	}
	return max(0, total)
}

// Boost returns the global resonance boost term fed into efficiency
func Boost(g *component.SocketGrid, kills int) float64 {
	return LegendaryBonus(g, kills, component.BonusResonanceBoost, true)
}
