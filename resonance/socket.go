package resonance

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

var (
	ErrSlotRange     = errors.New("slot out of range")
	ErrSlotOccupied  = errors.New("slot occupied")
	ErrSlotEmpty     = errors.New("slot empty")
	ErrDuplicateHex  = errors.New("hex already socketed")
	ErrMaxLevel      = errors.New("hex at max level")
	ErrUnknownHex    = errors.New("unknown hex type")
	ErrNoFreeHexSlot = errors.New("no free hex slot")
)

// PlaceHex sockets a new hex at level 1, stamping acquisition and level 1 at once
func PlaceHex(g *component.SocketGrid, slot int, t component.HexType, kills int, at time.Duration) error {
	if slot < 0 || slot >= parameter.HexSlotCount {
		return fmt.Errorf("place hex %d: %w", slot, ErrSlotRange)
	}
	if t == component.HexNone || t >= component.HexCount {
		return fmt.Errorf("place hex %d: %w", slot, ErrUnknownHex)
	}
	if !g.Hexes[slot].Empty() {
		return fmt.Errorf("place hex %d: %w", slot, ErrSlotOccupied)
	}
	if g.FindHex(t) >= 0 {
		return fmt.Errorf("place %s: %w", t, ErrDuplicateHex)
	}

	hex := component.HexSlot{Type: t, Level: 1, AcquiredKills: kills, AcquiredAt: at}
	hex.LevelKills[1], hex.LevelAt[1], hex.LevelSet[1] = kills, at, true
	g.Hexes[slot] = hex
	return nil
}

// LevelUpHex raises a hex by one level; each level stamp is written exactly once
func LevelUpHex(g *component.SocketGrid, slot int, kills int, at time.Duration) error {
	if slot < 0 || slot >= parameter.HexSlotCount {
		return fmt.Errorf("level hex %d: %w", slot, ErrSlotRange)
	}
	hex := &g.Hexes[slot]
	if hex.Empty() {
		return fmt.Errorf("level hex %d: %w", slot, ErrSlotEmpty)
	}
	if hex.Level >= parameter.MaxHexLevel {
		return fmt.Errorf("level %s: %w", hex.Type, ErrMaxLevel)
	}
	hex.Level++
	if !hex.LevelSet[hex.Level] {
		hex.LevelKills[hex.Level] = kills
		hex.LevelAt[hex.Level] = at
		hex.LevelSet[hex.Level] = true
	}
	return nil
}

// PlaceShard sockets a shard, returning the one it replaced
func PlaceShard(g *component.SocketGrid, slot int, s *component.Shard) (*component.Shard, error) {
	if slot < 0 || slot >= parameter.ShardSlotCount {
		return nil, fmt.Errorf("place shard %d: %w", slot, ErrSlotRange)
	}
	if s == nil {
		return nil, fmt.Errorf("place shard %d: %w", slot, ErrSlotEmpty)
	}
	prev := g.Shards[slot]
	g.Shards[slot] = s
	return prev, nil
}

// RemoveShard empties a shard slot, returning what was there
func RemoveShard(g *component.SocketGrid, slot int) (*component.Shard, error) {
	if slot < 0 || slot >= parameter.ShardSlotCount {
		return nil, fmt.Errorf("remove shard %d: %w", slot, ErrSlotRange)
	}
	prev := g.Shards[slot]
	if prev == nil {
		return nil, fmt.Errorf("remove shard %d: %w", slot, ErrSlotEmpty)
	}
	g.Shards[slot] = nil
	return prev, nil
}

// SetClass sets the center socket and rebinds the player's skills
func SetClass(g *component.SocketGrid, p *component.Player, c component.Class) {
	g.Class = c
	if p != nil {
		p.SetClass(c)
	}
}

// LegendaryOptions offers up to n hex choices: unsocketed types while a slot is free,
// then level-ups of socketed hexes below max
func LegendaryOptions(g *component.SocketGrid, rng *vmath.FastRand, n int) []component.HexType {
	var pool []component.HexType
	free := false
	for i := range g.Hexes {
		if g.Hexes[i].Empty() {
			free = true
			break
		}
	}
	for t := component.HexEcoXP; t < component.HexCount; t++ {
		h := g.FindHex(t)
		switch {
		case h < 0 && free:
			pool = append(pool, t)
		case h >= 0 && g.Hexes[h].Level < parameter.MaxHexLevel:
			pool = append(pool, t)
		}
	}
	// Partial Fisher-Yates
	for i := 0; i < len(pool) && i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// ApplyLegendary levels t when socketed, otherwise places it in the first free slot
func ApplyLegendary(g *component.SocketGrid, t component.HexType, kills int, at time.Duration) error {
	if h := g.FindHex(t); h >= 0 {
		return LevelUpHex(g, h, kills, at)
	}
	for i := range g.Hexes {
		if g.Hexes[i].Empty() {
			return PlaceHex(g, i, t, kills, at)
		}
	}
	return fmt.Errorf("apply %s: %w", t, ErrNoFreeHexSlot)
}
