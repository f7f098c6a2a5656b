package component

import (
	"time"

	"github.com/lixenwraith/resonance-arena/parameter"
)

// HexType names a leveled persistent modifier
type HexType uint8

const (
	HexNone HexType = iota
	HexEcoXP
	HexBulwark
	HexFury
	HexVital
	HexEcho
	HexAmplifier
	HexCount
)

func (h HexType) String() string {
	switch h {
	case HexEcoXP:
		return "EcoXP"
	case HexBulwark:
		return "Bulwark"
	case HexFury:
		return "Fury"
	case HexVital:
		return "Vital"
	case HexEcho:
		return "Echo"
	case HexAmplifier:
		return "Amplifier"
	default:
		return "None"
	}
}

// HexSlot is one outer socket; stamp arrays are indexed by level
type HexSlot struct {
	Type          HexType
	Level         int
	AcquiredKills int
	AcquiredAt    time.Duration

	LevelKills [parameter.MaxHexLevel + 1]int
	LevelAt    [parameter.MaxHexLevel + 1]time.Duration
	LevelSet   [parameter.MaxHexLevel + 1]bool
}

// Empty reports an unoccupied socket
func (h *HexSlot) Empty() bool {
	return h.Type == HexNone || h.Level <= 0
}

// KillsAtLevel returns the kill stamp for a level, falling back to acquisition
func (h *HexSlot) KillsAtLevel(level int) int {
	if level >= 1 && level <= parameter.MaxHexLevel && h.LevelSet[level] {
		return h.LevelKills[level]
	}
	return h.AcquiredKills
}

// Rarity grades a shard
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// PerkKind selects the neighbor qualifier of a perk
type PerkKind uint8

const (
	PerkLattice  PerkKind = iota // any neighbor shard
	PerkHarmonic                 // neighbor of same rarity
	PerkMirror                   // mirror partner present
	PerkPrism                    // neighbor of higher rarity
	PerkKeystone                 // adjacent hex socket occupied
)

// Perk is one resonance contribution of a shard
type Perk struct {
	Kind PerkKind
	Base float64
}

// Shard is an inner socket item
type Shard struct {
	Rarity  Rarity
	Quality float64 // 0-100
	Perks   []Perk
}

// SocketGrid is the run-persistent resonance board
// Shards 0-5 form the inner ring, 6-11 the outer ring mirrored on i-6
type SocketGrid struct {
	Hexes  [parameter.HexSlotCount]HexSlot
	Shards [parameter.ShardSlotCount]*Shard
	Class  Class
}

// FindHex returns the slot index holding a hex type, -1 if absent
func (g *SocketGrid) FindHex(t HexType) int {
	for i := range g.Hexes {
		if g.Hexes[i].Type == t && !g.Hexes[i].Empty() {
			return i
		}
	}
	return -1
}
