package parameter

// Resonance grid geometry
const (
	HexSlotCount   = 6
	ShardSlotCount = 12
	InnerRingSize  = 6
	MaxHexLevel    = 5
)

// Shard quality scales perk base value: base * (1 + quality * ShardQualityScale)
const ShardQualityScale = 0.01
