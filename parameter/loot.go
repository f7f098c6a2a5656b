package parameter

import "time"

// Loot Drop Rates
const (
	LootHealChance   = 0.02
	LootMagnetChance = 0.005
	LootXPChance     = 0.35
	// LootPityStep raises a drop's chance after each consecutive miss
	LootPityStep = 0.002

	LootHealAmount   = 20.0
	LootXPShardValue = 2.0
	LootMagnetRange  = 2000.0

	PickupLifetime  = 90 * time.Second
	PickupAttract   = 420.0 // speed toward player once inside pickup radius
	PickupCollectAt = 12.0
)

// Particles (cosmetic)
const (
	ParticleMax      = 512
	ParticleLifetime = 600 * time.Millisecond
	ParticleBurst    = 6
	ParticleSpeed    = 120.0
)

// Shard drops
const (
	// LootShardEliteChance is the shard drop chance of an elite; bosses always drop one
	LootShardEliteChance = 0.5
	// ShardPerkBaseMin and ShardPerkBaseMax bound a rolled perk base value
	ShardPerkBaseMin = 0.02
	ShardPerkBaseMax = 0.06
)
