package parameter

import "time"

// Armor curve: reduction = armor / (armor + ArmorK), capped
const (
	ArmorK           = 100.0
	ArmorCap         = 0.95
	ArmorCapUpgraded = 0.97

	// ReducerCap bounds collision and projectile percentage reducers
	ReducerCap = 0.80
)

// Contact
const (
	// ContactHitCooldown is the per-enemy window between contact hits on the player
	ContactHitCooldown = 500 * time.Millisecond

	// ContactKnockback is the impulse applied to the player on contact
	ContactKnockback = 180.0

	// KnockbackDecay is the exponential decay rate of knockback velocity (1/s)
	KnockbackDecay = 8.0
)

// Rewards
const (
	ScoreNormal = 1.0
	ScoreElite  = 5.0
	ScoreBoss   = 50.0
	ScoreUnique = 20.0
	ScoreMinion = 0.5
	// ScoreReanimatedMult scales rewards from units that already died once
	ScoreReanimatedMult = 0.5

	XPNormal = 1.0
	XPElite  = 6.0
	XPBoss   = 60.0
	XPUnique = 25.0
	XPMinion = 0.5

	InitialXPNeeded = 10.0
	LevelXPGrowth   = 1.10
)

// Reanimation
const (
	// ReanimatedHPFraction is the max HP fraction a reanimated unit returns with
	ReanimatedHPFraction = 0.5
)
