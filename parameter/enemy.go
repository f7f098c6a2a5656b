package parameter

import "time"

// EnemyBaseStats is the per-shape archetype before tier and time scaling
type EnemyBaseStats struct {
	HP            float64
	Speed         float64
	Size          float64
	Armor         float64
	ContactDamage float64
}

// Base archetypes, indexed by component.Shape order
// circle, triangle, square, diamond, pentagon, minion, unique
var EnemyArchetypes = [7]EnemyBaseStats{
	{HP: 30, Speed: 95, Size: 14, Armor: 0, ContactDamage: 8},
	{HP: 22, Speed: 110, Size: 13, Armor: 0, ContactDamage: 7},
	{HP: 70, Speed: 70, Size: 18, Armor: 25, ContactDamage: 12},
	{HP: 26, Speed: 90, Size: 13, Armor: 0, ContactDamage: 6},
	{HP: 90, Speed: 55, Size: 22, Armor: 10, ContactDamage: 10},
	{HP: 8, Speed: 150, Size: 7, Armor: 0, ContactDamage: 4},
	{HP: 600, Speed: 75, Size: 26, Armor: 40, ContactDamage: 18},
}

// Tier scaling
const (
	EliteHPMult     = 6.0
	EliteSizeMult   = 1.5
	EliteDamageMult = 1.6
	BossHPMult      = 60.0
	BossSizeMult    = 2.6
	BossDamageMult  = 2.5

	// EnemyHPGrowthPerMinute scales spawned HP with elapsed run time
	EnemyHPGrowthPerMinute = 0.08
)

// Boss tier unlocks by elapsed run time
const (
	BossTier2After = 10 * time.Minute
	BossTier3After = 20 * time.Minute
)

// Triangle
const (
	TriangleDashInterval  = 5 * time.Second
	TriangleDashDuration  = 450 * time.Millisecond
	TriangleDashSpeedMult = 2.5

	// EliteTriangleChain is the number of back-to-back dashes per elite trigger
	EliteTriangleChain = 3
	// EliteTriangleChainGap is the pause between chained dashes
	EliteTriangleChainGap = 200 * time.Millisecond
)

// Square
const (
	SquareContactMult = 1.5

	EliteSquareSlamInterval = 6 * time.Second
	EliteSquareSlamDelay    = 1 * time.Second
	EliteSquareSlamRadius   = 110.0
	EliteSquareSlamDamage   = 25.0
)

// Circle
const (
	EliteCircleTrailInterval = 500 * time.Millisecond
	EliteCircleTrailRadius   = 40.0
	EliteCircleTrailDuration = 3 * time.Second
	EliteCircleTrailDPS      = 6.0
)

// Diamond
const (
	DiamondPreferredRange = 320.0
	DiamondRangeSlack     = 40.0
	DiamondFireInterval   = 2500 * time.Millisecond
	DiamondBulletSpeed    = 260.0
	DiamondBulletDamage   = 8.0
	DiamondBulletLifetime = 180 // ticks

	EliteDiamondChargeDuration = 1200 * time.Millisecond
	EliteDiamondBeamDuration   = 800 * time.Millisecond
	EliteDiamondCooldown       = 3 * time.Second
	// EliteBeamDamageFraction is beam damage as a fraction of the elite's own max HP
	EliteBeamDamageFraction = 0.12
	BeamLength              = 700.0
	BeamHalfWidth           = 18.0
)

// Pentagon (hive)
const (
	HiveSpawnCycle        = 20 * time.Second
	HiveTelegraphDuration = 3 * time.Second
	HiveMinionCount       = 3
	HiveEliteMinionCount  = 5
	HiveReleaseRange      = 350.0
	HiveAgeLimit          = 60 * time.Second
	HiveReleaseStagger    = 1 * time.Second
	HiveBlinkPeriod       = 250 * time.Millisecond
)

// Minion
const (
	MinionOrbitRadius     = 60.0
	MinionOrbitSpeed      = 1.6 // rad/s
	MinionWaverAmplitude  = 0.35
	MinionWaverFrequency  = 3.0 // rad/s
	MinionAimCorrection   = 4.0 // steering rate toward target, 1/s
	MinionOrbitCatchUpMul = 1.5
)

// Boss tier 2 mechanics
const (
	BossBerserkInterval = 10 * time.Second
	BossBerserkDuration = 3 * time.Second
	BossBerserkSpeedMul = 1.8

	BossBarrageInterval = 6 * time.Second
	BossBarrageDashes   = 3

	BossThornsInterval = 8 * time.Second
	BossThornsDuration = 3 * time.Second
	BossThornsReflect  = 0.3

	BossBeamInterval = 7 * time.Second
	BossBeamCharge   = 1 * time.Second
	BossBeamDuration = 800 * time.Millisecond
	BossBeamDamage   = 30.0

	BossChargeInterval = 8 * time.Second
	BossChargeDuration = 900 * time.Millisecond
	BossChargeSpeedMul = 3.0
)

// Boss tier 3 mechanics
const (
	BossPullInterval = 12 * time.Second
	BossPullRadius   = 260.0
	BossPullStrength = 220.0
	BossPullDuration = 3 * time.Second

	BossDeflectInterval = 9 * time.Second
	BossDeflectWindow   = 2 * time.Second

	BossShieldInterval = 10 * time.Second
	BossShieldRadius   = 300.0
	BossShieldAmount   = 60.0

	BossOrbitalInterval = 9 * time.Second
	BossOrbitalStrikes  = 5
	BossOrbitalDelay    = 1200 * time.Millisecond
	BossOrbitalRadius   = 80.0
	BossOrbitalDamage   = 30.0
	BossOrbitalSpread   = 140.0

	BossDrainInterval  = 8 * time.Second
	BossDrainDuration  = 4 * time.Second
	BossDrainRange     = 280.0
	BossDrainPerSecond = 6.0

	// BossTelegraph is the lead time a dash or charge shows before moving
	BossTelegraph = 400 * time.Millisecond
)

// Roles and uniques
const (
	FriendlySeekRange     = 600.0
	FriendlyContactDamage = 10.0
	FriendlyHitCooldown   = 400 * time.Millisecond
	FriendlyLifetime      = 45 * time.Second

	ZombieSpeedMult = 0.8

	NeutralWanderTurn = 1.2 // rad/s
	NeutralSpeedMult  = 0.5

	// SoulLinkRange is the maximum leash between a weaver host and a linked peer
	SoulLinkRange = 420.0
)
