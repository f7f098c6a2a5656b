package parameter

import "time"

// Player Base Stats
const (
	PlayerBaseMaxHP          = 100.0
	PlayerBaseSpeed          = 180.0
	PlayerBaseArmor          = 0.0
	PlayerBaseDamage         = 10.0
	PlayerBaseFireRate       = 1.6 // shots per second
	PlayerBasePierce         = 0.0
	PlayerBaseProjectileSpd  = 520.0
	PlayerBasePickupRadius   = 70.0
	PlayerBaseCritMultiplier = 1.5
	PlayerBaseAreaSize       = 1.0
	PlayerRadius             = 12.0

	PlayerBulletLifetime = 90 // ticks
	PlayerTargetRange    = 600.0
)

// Revive
const (
	ReviveHealFraction = 0.5
	ReviveInvulnerable = 2 * time.Second
)

// Skills
const (
	NovaCooldown = 8 * time.Second
	NovaRadius   = 160.0
	NovaDamage   = 40.0

	BlinkCooldown = 4 * time.Second
	BlinkDistance = 180.0

	AegisCooldown = 12 * time.Second
	AegisShield   = 40.0
	AegisDuration = 6 * time.Second

	ChannelCooldown   = 1 * time.Second
	ChannelRadius     = 120.0
	ChannelDPS        = 18.0
	ChannelMaxTime    = 4 * time.Second
	ChannelPulseEvery = 250 * time.Millisecond

	// OrbitCount is the number of orbiting blades from the orbit skill
	OrbitCount    = 3
	OrbitRadius   = 70.0
	OrbitSpeed    = 3.2 // rad/s
	OrbitCooldown = 10 * time.Second
	OrbitLifetime = 300 // ticks
)

// Area effects
const (
	AreaPulseInterval = 500 * time.Millisecond
	DecalDuration     = 4 * time.Second
)

// LevelUpgrade is one automatic stat increase granted on level-up
type LevelUpgrade struct {
	Stat string
	Flat float64
	Mult float64
}

// LevelUpgrades rotate in order, one per level gained
var LevelUpgrades = []LevelUpgrade{
	{Stat: "damage", Mult: 0.08},
	{Stat: "max_hp", Flat: 10},
	{Stat: "fire_rate", Mult: 0.06},
	{Stat: "speed", Mult: 0.04},
	{Stat: "armor", Flat: 4},
	{Stat: "pickup_radius", Flat: 8},
	{Stat: "regen", Flat: 0.2},
}
