package parameter

import "time"

// Director Scheduling
const (
	// DirectorCheckInterval is the cadence of event rolls
	DirectorCheckInterval = 2 * time.Minute

	// DirectorGeneralGate is the minimum elapsed time before random events may roll
	DirectorGeneralGate = 4 * time.Minute

	// DirectorGeneralChance is the flat probability of a random event per check
	DirectorGeneralChance = 0.35

	// DirectorFamilyGate is the global gate for scheduled family events
	DirectorFamilyGate = 10 * time.Minute

	// DirectorFamilyCycle is the window in which each family may start at most once
	DirectorFamilyCycle = 5 * time.Minute

	// DirectorFamilyChance is the probability a family event starts when eligible
	DirectorFamilyChance = 0.5
)

// Timed Events
const (
	// BloodMoonDuration is the length of the blood moon (hostile reanimation window)
	BloodMoonDuration = 60 * time.Second

	// BloodMoonZombieChance is the corpse-to-zombie probability during blood moon
	BloodMoonZombieChance = 0.25

	// FrenzyDuration is the length of the frenzy event
	FrenzyDuration = 45 * time.Second

	// FrenzySpeedMult scales hostile enemy speed during frenzy
	FrenzySpeedMult = 1.25
)

// Ambush Event (delayed spawn queue)
const (
	AmbushCount   = 12
	AmbushStagger = 250 * time.Millisecond
	AmbushRadius  = 420.0
)

// Legion Event (formation)
const (
	// LegionSize is the member count including the warden lead
	LegionSize = 6

	// LegionShieldPerMember is pooled shield contributed by each member once assembled
	LegionShieldPerMember = 120.0

	// LegionFormationRadius is the ring radius members hold around the lead
	LegionFormationRadius = 90.0

	// LegionSlotTolerance is the distance at which a member counts as in formation
	LegionSlotTolerance = 14.0

	// LegionSpawnRadius is the distance from the player the legion spawns at
	LegionSpawnRadius = 520.0
)

// Soul Web Event
const (
	// SoulWebSize is the linked peer count around the weaver host
	SoulWebSize = 5

	// SoulWebSpawnRadius is the distance from the player the web spawns at
	SoulWebSpawnRadius = 480.0
)

// Ambient Waves
const (
	// WaveBaseInterval is the spawn cadence at run start
	WaveBaseInterval = 1500 * time.Millisecond

	// WaveMinInterval floors the cadence late in the run
	WaveMinInterval = 250 * time.Millisecond

	// WaveIntervalDecayPerMinute shortens the cadence each elapsed minute
	WaveIntervalDecayPerMinute = 60 * time.Millisecond

	// WaveSpawnRadius is the ring distance from the player new enemies appear at
	WaveSpawnRadius = 620.0

	// WaveMaxEnemies caps live enemies; spawns are skipped above it
	WaveMaxEnemies = 400

	// WaveEliteEvery and WaveBossEvery schedule tier escalations
	WaveEliteEvery = 60 * time.Second
	WaveBossEvery  = 5 * time.Minute

	// WaveNeutralChance is the share of ambient spawns that wander until provoked
	WaveNeutralChance = 0.02
)
