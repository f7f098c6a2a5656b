package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// EventCue requests a fire-and-forget audio cue
	// Trigger: any system | Consumer: cue dispatcher | Payload: *CuePayload
	EventCue

	// EventParticleBurst spawns cosmetic particles
	// Trigger: death, skills, detonations | Consumer: ParticleSystem | Payload: *ParticleBurstPayload
	EventParticleBurst

	// EventEnemyKilled reports a resolved enemy death
	// Trigger: death pipeline | Consumer: telemetry, summary | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventLevelUp reports one gained level, emitted once per level
	// Trigger: experience loop | Consumer: cue dispatcher | Payload: *LevelUpPayload
	EventLevelUp

	// EventWorldEventStarted reports a director event start
	// Trigger: DirectorSystem | Consumer: audio, render | Payload: *WorldEventPayload
	EventWorldEventStarted

	// EventWorldEventEnded reports a director event end
	// Trigger: DirectorSystem | Consumer: audio, render | Payload: *WorldEventPayload
	EventWorldEventEnded

	// EventLegendaryOffered reports boss death and the paused selection
	// Trigger: death pipeline | Consumer: UI collaborator | Payload: *LegendaryPayload
	EventLegendaryOffered

	// EventPlayerRevived reports a consumed revive charge
	// Trigger: PlayerSystem | Consumer: audio | Payload: nil
	EventPlayerRevived

	// EventRunEnded is the single terminal signal of a run
	// Trigger: PlayerSystem | Consumer: summary publisher | Payload: *RunEndedPayload
	EventRunEnded
)

// GameEvent is one queued side effect
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
