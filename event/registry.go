package event

var typeNames = map[EventType]string{
	EventNone:              "none",
	EventCue:               "cue",
	EventParticleBurst:     "particle_burst",
	EventEnemyKilled:       "enemy_killed",
	EventLevelUp:           "level_up",
	EventWorldEventStarted: "world_event_started",
	EventWorldEventEnded:   "world_event_ended",
	EventLegendaryOffered:  "legendary_offered",
	EventPlayerRevived:     "player_revived",
	EventRunEnded:          "run_ended",
}

// String returns the registered event name, used as a log field
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}
