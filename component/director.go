package component

import (
	"time"

	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// WorldEvent names a director event
type WorldEvent uint8

const (
	WorldEventNone WorldEvent = iota
	WorldEventBloodMoon
	WorldEventFrenzy
	WorldEventAmbush
	WorldEventLegion
	WorldEventSoulWeb
	WorldEventCount
)

func (e WorldEvent) String() string {
	switch e {
	case WorldEventBloodMoon:
		return "blood_moon"
	case WorldEventFrenzy:
		return "frenzy"
	case WorldEventAmbush:
		return "ambush"
	case WorldEventLegion:
		return "legion"
	case WorldEventSoulWeb:
		return "soul_web"
	default:
		return "none"
	}
}

// ActiveEvent is the single running director event
type ActiveEvent struct {
	Kind      WorldEvent
	StartedAt time.Duration
	// Remaining is ignored for formation events, which end on member death
	Remaining time.Duration
	LegionID  uint32
	Members   core.EntityList
	HostID    core.Entity
}

// SpawnRequest is a delayed enemy spawn
type SpawnRequest struct {
	Due      time.Duration
	Pos      vmath.Vec2
	Shape    Shape
	Tier     Tier
	Unique   UniqueKind
	Roles    Role
	HPMult   float64
	LegionID uint32
}

// EventRecord is one finished or started event for the run summary
type EventRecord struct {
	Kind      WorldEvent
	StartedAt time.Duration
	EndedAt   time.Duration
}

// DirectorState holds the scheduler's persistent state
type DirectorState struct {
	Active    *ActiveEvent
	NextCheck time.Duration
	// FamilyCycle is the last cycle index a family started in, -1 when never
	FamilyCycle  [WorldEventCount]int
	Queue        []SpawnRequest
	History      []EventRecord
	NextLegionID uint32
}

// NewDirectorState returns a state with no family history
func NewDirectorState(firstCheck time.Duration) DirectorState {
	d := DirectorState{NextCheck: firstCheck, NextLegionID: 1}
	for i := range d.FamilyCycle {
		d.FamilyCycle[i] = -1
	}
	return d
}

// Is reports whether kind is the active event
func (d *DirectorState) Is(kind WorldEvent) bool {
	return d.Active != nil && d.Active.Kind == kind
}

// Legion is a formation sharing one pooled shield once assembled
type Legion struct {
	ID        uint32
	LeadID    core.Entity
	Members   core.EntityList
	Shield    float64
	Assembled bool
}
