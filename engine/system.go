package engine

import (
	"time"

	"github.com/lixenwraith/resonance-arena/event"
)

// System is one stage of the tick pipeline
// Update receives the world handle explicitly; systems keep no global state
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(world *World, dt time.Duration)
}

// EventHandler consumes queued side effects at the end of each tick
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(world *World, ev event.GameEvent)
}

// Resetter is implemented by systems holding per-run state
type Resetter interface {
	Init()
}
