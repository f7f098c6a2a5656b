package parameter

import "time"

// Simulation Timing
const (
	// TickRate is the number of fixed simulation steps per second
	TickRate = 60

	// TickInterval is the fixed simulation delta
	TickInterval = time.Second / TickRate

	// MaxCatchUpTicks bounds how many backlogged ticks a single Advance may run
	// Backlog beyond this window is dropped, not fast-forwarded
	MaxCatchUpTicks = 20

	// UnpauseGrace is the delay after resume before ticks advance again
	UnpauseGrace = 500 * time.Millisecond

	// FrameInterval is the presentation cadence of the primary loop (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// BackgroundInterval is the cadence of the secondary timer source while the primary loop is suspended
	BackgroundInterval = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Spatial Grid
const (
	// SpatialCellSize is the edge length of one uniform grid cell in arena units
	// Roughly twice the largest non-boss enemy radius
	SpatialCellSize = 96.0

	// SpatialQueryReserve is the initial capacity of the reusable query buffer
	SpatialQueryReserve = 64

	// SpatialQuerySlack widens queries by the farthest an indexed body moves within one tick
	SpatialQuerySlack = 16.0
)

// Arena Layout
const (
	DefaultArenaCount    = 3
	DefaultArenaRadius   = 1200.0
	DefaultCorridorWidth = 160.0

	// MinArenaRadius keeps spawn rings and kite bands inside the arena
	MinArenaRadius = 400.0
)
