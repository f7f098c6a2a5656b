package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/event"
	"github.com/lixenwraith/resonance-arena/geometry"
	"github.com/lixenwraith/resonance-arena/input"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/status"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// Phase is the run-level state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseLegendary
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLegendary:
		return "legendary"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// WorldConfig carries construction-time collaborators
type WorldConfig struct {
	Seed     uint64
	Geometry geometry.Map
	Log      logrus.FieldLogger
	Status   *status.Registry
}

// World is the single mutable simulation state, one mutator at a time
type World struct {
	updateMutex sync.Mutex

	mu       sync.RWMutex
	systems  []System
	handlers map[event.EventType][]EventHandler

	Player    *component.Player
	Enemies   *EnemyStore
	Bullets   []*component.Bullet
	Areas     []*component.AreaEffect
	Pickups   []*component.Pickup
	Particles []component.Particle
	Sockets   *component.SocketGrid
	Director  component.DirectorState
	Legions   map[uint32]*component.Legion
	Grid      *SpatialGrid

	Geometry geometry.Map
	Events   *event.EventQueue
	Status   *status.Registry
	Log      logrus.FieldLogger
	Rng      *vmath.FastRand
	Seed     uint64

	Intent input.Intent

	Tick             uint64
	Elapsed          time.Duration
	Phase            Phase
	LegendaryOptions []component.HexType
	ArenaTime        map[int]time.Duration
	LootMisses       int

	statTick          *atomic.Int64
	statEventsDropped *atomic.Int64
}

// NewWorld creates a world with a fresh run
func NewWorld(cfg WorldConfig) *World {
	if cfg.Geometry == nil {
		cfg.Geometry = geometry.NewArenas(1, 1200, 0)
	}
	if cfg.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		cfg.Log = l
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	w := &World{
		handlers: make(map[event.EventType][]EventHandler),
		Geometry: cfg.Geometry,
		Events:   event.NewEventQueue(),
		Status:   cfg.Status,
		Log:      cfg.Log,
		Rng:      vmath.NewFastRand(cfg.Seed),
		Seed:     cfg.Seed,
		Grid:     NewSpatialGrid(parameter.SpatialCellSize),
		Enemies:  NewEnemyStore(),
	}
	w.statTick = w.Status.Ints.Get("engine.ticks")
	w.statEventsDropped = w.Status.Ints.Get("events.dropped")
	w.Reset()
	return w
}

// Reset starts a new run, keeping systems and collaborators
func (w *World) Reset() {
	start := vmath.Vec2{}
	if centers := w.Geometry.Centers(); len(centers) > 0 {
		start = centers[0]
	}
	w.Player = component.NewPlayer(start)
	w.Enemies.Clear()
	w.Bullets = w.Bullets[:0]
	w.Areas = w.Areas[:0]
	w.Pickups = w.Pickups[:0]
	w.Particles = w.Particles[:0]
	w.Sockets = &component.SocketGrid{}
	w.Director = component.NewDirectorState(parameter.DirectorCheckInterval)
	w.Legions = make(map[uint32]*component.Legion)
	w.Grid.Clear()
	w.Intent = input.Intent{}
	w.Tick = 0
	w.Elapsed = 0
	w.Phase = PhasePlaying
	w.LegendaryOptions = nil
	w.ArenaTime = make(map[int]time.Duration)
	w.LootMisses = 0
	_ = w.Events.Consume()

	for _, s := range w.Systems() {
		if r, ok := s.(Resetter); ok {
			r.Init()
		}
	}
}

// AddSystem adds a system and keeps the pipeline sorted by priority
// Systems that also handle events are registered for their event types
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	if h, ok := system.(EventHandler); ok {
		w.registerLocked(h)
	}
}

// AddHandler registers a non-system event consumer (audio, summary)
func (w *World) AddHandler(h EventHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.registerLocked(h)
}

func (w *World) registerLocked(h EventHandler) {
	for _, t := range h.EventTypes() {
		w.handlers[t] = append(w.handlers[t], h)
	}
}

// Systems returns a copy of the pipeline in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes fn while holding the update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Step runs one fixed tick under the update lock
func (w *World) Step(dt time.Duration) {
	w.RunSafe(func() {
		w.StepLocked(dt)
	})
}

// StepLocked runs one tick: every system in priority order, then event dispatch
// A non-playing phase freezes the simulation
func (w *World) StepLocked(dt time.Duration) {
	if w.Phase != PhasePlaying {
		return
	}

	w.mu.RLock()
	systems := w.systems
	w.mu.RUnlock()

	w.RebuildGrid()
	for _, s := range systems {
		s.Update(w, dt)
		if w.Phase == PhaseEnded {
			break
		}
	}

	w.DispatchEvents()
	w.Tick++
	w.statTick.Store(int64(w.Tick))
	w.statEventsDropped.Store(w.Events.Dropped())
}

// DispatchEvents drains the queue synchronously to registered handlers
// Handlers may push further events, which are dispatched in the same call
func (w *World) DispatchEvents() {
	for round := 0; round < 4; round++ {
		events := w.Events.Consume()
		if len(events) == 0 {
			return
		}
		w.mu.RLock()
		handlers := w.handlers
		w.mu.RUnlock()
		for _, ev := range events {
			for _, h := range handlers[ev.Type] {
				h.HandleEvent(w, ev)
			}
		}
	}
}

// PushEvent queues a side effect tagged with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: eventType, Payload: payload, Tick: w.Tick})
}

// Cue requests a fire-and-forget audio cue
func (w *World) Cue(name string) {
	w.PushEvent(event.EventCue, &event.CuePayload{Name: name})
}

// Burst requests cosmetic particles
func (w *World) Burst(pos vmath.Vec2, count int, palette string) {
	w.PushEvent(event.EventParticleBurst, &event.ParticleBurstPayload{
		Pos: pos, Count: count, Speed: parameter.ParticleSpeed, Palette: palette,
	})
}

// ActiveEvent returns the running director event kind
func (w *World) ActiveEvent() component.WorldEvent {
	if w.Director.Active == nil {
		return component.WorldEventNone
	}
	return w.Director.Active.Kind
}

// RebuildGrid re-indexes every live enemy; spatial queries are valid until the next rebuild
func (w *World) RebuildGrid() {
	w.Grid.Clear()
	for _, e := range w.Enemies.All() {
		if !e.Dead {
			w.Grid.Insert(e.ID, e.Pos, e.Size)
		}
	}
}
