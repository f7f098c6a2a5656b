package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
	"github.com/lixenwraith/resonance-arena/geometry"
	"github.com/lixenwraith/resonance-arena/vmath"
)

func newTestWorld(t *testing.T) *engine.World {
	t.Helper()
	return engine.NewWorld(engine.WorldConfig{Seed: 7, Geometry: geometry.NewArenas(1, 2000, 0)})
}

// addEnemy stores a plain hostile enemy without archetype scaling
func addEnemy(w *engine.World, shape component.Shape, pos vmath.Vec2, hp float64) *component.Enemy {
	e := &component.Enemy{
		Shape:           shape,
		Pos:             pos,
		HP:              hp,
		MaxHP:           hp,
		Speed:           100,
		Size:            10,
		TakenMultiplier: 1,
		ContactDamage:   5,
		Brain:           component.NewBrain(shape, component.UniqueNone),
	}
	w.Enemies.Spawn(e)
	return e
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// drainEvents consumes the queue and counts events of one type
func drainEvents(w *engine.World, typ event.EventType) int {
	n := 0
	for _, ev := range w.Events.Consume() {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
