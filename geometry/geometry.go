// Package geometry is the read-only arena layout the simulation queries for
// movement validity and kiting decisions
package geometry

import (
	"math"

	"github.com/lixenwraith/resonance-arena/vmath"
)

// Map is the arena geometry service
type Map interface {
	// Centers returns every arena center
	Centers() []vmath.Vec2
	// Radius returns the arena radius
	Radius() float64
	// Walls returns portal wall segments between arenas
	Walls() []Segment
	// InBounds reports whether a point is walkable
	InBounds(p vmath.Vec2) bool
	// ArenaAt returns the index of the arena containing p, -1 outside all arenas
	ArenaAt(p vmath.Vec2) int
	// Clamp projects p onto the walkable area
	Clamp(p vmath.Vec2) vmath.Vec2
}

// Segment is a wall segment
type Segment struct {
	A, B vmath.Vec2
}

// ClosestPoint returns the point on the segment nearest to p
func (s Segment) ClosestPoint(p vmath.Vec2) vmath.Vec2 {
	ab := s.B.Sub(s.A)
	l := ab.LenSq()
	if l == 0 {
		return s.A
	}
	t := vmath.Clamp(p.Sub(s.A).Dot(ab)/l, 0, 1)
	return s.A.Add(ab.Scale(t))
}

// Arenas is a chain of circular arenas joined by corridors through portal walls
type Arenas struct {
	centers  []vmath.Vec2
	radius   float64
	corridor float64 // half-width of the passage between neighbors
	walls    []Segment
}

// NewArenas lays out count arenas along the x axis, each touching its neighbor
func NewArenas(count int, radius, corridor float64) *Arenas {
	count = max(1, count)
	a := &Arenas{radius: radius, corridor: corridor}
	for i := 0; i < count; i++ {
		a.centers = append(a.centers, vmath.V(float64(i)*2*radius, 0))
	}
	for i := 0; i+1 < count; i++ {
		x := a.centers[i].X + radius
		// Wall pieces above and below the corridor opening
		a.walls = append(a.walls,
			Segment{A: vmath.V(x, corridor), B: vmath.V(x, radius)},
			Segment{A: vmath.V(x, -radius), B: vmath.V(x, -corridor)},
		)
	}
	return a
}

func (a *Arenas) Centers() []vmath.Vec2 { return a.centers }
func (a *Arenas) Radius() float64       { return a.radius }
func (a *Arenas) Walls() []Segment      { return a.walls }

// ArenaAt returns the nearest arena whose disc contains p
func (a *Arenas) ArenaAt(p vmath.Vec2) int {
	best, bestDist := -1, math.MaxFloat64
	for i, c := range a.centers {
		d := c.DistSq(p)
		if d <= a.radius*a.radius && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// InBounds accepts points inside any arena disc or inside a corridor
func (a *Arenas) InBounds(p vmath.Vec2) bool {
	if a.ArenaAt(p) >= 0 {
		return true
	}
	return a.inCorridor(p)
}

func (a *Arenas) inCorridor(p vmath.Vec2) bool {
	if math.Abs(p.Y) > a.corridor || len(a.centers) < 2 {
		return false
	}
	return p.X >= a.centers[0].X && p.X <= a.centers[len(a.centers)-1].X
}

// Clamp pulls an out-of-bounds point back onto the nearest arena rim
func (a *Arenas) Clamp(p vmath.Vec2) vmath.Vec2 {
	if a.InBounds(p) {
		return p
	}
	best, bestDist := p, math.MaxFloat64
	for _, c := range a.centers {
		q := c.Add(p.Sub(c).ClampLen(a.radius))
		if d := q.DistSq(p); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}
