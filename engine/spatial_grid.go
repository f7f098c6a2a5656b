package engine

import (
	"math"

	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

type cellKey struct {
	X, Y int32
}

// SpatialEntry is one indexed body
type SpatialEntry struct {
	ID     core.Entity
	Pos    vmath.Vec2
	Radius float64
}

// SpatialGrid is a sparse uniform grid over world coordinates
// Rebuilt once per tick; entries are bucketed by center, queries widen by the largest radius seen
type SpatialGrid struct {
	cellSize  float64
	cells     map[cellKey][]SpatialEntry
	used      []cellKey
	maxRadius float64
	count     int
}

// NewSpatialGrid creates a grid with the given cell edge length
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = parameter.SpatialCellSize
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]SpatialEntry),
	}
}

func (g *SpatialGrid) key(x, y float64) cellKey {
	return cellKey{X: int32(math.Floor(x / g.cellSize)), Y: int32(math.Floor(y / g.cellSize))}
}

// Insert adds a body, amortized O(1)
func (g *SpatialGrid) Insert(id core.Entity, pos vmath.Vec2, radius float64) {
	k := g.key(pos.X, pos.Y)
	bucket, ok := g.cells[k]
	if !ok || len(bucket) == 0 {
		g.used = append(g.used, k)
	}
	g.cells[k] = append(bucket, SpatialEntry{ID: id, Pos: pos, Radius: radius})
	if radius > g.maxRadius {
		g.maxRadius = radius
	}
	g.count++
}

// Clear empties every bucket while keeping their backing arrays
func (g *SpatialGrid) Clear() {
	for _, k := range g.used {
		g.cells[k] = g.cells[k][:0]
	}
	g.used = g.used[:0]
	g.maxRadius = 0
	g.count = 0
}

// Count returns the number of indexed bodies
func (g *SpatialGrid) Count() int {
	return g.count
}

// QueryRadius returns candidate ids whose cell neighborhood intersects the circle
// Callers re-check exact distance; r <= 0 yields an empty non-nil slice
func (g *SpatialGrid) QueryRadius(x, y, r float64) []core.Entity {
	return g.QueryRadiusBuf(make([]core.Entity, 0, parameter.SpatialQueryReserve), x, y, r)
}

// QueryRadiusBuf appends candidates into dst, for callers reusing a buffer
func (g *SpatialGrid) QueryRadiusBuf(dst []core.Entity, x, y, r float64) []core.Entity {
	if dst == nil {
		dst = make([]core.Entity, 0)
	}
	if r <= 0 || g.count == 0 {
		return dst
	}
	reach := r + g.maxRadius + parameter.SpatialQuerySlack
	lo := g.key(x-reach, y-reach)
	hi := g.key(x+reach, y+reach)
	for cy := lo.Y; cy <= hi.Y; cy++ {
		for cx := lo.X; cx <= hi.X; cx++ {
			for _, e := range g.cells[cellKey{X: cx, Y: cy}] {
				dst = append(dst, e.ID)
			}
		}
	}
	return dst
}
