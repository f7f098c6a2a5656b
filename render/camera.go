package render

import (
	"math"

	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// Camera maps world units onto the playfield cells, centered on a focus point
type Camera struct {
	Focus  vmath.Vec2
	X, Y   int // playfield origin on screen
	Width  int
	Height int
}

// ToCell projects a world point; ok is false when it falls off the playfield
func (c Camera) ToCell(p vmath.Vec2) (col, row int, ok bool) {
	dx := (p.X - c.Focus.X) / parameter.CameraUnitsPerCol
	dy := (p.Y - c.Focus.Y) / parameter.CameraUnitsPerRow
	col = c.X + c.Width/2 + int(math.Floor(dx+0.5))
	row = c.Y + c.Height/2 + int(math.Floor(dy+0.5))
	ok = col >= c.X && col < c.X+c.Width && row >= c.Y && row < c.Y+c.Height
	return col, row, ok
}

// ToWorld returns the world point at the center of a cell
func (c Camera) ToWorld(col, row int) vmath.Vec2 {
	return vmath.V(
		c.Focus.X+float64(col-c.X-c.Width/2)*parameter.CameraUnitsPerCol,
		c.Focus.Y+float64(row-c.Y-c.Height/2)*parameter.CameraUnitsPerRow,
	)
}

// Visible reports whether a circle could touch the playfield
func (c Camera) Visible(center vmath.Vec2, radius float64) bool {
	halfW := float64(c.Width) / 2 * parameter.CameraUnitsPerCol
	halfH := float64(c.Height) / 2 * parameter.CameraUnitsPerRow
	return math.Abs(center.X-c.Focus.X) <= halfW+radius &&
		math.Abs(center.Y-c.Focus.Y) <= halfH+radius
}
