// Package render draws world snapshots onto a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/geometry"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// shapeGlyphs maps enemy shape names to their cell glyph
var shapeGlyphs = map[string]rune{
	"circle":   'o',
	"triangle": '^',
	"square":   '#',
	"diamond":  '%',
	"pentagon": '&',
	"minion":   '\'',
	"unique":   '?',
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	geo    geometry.Map
	width  int
	height int
	camera Camera

	muted  bool
	paused bool
}

// NewTerminalRenderer creates a renderer bound to a screen and the arena layout
func NewTerminalRenderer(screen tcell.Screen, geo geometry.Map) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, geo: geo}
	r.Resize()
	return r
}

// Resize re-reads the screen dimensions and lays out the playfield
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.camera.X = 0
	r.camera.Y = parameter.TopMargin
	r.camera.Width = r.width
	r.camera.Height = max(0, r.height-parameter.TopMargin-parameter.BottomMargin)
}

// SetMuted toggles the audio indicator
func (r *TerminalRenderer) SetMuted(muted bool) { r.muted = muted }

// SetPaused toggles the pause banner
func (r *TerminalRenderer) SetPaused(paused bool) { r.paused = paused }

// Camera returns the camera used for the last frame
func (r *TerminalRenderer) Camera() Camera { return r.camera }

// RenderFrame renders the entire frame from a snapshot
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)
	if snap == nil {
		r.screen.Show()
		return
	}
	r.camera.Focus = vmath.V(snap.Player.X, snap.Player.Y)

	// Back to front: layout, ground effects, drops, entities, HUD
	r.drawArenas(defaultStyle)
	r.drawAreas(snap)
	r.drawPickups(snap, defaultStyle)
	r.drawParticles(snap, defaultStyle)
	r.drawBullets(snap, defaultStyle)
	r.drawEnemies(snap)
	r.drawPlayer(defaultStyle)

	r.drawVitals(snap, defaultStyle)
	r.drawStatusBar(snap, defaultStyle)

	switch snap.Phase {
	case "legendary":
		r.drawLegendaryOverlay(snap, defaultStyle)
	case "ended":
		r.drawRunEndedOverlay(snap, defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawArenas(defaultStyle tcell.Style) {
	if r.geo == nil {
		return
	}
	style := defaultStyle.Foreground(RgbRim)
	radius := r.geo.Radius()
	for _, c := range r.geo.Centers() {
		if !r.camera.Visible(c, radius) {
			continue
		}
		r.ring(c, radius, parameter.GlyphRim, style)
	}
	for _, seg := range r.geo.Walls() {
		r.segment(seg.A, seg.B, parameter.GlyphRim, style)
	}
}

func (r *TerminalRenderer) drawAreas(snap *engine.Snapshot) {
	for _, a := range snap.Areas {
		center := vmath.V(a.X, a.Y)
		if !r.camera.Visible(center, a.Radius) {
			continue
		}
		glyph := parameter.GlyphArea
		if a.Kind == "decal" {
			glyph = parameter.GlyphDecal
		}
		r.ring(center, a.Radius, glyph, GetAreaStyle(a))
	}
}

func (r *TerminalRenderer) drawPickups(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for _, p := range snap.Pickups {
		color := RgbPickup
		switch component.PickupKind(p.Kind) {
		case component.PickupHeal:
			color = RgbPickupHeal
		case component.PickupMagnet:
			color = RgbPickupMagnet
		case component.PickupShard:
			color = RgbPickupShard
		}
		r.put(vmath.V(p.X, p.Y), parameter.GlyphPickup, defaultStyle.Foreground(color))
	}
}

func (r *TerminalRenderer) drawParticles(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for _, p := range snap.Particles {
		r.put(vmath.V(p.X, p.Y), parameter.GlyphParticle, defaultStyle.Foreground(PaletteColor(p.Palette)))
	}
}

func (r *TerminalRenderer) drawBullets(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for _, b := range snap.Bullets {
		if b.Enemy {
			r.put(vmath.V(b.X, b.Y), parameter.GlyphEnemyShot, defaultStyle.Foreground(RgbEnemyShot))
			continue
		}
		r.put(vmath.V(b.X, b.Y), parameter.GlyphBullet, defaultStyle.Foreground(RgbBullet))
	}
}

func (r *TerminalRenderer) drawEnemies(snap *engine.Snapshot) {
	for _, e := range snap.Enemies {
		glyph, ok := shapeGlyphs[e.Shape]
		if !ok {
			glyph = '?'
		}
		style := GetEnemyStyle(e)
		pos := vmath.V(e.X, e.Y)
		// Bodies wider than a cell get an outline
		if e.Size > parameter.CameraUnitsPerCol*1.5 {
			r.ring(pos, e.Size, glyph, style.Reverse(false))
		}
		r.put(pos, glyph, style)
	}
}

func (r *TerminalRenderer) drawPlayer(defaultStyle tcell.Style) {
	r.put(r.camera.Focus, parameter.GlyphPlayer, defaultStyle.Foreground(RgbPlayer).Bold(true))
}

// put draws one glyph at a world point if it lands on the playfield
func (r *TerminalRenderer) put(p vmath.Vec2, ch rune, style tcell.Style) {
	col, row, ok := r.camera.ToCell(p)
	if !ok {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// ring samples a circle outline in world space
func (r *TerminalRenderer) ring(center vmath.Vec2, radius float64, ch rune, style tcell.Style) {
	if radius <= 0 {
		return
	}
	// Step so adjacent samples land at most one column apart
	step := min(parameter.CameraRimStep, parameter.CameraUnitsPerCol/radius/2)
	for a := 0.0; a < 2*math.Pi; a += step {
		r.put(center.Add(vmath.FromAngle(a, radius)), ch, style)
	}
}

// segment samples a straight line in world space
func (r *TerminalRenderer) segment(a, b vmath.Vec2, ch rune, style tcell.Style) {
	n := int(a.Dist(b)/(parameter.CameraUnitsPerCol/2)) + 1
	for i := 0; i <= n; i++ {
		r.put(a.Lerp(b, float64(i)/float64(n)), ch, style)
	}
}
