package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/resonance-arena/engine"
)

// RGB color definitions for arena, entities and HUD
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbRim        = tcell.NewRGBColor(70, 74, 100)   // Muted slate for arena edges
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbBullet     = tcell.NewRGBColor(255, 230, 120) // Pale gold player shots
	RgbEnemyShot  = tcell.NewRGBColor(255, 90, 90)   // Hot red enemy shots
	RgbPickup     = tcell.NewRGBColor(120, 220, 120) // Soft green
	RgbTrailGray  = tcell.NewRGBColor(200, 200, 200) // Light gray fallback

	// Area effects
	RgbAreaHostile  = tcell.NewRGBColor(180, 50, 50)  // Dark red
	RgbAreaFriendly = tcell.NewRGBColor(60, 100, 200) // Dark blue
	RgbAreaWell     = tcell.NewRGBColor(128, 0, 128)  // Dark purple
	RgbDecal        = tcell.NewRGBColor(101, 67, 33)  // Dark brown

	// Pickup kinds
	RgbPickupHeal   = tcell.NewRGBColor(255, 120, 120) // Bright red
	RgbPickupMagnet = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan
	RgbPickupShard  = tcell.NewRGBColor(255, 165, 0)   // Orange

	// Status bar
	RgbStatusBar     = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText    = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbPhasePlayBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbPhaseChooseBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPhaseEndBg    = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbPausedBg      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbEventBg       = tcell.NewRGBColor(255, 192, 203) // Pink for world events
	RgbShieldBar     = tcell.NewRGBColor(140, 190, 255) // Bright blue
	RgbOverlayBorder = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// paletteColors maps enemy and particle palette names to their hue
var paletteColors = map[string]tcell.Color{
	"circle":   tcell.NewRGBColor(255, 80, 80),
	"triangle": tcell.NewRGBColor(255, 255, 0),
	"square":   tcell.NewRGBColor(100, 150, 255),
	"diamond":  tcell.NewRGBColor(219, 112, 147),
	"pentagon": tcell.NewRGBColor(255, 140, 0),
	"minion":   tcell.NewRGBColor(160, 160, 160),
	"unique":   tcell.NewRGBColor(255, 215, 0),
	"neutral":  tcell.NewRGBColor(200, 200, 200),
	"zombie":   tcell.NewRGBColor(0, 130, 0),
	"ally":     tcell.NewRGBColor(0, 206, 209),
	"nova":     tcell.NewRGBColor(255, 255, 200),
	"blink":    tcell.NewRGBColor(140, 190, 255),
	"strike":   tcell.NewRGBColor(255, 69, 0),
}

// PaletteColor resolves a palette name, falling back to light gray
func PaletteColor(name string) tcell.Color {
	if c, ok := paletteColors[name]; ok {
		return c
	}
	return RgbTrailGray
}

// GetMeterColor returns the color for a position along the XP gauge gradient
// progress is 0.0 to 1.0, representing position from start to end
func GetMeterColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return tcell.NewRGBColor(0, 0, 0) // Black for unfilled
	}
	if progress > 1.0 {
		progress = 1.0
	}

	// Cool to warm: blue → cyan → green → yellow → orange
	if progress < 0.25 {
		t := progress / 0.25
		return tcell.NewRGBColor(int32(65-65*t), int32(105+(206-105)*t), int32(225-(225-209)*t))
	} else if progress < 0.5 {
		t := (progress - 0.25) / 0.25
		return tcell.NewRGBColor(int32(34*t), int32(206-(206-139)*t), int32(209-(209-34)*t))
	} else if progress < 0.75 {
		t := (progress - 0.5) / 0.25
		return tcell.NewRGBColor(int32(34+(255-34)*t), int32(139+(215-139)*t), int32(34-34*t))
	}
	t := (progress - 0.75) / 0.25
	return tcell.NewRGBColor(255, int32(215-(215-140)*t), 0)
}

// GetHealthColor fades from red at empty to green at full
func GetHealthColor(frac float64) tcell.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return tcell.NewRGBColor(int32(220-180*frac), int32(40+160*frac), 40)
}

// GetEnemyStyle returns the style for an enemy by allegiance, tier and state
func GetEnemyStyle(e engine.EnemyView) tcell.Style {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(PaletteColor(e.Palette))
	switch e.Tier {
	case "elite":
		style = style.Bold(true)
	case "boss":
		style = style.Bold(true).Reverse(true)
	}
	if e.Telegraph {
		style = style.Blink(true)
	}
	if e.Friendly {
		style = style.Underline(true)
	}
	return style
}

// GetAreaStyle returns the ring style for an area by kind and owner
func GetAreaStyle(a engine.AreaView) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch a.Kind {
	case "gravity_well":
		return base.Foreground(RgbAreaWell)
	case "delayed_strike":
		return base.Foreground(RgbAreaHostile).Blink(true)
	case "decal":
		return base.Foreground(RgbDecal)
	}
	if a.Hostile {
		return base.Foreground(RgbAreaHostile)
	}
	return base.Foreground(RgbAreaFriendly)
}
