package parameter

// HUD Layout
const (
	// TopMargin holds the vitals bar
	TopMargin = 1

	// BottomMargin holds the run status line
	BottomMargin = 1

	// HealthBarWidth is the cell width of the HP and XP gauges
	HealthBarWidth = 20

	// OverlayWidth is the width of the legendary and run-end panels
	OverlayWidth = 44
)

// UI Symbols
const (
	GlyphPlayer    = '@'
	GlyphBullet    = '·'
	GlyphEnemyShot = '•'
	GlyphPickup    = '+'
	GlyphParticle  = '.'
	GlyphRim       = '░'
	GlyphArea      = '~'
	GlyphDecal     = ','
	GlyphBarFull   = '█'
	GlyphBarEmpty  = '░'
	AudioStr       = "♫ "
)
