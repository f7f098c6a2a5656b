package parameter

// Camera follows the player; the world is scaled onto terminal cells
// Cells are roughly twice as tall as wide, so vertical scale doubles
const (
	// CameraUnitsPerCol is world units covered by one terminal column
	CameraUnitsPerCol = 16.0

	// CameraUnitsPerRow is world units covered by one terminal row
	CameraUnitsPerRow = CameraUnitsPerCol * 2

	// CameraRimStep is the angular sampling of arena rims in radians
	CameraRimStep = 0.02
)
