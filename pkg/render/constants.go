package render

// Camera constants
const (
	// Default orientation
	DefaultYaw   = 90.0 // Facing +Z direction
	DefaultPitch = 0.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)

// Projection constants
const (
	DefaultFOV  = 75.0 // degrees, vertical
	DefaultNear = 0.1
	DefaultFar  = 100.0
)
