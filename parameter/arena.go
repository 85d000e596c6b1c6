package parameter

// Arena
const (
	// ArenaWidth is the reference arena width
	ArenaWidth = 800

	// ArenaHeight is the reference arena height
	ArenaHeight = 600

	// ArenaReferenceHeight is the height at which scale equals 1.0
	ArenaReferenceHeight = 600

	// ArenaMaxScale caps the display scale factor
	ArenaMaxScale = 2.0
)
