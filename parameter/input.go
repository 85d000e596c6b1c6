package parameter

import "time"

// Input
const (
	// InputHoldWindow is how long a key counts as held after its last press or auto-repeat
	// Terminals report presses only, never releases
	InputHoldWindow = 180 * time.Millisecond

	// InputInitialHoldWindow covers the auto-repeat delay after the first press of a key
	InputInitialHoldWindow = 400 * time.Millisecond

	// InputFastTurn is the turn axis magnitude of shifted steering keys
	InputFastTurn = 2.0
)
