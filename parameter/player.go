package parameter

// Ship
const (
	// ShipMaxSpeed is top speed in units per tick at scale 1.0
	ShipMaxSpeed = 6.4

	// ShipTurnSpeed is degrees turned per tick per unit of turn axis
	ShipTurnSpeed = 6.0

	// ShipTurnAxisLimit bounds the decoded turn axis magnitude
	ShipTurnAxisLimit = 2.0

	// ShipThrustPower is acceleration per tick while thrusting
	ShipThrustPower = 0.5

	// ShipReverseMultiplier scales thrust when reversing
	ShipReverseMultiplier = 0.4

	// ShipFriction is the per-tick velocity retention
	ShipFriction = 0.985

	// ShipRadius is the ship collision radius
	ShipRadius = 10.0

	// ShipNoseLength is the muzzle offset from ship center
	ShipNoseLength = 15.0

	// ShipInitialLives is lives at game start
	ShipInitialLives = 3

	// ShipMaxLives caps lives from life powerups
	ShipMaxLives = 5

	// ShipInvulnerabilityTime is post-respawn invulnerability in ticks
	ShipInvulnerabilityTime = 120

	// ShipRespawnDuration is the respawn animation window in ticks
	ShipRespawnDuration = 90
)

// Dash
const (
	// DashCooldown is ticks between dashes
	DashCooldown = 120

	// DashDuration is ticks of forced dash motion
	DashDuration = 15

	// DashSpeedMultiplier scales ship max speed while dashing
	DashSpeedMultiplier = 3.0

	// DashTrailLength is the ghost ring capacity
	DashTrailLength = 10

	// DashTrailLife is ghost lifetime in ticks
	DashTrailLife = 20
)
