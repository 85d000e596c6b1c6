package parameter

// PowerUps
const (
	// PowerUpDropChance is the chance a non-crystal drop occurs
	PowerUpDropChance = 0.2

	// PowerUpCrystalChance is the chance a drop is a crystal
	PowerUpCrystalChance = 0.3

	// PowerUpLifetime is pickup lifetime in ticks at reference area
	PowerUpLifetime = 600

	// PowerUpAreaScaling scales lifetime with arena area
	PowerUpAreaScaling = 0.3

	// PowerUpRapidDuration is rapid fire duration in ticks
	PowerUpRapidDuration = 600

	// PowerUpTripleDuration is triple shot duration in ticks
	PowerUpTripleDuration = 600

	// PowerUpShieldDuration is shield duration in ticks
	PowerUpShieldDuration = 300

	// PowerUpPickupRadius is the ship-side pickup radius
	PowerUpPickupRadius = 15.0

	// PowerUpVisualRadius is the powerup-side pickup radius
	PowerUpVisualRadius = 20.0

	// PowerUpCrystalValue is crystals per crystal pickup
	PowerUpCrystalValue = 10

	// PowerUpScore is score for a non-crystal pickup
	PowerUpScore = 50

	// PowerUpDriftSpeed is the max drift component at scale 1.0
	PowerUpDriftSpeed = 1.0

	// PowerUpPulseSpeed is pulse phase advance per tick
	PowerUpPulseSpeed = 0.2

	// PowerUpFlashDuration is ship flash ticks after a pickup
	PowerUpFlashDuration = 20

	// PowerUpFlashMax is ship flash ticks after a life pickup
	PowerUpFlashMax = 30
)
