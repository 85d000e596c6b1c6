package parameter

// Particles
const (
	// ParticleBaseLife is base particle life in ticks
	ParticleBaseLife = 30

	// ParticleLifeVariance is added random life in ticks
	ParticleLifeVariance = 20

	// ParticleFriction is per-tick velocity retention
	ParticleFriction = 0.95

	// ParticleExplosionCount is the default explosion size
	ParticleExplosionCount = 20

	// ParticleExplosionMaxSpeed is the default explosion speed bound
	ParticleExplosionMaxSpeed = 8.0

	// ParticleShipExplosion is the ship death explosion size
	ParticleShipExplosion = 50

	// ParticleMuzzleBase is muzzle flash size for a single shot
	ParticleMuzzleBase = 3

	// ParticleMuzzleTriple is muzzle flash size for a triple shot
	ParticleMuzzleTriple = 5

	// ParticleMuzzleFallback is extra enemy muzzle flash size when audio fails
	ParticleMuzzleFallback = 5

	// ParticleThrusterCount is thruster particles per tick
	ParticleThrusterCount = 2

	// ParticleRespawnRate is respawn spiral particles per tick
	ParticleRespawnRate = 3

	// ParticleDashCount is dash trail particles per tick
	ParticleDashCount = 3

	// ParticleStreakAttractDistance is the streak attraction range
	ParticleStreakAttractDistance = 100.0

	// ParticleStreakAttractForce is the streak acceleration per 30 Hz step
	ParticleStreakAttractForce = 0.15

	// ParticleStreakMinLife is the life below which streaks stop homing
	ParticleStreakMinLife = 5

	// ParticleStreakCount is streak particles per pickup at reference area
	ParticleStreakCount = 15
)
