package parameter

// Screen Effects
const (
	// EffectMaxScreenShake caps screen shake intensity
	EffectMaxScreenShake = 20.0

	// EffectShakeDecay is shake lost per tick
	EffectShakeDecay = 1.0

	// EffectDamageFlash is damage flash duration in ticks
	EffectDamageFlash = 60

	// EffectShieldFlash is shield absorb flash duration in ticks
	EffectShieldFlash = 30

	// EffectDamageFlashDecay is damage flash lost per tick
	EffectDamageFlashDecay = 2.0

	// EffectAuraRotation is aura rotation in degrees per tick
	EffectAuraRotation = 2.0

	// EffectAuraPulse is ship aura pulse phase per tick
	EffectAuraPulse = 0.1

	// LevelTransitionDuration is ticks between levels
	LevelTransitionDuration = 120

	// LevelShakeOnComplete is screen shake on level completion
	LevelShakeOnComplete = 10.0
)

// Floating Text
const (
	// FloatingTextLife is text life in ticks
	FloatingTextLife = 60

	// FloatingTextSpeed is upward speed per tick
	FloatingTextSpeed = 2.0

	// FloatingTextFriction is per-tick vertical speed retention
	FloatingTextFriction = 0.95

	// FloatingTextSpread is +/- horizontal jitter
	FloatingTextSpread = 10
)
