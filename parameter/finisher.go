package parameter

// Finisher
const (
	// FinisherLockOnTime is LockOn phase ticks
	FinisherLockOnTime = 30

	// FinisherPreImpactTime is PreImpact phase ticks
	FinisherPreImpactTime = 6

	// FinisherImpactTime is Impact phase ticks
	FinisherImpactTime = 60

	// FinisherPostImpactTime is PostImpact phase ticks
	FinisherPostImpactTime = 30

	// FinisherLockOnScale is global time scale during LockOn and PreImpact
	FinisherLockOnScale = 0.5

	// FinisherImpactScale is global time scale from Impact through PostImpact
	FinisherImpactScale = 0.1

	// FinisherShockwaveRadius is the maximum shockwave radius
	FinisherShockwaveRadius = 200.0

	// FinisherShockwaveSeed is the starting shockwave radius
	FinisherShockwaveSeed = 10.0

	// FinisherDamageClose is shockwave damage inside the close range
	FinisherDamageClose = 3

	// FinisherDamageFar is shockwave damage outside the close range
	FinisherDamageFar = 2

	// FinisherCloseRange is the close-range fraction of the current radius
	FinisherCloseRange = 0.5

	// FinisherKnockback is the shockwave knockback force
	FinisherKnockback = 15.0

	// FinisherScore is awarded for the locked target kill
	FinisherScore = 500

	// FinisherInvulnBufferTicks pads invulnerability past the sequence (0.5 s)
	FinisherInvulnBufferTicks = 30

	// FinisherCheckpointEarly is the first shockwave sweep at this Impact progress
	FinisherCheckpointEarly = 0.3

	// FinisherCheckpointLate is the second shockwave sweep at this Impact progress
	FinisherCheckpointLate = 0.6

	// FinisherMeterMax is the meter value at which the finisher is ready
	FinisherMeterMax = 100.0

	// FinisherMeterDecay is meter lost per tick while no combo is active
	FinisherMeterDecay = 2.0 / 60

	// FinisherParticleCount is the golden core burst size
	FinisherParticleCount = 100

	// FinisherRingParticles is particles per shockwave ring
	FinisherRingParticles = 48

	// FinisherRingCount is concentric ring count
	FinisherRingCount = 3
)

// Combo
const (
	// ComboTimeout is ticks of inactivity before the combo resets
	ComboTimeout = 180

	// ComboFillBase is meter gain per kill below the medium threshold
	ComboFillBase = 10.0

	// ComboFillMedium is meter gain per kill from the medium threshold
	ComboFillMedium = 15.0

	// ComboFillHigh is meter gain per kill from the high threshold
	ComboFillHigh = 20.0

	// ComboThresholdMedium is combo count for the medium fill tier
	ComboThresholdMedium = 5

	// ComboThresholdHigh is combo count for the high fill tier
	ComboThresholdHigh = 10

	// ComboTextThreshold is the combo count from which combo text floats
	ComboTextThreshold = 5

	// ComboPulseMax caps the combo pulse intensity
	ComboPulseMax = 20.0

	// ComboPulseFade is pulse decay per tick
	ComboPulseFade = 2.0

	// ComboPulseInterval is the kill count period of the big combo pulse
	ComboPulseInterval = 10
)

// ComboMilestones are combo counts that trigger a pulse and event
var ComboMilestones = [...]int{5, 10, 15, 20}
