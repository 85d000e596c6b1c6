package component

// FinisherPhase is the finisher state machine state
type FinisherPhase uint8

const (
	PhaseIdle FinisherPhase = iota
	PhaseLockOn
	PhasePreImpact
	PhaseImpact
	PhasePostImpact
)

func (p FinisherPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLockOn:
		return "lock_on"
	case PhasePreImpact:
		return "pre_impact"
	case PhaseImpact:
		return "impact"
	case PhasePostImpact:
		return "post_impact"
	default:
		return "unknown"
	}
}

// Combo tracks the kill streak
type Combo struct {
	// Current is kills in the active streak
	Current int

	// Timer counts down to streak reset in ticks
	Timer float64

	// Kills counts kills since the streak began
	Kills int

	// Max is the best streak this run
	Max int

	// Pulse is the milestone visual pulse intensity
	Pulse float64
}

// Finisher is the meter and execution state of the finisher move
// Exactly one execution may be in flight; Executing is true from LockOn through PostImpact
type Finisher struct {
	// Meter fills from kills, in [0, 100]
	Meter float64
	Ready bool

	Executing bool
	Phase     FinisherPhase

	// Timer is the current phase countdown in ticks
	Timer float64

	// Target is the locked enemy, may be destroyed before Impact
	Target *Enemy

	ShockwaveRadius float64
	ImpactX         float64
	ImpactY         float64

	// LockOnProgress is LockOn completion in [0,1] for renderers
	LockOnProgress float64

	// Sweeps counts shockwave damage sweeps applied in the current Impact, at most 2
	Sweeps int
}

// Dash holds the dash cooldown
type Dash struct {
	Cooldown float64
}

// Effects holds screen-level visual state
type Effects struct {
	ScreenShake      float64
	DamageFlash      float64
	DamageFlashColor RGB

	// LevelTransition counts down between levels; control and collision pause while positive
	LevelTransition     float64
	LevelTransitionText string

	WaveWarning     float64
	WaveWarningText string

	AuraRotation float64
}
