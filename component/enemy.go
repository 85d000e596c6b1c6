package component

// AIType selects enemy steering behavior
type AIType uint8

const (
	AIHunter AIType = iota
	AICircler
	aiTypeCount
)

// AITypeCount is the number of AI behaviors
const AITypeCount = int(aiTypeCount)

func (a AIType) String() string {
	switch a {
	case AIHunter:
		return "hunter"
	case AICircler:
		return "circler"
	default:
		return "unknown"
	}
}

// Enemy is a hostile ship steered by AI
type Enemy struct {
	Motion

	AI AIType

	// FireCooldown counts down in ticks; may go negative until the next shot
	FireCooldown float64

	Health    int
	MaxHealth int

	// OrbitAngle is the circler orbit phase in degrees
	OrbitAngle float64

	HitFlash float64
	Radius   float64
}

func (*Enemy) Kind() Kind { return KindEnemy }
func (*Enemy) body()      {}
