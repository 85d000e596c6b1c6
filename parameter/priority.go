package parameter

// Tick Stage Priorities (lower runs first within a stage)
const (
	PriorityShip      = 10
	PriorityPhysics   = 20
	PriorityParticle  = 25 // Pool integration after entity motion
	PriorityCollision = 30
	PriorityCombat    = 40 // After collision so kills this tick feed the combo
	PriorityLevel     = 50
)

// Rate Group Priorities, run after all physics ticks in this order
const (
	PriorityAI      = 100
	PriorityStreak  = 200
	PriorityUI      = 300
	PriorityEffects = 400
)
