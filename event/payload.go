package event

import "github.com/lixenwraith/asteroids/component"

// LevelPayload identifies a level
type LevelPayload struct {
	Level int
	Boss  bool

	// Clean reports the previous level ended without losing a life
	Clean bool
}

// KillPayload describes a destroyed body
type KillPayload struct {
	Kind  component.Kind
	X, Y  float64
	Score int
}

// ComboPayload carries the combo count reached
type ComboPayload struct {
	Combo int
}

// FinisherPhasePayload carries a finisher transition
type FinisherPhasePayload struct {
	From component.FinisherPhase
	To   component.FinisherPhase
}

// PowerUpPayload identifies a collected pickup
type PowerUpPayload struct {
	Type component.PowerUpType
}

// AchievementPayload identifies an unlocked achievement
type AchievementPayload struct {
	ID     string
	Reward int
}
