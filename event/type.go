// Package event carries gameplay notifications from systems to session-level consumers
package event

// EventType represents the type of game event
type EventType int

const (
	// EventLevelStart marks a freshly populated level
	// Trigger: LevelSystem after transition, game start
	// Consumer: Game (logging, survivor/untouchable checks) | Payload: *LevelPayload
	EventLevelStart EventType = iota

	// EventLevelComplete marks the last asteroid of a level destroyed
	// Trigger: LevelSystem
	// Consumer: Game | Payload: *LevelPayload
	EventLevelComplete

	// EventGameOver marks the final life lost
	// Trigger: CollisionSystem damage handler
	// Consumer: Game (session save) | Payload: nil
	EventGameOver

	// EventShipHit marks a life lost
	// Trigger: CollisionSystem damage handler
	// Consumer: Game | Payload: nil
	EventShipHit

	// EventShieldAbsorb marks a hit consumed by the shield
	// Trigger: CollisionSystem damage handler
	// Consumer: Game | Payload: nil
	EventShieldAbsorb

	// EventKill marks an asteroid or enemy destroyed by the player
	// Trigger: CollisionSystem, CombatSystem shockwave
	// Consumer: Game (first blood) | Payload: *KillPayload
	EventKill

	// EventBossKill marks a boss asteroid destroyed
	// Trigger: CollisionSystem
	// Consumer: Game (boss slayer) | Payload: *KillPayload
	EventBossKill

	// EventComboMilestone marks a combo reaching a milestone count
	// Trigger: CombatSystem.AddCombo
	// Consumer: Game (combo achievements) | Payload: *ComboPayload
	EventComboMilestone

	// EventFinisherReady marks the meter reaching full
	// Trigger: CombatSystem.AddCombo
	// Consumer: Game | Payload: nil
	EventFinisherReady

	// EventFinisherPhase marks a finisher state transition
	// Trigger: CombatSystem
	// Consumer: Game (logging), tests | Payload: *FinisherPhasePayload
	EventFinisherPhase

	// EventPowerUp marks a pickup collected
	// Trigger: CollisionSystem
	// Consumer: Game (crystal hoarder) | Payload: *PowerUpPayload
	EventPowerUp

	// EventAchievement marks an achievement unlocked
	// Trigger: Game progression checks
	// Consumer: Game (logging) | Payload: *AchievementPayload
	EventAchievement
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventLevelStart:
		return "level_start"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	case EventShipHit:
		return "ship_hit"
	case EventShieldAbsorb:
		return "shield_absorb"
	case EventKill:
		return "kill"
	case EventBossKill:
		return "boss_kill"
	case EventComboMilestone:
		return "combo_milestone"
	case EventFinisherReady:
		return "finisher_ready"
	case EventFinisherPhase:
		return "finisher_phase"
	case EventPowerUp:
		return "powerup"
	case EventAchievement:
		return "achievement"
	default:
		return "unknown"
	}
}

// GameEvent is one queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
