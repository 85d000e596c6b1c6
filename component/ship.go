package component

import "github.com/lixenwraith/asteroids/parameter"

// Ghost is one dash trail afterimage
type Ghost struct {
	X, Y  float64
	Angle float64
	Life  float64
}

// Ship is the player ship, created once and reset on respawn
// All timers are in ticks, decremented by the global time scale and never negative
type Ship struct {
	Motion

	// Invulnerable is remaining invulnerability
	Invulnerable float64

	// RapidFire is remaining rapid fire buff
	RapidFire float64

	// TripleShot is remaining triple shot buff
	TripleShot float64

	// Shield is remaining shield; any hit while positive consumes it
	Shield float64

	// Respawning is the remaining respawn animation; ship drifts without control
	Respawning float64

	// Dashing is remaining forced dash motion
	Dashing float64

	// PowerUpFlash is remaining pickup or fallback flash
	PowerUpFlash float64
	FlashColor   RGB

	Thrusting bool
	AuraPulse float64

	// DashTrail holds recent afterimages, bounded
	DashTrail Trail[Ghost]
}

// NewShip creates a ship at (x, y) facing angle 0
func NewShip(x, y float64) *Ship {
	s := &Ship{DashTrail: NewTrail[Ghost](parameter.DashTrailLength)}
	s.Place(x, y)
	return s
}

func (*Ship) Kind() Kind { return KindShip }
func (*Ship) body()      {}

// Vulnerable reports whether hits can land on the ship
func (s *Ship) Vulnerable() bool {
	return s.Invulnerable <= 0 && s.Dashing <= 0
}
