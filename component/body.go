// Package component defines the simulation's entity records and state structs
// Records are plain values mutated only from the single simulation flow
package component

import "github.com/lixenwraith/asteroids/physics"

// Kind is the closed set of arena body kinds
type Kind uint8

const (
	KindShip Kind = iota
	KindAsteroid
	KindEnemy
	KindBullet
	KindEnemyBullet
	KindPowerUp
)

// Body is any entity occupying the arena
// Sealed: only types in this package implement it
type Body interface {
	Pos() (x, y float64)
	Kind() Kind
	body()
}

// Motion is the kinetic state shared by moving bodies plus the interpolation baseline
type Motion struct {
	physics.Kinetic

	// Angle is facing in degrees
	Angle float64

	// PrevX, PrevY, PrevAngle hold the pre-tick values renderers blend from
	PrevX, PrevY float64
	PrevAngle    float64
}

// Pos returns current position
func (m *Motion) Pos() (x, y float64) { return m.X, m.Y }

// StorePrevious snapshots the interpolation baseline
func (m *Motion) StorePrevious() {
	m.PrevX, m.PrevY, m.PrevAngle = m.X, m.Y, m.Angle
}

// Place sets position and collapses the interpolation baseline onto it
func (m *Motion) Place(x, y float64) {
	m.X, m.Y = x, y
	m.PrevX, m.PrevY = x, y
	m.PrevAngle = m.Angle
}

// RGB is a 24-bit color carried for renderers
type RGB struct {
	R, G, B uint8
}

// Point is a bare arena position
type Point struct {
	X, Y float64
}
