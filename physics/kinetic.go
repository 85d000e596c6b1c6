// Package physics holds the per-tick motion rules shared by every body
package physics

import (
	"math"

	"github.com/lixenwraith/asteroids/vmath"
)

// Kinetic is position and velocity in arena units, velocity per 60 Hz tick
type Kinetic struct {
	X, Y       float64
	VelX, VelY float64
}

// Integrate advances position by velocity scaled by timeScale, no wrap
func Integrate(k *Kinetic, timeScale float64) {
	k.X += k.VelX * timeScale
	k.Y += k.VelY * timeScale
}

// IntegrateWrap advances position and wraps it into the toroidal arena
func IntegrateWrap(k *Kinetic, timeScale, width, height float64) {
	Integrate(k, timeScale)
	WrapPosition(k, width, height)
}

// WrapPosition re-enters position through the opposite edge
func WrapPosition(k *Kinetic, width, height float64) {
	k.X = vmath.Wrap(k.X, width)
	k.Y = vmath.Wrap(k.Y, height)
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(k *Kinetic, vx, vy float64) {
	k.VelX += vx
	k.VelY += vy
}

// SetImpulse overrides velocity
func SetImpulse(k *Kinetic, vx, vy float64) {
	k.VelX = vx
	k.VelY = vy
}

// InBounds reports whether position lies within the closed arena rectangle
func InBounds(k *Kinetic, width, height float64) bool {
	return k.X >= 0 && k.X <= width && k.Y >= 0 && k.Y <= height
}

// Speed returns velocity magnitude
func Speed(k *Kinetic) float64 {
	return math.Sqrt(k.VelX*k.VelX + k.VelY*k.VelY)
}
