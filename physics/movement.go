package physics

import (
	"math"

	"github.com/lixenwraith/asteroids/vmath"
)

// CapSpeed limits the velocity magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(k *Kinetic, maxSpeed float64) bool {
	if k.VelX*k.VelX+k.VelY*k.VelY <= maxSpeed*maxSpeed {
		return false
	}
	k.VelX, k.VelY = vmath.ClampMagnitude(k.VelX, k.VelY, maxSpeed)
	return true
}

// FrictionFactor returns per-tick damping raised to timeScale
// Damping stays identical whether time runs in one step or many
func FrictionFactor(friction, timeScale float64) float64 {
	return math.Pow(friction, timeScale)
}

// ApplyFriction damps velocity by friction^timeScale
func ApplyFriction(k *Kinetic, friction, timeScale float64) {
	f := FrictionFactor(friction, timeScale)
	k.VelX *= f
	k.VelY *= f
}

// Thrust accelerates along heading deg by power scaled by timeScale
func Thrust(k *Kinetic, deg, power, timeScale float64) {
	dx, dy := vmath.Direction(deg)
	k.VelX += dx * power * timeScale
	k.VelY += dy * power * timeScale
}

// Steer accelerates toward (tx, ty) by rate, zero distance is a no-op
// Returns false when target coincides with position
func Steer(k *Kinetic, tx, ty, rate float64) bool {
	nx, ny, mag := vmath.Normalize2D(tx-k.X, ty-k.Y)
	if mag == 0 {
		return false
	}
	k.VelX += nx * rate
	k.VelY += ny * rate
	return true
}
