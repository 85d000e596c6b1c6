package physics

import (
	"math"

	"github.com/lixenwraith/asteroids/vmath"
)

// MinSafeDistance is the separation below which two points are treated as coincident
const MinSafeDistance = 0.01

// CirclesOverlap reports whether two circles intersect (strict)
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	r := r1 + r2
	return vmath.DistanceSq(x1, y1, x2, y2) < r*r
}

// Direction returns unit vector from (fromX, fromY) to (toX, toY) and the distance
// Coincident points get a random unit direction from rng, distance clamps to MinSafeDistance
func Direction(fromX, fromY, toX, toY float64, rng *vmath.FastRand) (dx, dy, dist float64) {
	dx = toX - fromX
	dy = toY - fromY
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist < MinSafeDistance {
		dx, dy = vmath.Direction(rng.Angle())
		return dx, dy, MinSafeDistance
	}
	return dx / dist, dy / dist, dist
}

// RadialKnockback pushes k away from origin with force falling off linearly to zero at radius
// Bodies within one unit of origin are pushed in a random direction at full falloff
func RadialKnockback(k *Kinetic, originX, originY, radius, force float64, rng *vmath.FastRand) {
	dist := math.Sqrt(vmath.DistanceSq(originX, originY, k.X, k.Y))
	var dx, dy float64
	if dist > 1 {
		dx = (k.X - originX) / dist
		dy = (k.Y - originY) / dist
	} else {
		dx, dy = vmath.Direction(rng.Angle())
	}
	strength := force
	if radius > 0 {
		strength = (1 - dist/radius) * force
	}
	if strength < 0 {
		strength = 0
	}
	ApplyImpulse(k, dx*strength, dy*strength)
}
