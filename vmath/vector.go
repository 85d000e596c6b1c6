package vmath

import "math"

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// DistanceSq returns squared distance between two points
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Normalize2D returns unit vector and original magnitude, zero-safe
// Zero vector returns (0, 0, 0)
func Normalize2D(x, y float64) (nx, ny, mag float64) {
	mag = Magnitude(x, y)
	if mag == 0 {
		return 0, 0, 0
	}
	return x / mag, y / mag, mag
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	sq := x*x + y*y
	if sq <= maxMag*maxMag || sq == 0 {
		return x, y
	}
	scale := maxMag / math.Sqrt(sq)
	return x * scale, y * scale
}

// RotateVector rotates vector by deg degrees counter-clockwise
func RotateVector(x, y, deg float64) (rx, ry float64) {
	sin, cos := SinCos(deg)
	return x*cos - y*sin, x*sin + y*cos
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(x, y float64) (px, py float64) {
	return -y, x
}

// ClosestOnSegment projects point p onto segment a→b
// Returns the clamped parameter t in [0,1] and squared distance from p to the projection
// Degenerate segment returns t=0 and distance to a
func ClosestOnSegment(ax, ay, bx, by, px, py float64) (t, distSq float64) {
	sx := bx - ax
	sy := by - ay
	lenSq := sx*sx + sy*sy
	if lenSq > 0 {
		t = Clamp(((px-ax)*sx+(py-ay)*sy)/lenSq, 0, 1)
	}
	cx := ax + sx*t
	cy := ay + sy*t
	return t, DistanceSq(cx, cy, px, py)
}
