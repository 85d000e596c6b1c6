// Package vmath provides float64 arena math: degree trig, angle helpers,
// toroidal wrap and a deterministic xorshift RNG
package vmath

import "math"

const (
	// DegToRad converts degrees to radians
	DegToRad = math.Pi / 180
	// RadToDeg converts radians to degrees
	RadToDeg = 180 / math.Pi
)

// Wrap maps v into [0, size) for any finite v
// size <= 0 returns v unchanged
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// Mod of a tiny negative can round up to size
	if v >= size {
		v = 0
	}
	return v
}

// WrapIndex maps integer i into [0, n)
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SinCos returns sine and cosine of an angle in degrees
func SinCos(deg float64) (sin, cos float64) {
	return math.Sincos(deg * DegToRad)
}

// Direction returns the unit vector pointing along deg
func Direction(deg float64) (x, y float64) {
	s, c := SinCos(deg)
	return c, s
}

// AngleTo returns the heading in degrees from (x1,y1) toward (x2,y2)
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1) * RadToDeg
}

// NormalizeAngle maps an angle in degrees into [0, 360)
func NormalizeAngle(deg float64) float64 {
	return Wrap(deg, 360)
}

// AngleDelta returns the shortest signed arc from a to b in (-180, 180]
func AngleDelta(a, b float64) float64 {
	d := Wrap(b-a+180, 360) - 180
	if d == -180 {
		d = 180
	}
	return d
}

// Lerp blends a toward b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpAngle blends angles through the shortest arc, result in [0, 360)
func LerpAngle(a, b, t float64) float64 {
	return NormalizeAngle(a + AngleDelta(a, b)*t)
}
