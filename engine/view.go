package engine

import (
	"math"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/vmath"
)

// Interpolate blends prev toward cur by alpha
func Interpolate(prev, cur, alpha float64) float64 {
	return vmath.Lerp(prev, cur, alpha)
}

// InterpolateWrapped blends a coordinate on a wrapping axis
// A jump longer than half the axis is a wrap crossing and snaps to cur
func InterpolateWrapped(prev, cur, alpha, size float64) float64 {
	if math.Abs(cur-prev) > size/2 {
		return cur
	}
	return vmath.Lerp(prev, cur, alpha)
}

// InterpolateAngle blends headings along the shortest arc
func InterpolateAngle(prev, cur, alpha float64) float64 {
	return vmath.LerpAngle(prev, cur, alpha)
}

// Pose is an interpolated render position and heading
type Pose struct {
	X, Y  float64
	Angle float64
}

// View is a read-only render snapshot of the world at the last frame's alpha
type View struct {
	w     *World
	Alpha float64
}

// NewView binds a view to the world's current interpolation fraction
func NewView(w *World) View {
	return View{w: w, Alpha: w.Time.Alpha}
}

// World exposes the underlying aggregate for reading visual state
func (v View) World() *World { return v.w }

// Pose interpolates a moving record
func (v View) Pose(m *component.Motion) Pose {
	return Pose{
		X:     InterpolateWrapped(m.PrevX, m.X, v.Alpha, v.w.Width),
		Y:     InterpolateWrapped(m.PrevY, m.Y, v.Alpha, v.w.Height),
		Angle: InterpolateAngle(m.PrevAngle, m.Angle, v.Alpha),
	}
}

// TextPos interpolates a floating text anchor
func (v View) TextPos(t *component.FloatingText) (x, y float64) {
	return Interpolate(t.PrevX, t.X, v.Alpha), Interpolate(t.PrevY, t.Y, v.Alpha)
}
