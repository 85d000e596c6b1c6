package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/component"
)

// RGB is the simulation color type, extended here with blend helpers
type RGB = component.RGB

// Background colors
var (
	RGBBlack      = RGB{R: 0, G: 0, B: 0}
	RgbBackground = RGB{R: 5, G: 5, B: 15}
	RgbHUD        = RGB{R: 180, G: 180, B: 200}
	RgbMeterEmpty = RGB{R: 60, G: 60, B: 80}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies every channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
	}
}

// Add sums channels, saturating at 255
func Add(c, src RGB) RGB {
	return RGB{
		R: uint8(min(255, int(c.R)+int(src.R))),
		G: uint8(min(255, int(c.G)+int(src.G))),
		B: uint8(min(255, int(c.B)+int(src.B))),
	}
}

// Blend mixes src over c by alpha
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// tcellColor converts to a truecolor tcell color
func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
