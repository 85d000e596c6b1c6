package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
)

// meterWidth is the finisher meter length in cells
const meterWidth = 10

// drawHUD writes the status row
func (r *Renderer) drawHUD(w *engine.World) {
	cols, _ := r.buf.Size()
	for x := 0; x < cols; x++ {
		r.buf.SetBgOnly(x, 0, RGBBlack)
	}

	x := 1
	put := func(s string, fg RGB) {
		r.buf.Text(x, 0, s, fg)
		x += len([]rune(s)) + 2
	}

	put(fmt.Sprintf("SCORE %d", w.State.Score), RgbHUD)
	put(fmt.Sprintf("HI %d", w.Progress.HighScore), RgbHUD)
	put("LIVES "+strings.Repeat("♥", max(0, w.State.Lives)), component.PowerUpLife.Color())
	put(fmt.Sprintf("LVL %d", w.State.Level), RgbHUD)
	put(fmt.Sprintf("◆ %d", w.Progress.Crystals), component.PowerUpCrystal.Color())

	if w.Combo.Current > 1 {
		pulse := math.Min(1, w.Combo.Pulse/parameter.ComboPulseMax)
		put(fmt.Sprintf("COMBO x%d", w.Combo.Current), Blend(component.ColorScoreText, component.ColorWhite, pulse))
	}

	r.buf.Text(x, 0, "FIN ", RgbHUD)
	x += 4
	filled := int(w.Finisher.Meter / parameter.FinisherMeterMax * meterWidth)
	for i := 0; i < meterWidth; i++ {
		if i < filled {
			r.buf.SetFgOnly(x+i, 0, '█', component.ColorGold)
		} else {
			r.buf.SetFgOnly(x+i, 0, '░', RgbMeterEmpty)
		}
	}
	x += meterWidth + 1
	if w.Finisher.Ready && !w.Finisher.Executing {
		r.buf.Text(x, 0, "READY", component.ColorGold)
	}
}

// drawOverlays renders flashes and centered banners
func (r *Renderer) drawOverlays(w *engine.World) {
	cols, rows := r.buf.Size()
	cx, cy := cols/2, hudRows+(rows-hudRows)/2

	if w.Effects.DamageFlash > 0 {
		alpha := math.Min(0.4, w.Effects.DamageFlash/parameter.EffectDamageFlash*0.4)
		r.buf.TintBg(w.Effects.DamageFlashColor, alpha)
	}

	switch w.Finisher.Phase {
	case component.PhaseLockOn:
		r.buf.TextCentered(cx, hudRows+1, "LOCK ON", component.ColorGold)
	case component.PhaseImpact:
		r.buf.TextCentered(cx, hudRows+1, "FINISHER!", component.ColorGold)
	}

	if w.Effects.WaveWarning > 0 && w.Effects.WaveWarningText != "" {
		if int(w.Effects.WaveWarning/10)%2 == 0 {
			r.buf.TextCentered(cx, cy-2, w.Effects.WaveWarningText, component.ColorBoss)
		}
	}

	if w.Effects.LevelTransition > 0 && w.Effects.LevelTransitionText != "" {
		r.buf.TextCentered(cx, cy, w.Effects.LevelTransitionText, component.ColorWhite)
	}

	if w.State.GameOver {
		r.buf.TextCentered(cx, cy, "GAME OVER", component.ColorDamageFlash)
		r.buf.TextCentered(cx, cy+1, fmt.Sprintf("SCORE %d", w.State.Score), RgbHUD)
		r.buf.TextCentered(cx, cy+3, "R restart  U upgrades  Q quit", RgbHUD)
	}
}

// DrawShop renders the upgrade list over the current frame
func (r *Renderer) DrawShop(lines []string, crystals int) {
	cols, rows := r.buf.Size()
	top := max(hudRows, rows/2-len(lines)/2-2)
	r.buf.TextCentered(cols/2, top, fmt.Sprintf("UPGRADES  ◆ %d", crystals), component.PowerUpCrystal.Color())
	for i, l := range lines {
		r.buf.TextCentered(cols/2, top+2+i, l, RgbHUD)
	}
	r.buf.TextCentered(cols/2, top+3+len(lines), "1-4 buy  U close", RgbMeterEmpty)
}

// Flush shows the composited buffer
func (r *Renderer) Flush() {
	r.buf.Flush(r.screen)
}

// DrawBanner centers a one-line notice over the current frame
func (r *Renderer) DrawBanner(text string) {
	cols, rows := r.buf.Size()
	r.buf.TextCentered(cols/2, rows/2, text, RgbHUD)
}
