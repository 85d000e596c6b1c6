// Package render draws the interpolated simulation onto a tcell screen
// Renderers read engine.View and never mutate simulation state
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/vmath"
)

// hudRows is the number of terminal rows reserved above the playfield
const hudRows = 1

// shipGlyphs are heading arrows clockwise from +x, screen y pointing down
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Renderer composes frames into a buffer and flushes them to the screen
type Renderer struct {
	screen tcell.Screen
	buf    *RenderBuffer

	// per-frame mapping from arena to cells
	sx, sy float64
	ox, oy int
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	cols, rows := screen.Size()
	return &Renderer{
		screen: screen,
		buf:    NewRenderBuffer(cols, rows),
	}
}

// Resize matches the buffer to a new terminal size
func (r *Renderer) Resize(cols, rows int) {
	r.buf.Resize(cols, rows)
}

// Buffer exposes the composited frame
func (r *Renderer) Buffer() *RenderBuffer { return r.buf }

// Draw composes v and flushes it
func (r *Renderer) Draw(v engine.View) {
	r.Compose(v)
	r.buf.Flush(r.screen)
}

// Compose renders v into the buffer without touching the screen
func (r *Renderer) Compose(v engine.View) {
	w := v.World()
	r.buf.Clear()
	cols, rows := r.buf.Size()
	field := rows - hudRows
	if cols <= 0 || field <= 0 {
		return
	}
	r.sx = float64(cols) / w.Width
	r.sy = float64(field) / w.Height

	// Shake jitter is derived from the tick so rendering never consumes simulation randomness
	r.ox, r.oy = 0, 0
	if shake := w.Effects.ScreenShake; shake > 0 {
		t := float64(w.Time.Tick)
		r.ox = int(math.Round(math.Sin(t*1.7) * shake * r.sx))
		r.oy = int(math.Round(math.Cos(t*2.3) * shake * r.sy))
	}

	r.drawParticles(w)
	r.drawShockwave(w)
	r.drawPowerUps(v)
	r.drawAsteroids(v)
	r.drawBullets(v)
	r.drawEnemies(v)
	r.drawShip(v)
	r.drawTexts(v)
	r.drawHUD(w)
	r.drawOverlays(w)
}

// cell maps an arena point to a buffer coordinate
func (r *Renderer) cell(x, y float64) (int, int) {
	return int(math.Floor(x*r.sx)) + r.ox, hudRows + int(math.Floor(y*r.sy)) + r.oy
}

// line plots glyph between two arena points
func (r *Renderer) line(x1, y1, x2, y2 float64, glyph rune, fg RGB) {
	c1, r1 := r.cell(x1, y1)
	c2, r2 := r.cell(x2, y2)
	steps := max(abs(c2-c1), abs(r2-r1))
	if steps == 0 {
		r.buf.SetFgOnly(c1, r1, glyph, fg)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := c1 + int(math.Round(float64(c2-c1)*t))
		cy := r1 + int(math.Round(float64(r2-r1)*t))
		r.buf.SetFgOnly(cx, cy, glyph, fg)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ShipGlyph returns the arrow closest to a heading in degrees
func ShipGlyph(angle float64) rune {
	idx := int(math.Floor(vmath.NormalizeAngle(angle)/45+0.5)) % len(shipGlyphs)
	return shipGlyphs[idx]
}

func (r *Renderer) drawParticles(w *engine.World) {
	w.Particles.ForEachActive(func(p *component.Particle) {
		cx, cy := r.cell(p.X, p.Y)
		fade := math.Min(1, p.Life/20)
		glyph := '·'
		switch p.Type {
		case component.ParticleStreak, component.ParticleFinisher:
			glyph = '*'
		case component.ParticleEnemyExplosion, component.ParticleBurst:
			glyph = '+'
		case component.ParticleDash, component.ParticleRespawn:
			glyph = '∙'
		}
		r.buf.Glow(cx, cy, glyph, Scale(p.Color, 0.4+0.6*fade))
	})
}

func (r *Renderer) drawShockwave(w *engine.World) {
	f := &w.Finisher
	if f.Phase != component.PhaseImpact && f.Phase != component.PhasePostImpact {
		return
	}
	if f.ShockwaveRadius <= 0 {
		return
	}
	for i := 0; i < parameter.FinisherRingParticles; i++ {
		dx, dy := vmath.Direction(float64(i) * 360 / parameter.FinisherRingParticles)
		cx, cy := r.cell(f.ImpactX+dx*f.ShockwaveRadius, f.ImpactY+dy*f.ShockwaveRadius)
		r.buf.Glow(cx, cy, '○', component.ColorGold)
	}
}

func (r *Renderer) drawPowerUps(v engine.View) {
	for _, p := range v.World().PowerUps {
		pose := v.Pose(&p.Motion)
		cx, cy := r.cell(pose.X, pose.Y)
		glow := 0.7 + 0.3*math.Sin(p.Pulse)
		// Blink out the last two seconds
		if p.Lifetime < 120 && int(p.Lifetime/8)%2 == 0 {
			continue
		}
		r.buf.SetBold(cx, cy, powerUpGlyph(p.Type), Scale(p.Type.Color(), glow))
	}
}

func powerUpGlyph(t component.PowerUpType) rune {
	switch t {
	case component.PowerUpRapid:
		return 'R'
	case component.PowerUpTriple:
		return 'T'
	case component.PowerUpShield:
		return 'S'
	case component.PowerUpLife:
		return '♥'
	case component.PowerUpCrystal:
		return '◆'
	default:
		return '?'
	}
}

func (r *Renderer) drawAsteroids(v engine.View) {
	for _, a := range v.World().Asteroids {
		pose := v.Pose(&a.Motion)
		color := component.ColorAsteroid
		glyph := '#'
		if a.IsBoss {
			color = component.ColorBoss
			glyph = '@'
		} else if a.HasCrystals {
			color = component.ColorCrystal
		}
		if a.HitFlash > 0 {
			color = component.ColorWhite
		}

		n := len(a.Shape)
		var px, py [parameter.AsteroidVertexCount]float64
		for i := 0; i < n; i++ {
			dx, dy := vmath.Direction(pose.Angle + float64(i)*360/float64(n))
			rad := a.Radius * a.Shape[i] / 10
			px[i], py[i] = pose.X+dx*rad, pose.Y+dy*rad
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			r.line(px[i], py[i], px[j], py[j], glyph, color)
		}

		if a.IsBoss && a.MaxHealth > 0 {
			r.healthBar(pose.X, pose.Y-a.Radius-4, a.Health, a.MaxHealth)
		}
	}
}

// healthBar draws a small bar centered above an arena point
func (r *Renderer) healthBar(x, y float64, health, maxHealth int) {
	const width = 10
	cx, cy := r.cell(x, y)
	filled := int(math.Ceil(float64(width) * float64(max(0, health)) / float64(maxHealth)))
	for i := 0; i < width; i++ {
		fg := RgbMeterEmpty
		if i < filled {
			fg = component.ColorBoss
		}
		r.buf.SetFgOnly(cx-width/2+i, cy, '▬', fg)
	}
}

func (r *Renderer) drawBullets(v engine.View) {
	w := v.World()
	draw := func(b *component.Bullet, head rune, color RGB) {
		n := b.Trail.Len()
		for i := 0; i < n; i++ {
			p := b.Trail.At(i)
			cx, cy := r.cell(p.X, p.Y)
			r.buf.Glow(cx, cy, '·', Scale(color, 0.3+0.5*float64(i+1)/float64(n)))
		}
		pose := v.Pose(&b.Motion)
		cx, cy := r.cell(pose.X, pose.Y)
		r.buf.SetBold(cx, cy, head, color)
	}
	for _, b := range w.Bullets {
		draw(b, '•', component.ColorBullet)
	}
	for _, b := range w.EnemyBullets {
		draw(b, '∘', component.ColorEnemyBullet)
	}
}

func (r *Renderer) drawEnemies(v engine.View) {
	w := v.World()
	for _, e := range w.Enemies {
		pose := v.Pose(&e.Motion)
		cx, cy := r.cell(pose.X, pose.Y)
		color := component.ColorEnemy
		if e.HitFlash > 0 {
			color = component.ColorWhite
		}
		glyph := 'Ж'
		if e.AI == component.AICircler {
			glyph = '◎'
		}
		r.buf.SetBold(cx, cy, glyph, color)

		if w.Finisher.Executing && w.Finisher.Target == e {
			lock := Blend(component.ColorWhite, component.ColorGold, w.Finisher.LockOnProgress)
			r.buf.SetBold(cx-1, cy, '[', lock)
			r.buf.SetBold(cx+1, cy, ']', lock)
		}
	}
}

func (r *Renderer) drawShip(v engine.View) {
	w := v.World()
	s := w.Ship
	if w.State.GameOver {
		return
	}

	n := s.DashTrail.Len()
	for i := 0; i < n; i++ {
		g := s.DashTrail.At(i)
		cx, cy := r.cell(g.X, g.Y)
		r.buf.Glow(cx, cy, ShipGlyph(g.Angle), Scale(component.ColorDash, math.Min(1, g.Life/parameter.DashTrailLife)))
	}

	if s.Respawning > 0 {
		return
	}
	// Invulnerability blinks the hull
	if s.Invulnerable > 0 && int(s.Invulnerable/6)%2 == 1 {
		return
	}

	pose := v.Pose(&s.Motion)
	cx, cy := r.cell(pose.X, pose.Y)
	color := component.ColorWhite
	if s.PowerUpFlash > 0 {
		color = s.FlashColor
	}
	if s.Dashing > 0 {
		color = component.ColorDash
	}
	r.buf.SetBold(cx, cy, ShipGlyph(pose.Angle), color)

	if s.Shield > 0 {
		r.buf.SetFgOnly(cx-1, cy, '(', component.PowerUpShield.Color())
		r.buf.SetFgOnly(cx+1, cy, ')', component.PowerUpShield.Color())
	}
	if w.Finisher.Ready && !w.Finisher.Executing {
		aura := Scale(component.ColorGold, 0.5+0.5*math.Sin(s.AuraPulse))
		dx, dy := vmath.Direction(w.Effects.AuraRotation)
		r.buf.Glow(cx+int(math.Round(dx*2)), cy+int(math.Round(dy)), '✦', aura)
	}
}

func (r *Renderer) drawTexts(v engine.View) {
	for _, t := range v.World().Texts {
		x, y := v.TextPos(t)
		cx, cy := r.cell(x, y)
		fade := math.Min(1, t.Life/20)
		r.buf.TextCentered(cx, cy, t.Text, Scale(t.Color, 0.3+0.7*fade))
	}
}
