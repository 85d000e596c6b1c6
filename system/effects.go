package system

import (
	"math"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/vmath"
)

// EffectsSystem decays screen shake and flashes, spins the aura and counts down banners
type EffectsSystem struct {
	world *engine.World
	steps float64

	enabled bool
}

// NewEffectsSystem creates the screen effects system running at hz
func NewEffectsSystem(world *engine.World, hz int) *EffectsSystem {
	s := &EffectsSystem{
		world: world,
		steps: float64(world.Cfg.Timing.PhysicsHz) / float64(max(1, hz)),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *EffectsSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *EffectsSystem) Name() string {
	return "effects"
}

// Priority returns the system's priority
func (s *EffectsSystem) Priority() int {
	return parameter.PriorityEffects
}

// Update runs one effects step
func (s *EffectsSystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	w := s.world
	fx := &w.Effects
	fx.ScreenShake = math.Max(0, fx.ScreenShake-parameter.EffectShakeDecay*s.steps)
	fx.DamageFlash = math.Max(0, fx.DamageFlash-parameter.EffectDamageFlashDecay*s.steps)
	fx.AuraRotation = vmath.NormalizeAngle(fx.AuraRotation + parameter.EffectAuraRotation*s.steps*w.Time.Scale)
	fx.WaveWarning = w.UpdateTimer(fx.WaveWarning, s.steps)
}
