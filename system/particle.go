package system

import (
	"math"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
)

// ParticleSystem integrates the particle pool once per physics tick
type ParticleSystem struct {
	world   *engine.World
	enabled bool
}

// NewParticleSystem creates the pool integration system
func NewParticleSystem(world *engine.World) *ParticleSystem {
	s := &ParticleSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ParticleSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *ParticleSystem) Name() string {
	return "particle"
}

// Priority returns the system's priority
func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticle
}

// Update runs one physics tick
func (s *ParticleSystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	s.world.Particles.Update(s.world.Time.Scale)
}

// StreakSystem pulls pickup streak particles toward the ship at the particle sub-rate
type StreakSystem struct {
	world   *engine.World
	enabled bool
}

// NewStreakSystem creates the streak homing system
func NewStreakSystem(world *engine.World) *StreakSystem {
	s := &StreakSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *StreakSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *StreakSystem) Name() string {
	return "streak"
}

// Priority returns the system's priority
func (s *StreakSystem) Priority() int {
	return parameter.PriorityStreak
}

// Update applies one homing step; dt is the sub-rate interval in seconds
func (s *StreakSystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	w := s.world
	ship := w.Ship
	force := parameter.ParticleStreakAttractForce * dt * 30
	rangeSq := parameter.ParticleStreakAttractDistance * parameter.ParticleStreakAttractDistance

	w.Particles.ForEachActive(func(p *component.Particle) {
		if p.Type != component.ParticleStreak || p.Life <= parameter.ParticleStreakMinLife {
			return
		}
		dx, dy := ship.X-p.X, ship.Y-p.Y
		distSq := dx*dx + dy*dy
		if distSq >= rangeSq || distSq == 0 {
			return
		}
		dist := math.Sqrt(distSq)
		p.VX += dx / dist * force
		p.VY += dy / dist * force
	})
}
