package system

import (
	"math"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
)

// UISystem fades the combo pulse and drops expired floating text at the UI sub-rate
type UISystem struct {
	world *engine.World
	steps float64

	enabled bool
}

// NewUISystem creates the UI system running at hz
func NewUISystem(world *engine.World, hz int) *UISystem {
	s := &UISystem{
		world: world,
		steps: float64(world.Cfg.Timing.PhysicsHz) / float64(max(1, hz)),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *UISystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *UISystem) Name() string {
	return "ui"
}

// Priority returns the system's priority
func (s *UISystem) Priority() int {
	return parameter.PriorityUI
}

// Update runs one UI step
func (s *UISystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	w := s.world
	c := &w.Combo
	c.Pulse = math.Max(0, c.Pulse-parameter.ComboPulseFade*s.steps*w.Time.Scale)

	alive := w.Texts[:0]
	for _, t := range w.Texts {
		if t.Life > 0 {
			alive = append(alive, t)
		}
	}
	clear(w.Texts[len(alive):])
	w.Texts = alive
}
