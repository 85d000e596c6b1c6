package system

import (
	"sync/atomic"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
)

// PhysicsSystem integrates every non-player body and ages lifetimes
type PhysicsSystem struct {
	world *engine.World

	statExpired *atomic.Int64

	enabled bool
}

// NewPhysicsSystem creates the entity motion system
func NewPhysicsSystem(world *engine.World) *PhysicsSystem {
	s := &PhysicsSystem{world: world}
	s.statExpired = world.Status.Ints.Get("physics.expired")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *PhysicsSystem) Init() {
	s.statExpired.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *PhysicsSystem) Name() string {
	return "physics"
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update runs one physics tick
func (s *PhysicsSystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	w := s.world
	ts := w.Time.Scale

	for _, a := range w.Asteroids {
		physics.IntegrateWrap(&a.Kinetic, ts, w.Width, w.Height)
		a.Angle += a.Spin * ts
		a.HitFlash = w.UpdateTimer(a.HitFlash, 1)
	}

	ec := w.Cfg.Enemy
	for _, e := range w.Enemies {
		e.HitFlash = w.UpdateTimer(e.HitFlash, 1)
		// Cooldown may go negative; the AI step fires on <= 0
		e.FireCooldown -= ts
		physics.CapSpeed(&e.Kinetic, w.Scaled(ec.Speed)*ec.SpeedReduction)
		physics.ApplyFriction(&e.Kinetic, ec.Friction, ts)
		physics.IntegrateWrap(&e.Kinetic, ts, w.Width, w.Height)
	}

	w.Bullets = s.advanceBullets(w.Bullets, ts)
	w.EnemyBullets = s.advanceBullets(w.EnemyBullets, ts)

	alive := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		physics.IntegrateWrap(&p.Kinetic, ts, w.Width, w.Height)
		p.Lifetime = w.UpdateTimer(p.Lifetime, 1)
		p.Pulse += parameter.PowerUpPulseSpeed * ts
		if p.Lifetime > 0 {
			alive = append(alive, p)
		} else {
			s.statExpired.Add(1)
		}
	}
	clear(w.PowerUps[len(alive):])
	w.PowerUps = alive

	for _, t := range w.Texts {
		t.Y += t.VY * ts
		t.Life = w.UpdateTimer(t.Life, 1)
		t.VY *= physics.FrictionFactor(parameter.FloatingTextFriction, ts)
	}
}

// advanceBullets moves projectiles in place; bullets do not wrap and die leaving the arena
func (s *PhysicsSystem) advanceBullets(list []*component.Bullet, ts float64) []*component.Bullet {
	w := s.world
	alive := list[:0]
	for _, b := range list {
		b.Trail.Push(component.Point{X: b.X, Y: b.Y})
		physics.Integrate(&b.Kinetic, ts)
		b.Life -= ts
		if b.Life > 0 && physics.InBounds(&b.Kinetic, w.Width, w.Height) {
			alive = append(alive, b)
		} else {
			s.statExpired.Add(1)
		}
	}
	clear(list[len(alive):])
	return alive
}
