package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/vmath"
)

// AISystem steers enemies and fires their shots at the AI sub-rate
// Each step covers several physics ticks, so rates are multiplied by the step count
type AISystem struct {
	world *engine.World
	spawn *Spawner
	steps float64

	statShots *atomic.Int64

	enabled bool
}

// NewAISystem creates the enemy AI system running at hz
func NewAISystem(world *engine.World, spawn *Spawner, hz int) *AISystem {
	s := &AISystem{
		world: world,
		spawn: spawn,
		steps: float64(world.Cfg.Timing.PhysicsHz) / float64(max(1, hz)),
	}
	s.statShots = world.Status.Ints.Get("ai.shots")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AISystem) Init() {
	s.statShots.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *AISystem) Name() string {
	return "ai"
}

// Priority returns the system's priority
func (s *AISystem) Priority() int {
	return parameter.PriorityAI
}

// Update runs one AI step for every enemy
func (s *AISystem) Update(dt float64) {
	w := s.world
	if !s.enabled || w.State.GameOver || w.Effects.LevelTransition > 0 {
		return
	}
	for _, e := range w.Enemies {
		s.think(e)
	}
}

func (s *AISystem) think(e *component.Enemy) {
	w := s.world
	ec := w.Cfg.Enemy
	ship := w.Ship
	ts := w.Time.Scale
	step := ts * s.steps
	speed := w.Scaled(ec.Speed)

	dx, dy, dist := physics.Direction(e.X, e.Y, ship.X, ship.Y, w.Rng)

	switch e.AI {
	case component.AIHunter:
		if dist > w.Scaled(ec.MinDistance) {
			physics.ApplyImpulse(&e.Kinetic, dx*ec.HunterApproach*speed*step, dy*ec.HunterApproach*speed*step)
		} else {
			physics.ApplyImpulse(&e.Kinetic, -dx*ec.HunterRetreat*speed*step, -dy*ec.HunterRetreat*speed*step)
		}
	case component.AICircler:
		e.OrbitAngle = vmath.NormalizeAngle(e.OrbitAngle + ec.CirclerOrbitSpeed*step)
		ox, oy := vmath.Direction(e.OrbitAngle)
		r := ec.CirclerOrbitRadius * w.Scale
		physics.Steer(&e.Kinetic, ship.X+ox*r, ship.Y+oy*r, ec.CirclerApproach*speed*step)
	}

	e.Angle = vmath.NormalizeAngle(math.Atan2(dy, dx) * vmath.RadToDeg)

	if e.FireCooldown <= 0 && dist > ec.MinFireDistance*w.Scale && dist < ec.MaxFireDistance*w.Scale {
		s.fire(e)
	}
}

// fire shoots one inaccurate bullet at the ship and re-arms the cooldown
func (s *AISystem) fire(e *component.Enemy) {
	w := s.world
	ec := w.Cfg.Enemy

	aim := e.Angle + w.Rng.Range(-ec.AimInaccuracy, ec.AimInaccuracy)
	dx, dy := vmath.Direction(aim)
	nose := w.Scaled(w.Cfg.Ship.NoseLength)
	speed := w.Scaled(w.Cfg.Bullet.Speed) * w.Cfg.Bullet.EnemySpeedMultiplier

	b := &component.Bullet{
		Life:  float64(w.Cfg.Bullet.Lifetime),
		Enemy: true,
		Trail: component.NewTrail[component.Point](parameter.EnemyBulletTrailLength),
	}
	b.Angle = aim
	b.VelX, b.VelY = dx*speed, dy*speed
	b.Place(e.X+dx*nose, e.Y+dy*nose)
	w.EnemyBullets = append(w.EnemyBullets, b)

	if !w.PlaySound(engine.CueEnemyShoot, e.X, 0.8) {
		s.spawn.Sparks(b.X, b.Y, parameter.ParticleMuzzleFallback, component.ColorEnemyBullet)
	}
	e.FireCooldown = float64(ec.FireRate + w.Rng.IntRange(-ec.FireRateVariance, ec.FireRateVariance))
	s.statShots.Add(1)
}
