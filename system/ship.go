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

// ShipSystem applies player intent to the ship: steering, thrust, dash, firing and buff timers
type ShipSystem struct {
	world  *engine.World
	spawn  *Spawner
	combat *CombatSystem

	statShots  *atomic.Int64
	statDashes *atomic.Int64

	enabled bool
}

// NewShipSystem creates the ship system; combat resolves finisher targets on dash
func NewShipSystem(world *engine.World, spawn *Spawner, combat *CombatSystem) *ShipSystem {
	s := &ShipSystem{
		world:  world,
		spawn:  spawn,
		combat: combat,
	}
	s.statShots = world.Status.Ints.Get("ship.shots")
	s.statDashes = world.Status.Ints.Get("ship.dashes")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ShipSystem) Init() {
	s.statShots.Store(0)
	s.statDashes.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *ShipSystem) Name() string {
	return "ship"
}

// Priority returns the system's priority
func (s *ShipSystem) Priority() int {
	return parameter.PriorityShip
}

// Update runs one physics tick of ship control
func (s *ShipSystem) Update(dt float64) {
	w := s.world
	in := &w.Input
	shoot, dash := in.Shoot, in.Dash
	in.Shoot, in.Dash = false, false

	if !s.enabled || w.State.GameOver || w.Effects.LevelTransition > 0 {
		return
	}

	ship := w.Ship
	ts := w.Time.Scale
	ship.Thrusting = false

	switch {
	case ship.Respawning > 0:
		ship.Respawning = w.UpdateTimer(ship.Respawning, 1)
		s.spawn.RespawnSpiral(ship)
		physics.ApplyFriction(&ship.Kinetic, w.Cfg.Ship.Friction, ts)
	case ship.Dashing > 0:
		s.dashStep(ship)
	default:
		s.steer(ship, *in, ts)
	}

	physics.IntegrateWrap(&ship.Kinetic, ts, w.Width, w.Height)

	ship.DashTrail.Retain(func(g *component.Ghost) bool {
		g.Life = w.UpdateTimer(g.Life, 1)
		return g.Life > 0
	})

	ship.Invulnerable = w.UpdateTimer(ship.Invulnerable, 1)
	ship.RapidFire = w.UpdateTimer(ship.RapidFire, 1)
	ship.TripleShot = w.UpdateTimer(ship.TripleShot, 1)
	ship.Shield = w.UpdateTimer(ship.Shield, 1)
	ship.PowerUpFlash = w.UpdateTimer(ship.PowerUpFlash, 1)
	w.State.BulletCooldown = w.UpdateTimer(w.State.BulletCooldown, 1)
	w.Dash.Cooldown = w.UpdateTimer(w.Dash.Cooldown, 1)
	ship.AuraPulse += parameter.EffectAuraPulse * ts

	if shoot && w.State.BulletCooldown <= 0 && ship.Respawning <= 0 {
		s.fire(ship)
	}
	if dash {
		s.dash(ship)
	}
}

// steer applies turn, thrust, the speed cap and friction
func (s *ShipSystem) steer(ship *component.Ship, in engine.Intent, ts float64) {
	w := s.world
	sc := w.Cfg.Ship

	turn := vmath.Clamp(in.Turn, -parameter.ShipTurnAxisLimit, parameter.ShipTurnAxisLimit)
	ship.Angle = vmath.NormalizeAngle(ship.Angle + turn*sc.TurnSpeed*ts)

	switch {
	case in.Thrust:
		physics.Thrust(&ship.Kinetic, ship.Angle, w.Scaled(sc.Thrust), ts)
		ship.Thrusting = true
		s.spawn.Thruster(ship)
	case in.Reverse:
		physics.Thrust(&ship.Kinetic, ship.Angle, -w.Scaled(sc.Thrust*sc.ReverseMultiplier), ts)
	}

	physics.CapSpeed(&ship.Kinetic, w.Scaled(sc.MaxSpeed)*w.Mods.Speed)
	physics.ApplyFriction(&ship.Kinetic, sc.Friction, ts)
}

// dashStep drives forced dash motion; the finisher counts its dash in raw ticks
func (s *ShipSystem) dashStep(ship *component.Ship) {
	w := s.world
	if w.Finisher.Executing {
		ship.Dashing = math.Max(0, ship.Dashing-1)
	} else {
		ship.Dashing = w.UpdateTimer(ship.Dashing, 1)
	}
	s.spawn.DashTrail(ship)

	speed := w.Scaled(w.Cfg.Ship.MaxSpeed) * w.Cfg.Dash.SpeedMultiplier
	dx, dy := vmath.Direction(ship.Angle)
	physics.SetImpulse(&ship.Kinetic, dx*speed, dy*speed)
	ship.Invulnerable = math.Max(ship.Invulnerable, ship.Dashing)
}

// fire spawns one or three bullets at the nose and arms the cooldown
func (s *ShipSystem) fire(ship *component.Ship) {
	w := s.world
	bc := w.Cfg.Bullet

	if !w.PlaySound(engine.CueShoot, ship.X, 1.0) && ship.PowerUpFlash < 5 {
		ship.PowerUpFlash = 5
		ship.FlashColor = component.RGB{R: 255, G: 255, B: 100}
	}

	nose := w.Scaled(w.Cfg.Ship.NoseLength)
	dx, dy := vmath.Direction(ship.Angle)
	muzzle := parameter.ParticleMuzzleBase
	if ship.TripleShot > 0 {
		muzzle = parameter.ParticleMuzzleTriple
	}
	s.spawn.MuzzleFlash(ship.X+dx*nose, ship.Y+dy*nose, ship.Angle, muzzle, component.ColorBullet)

	if ship.TripleShot > 0 {
		for _, off := range [...]float64{-bc.TripleSpread, 0, bc.TripleSpread} {
			s.spawnBullet(ship, ship.Angle+off)
		}
	} else {
		s.spawnBullet(ship, ship.Angle)
	}

	base := bc.FireRateNormal
	if ship.RapidFire > 0 {
		base = bc.FireRateRapid
	}
	w.State.BulletCooldown = math.Max(1, float64(int(float64(base)*w.Mods.FireRate)))
	s.statShots.Add(1)
}

func (s *ShipSystem) spawnBullet(ship *component.Ship, angle float64) {
	w := s.world
	nose := w.Scaled(w.Cfg.Ship.NoseLength)
	speed := w.Scaled(w.Cfg.Bullet.Speed)
	dx, dy := vmath.Direction(angle)

	b := &component.Bullet{
		Life:  float64(w.Cfg.Bullet.Lifetime),
		Trail: component.NewTrail[component.Point](parameter.BulletTrailLength),
	}
	b.Angle = angle
	b.VelX, b.VelY = dx*speed, dy*speed
	b.Place(ship.X+dx*nose, ship.Y+dy*nose)
	w.Bullets = append(w.Bullets, b)
}

// dash starts a finisher when one is ready and a target lies on the corridor, else a plain dash
func (s *ShipSystem) dash(ship *component.Ship) {
	w := s.world
	if w.Dash.Cooldown > 0 || ship.Respawning > 0 || ship.Dashing > 0 {
		return
	}

	f := &w.Finisher
	if f.Ready && !f.Executing && len(w.Enemies) > 0 {
		if target := s.combat.FindTarget(); target != nil {
			s.combat.StartExecution(target)
			return
		}
	}

	ship.Dashing = float64(w.Cfg.Dash.Duration)
	w.Dash.Cooldown = math.Max(0, float64(w.Cfg.Dash.Cooldown)-w.Mods.DashReduction)
	w.PlaySound(engine.CueDash, ship.X, 1.0)
	s.statDashes.Add(1)
}

// ResetShip returns the ship to the arena center in its respawn state
func ResetShip(w *engine.World) {
	ship := w.Ship
	sc := w.Cfg.Ship
	ship.Angle = 0
	ship.Place(w.Width/2, w.Height/2)
	physics.SetImpulse(&ship.Kinetic, 0, 0)
	ship.Invulnerable = float64(sc.Invulnerability)
	ship.Respawning = float64(sc.Respawn)
	ship.PowerUpFlash = 0
	ship.AuraPulse = 0
	ship.Dashing = 0
	ship.Thrusting = false
	ship.DashTrail.Clear()
}
