// Package system implements the per-concern simulation systems driven by the engine scheduler
package system

import (
	"math"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/vmath"
)

// Spawner creates entities and particle effects into the world
// Shared by systems; never removes anything
type Spawner struct {
	w *engine.World
}

// NewSpawner binds a spawner to the world
func NewSpawner(w *engine.World) *Spawner {
	return &Spawner{w: w}
}

// burst describes a radial particle spray
type burst struct {
	count        int
	color        component.RGB
	minSpeed     float64
	maxSpeed     float64
	life         int
	lifeVariance int
	kind         component.ParticleType
}

// edgePoint picks a point on a random arena edge inset by margin
func (s *Spawner) edgePoint(margin int) (x, y float64) {
	w, rng := s.w, s.w.Rng
	width, height := int(w.Width), int(w.Height)
	if rng.Intn(2) == 1 {
		if rng.Intn(2) == 0 {
			x = float64(margin)
		} else {
			x = float64(width - margin)
		}
		y = float64(rng.IntRange(margin, height-margin))
	} else {
		x = float64(rng.IntRange(margin, width-margin))
		if rng.Intn(2) == 0 {
			y = float64(margin)
		} else {
			y = float64(height - margin)
		}
	}
	return x, y
}

// Asteroid creates an asteroid at a random arena edge
func (s *Spawner) Asteroid(size int, boss, crystals bool) *component.Asteroid {
	x, y := s.edgePoint(int(s.w.Cfg.Asteroid.SpawnMargin * s.w.Scale))
	return s.AsteroidAt(x, y, size, boss, crystals)
}

// AsteroidAt creates an asteroid at (x, y); size is clamped to the valid tiers
func (s *Spawner) AsteroidAt(x, y float64, size int, boss, crystals bool) *component.Asteroid {
	w, rng := s.w, s.w.Rng
	ac := w.Cfg.Asteroid
	size = max(parameter.AsteroidMinSize, min(parameter.AsteroidMaxSize, size))

	speed := w.Scaled(ac.BaseSpeed) * (ac.SpeedMultiplier - float64(size)*ac.SpeedSizeAdjustment)
	radius := float64(size) * parameter.AsteroidRadiusPerSize * w.Scale
	spin := rng.Range(-parameter.AsteroidMaxSpin, parameter.AsteroidMaxSpin)
	health := 1
	if boss {
		speed *= w.Cfg.Boss.SpeedMultiplier
		radius *= w.Cfg.Boss.SizeMultiplier
		spin *= w.Cfg.Boss.RotationMultiplier
		health = w.Cfg.Boss.Health
	}

	a := &component.Asteroid{
		Size:        size,
		Radius:      radius,
		Spin:        spin,
		IsBoss:      boss,
		HasCrystals: crystals,
		Health:      health,
		MaxHealth:   health,
	}
	dx, dy := vmath.Direction(rng.Angle())
	a.VelX, a.VelY = dx*speed, dy*speed
	a.Angle = rng.Angle()
	for i := range a.Shape {
		a.Shape[i] = float64(rng.IntRange(parameter.AsteroidShapeVarianceMin, parameter.AsteroidShapeVarianceMax))
	}
	a.Place(x, y)
	return a
}

// Enemy creates an enemy on an arena edge, retrying to keep clear of the ship
func (s *Spawner) Enemy() *component.Enemy {
	w, rng := s.w, s.w.Rng
	ec := w.Cfg.Enemy
	minDist := ec.MinSpawnDistance * w.Scale
	margin := int(parameter.EnemySpawnMargin * w.Scale)

	x, y := w.Width-float64(margin), w.Height-float64(margin)
	for range parameter.EnemyMaxSpawnAttempts {
		cx, cy := s.edgePoint(margin)
		x, y = cx, cy
		if vmath.DistanceSq(cx, cy, w.Ship.X, w.Ship.Y) >= minDist*minDist {
			break
		}
	}

	e := &component.Enemy{
		AI:           component.AIType(rng.Intn(component.AITypeCount)),
		FireCooldown: float64(ec.FireRate + rng.IntRange(-ec.FireRateVariance, ec.FireRateVariance)),
		Health:       ec.Health,
		MaxHealth:    ec.Health,
		OrbitAngle:   rng.Angle(),
		Radius:       w.Scaled(ec.Radius),
	}
	e.Angle = rng.Angle()
	e.Place(x, y)
	return e
}

// PowerUp rolls a drop at (x, y): crystal chance first, then a buff at drop chance, else nothing
func (s *Spawner) PowerUp(x, y float64) {
	pc, rng := s.w.Cfg.PowerUp, s.w.Rng
	switch {
	case rng.Chance(pc.CrystalChance):
		s.PowerUpOf(x, y, component.PowerUpCrystal)
	case rng.Chance(pc.DropChance):
		s.PowerUpOf(x, y, component.BuffTypes[rng.Intn(len(component.BuffTypes))])
	}
}

// PowerUpOf spawns a pickup of type t at (x, y)
func (s *Spawner) PowerUpOf(x, y float64, t component.PowerUpType) {
	w, rng := s.w, s.w.Rng
	pc := w.Cfg.PowerUp
	lifetime := int(float64(pc.Lifetime) * (1 + (w.AreaMultiplier()-1)*pc.AreaScaling))

	p := &component.PowerUp{Type: t, Lifetime: float64(lifetime)}
	p.VelX = rng.Range(-parameter.PowerUpDriftSpeed, parameter.PowerUpDriftSpeed) * w.Scale
	p.VelY = rng.Range(-parameter.PowerUpDriftSpeed, parameter.PowerUpDriftSpeed) * w.Scale
	p.Place(vmath.Wrap(x, w.Width), vmath.Wrap(y, w.Height))
	w.PowerUps = append(w.PowerUps, p)
}

// Text floats a label near (x, y)
func (s *Spawner) Text(x, y float64, text string, color component.RGB) {
	w := s.w
	jitter := float64(w.Rng.IntRange(-parameter.FloatingTextSpread, parameter.FloatingTextSpread)) * w.Scale
	t := &component.FloatingText{
		X:     x + jitter,
		Y:     y,
		VY:    -parameter.FloatingTextSpeed * w.Scale,
		Life:  parameter.FloatingTextLife,
		Text:  text,
		Color: color,
	}
	t.StorePrevious()
	w.Texts = append(w.Texts, t)
}

// spray emits a radial burst, silently truncated when the pool runs out
func (s *Spawner) spray(x, y float64, b burst) {
	w, rng := s.w, s.w.Rng
	for range b.count {
		p, ok := w.Particles.Acquire()
		if !ok {
			return
		}
		speed := rng.Range(b.minSpeed, b.maxSpeed) * w.Scale
		dx, dy := vmath.Direction(rng.Angle())
		p.X, p.Y = x, y
		p.VX, p.VY = dx*speed, dy*speed
		p.Life = float64(b.life + rng.IntRange(0, b.lifeVariance))
		p.Color = b.color
		p.Type = b.kind
	}
}

// Explosion adds shake, plays a size-tiered cue and sprays particles scaled by arena area
func (s *Spawner) Explosion(x, y float64, count int, color component.RGB, enemy bool) {
	w := s.w
	w.AddShake(float64(count / 5))

	volume := 1.0
	switch {
	case count <= 10:
		volume = 0.7
	case count > 30:
		volume = 1.3
	}
	maxDist := math.Hypot(w.Width, w.Height)
	if maxDist > 0 {
		dist := math.Sqrt(vmath.DistanceSq(x, y, w.Ship.X, w.Ship.Y))
		volume *= 1.0 - (dist/maxDist)*0.3
	}

	cue := engine.CueExplosionLarge
	switch {
	case enemy:
		cue = engine.CueEnemyExplosion
	case count <= 10:
		cue = engine.CueExplosionSmall
	case count <= 30:
		cue = engine.CueExplosionMedium
	}
	w.PlaySound(cue, x, volume)

	kind := component.ParticlePlain
	if enemy {
		kind = component.ParticleEnemyExplosion
	}
	s.spray(x, y, burst{
		count:        int(float64(count) * (0.7 + 0.3*w.AreaFactor())),
		color:        color,
		maxSpeed:     parameter.ParticleExplosionMaxSpeed,
		life:         w.Cfg.Particle.BaseLife,
		lifeVariance: w.Cfg.Particle.LifeVariance,
		kind:         kind,
	})
}

// FinisherExplosion is the golden core burst plus concentric shockwave rings
func (s *Spawner) FinisherExplosion(x, y float64) {
	w, rng := s.w, s.w.Rng
	for i := range parameter.FinisherParticleCount {
		p, ok := w.Particles.Acquire()
		if !ok {
			break
		}
		speed := rng.Range(1, 15) * w.Scale
		dx, dy := vmath.Direction(rng.Angle())
		p.X, p.Y = x, y
		p.VX, p.VY = dx*speed*0.5, dy*speed*0.5
		p.Life = float64(w.Cfg.Particle.BaseLife + rng.IntRange(10, 40))
		switch {
		case i < parameter.FinisherParticleCount/3:
			p.Color = component.ColorGold
		case i < parameter.FinisherParticleCount*2/3:
			p.Color = component.RGB{R: 255, G: uint8(rng.IntRange(150, 215))}
		default:
			p.Color = component.RGB{R: 255, G: 255, B: uint8(rng.IntRange(200, 255))}
		}
		p.Type = component.ParticleFinisher
	}

	for i := range parameter.FinisherRingParticles {
		dx, dy := vmath.Direction(float64(i) * 360 / parameter.FinisherRingParticles)
		for ring := range parameter.FinisherRingCount {
			p, ok := w.Particles.Acquire()
			if !ok {
				return
			}
			speed := float64(3+ring*2) * w.Scale
			p.X, p.Y = x, y
			p.VX, p.VY = dx*speed, dy*speed
			p.Life = float64(30 - ring*5)
			p.Color = component.RGB{R: 255, G: 200, B: 100}
			if ring == 0 {
				p.Color = component.ColorGold
			}
			p.Type = component.ParticleFinisher
		}
	}
}

// Streak sends particles from a pickup toward the ship plus a small burst at the pickup
func (s *Spawner) Streak(fromX, fromY, toX, toY float64, color component.RGB) {
	w, rng := s.w, s.w.Rng
	area := w.AreaFactor()
	dx, dy, dist := vmath.Normalize2D(toX-fromX, toY-fromY)
	if dist > 0 {
		count := int(parameter.ParticleStreakCount * area)
		for i := range count {
			p, ok := w.Particles.Acquire()
			if !ok {
				break
			}
			progress := float64(i) / float64(count)
			vx, vy := vmath.RotateVector(dx, dy, rng.Range(-30, 30))
			speed := (3 + progress*4) * w.Scale
			p.X = fromX + dx*dist*progress*0.3 + rng.Range(-5, 5)*w.Scale
			p.Y = fromY + dy*dist*progress*0.3 + rng.Range(-5, 5)*w.Scale
			p.VX, p.VY = vx*speed, vy*speed
			p.Life = float64(20 + i*2)
			p.Color = color
			p.Type = component.ParticleStreak
		}
	}
	s.spray(fromX, fromY, burst{
		count:    int(8 * area),
		color:    color,
		minSpeed: 1,
		maxSpeed: 3,
		life:     25,
		kind:     component.ParticleBurst,
	})
}

// MuzzleFlash sprays a short cone along angle
func (s *Spawner) MuzzleFlash(x, y, angle float64, count int, color component.RGB) {
	w, rng := s.w, s.w.Rng
	for range count {
		p, ok := w.Particles.Acquire()
		if !ok {
			return
		}
		dx, dy := vmath.Direction(angle + rng.Range(-15, 15))
		p.X, p.Y = x, y
		p.VX = dx*3*w.Scale + rng.Range(-1, 1)
		p.VY = dy*3*w.Scale + rng.Range(-1, 1)
		p.Life = 10
		p.Color = color
	}
}

// Sparks is a small random spray used as a silent-audio fallback
func (s *Spawner) Sparks(x, y float64, count int, color component.RGB) {
	w, rng := s.w, s.w.Rng
	for range count {
		p, ok := w.Particles.Acquire()
		if !ok {
			return
		}
		p.X, p.Y = x, y
		p.VX = rng.Range(-2, 2) * w.Scale
		p.VY = rng.Range(-2, 2) * w.Scale
		p.Life = 15
		p.Color = color
	}
}

// Thruster emits exhaust behind the ship
func (s *Spawner) Thruster(ship *component.Ship) {
	w, rng := s.w, s.w.Rng
	dx, dy := vmath.Direction(ship.Angle)
	back := w.Scaled(w.Cfg.Ship.NoseLength * 0.8)
	bx, by := ship.X-back*dx, ship.Y-back*dy
	for range parameter.ParticleThrusterCount {
		p, ok := w.Particles.Acquire()
		if !ok {
			return
		}
		p.X = bx + float64(rng.IntRange(-3, 3))
		p.Y = by + float64(rng.IntRange(-3, 3))
		p.VX = -dx*3*w.Scale + rng.Range(-0.5, 0.5)
		p.VY = -dy*3*w.Scale + rng.Range(-0.5, 0.5)
		p.Life = 20
		p.Color = component.ColorThruster
	}
}

// RespawnSpiral draws particles inward toward the respawning ship
func (s *Spawner) RespawnSpiral(ship *component.Ship) {
	w, rng := s.w, s.w.Rng
	for range parameter.ParticleRespawnRate {
		p, ok := w.Particles.Acquire()
		if !ok {
			return
		}
		dx, dy := vmath.Direction(rng.Angle())
		dist := rng.Range(30, 60) * w.Scale
		p.X, p.Y = ship.X+dx*dist, ship.Y+dy*dist
		p.VX = -dx*2*w.Scale + rng.Range(-0.5, 0.5)
		p.VY = -dy*2*w.Scale + rng.Range(-0.5, 0.5)
		p.Life = 30
		p.Color = component.ColorBlueGlow
		p.Type = component.ParticleRespawn
	}
}

// DashTrail records a ghost and sheds particles sideways from the hull
func (s *Spawner) DashTrail(ship *component.Ship) {
	w, rng := s.w, s.w.Rng
	ship.DashTrail.Push(component.Ghost{X: ship.X, Y: ship.Y, Angle: ship.Angle, Life: parameter.DashTrailLife})

	sx, sy := vmath.Direction(ship.Angle + 90)
	for range parameter.ParticleDashCount {
		p, ok := w.Particles.Acquire()
		if !ok {
			return
		}
		offset := rng.Range(-10, 10) * w.Scale
		p.X, p.Y = ship.X+sx*offset, ship.Y+sy*offset
		p.VX = -ship.VelX*0.3 + rng.Range(-1, 1)
		p.VY = -ship.VelY*0.3 + rng.Range(-1, 1)
		p.Life = 15
		p.Color = component.ColorDash
		p.Type = component.ParticleDash
	}
}
