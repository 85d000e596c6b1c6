package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
)

// CollisionSystem resolves bullet, ship and pickup contacts through the spatial grid
// Removals are deferred to the end of the pass so no collection shrinks mid-scan
type CollisionSystem struct {
	world  *engine.World
	spawn  *Spawner
	combat *CombatSystem

	deadBullets map[*component.Bullet]struct{}
	deadRocks   map[*component.Asteroid]struct{}
	deadEnemies map[*component.Enemy]struct{}
	deadShots   map[*component.Bullet]struct{}
	deadPickups map[*component.PowerUp]struct{}
	newRocks    []*component.Asteroid
	newEnemies  []*component.Enemy

	statChecks *atomic.Int64
	statHits   *atomic.Int64

	enabled bool
}

// NewCollisionSystem creates the collision system
func NewCollisionSystem(world *engine.World, spawn *Spawner, combat *CombatSystem) *CollisionSystem {
	s := &CollisionSystem{
		world:       world,
		spawn:       spawn,
		combat:      combat,
		deadBullets: make(map[*component.Bullet]struct{}),
		deadRocks:   make(map[*component.Asteroid]struct{}),
		deadEnemies: make(map[*component.Enemy]struct{}),
		deadShots:   make(map[*component.Bullet]struct{}),
		deadPickups: make(map[*component.PowerUp]struct{}),
	}
	s.statChecks = world.Status.Ints.Get("collision.checks")
	s.statHits = world.Status.Ints.Get("collision.hits")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *CollisionSystem) Init() {
	s.reset()
	s.statChecks.Store(0)
	s.statHits.Store(0)
	s.enabled = true
}

func (s *CollisionSystem) reset() {
	clear(s.deadBullets)
	clear(s.deadRocks)
	clear(s.deadEnemies)
	clear(s.deadShots)
	clear(s.deadPickups)
	s.newRocks = s.newRocks[:0]
	s.newEnemies = s.newEnemies[:0]
}

// Name returns system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update runs one physics tick of contact resolution
func (s *CollisionSystem) Update(dt float64) {
	w := s.world
	if !s.enabled || w.State.GameOver || w.Effects.LevelTransition > 0 {
		return
	}
	s.reset()
	s.rebuildGrid()
	s.bulletHits()
	s.flush()

	if !w.State.GameOver && w.Ship.Vulnerable() {
		// Bullet kills changed the population
		s.rebuildGrid()
		s.shipHits()
		s.flush()
	}
	if !w.State.GameOver {
		s.pickups()
		s.flush()
	}
}

func (s *CollisionSystem) rebuildGrid() {
	w := s.world
	g := w.Grid
	g.Clear()
	for _, a := range w.Asteroids {
		g.Insert(a, a.Radius)
	}
	for _, e := range w.Enemies {
		g.Insert(e, e.Radius)
	}
	r := w.Scaled(w.Cfg.Bullet.Radius)
	for _, b := range w.EnemyBullets {
		g.Insert(b, r)
	}
}

// bulletHits resolves player bullets against asteroids and enemies, one target per bullet
func (s *CollisionSystem) bulletHits() {
	w := s.world
	br := w.Scaled(w.Cfg.Bullet.Radius)
	margin := w.Scaled(w.Cfg.Asteroid.CollisionMargin)

	for _, b := range w.Bullets {
		for _, n := range w.Grid.Query(b, br) {
			s.statChecks.Add(1)
			switch t := n.Body.(type) {
			case *component.Asteroid:
				if _, dead := s.deadRocks[t]; dead {
					continue
				}
				if !physics.CirclesOverlap(b.X, b.Y, br, t.X, t.Y, t.Radius+margin) {
					continue
				}
				s.deadBullets[b] = struct{}{}
				s.hitAsteroid(t, b.X, b.Y)
			case *component.Enemy:
				if _, dead := s.deadEnemies[t]; dead {
					continue
				}
				if !physics.CirclesOverlap(b.X, b.Y, br, t.X, t.Y, t.Radius) {
					continue
				}
				s.deadBullets[b] = struct{}{}
				s.hitEnemy(t)
			default:
				continue
			}
			s.statHits.Add(1)
			break
		}
	}
}

func (s *CollisionSystem) damage() int {
	return max(1, int(s.world.Mods.Damage))
}

// hitAsteroid applies one bullet hit at the impact point
func (s *CollisionSystem) hitAsteroid(a *component.Asteroid, hx, hy float64) {
	w := s.world
	if a.IsBoss {
		a.Health -= s.damage()
		a.HitFlash = float64(w.Cfg.Asteroid.HitFlash)
		if a.Health <= 0 {
			s.killBoss(a)
		}
		return
	}

	color, count := component.AsteroidBlast(a.Size)
	s.spawn.Explosion(a.X, a.Y, count, color, false)
	if a.HasCrystals {
		s.spawn.PowerUpOf(a.X, a.Y, component.PowerUpCrystal)
	} else {
		s.spawn.PowerUp(a.X, a.Y)
	}

	points := int(float64(s.asteroidScore(a.Size)) * (1 + float64(w.Combo.Current)*parameter.ComboScoreBonus))
	w.State.Score += points
	s.combat.AddCombo()
	w.UpdateHighScore()
	s.spawn.Text(a.X, a.Y, fmt.Sprintf("+%d", points), component.ColorScoreText)

	s.Split(a, hx, hy)

	ec := w.Cfg.Enemy
	if len(w.Enemies)+len(s.newEnemies) < ec.MaxCount && w.Rng.Chance(ec.SpawnChance) {
		s.newEnemies = append(s.newEnemies, s.spawn.Enemy())
	}
	w.PushEvent(event.EventKill, &event.KillPayload{Kind: component.KindAsteroid, X: a.X, Y: a.Y, Score: points})
}

// Split marks a destroyed asteroid and queues its children at the impact point
// Size one asteroids leave nothing behind
func (s *CollisionSystem) Split(a *component.Asteroid, hx, hy float64) {
	s.deadRocks[a] = struct{}{}
	if a.Size <= parameter.AsteroidMinSize {
		return
	}
	for range s.world.Cfg.Asteroid.SplitCount {
		s.newRocks = append(s.newRocks, s.spawn.AsteroidAt(hx, hy, a.Size-1, false, false))
	}
}

func (s *CollisionSystem) asteroidScore(size int) int {
	ac := s.world.Cfg.Asteroid
	switch size {
	case 3:
		return ac.ScoreLarge
	case 2:
		return ac.ScoreMedium
	default:
		return ac.ScoreSmall
	}
}

func (s *CollisionSystem) killBoss(a *component.Asteroid) {
	w := s.world
	bc := w.Cfg.Boss
	s.deadRocks[a] = struct{}{}
	s.spawn.Explosion(a.X, a.Y, 60, component.ColorBoss, false)
	w.State.Score += bc.Score
	s.combat.AddCombo()
	w.UpdateHighScore()
	s.spawn.Text(a.X, a.Y, fmt.Sprintf("BOSS +%d", bc.Score), component.ColorGold)

	spread := parameter.BossCrystalSpread * w.Scale
	for range bc.CrystalDrops {
		s.spawn.PowerUpOf(a.X+w.Rng.Range(-spread, spread), a.Y+w.Rng.Range(-spread, spread), component.PowerUpCrystal)
	}
	w.Progress.BossKills++
	w.PushEvent(event.EventBossKill, &event.KillPayload{Kind: component.KindAsteroid, X: a.X, Y: a.Y, Score: bc.Score})
	w.Logger.Info().Int("level", w.State.Level).Msg("Boss destroyed")
}

func (s *CollisionSystem) hitEnemy(e *component.Enemy) {
	w := s.world
	ec := w.Cfg.Enemy
	e.Health -= s.damage()
	e.HitFlash = float64(parameter.EnemyHitFlash)
	if e.Health > 0 {
		return
	}

	s.deadEnemies[e] = struct{}{}
	s.spawn.Explosion(e.X, e.Y, 25, component.ColorEnemy, true)
	w.State.Score += ec.Score
	s.combat.AddCombo()
	w.UpdateHighScore()
	s.spawn.Text(e.X, e.Y, fmt.Sprintf("+%d", ec.Score), component.ColorScoreText)
	if w.Rng.Chance(ec.CrystalDropChance) {
		s.spawn.PowerUpOf(e.X, e.Y, component.PowerUpCrystal)
	} else {
		s.spawn.PowerUp(e.X, e.Y)
	}
	w.PushEvent(event.EventKill, &event.KillPayload{Kind: component.KindEnemy, X: e.X, Y: e.Y, Score: ec.Score})
}

// shipHits tests the ship against nearby asteroids, enemies and enemy bullets from the grid
// Checking stops at the first hit that changes ship state, shield absorption included
func (s *CollisionSystem) shipHits() {
	w := s.world
	ship := w.Ship
	sr := w.Scaled(w.Cfg.Ship.Radius)
	margin := w.Scaled(w.Cfg.Asteroid.CollisionMargin)
	shotR := w.Scaled(w.Cfg.Bullet.Radius) * parameter.EnemyShipBulletRadiusMultiplier

	near := w.Grid.Query(ship, sr+max(margin, shotR))
	s.statChecks.Add(int64(len(near)))

	// Hazards resolve in a fixed kind order regardless of cell layout
	for _, n := range near {
		a, ok := n.Body.(*component.Asteroid)
		if !ok {
			continue
		}
		if _, dead := s.deadRocks[a]; dead {
			continue
		}
		if !physics.CirclesOverlap(ship.X, ship.Y, sr, a.X, a.Y, a.Radius+margin) {
			continue
		}
		if s.DamageShip() {
			return
		}
	}

	for _, n := range near {
		e, ok := n.Body.(*component.Enemy)
		if !ok {
			continue
		}
		if _, dead := s.deadEnemies[e]; dead {
			continue
		}
		if !physics.CirclesOverlap(ship.X, ship.Y, sr, e.X, e.Y, e.Radius) {
			continue
		}
		s.deadEnemies[e] = struct{}{}
		s.spawn.Explosion(e.X, e.Y, parameter.ParticleExplosionCount, component.ColorEnemy, true)
		if s.DamageShip() {
			return
		}
	}

	for _, n := range near {
		b, ok := n.Body.(*component.Bullet)
		if !ok {
			continue
		}
		if _, dead := s.deadShots[b]; dead {
			continue
		}
		if !physics.CirclesOverlap(ship.X, ship.Y, sr, b.X, b.Y, shotR) {
			continue
		}
		s.deadShots[b] = struct{}{}
		if s.DamageShip() {
			return
		}
	}
}

// DamageShip applies one hit to the ship; returns true when ship state changed
// An active shield absorbs the hit and is consumed; that still counts as the tick's hit
func (s *CollisionSystem) DamageShip() bool {
	w := s.world
	ship := w.Ship

	if ship.Shield > 0 {
		ship.Shield = 0
		w.Effects.DamageFlash = float64(parameter.EffectShieldFlash)
		w.Effects.DamageFlashColor = component.ColorShieldFlash
		w.AddShake(10)
		s.spawn.Explosion(ship.X, ship.Y, 20, component.ColorShieldBlast, false)
		w.PlaySound(engine.CueExplosionMedium, ship.X, 1.0)
		w.PushEvent(event.EventShieldAbsorb, nil)
		return true
	}

	w.State.Lives--
	w.State.Untouchable = false
	w.Effects.DamageFlash = float64(parameter.EffectDamageFlash)
	w.Effects.DamageFlashColor = component.ColorDamageFlash
	s.spawn.Explosion(ship.X, ship.Y, parameter.ParticleShipExplosion, component.ColorShipBlast, false)
	s.spawn.Explosion(ship.X, ship.Y, 10, component.ColorShipCore, false)
	w.PushEvent(event.EventShipHit, nil)

	if w.State.Lives <= 0 {
		w.State.Lives = 0
		w.State.GameOver = true
		w.UpdateHighScore()
		w.PushEvent(event.EventGameOver, nil)
		w.Logger.Info().
			Int("score", w.State.Score).
			Int("level", w.State.Level).
			Msg("Game over")
	} else {
		ResetShip(w)
	}
	return true
}

// pickups collects every powerup overlapping the ship
func (s *CollisionSystem) pickups() {
	w := s.world
	ship := w.Ship
	pc := w.Cfg.PowerUp
	sr, pr := w.Scaled(pc.PickupRadius), w.Scaled(pc.VisualRadius)

	for _, p := range w.PowerUps {
		if !physics.CirclesOverlap(ship.X, ship.Y, sr, p.X, p.Y, pr) {
			continue
		}
		s.deadPickups[p] = struct{}{}
		s.Collect(p)
	}
}

// Collect applies a pickup's effect and feedback
func (s *CollisionSystem) Collect(p *component.PowerUp) {
	w := s.world
	ship := w.Ship
	pc := w.Cfg.PowerUp
	color := p.Type.Color()

	s.spawn.Streak(p.X, p.Y, ship.X, ship.Y, color)
	w.PlaySound(pickupCue(p.Type), p.X, 1.0)
	ship.PowerUpFlash = parameter.PowerUpFlashDuration
	ship.FlashColor = color
	w.AddShake(3)

	switch p.Type {
	case component.PowerUpRapid:
		ship.RapidFire = float64(pc.RapidDuration)
	case component.PowerUpTriple:
		ship.TripleShot = float64(pc.TripleDuration)
	case component.PowerUpShield:
		ship.Shield = float64(pc.ShieldDuration)
	case component.PowerUpLife:
		w.State.Lives = min(w.State.Lives+1, w.Cfg.Ship.MaxLives)
		ship.PowerUpFlash = parameter.PowerUpFlashMax
		w.AddShake(5)
	}

	if p.Type == component.PowerUpCrystal {
		w.Progress.Crystals += pc.CrystalValue
		w.Progress.LifetimeCrystals += pc.CrystalValue
		s.spawn.Text(p.X, p.Y, fmt.Sprintf("+%d", pc.CrystalValue), component.ColorCrystal)
	} else {
		w.State.Score += pc.Score
		w.UpdateHighScore()
		s.spawn.Text(p.X, p.Y, fmt.Sprintf("+%d", pc.Score), component.ColorScoreText)
	}
	w.PushEvent(event.EventPowerUp, &event.PowerUpPayload{Type: p.Type})
}

func pickupCue(t component.PowerUpType) string {
	switch t {
	case component.PowerUpRapid:
		return engine.CuePowerUpRapid
	case component.PowerUpTriple:
		return engine.CuePowerUpTriple
	case component.PowerUpShield:
		return engine.CuePowerUpShield
	case component.PowerUpLife:
		return engine.CuePowerUpLife
	default:
		return engine.CuePowerUpCrystal
	}
}

// flush applies deferred removals and appends queued spawns
func (s *CollisionSystem) flush() {
	w := s.world
	if len(s.deadBullets) > 0 {
		w.Bullets = removeSet(w.Bullets, s.deadBullets)
	}
	if len(s.deadShots) > 0 {
		w.EnemyBullets = removeSet(w.EnemyBullets, s.deadShots)
	}
	if len(s.deadRocks) > 0 {
		w.Asteroids = removeSet(w.Asteroids, s.deadRocks)
	}
	if len(s.deadEnemies) > 0 {
		w.Enemies = removeSet(w.Enemies, s.deadEnemies)
	}
	if len(s.deadPickups) > 0 {
		w.PowerUps = removeSet(w.PowerUps, s.deadPickups)
	}
	w.Asteroids = append(w.Asteroids, s.newRocks...)
	w.Enemies = append(w.Enemies, s.newEnemies...)
	s.reset()
}

// removeSet filters list in place, dropping members of dead
func removeSet[T comparable](list []T, dead map[T]struct{}) []T {
	alive := list[:0]
	for _, v := range list {
		if _, ok := dead[v]; !ok {
			alive = append(alive, v)
		}
	}
	var zero T
	for i := len(alive); i < len(list); i++ {
		list[i] = zero
	}
	return alive
}
