package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
)

// LevelSystem detects a cleared arena, runs the transition countdown and populates the next level
type LevelSystem struct {
	world *engine.World
	spawn *Spawner

	enabled bool
}

// NewLevelSystem creates the level progression system
func NewLevelSystem(world *engine.World, spawn *Spawner) *LevelSystem {
	s := &LevelSystem{world: world, spawn: spawn}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *LevelSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *LevelSystem) Name() string {
	return "level"
}

// Priority returns the system's priority
func (s *LevelSystem) Priority() int {
	return parameter.PriorityLevel
}

// Update runs one physics tick
func (s *LevelSystem) Update(dt float64) {
	w := s.world
	if !s.enabled || w.State.GameOver {
		return
	}
	fx := &w.Effects

	if fx.LevelTransition > 0 {
		fx.LevelTransition = w.UpdateTimer(fx.LevelTransition, 1)
		if fx.LevelTransition <= 0 {
			s.StartLevel()
		}
		return
	}

	if len(w.Asteroids) == 0 {
		w.State.Level++
		fx.LevelTransition = parameter.LevelTransitionDuration
		fx.LevelTransitionText = fmt.Sprintf("LEVEL %d", w.State.Level)
		w.AddShake(parameter.LevelShakeOnComplete)
		w.PlaySound(engine.CueLevelTransition, w.Width/2, 1.0)
		w.PushEvent(event.EventLevelComplete, &event.LevelPayload{Level: w.State.Level - 1})
		w.Logger.Info().Int("next", w.State.Level).Msg("Level complete")
	}
}

// IsBossLevel reports whether level spawns a boss
func (s *LevelSystem) IsBossLevel(level int) bool {
	interval := s.world.Cfg.Boss.SpawnInterval
	return interval > 0 && level%interval == 0
}

// StartLevel clears hostiles and populates the arena for the current level
func (s *LevelSystem) StartLevel() {
	w := s.world
	level := w.State.Level
	clean := level > 1 && w.State.Untouchable
	w.State.Untouchable = true

	w.Enemies = w.Enemies[:0]
	w.EnemyBullets = w.EnemyBullets[:0]

	boss := s.IsBossLevel(level)
	count := int(float64(3+level) * math.Sqrt(w.AreaMultiplier()))
	if boss {
		w.Effects.WaveWarning = parameter.BossWaveWarning
		w.Effects.WaveWarningText = "BOSS APPROACHING!"
		w.Asteroids = append(w.Asteroids, s.spawn.Asteroid(parameter.AsteroidMaxSize, true, false))
		count = max(1, count-3)
	}
	for range count {
		crystals := w.Rng.Chance(w.Cfg.Asteroid.CrystalChance)
		w.Asteroids = append(w.Asteroids, s.spawn.Asteroid(parameter.AsteroidMaxSize, false, crystals))
	}

	w.Texts = w.Texts[:0]
	ResetShip(w)
	w.PushEvent(event.EventLevelStart, &event.LevelPayload{Level: level, Boss: boss, Clean: clean})
	w.Logger.Info().
		Int("level", level).
		Int("asteroids", len(w.Asteroids)).
		Bool("boss", boss).
		Msg("Level started")
}
