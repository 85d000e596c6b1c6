// Package engine holds the simulation core: the world aggregate, broad-phase grid,
// particle pool and the fixed-timestep scheduler that drives systems
package engine

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/vmath"
)

// GameState is per-run bookkeeping reset on new game
type GameState struct {
	Score    int
	Lives    int
	Level    int
	GameOver bool

	// BulletCooldown is ticks until the next player shot
	BulletCooldown float64

	// Untouchable stays true while no life is lost in the current level
	Untouchable bool
}

// TimeState is the scheduler-owned clock view systems read from
type TimeState struct {
	// Scale multiplies integration and timer decay, 1.0 outside slow motion
	Scale float64

	// Tick counts physics ticks since start
	Tick uint64

	// Alpha is the render interpolation fraction in [0,1)
	Alpha float64
}

// World is the single simulation aggregate passed to every system
// All mutation happens from the frame loop; no field is safe for concurrent use
type World struct {
	Cfg    *config.Config
	Logger zerolog.Logger

	Width  float64
	Height float64
	Scale  float64

	Ship         *component.Ship
	Asteroids    []*component.Asteroid
	Enemies      []*component.Enemy
	Bullets      []*component.Bullet
	EnemyBullets []*component.Bullet
	PowerUps     []*component.PowerUp
	Texts        []*component.FloatingText

	Particles *ParticlePool
	Grid      *SpatialGrid

	State    GameState
	Combo    component.Combo
	Finisher component.Finisher
	Dash     component.Dash
	Effects  component.Effects

	Progress *component.Progress
	Mods     component.Modifiers

	// Input is the decoded intent for the current frame; edges are consumed by the ship system
	Input Intent

	Rng    *vmath.FastRand
	Events *event.EventQueue
	Audio  AudioPlayer
	Status *status.Registry
	Time   TimeState
}

// NewWorld creates a world sized from the arena config with an empty run
func NewWorld(cfg *config.Config) *World {
	w := &World{
		Cfg:      cfg,
		Logger:   zerolog.Nop(),
		Rng:      vmath.NewFastRand(cfg.Session.Seed),
		Events:   event.NewEventQueue(),
		Audio:    NopAudio{},
		Status:   status.NewRegistry(),
		Progress: component.NewProgress(),
		Mods:     component.NeutralModifiers(),
		Time:     TimeState{Scale: 1.0},
	}
	w.Particles = NewParticlePool(cfg.Particle.PoolSize, cfg.Particle.Friction)
	w.Resize(cfg.Arena.Width, cfg.Arena.Height)
	w.Ship = component.NewShip(w.Width/2, w.Height/2)
	w.State = GameState{
		Lives:       cfg.Ship.InitialLives,
		Level:       1,
		Untouchable: true,
	}
	return w
}

// Resize sets arena dimensions, recomputes scale and rebuilds the grid geometry
func (w *World) Resize(width, height float64) {
	w.Width, w.Height = width, height
	w.Scale = math.Min(w.Cfg.Arena.MaxScale, height/w.Cfg.Arena.ReferenceHeight)
	if w.Scale <= 0 {
		w.Scale = 1
	}
	w.Grid = NewSpatialGrid(width, height, math.Max(1, float64(int(parameter.GridCellSize*w.Scale))))
}

// Scaled applies the display scale to an arena distance
func (w *World) Scaled(v float64) float64 {
	return v * w.Scale
}

// AreaMultiplier is the arena area relative to the reference arena
func (w *World) AreaMultiplier() float64 {
	ref := float64(parameter.ArenaWidth) * w.Cfg.Arena.ReferenceHeight
	if ref <= 0 {
		return 1
	}
	return (w.Width * w.Height) / ref
}

// AreaFactor is sqrt of the area multiplier, capped at 2
func (w *World) AreaFactor() float64 {
	return math.Min(2.0, math.Sqrt(w.AreaMultiplier()))
}

// StorePrevious snapshots the interpolation baseline of every moving record
func (w *World) StorePrevious() {
	w.Ship.StorePrevious()
	for _, a := range w.Asteroids {
		a.StorePrevious()
	}
	for _, e := range w.Enemies {
		e.StorePrevious()
	}
	for _, b := range w.Bullets {
		b.StorePrevious()
	}
	for _, b := range w.EnemyBullets {
		b.StorePrevious()
	}
	for _, p := range w.PowerUps {
		p.StorePrevious()
	}
	for _, t := range w.Texts {
		t.StorePrevious()
	}
}

// PushEvent queues an event stamped with the current tick
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Payload: payload, Tick: w.Time.Tick})
}

// PlaySound forwards a cue to the audio collaborator, reporting failure for visual fallbacks
func (w *World) PlaySound(cue string, x, volume float64) bool {
	if w.Audio == nil {
		return false
	}
	return w.Audio.Play(cue, x, volume)
}

// AddShake raises screen shake, capped at the scaled maximum
func (w *World) AddShake(amount float64) {
	w.Effects.ScreenShake = math.Min(w.Effects.ScreenShake+amount, w.Scaled(parameter.EffectMaxScreenShake))
}

// UpdateHighScore records the live score as high score when it exceeds it
func (w *World) UpdateHighScore() {
	if w.State.Score > w.Progress.HighScore {
		w.Progress.HighScore = w.State.Score
	}
}

// ClearEntities drops every entity collection and frees all particles
func (w *World) ClearEntities() {
	w.Asteroids = w.Asteroids[:0]
	w.Enemies = w.Enemies[:0]
	w.Bullets = w.Bullets[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
	w.PowerUps = w.PowerUps[:0]
	w.Texts = w.Texts[:0]
	w.Particles.Clear()
	w.Grid.Clear()
}

// UpdateTimer decays a tick countdown by dec scaled by the time scale, never below zero
func (w *World) UpdateTimer(v, dec float64) float64 {
	if v <= 0 {
		return v
	}
	return math.Max(0, v-dec*w.Time.Scale)
}
