// Package game assembles the world, systems and scheduler into a playable session
// It owns session boundaries: progress load and save, new runs, upgrade purchases
package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/persistence"
	"github.com/lixenwraith/asteroids/progression"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/system"
)

// resettable is implemented by every system with per-run state
type resettable interface {
	Init()
}

// Game is one running session
// Not safe for concurrent use; drive it from the frame loop goroutine
type Game struct {
	World     *engine.World
	Scheduler *engine.Scheduler

	spawn  *system.Spawner
	combat *system.CombatSystem
	level  *system.LevelSystem
	ship   *system.ShipSystem

	systems  []resettable
	store    persistence.Store
	exporter *status.Exporter
	meter    metric.Meter
	logger   zerolog.Logger
}

// Option configures a Game at construction
type Option func(*Game)

// WithStore sets the progress store, default persistence.NopStore
func WithStore(s persistence.Store) Option {
	return func(g *Game) { g.store = s }
}

// WithAudio sets the audio collaborator, default engine.NopAudio
func WithAudio(a engine.AudioPlayer) Option {
	return func(g *Game) { g.World.Audio = a }
}

// WithLogger sets the session logger
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = l
		g.World.Logger = l
	}
}

// WithMeter exports registry metrics on m instead of the global meter provider
func WithMeter(m metric.Meter) Option {
	return func(g *Game) { g.meter = m }
}

// New wires a session from cfg; the first run starts at level 1
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	w := engine.NewWorld(cfg)
	g := &Game{
		World:  w,
		store:  persistence.NopStore{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	sched := engine.NewScheduler(w)
	g.Scheduler = sched

	g.spawn = system.NewSpawner(w)
	g.combat = system.NewCombatSystem(w, g.spawn, sched)
	g.ship = system.NewShipSystem(w, g.spawn, g.combat)
	g.level = system.NewLevelSystem(w, g.spawn)
	physics := system.NewPhysicsSystem(w)
	particles := system.NewParticleSystem(w)
	collision := system.NewCollisionSystem(w, g.spawn, g.combat)

	t := cfg.Timing
	ai := system.NewAISystem(w, g.spawn, t.AIHz)
	streak := system.NewStreakSystem(w)
	ui := system.NewUISystem(w, t.UIHz)
	effects := system.NewEffectsSystem(w, t.EffectsHz)

	sched.AddTickSystem(g.ship)
	sched.AddTickSystem(physics)
	sched.AddTickSystem(particles)
	sched.AddTickSystem(collision)
	sched.AddTickSystem(g.combat)
	sched.AddTickSystem(g.level)
	sched.AddRateSystem(t.AIHz, ai)
	sched.AddRateSystem(t.ParticleHz, streak)
	sched.AddRateSystem(t.UIHz, ui)
	sched.AddRateSystem(t.EffectsHz, effects)

	g.systems = []resettable{g.ship, physics, particles, collision, g.combat, g.level, ai, streak, ui, effects}

	if cfg.Session.Telemetry {
		exp, err := status.NewExporter(w.Status, g.meter)
		if err != nil {
			return nil, fmt.Errorf("starting telemetry: %w", err)
		}
		g.exporter = exp
	}

	g.Reset()
	return g, nil
}

// Reset starts a new run keeping persistent progress
func (g *Game) Reset() {
	w := g.World
	w.UpdateHighScore()
	g.combat.Abort()

	w.ClearEntities()
	w.Events.Reset()
	w.Input = engine.Intent{}
	w.State = engine.GameState{
		Lives:       w.Cfg.Ship.InitialLives,
		Level:       1,
		Untouchable: true,
	}
	w.Combo = component.Combo{}
	w.Finisher = component.Finisher{}
	w.Dash = component.Dash{}
	w.Effects = component.Effects{}
	*w.Ship = *component.NewShip(w.Width/2, w.Height/2)
	w.Mods = progression.Modifiers(w.Progress)

	for _, s := range g.systems {
		s.Init()
	}
	g.Scheduler.Reset()
	g.level.StartLevel()
	g.logger.Info().Int("lives", w.State.Lives).Msg("New run")
}

// SetIntent folds the frame's decoded input into the world
func (g *Game) SetIntent(in engine.Intent) {
	g.World.Input.Merge(in)
}

// Frame advances the simulation by dt seconds and processes the events it produced
func (g *Game) Frame(dt float64) int {
	ticks := g.Scheduler.Frame(dt)
	g.World.UpdateHighScore()
	g.drainEvents()
	return ticks
}

// View returns the interpolated render snapshot
func (g *Game) View() engine.View {
	return engine.NewView(g.World)
}

// Resize changes the arena to a new size
func (g *Game) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	g.World.Resize(width, height)
	g.logger.Debug().Float64("width", width).Float64("height", height).Msg("Arena resized")
}

// Close saves progress and releases the store and exporter
func (g *Game) Close(ctx context.Context) error {
	saveErr := g.Save(ctx)
	if g.exporter != nil {
		if err := g.exporter.Close(); err != nil {
			g.logger.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
	}
	if err := g.store.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return saveErr
}
