package engine

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/lixenwraith/asteroids/status"
)

// System is one unit of simulation work run by the scheduler
type System interface {
	// Name identifies the system in logs
	Name() string

	// Priority orders systems within a stage, lower runs first
	Priority() int

	// Update advances the system by dt seconds of its own cadence
	Update(dt float64)
}

// TimeScaler lets gameplay request slow motion from the scheduler that owns the time scale
type TimeScaler interface {
	SetTimeScale(scale float64)
	TimeScale() float64
}

// rateSystem is a system paced by its own accumulator
type rateSystem struct {
	sys      System
	interval float64
	acc      float64
}

// Scheduler runs tick systems on a fixed physics step and rate systems on decoupled sub-accumulators
// Frame is not reentrant; call it from one goroutine only
type Scheduler struct {
	world *World

	tick          float64
	maxFrameDelta float64
	maxTicks      int

	acc   float64
	alpha float64

	tickSystems []System
	rateSystems []*rateSystem

	// Cached metric pointers
	statTicks   *atomic.Int64
	statDropped *atomic.Int64
	statAlpha   *status.AtomicFloat
	statScale   *status.AtomicFloat
	statActive  *atomic.Int64
	statRocks   *atomic.Int64
	statEnemies *atomic.Int64
	statScore   *atomic.Int64
	statPhase   *atomic.Int64
}

// NewScheduler creates a scheduler paced by the world's timing config
func NewScheduler(w *World) *Scheduler {
	t := w.Cfg.Timing
	s := &Scheduler{
		world:         w,
		tick:          1.0 / float64(t.PhysicsHz),
		maxFrameDelta: t.MaxFrameDelta,
		maxTicks:      t.MaxTicksPerFrame,
		statTicks:     w.Status.Ints.Get("scheduler.ticks"),
		statDropped:   w.Status.Ints.Get("scheduler.dropped_ticks"),
		statAlpha:     w.Status.Floats.Get("scheduler.alpha"),
		statScale:     w.Status.Floats.Get("scheduler.time_scale"),
		statActive:    w.Status.Ints.Get("particles.active"),
		statRocks:     w.Status.Ints.Get("entities.asteroids"),
		statEnemies:   w.Status.Ints.Get("entities.enemies"),
		statScore:     w.Status.Ints.Get("game.score"),
		statPhase:     w.Status.Ints.Get("finisher.phase"),
	}
	w.Time.Scale = 1.0
	return s
}

// AddTickSystem registers a system run once per physics tick, ordered by priority
func (s *Scheduler) AddTickSystem(sys System) {
	s.tickSystems = append(s.tickSystems, sys)
	sort.SliceStable(s.tickSystems, func(i, j int) bool {
		return s.tickSystems[i].Priority() < s.tickSystems[j].Priority()
	})
}

// AddRateSystem registers a system run at hz after the physics ticks of each frame
// Rate systems run in priority order
func (s *Scheduler) AddRateSystem(hz int, sys System) {
	if hz <= 0 {
		hz = 1
	}
	s.rateSystems = append(s.rateSystems, &rateSystem{sys: sys, interval: 1.0 / float64(hz)})
	sort.SliceStable(s.rateSystems, func(i, j int) bool {
		return s.rateSystems[i].sys.Priority() < s.rateSystems[j].sys.Priority()
	})
}

// Frame advances the simulation by dt seconds of wall time and returns the physics ticks run
func (s *Scheduler) Frame(dt float64) int {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	if dt > s.maxFrameDelta {
		dt = s.maxFrameDelta
	}

	s.acc += dt
	ticks := 0
	for s.acc >= s.tick && ticks < s.maxTicks {
		s.world.StorePrevious()
		for _, sys := range s.tickSystems {
			sys.Update(s.tick)
		}
		s.acc -= s.tick
		s.world.Time.Tick++
		ticks++
	}

	// Whole ticks left behind by the cap are discarded so the accumulator stays below one tick
	if s.acc >= s.tick {
		dropped := math.Floor(s.acc / s.tick)
		s.acc -= dropped * s.tick
		for s.acc >= s.tick {
			s.acc -= s.tick
			dropped++
		}
		s.statDropped.Add(int64(dropped))
	}
	if s.acc < 0 {
		s.acc = 0
	}
	s.alpha = s.acc / s.tick
	s.world.Time.Alpha = s.alpha

	for _, r := range s.rateSystems {
		r.acc += dt
		for r.acc >= r.interval {
			r.sys.Update(r.interval)
			r.acc -= r.interval
		}
	}

	s.statTicks.Add(int64(ticks))
	s.publish()
	return ticks
}

// publish refreshes per-frame gauges
func (s *Scheduler) publish() {
	w := s.world
	s.statAlpha.Set(s.alpha)
	s.statScale.Set(w.Time.Scale)
	s.statActive.Store(int64(w.Particles.ActiveCount()))
	s.statRocks.Store(int64(len(w.Asteroids)))
	s.statEnemies.Store(int64(len(w.Enemies)))
	s.statScore.Store(int64(w.State.Score))
	s.statPhase.Store(int64(w.Finisher.Phase))
}

// SetTimeScale sets the global integration and timer multiplier
func (s *Scheduler) SetTimeScale(scale float64) {
	if scale <= 0 {
		scale = 1.0
	}
	s.world.Time.Scale = scale
}

// TimeScale returns the current global multiplier
func (s *Scheduler) TimeScale() float64 { return s.world.Time.Scale }

// Alpha returns the render interpolation fraction from the last frame
func (s *Scheduler) Alpha() float64 { return s.alpha }

// Accumulator returns unsimulated time in seconds, always in [0, tick)
func (s *Scheduler) Accumulator() float64 { return s.acc }

// TickDuration returns the physics step in seconds
func (s *Scheduler) TickDuration() float64 { return s.tick }

// Reset zeroes every accumulator and restores normal time
func (s *Scheduler) Reset() {
	s.acc = 0
	s.alpha = 0
	for _, r := range s.rateSystems {
		r.acc = 0
	}
	s.world.Time.Scale = 1.0
	s.world.Time.Alpha = 0
}
