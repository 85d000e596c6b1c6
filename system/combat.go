package system

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/vmath"
)

// sweepCheckpoints are Impact progress marks at which the shockwave damages enemies
var sweepCheckpoints = [...]float64{parameter.FinisherCheckpointEarly, parameter.FinisherCheckpointLate}

// CombatSystem owns the combo counter, the finisher meter and the finisher state machine
// Phase timers count raw ticks so slow motion never stretches the sequence
type CombatSystem struct {
	world *engine.World
	spawn *Spawner
	clock engine.TimeScaler

	statCombos     *atomic.Int64
	statExecutions *atomic.Int64
	statSweeps     *atomic.Int64

	enabled bool
}

// NewCombatSystem creates the combat system; clock receives slow-motion requests
func NewCombatSystem(world *engine.World, spawn *Spawner, clock engine.TimeScaler) *CombatSystem {
	s := &CombatSystem{
		world: world,
		spawn: spawn,
		clock: clock,
	}
	s.statCombos = world.Status.Ints.Get("combat.combo_max")
	s.statExecutions = world.Status.Ints.Get("combat.executions")
	s.statSweeps = world.Status.Ints.Get("combat.sweeps")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *CombatSystem) Init() {
	s.statCombos.Store(0)
	s.statExecutions.Store(0)
	s.statSweeps.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

// Priority returns the system's priority
func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

// Update runs one physics tick: combo decay, meter decay, finisher phases
func (s *CombatSystem) Update(dt float64) {
	w := s.world
	if !s.enabled || w.State.GameOver {
		return
	}

	s.updateCombo()

	c, f := &w.Combo, &w.Finisher
	if c.Current == 0 && f.Meter > 0 && !f.Executing {
		f.Meter = math.Max(0, f.Meter-parameter.FinisherMeterDecay*w.Time.Scale)
		if f.Meter < parameter.FinisherMeterMax {
			f.Ready = false
		}
	}

	if f.Executing {
		s.updateFinisher()
	}
}

func (s *CombatSystem) updateCombo() {
	w := s.world
	c := &w.Combo
	if c.Timer <= 0 {
		return
	}
	c.Timer = w.UpdateTimer(c.Timer, 1)
	if c.Timer > 0 {
		return
	}
	if c.Current > c.Max {
		c.Max = c.Current
		s.statCombos.Store(int64(c.Max))
	}
	c.Current = 0
	c.Kills = 0
}

// AddCombo registers one kill: extends the combo, fills the meter and fires milestone feedback
func (s *CombatSystem) AddCombo() {
	w := s.world
	cc := w.Cfg.Combo
	c, f := &w.Combo, &w.Finisher

	if c.Current == 0 {
		c.Kills = 0
	}
	c.Current++
	c.Timer = float64(cc.Timeout)
	c.Kills++

	if !f.Ready && !f.Executing {
		fill := cc.FillBase
		switch {
		case c.Current >= cc.ThresholdHigh:
			fill = cc.FillHigh
		case c.Current >= cc.ThresholdMedium:
			fill = cc.FillMedium
		}
		f.Meter = math.Min(parameter.FinisherMeterMax, f.Meter+fill)
		if f.Meter >= parameter.FinisherMeterMax {
			f.Ready = true
			w.PlaySound(engine.CuePowerUpLife, w.Ship.X, 1.0)
			w.PushEvent(event.EventFinisherReady, nil)
		}
	}

	ship := w.Ship
	if c.Current >= parameter.ComboTextThreshold {
		s.spawn.Text(ship.X, ship.Y-w.Scaled(30), fmt.Sprintf("COMBO x%d!", c.Current), component.ColorGold)
	}

	milestone := slices.Contains(parameter.ComboMilestones[:], c.Current)
	switch {
	case c.Kills >= parameter.ComboTextThreshold && c.Kills%parameter.ComboPulseInterval == 0:
		c.Pulse = math.Min(parameter.ComboPulseMax, float64(c.Current*2))
		w.AddShake(8)
		s.spawn.Text(ship.X, ship.Y-w.Scaled(50), fmt.Sprintf("%dTH KILL!", c.Kills), component.ColorGold)
	case milestone:
		w.AddShake(5)
	}
	if milestone {
		w.PushEvent(event.EventComboMilestone, &event.ComboPayload{Combo: c.Current})
	}
}

// dashDistance is how far a full-length dash travels
func (s *CombatSystem) dashDistance() float64 {
	w := s.world
	return w.Scaled(w.Cfg.Ship.MaxSpeed) * w.Cfg.Dash.SpeedMultiplier * float64(w.Cfg.Dash.Duration)
}

// FindTarget returns the nearest enemy along the dash corridor ahead of the ship, nil if none
func (s *CombatSystem) FindTarget() *component.Enemy {
	w := s.world
	ship := w.Ship
	dist := s.dashDistance()
	dx, dy := vmath.Direction(ship.Angle)
	ex, ey := ship.X+dx*dist, ship.Y+dy*dist

	var best *component.Enemy
	bestT := math.Inf(1)
	for _, e := range w.Enemies {
		t, distSq := vmath.ClosestOnSegment(ship.X, ship.Y, ex, ey, e.X, e.Y)
		reach := e.Radius + w.Scaled(w.Cfg.Ship.Radius)
		if distSq <= reach*reach && t < bestT {
			best, bestT = e, t
		}
	}
	return best
}

// StartExecution locks onto target and enters slow motion
func (s *CombatSystem) StartExecution(target *component.Enemy) {
	w := s.world
	fc := w.Cfg.Finisher
	ship := w.Ship
	f := &w.Finisher

	f.Executing = true
	f.Target = target
	f.Timer = float64(fc.LockOnTicks)
	f.LockOnProgress = 0
	f.Sweeps = 0

	ship.Angle = vmath.NormalizeAngle(vmath.AngleTo(ship.X, ship.Y, target.X, target.Y))
	dx, dy := vmath.Direction(ship.Angle)
	half := s.dashDistance() / 2
	f.ImpactX, f.ImpactY = ship.X+dx*half, ship.Y+dy*half

	total := fc.LockOnTicks + fc.PreImpactTicks + fc.ImpactTicks + fc.PostImpactTicks + fc.InvulnBuffer
	ship.Invulnerable = math.Max(ship.Invulnerable, float64(total))

	s.clock.SetTimeScale(fc.LockOnScale)
	w.PlaySound(engine.CuePowerUpShield, ship.X, 1.0)
	s.statExecutions.Add(1)
	s.setPhase(component.PhaseLockOn)

	w.Logger.Debug().
		Float64("x", target.X).
		Float64("y", target.Y).
		Msg("Finisher lock-on")
}

func (s *CombatSystem) setPhase(to component.FinisherPhase) {
	w := s.world
	from := w.Finisher.Phase
	w.Finisher.Phase = to
	w.PushEvent(event.EventFinisherPhase, &event.FinisherPhasePayload{From: from, To: to})
}

func (s *CombatSystem) updateFinisher() {
	w := s.world
	fc := w.Cfg.Finisher
	f := &w.Finisher

	f.Timer--
	switch f.Phase {
	case component.PhaseLockOn:
		f.LockOnProgress = 1 - f.Timer/float64(fc.LockOnTicks)
		if f.Timer <= 0 {
			f.Meter = 0
			f.Ready = false
			w.Ship.Dashing = float64(fc.PreImpactTicks + fc.ImpactTicks + fc.PostImpactTicks)
			w.PlaySound(engine.CueDash, w.Ship.X, 1.0)
			f.Timer = float64(fc.PreImpactTicks)
			s.setPhase(component.PhasePreImpact)
		}

	case component.PhasePreImpact:
		if f.Timer <= 0 {
			s.impact()
		}

	case component.PhaseImpact:
		progress := 1 - f.Timer/float64(fc.ImpactTicks)
		seed := w.Scaled(fc.ShockwaveSeed)
		f.ShockwaveRadius = seed + (w.Scaled(fc.ShockwaveRadius)-seed)*progress
		for f.Sweeps < len(sweepCheckpoints) && progress >= sweepCheckpoints[f.Sweeps] {
			s.sweep()
			f.Sweeps++
		}
		if f.Timer <= 0 {
			f.Timer = float64(fc.PostImpactTicks)
			s.setPhase(component.PhasePostImpact)
		}

	case component.PhasePostImpact:
		if f.Timer <= 0 {
			s.finish()
		}

	default:
		// Executing without an active phase: recover to idle
		s.finish()
	}
}

// impact kills the locked target if it still exists and seeds the shockwave
func (s *CombatSystem) impact() {
	w := s.world
	fc := w.Cfg.Finisher
	f := &w.Finisher

	s.clock.SetTimeScale(fc.ImpactScale)
	f.ShockwaveRadius = w.Scaled(fc.ShockwaveSeed)
	f.Sweeps = 0
	f.Timer = float64(fc.ImpactTicks)

	if t := f.Target; t != nil && slices.Contains(w.Enemies, t) {
		s.spawn.FinisherExplosion(t.X, t.Y)
		s.spawn.Text(t.X, t.Y, "EXECUTED!", component.ColorGold)
		f.ImpactX, f.ImpactY = t.X, t.Y
		w.AddShake(30)
		w.Effects.DamageFlash = 20
		w.Effects.DamageFlashColor = component.ColorWhite
		w.PlaySound(engine.CueExplosionLarge, t.X, 1.5)
		w.State.Score += fc.Score
		w.UpdateHighScore()
		w.Dash.Cooldown = 0
		s.spawn.PowerUpOf(t.X, t.Y, component.PowerUpCrystal)
		w.Combo.Timer = float64(w.Cfg.Combo.Timeout)
		w.Enemies = slices.DeleteFunc(w.Enemies, func(e *component.Enemy) bool { return e == t })
		w.PushEvent(event.EventKill, &event.KillPayload{Kind: component.KindEnemy, X: t.X, Y: t.Y, Score: fc.Score})
	}
	f.Target = nil
	s.setPhase(component.PhaseImpact)
}

// sweep damages and knocks back enemies inside the current shockwave radius
func (s *CombatSystem) sweep() {
	w := s.world
	fc := w.Cfg.Finisher
	f := &w.Finisher
	r := f.ShockwaveRadius
	s.statSweeps.Add(1)

	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		dist := math.Sqrt(vmath.DistanceSq(f.ImpactX, f.ImpactY, e.X, e.Y))
		if dist < r {
			damage := fc.DamageFar
			if dist < r*fc.CloseRange {
				damage = fc.DamageClose
			}
			e.Health -= damage
			e.HitFlash = float64(parameter.EnemyHitFlash)
			physics.RadialKnockback(&e.Kinetic, f.ImpactX, f.ImpactY, r, w.Scaled(fc.Knockback), w.Rng)
			if e.Health <= 0 {
				s.spawn.Explosion(e.X, e.Y, parameter.ParticleExplosionCount, component.ColorEnemy, true)
				w.State.Score += w.Cfg.Enemy.Score
				w.UpdateHighScore()
				s.spawn.Text(e.X, e.Y, fmt.Sprintf("+%d", w.Cfg.Enemy.Score), component.ColorScoreText)
				s.AddCombo()
				w.PushEvent(event.EventKill, &event.KillPayload{Kind: component.KindEnemy, X: e.X, Y: e.Y, Score: w.Cfg.Enemy.Score})
				continue
			}
		}
		alive = append(alive, e)
	}
	clear(w.Enemies[len(alive):])
	w.Enemies = alive
}

// finish returns to idle and restores normal time
func (s *CombatSystem) finish() {
	w := s.world
	f := &w.Finisher
	f.Executing = false
	f.Target = nil
	f.Timer = 0
	f.ShockwaveRadius = 0
	f.LockOnProgress = 0
	f.Sweeps = 0
	w.Ship.Dashing = 0
	s.clock.SetTimeScale(1.0)
	s.setPhase(component.PhaseIdle)
}

// Abort cancels a running finisher without its payoff, used on reset
func (s *CombatSystem) Abort() {
	if s.world.Finisher.Executing {
		s.finish()
	}
}
