package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/event"
)

// TestCombat_ComboDecay tests that a combo resets exactly at the timeout and records the max
func TestCombat_ComboDecay(t *testing.T) {
	r := newRig()
	for i := 0; i < 3; i++ {
		r.combat.AddCombo()
	}
	if r.w.Combo.Current != 3 || r.w.Combo.Kills != 3 {
		t.Fatalf("Expected combo 3, got %d", r.w.Combo.Current)
	}

	for i := 0; i < 179; i++ {
		r.combat.Update(testDT)
	}
	if r.w.Combo.Current != 3 {
		t.Fatalf("Expected combo alive after 179 ticks, got %d", r.w.Combo.Current)
	}

	r.combat.Update(testDT)
	if r.w.Combo.Current != 0 || r.w.Combo.Kills != 0 {
		t.Errorf("Expected combo reset at 180 ticks, got %d", r.w.Combo.Current)
	}
	if r.w.Combo.Max != 3 {
		t.Errorf("Expected max combo 3, got %d", r.w.Combo.Max)
	}
}

// TestCombat_ComboDecayScaled tests that slow motion stretches the combo window
func TestCombat_ComboDecayScaled(t *testing.T) {
	r := newRig()
	r.combat.AddCombo()
	r.sched.SetTimeScale(0.5)
	for i := 0; i < 180; i++ {
		r.combat.Update(testDT)
	}
	if r.w.Combo.Current != 1 {
		t.Errorf("Expected combo alive at half speed, got %d", r.w.Combo.Current)
	}
}

// TestCombat_MeterFillTiers tests meter gain per kill and readiness
func TestCombat_MeterFillTiers(t *testing.T) {
	r := newRig()
	// Kills 1-4 add 10 each, from the fifth kill 15 each
	for i := 0; i < 4; i++ {
		r.combat.AddCombo()
	}
	if r.w.Finisher.Meter != 40 {
		t.Fatalf("Expected meter 40, got %v", r.w.Finisher.Meter)
	}
	for i := 0; i < 4; i++ {
		r.combat.AddCombo()
	}
	if r.w.Finisher.Meter != 100 || !r.w.Finisher.Ready {
		t.Errorf("Expected full ready meter, got %v ready=%v", r.w.Finisher.Meter, r.w.Finisher.Ready)
	}
	if len(r.eventsOf(event.EventFinisherReady)) != 1 {
		t.Errorf("Expected one ready event")
	}
}

// TestCombat_MilestoneEvents tests combo milestone notifications
func TestCombat_MilestoneEvents(t *testing.T) {
	r := newRig()
	for i := 0; i < 10; i++ {
		r.combat.AddCombo()
	}
	got := r.eventsOf(event.EventComboMilestone)
	if len(got) != 2 {
		t.Fatalf("Expected milestones 5 and 10, got %d", len(got))
	}
	if p := got[1].Payload.(*event.ComboPayload); p.Combo != 10 {
		t.Errorf("Expected second milestone 10, got %d", p.Combo)
	}
	if r.w.Combo.Pulse != 20 {
		t.Errorf("Expected pulse capped at 20 on the tenth kill, got %v", r.w.Combo.Pulse)
	}
}

// TestCombat_MeterDecay tests meter drain while no combo is active
func TestCombat_MeterDecay(t *testing.T) {
	r := newRig()
	r.w.Finisher.Meter = 100
	r.w.Finisher.Ready = true

	r.combat.Update(testDT)
	if r.w.Finisher.Ready {
		t.Errorf("Expected ready cleared once meter drops below max")
	}
	if r.w.Finisher.Meter >= 100 {
		t.Errorf("Expected meter to decay, got %v", r.w.Finisher.Meter)
	}
}

// TestCombat_FindTarget tests the dash corridor query
func TestCombat_FindTarget(t *testing.T) {
	r := newRig()
	r.parkShip(100, 300)
	r.w.Ship.Angle = 0

	far := enemyAt(300, 300, 3)
	near := enemyAt(200, 305, 3)
	off := enemyAt(150, 500, 3)
	r.w.Enemies = append(r.w.Enemies, far, off, near)

	if got := r.combat.FindTarget(); got != near {
		t.Errorf("Expected nearest enemy along the corridor")
	}

	r.w.Enemies = []*component.Enemy{off}
	if got := r.combat.FindTarget(); got != nil {
		t.Errorf("Expected no target off the corridor")
	}
}

// TestCombat_FinisherSequence tests the full phase order, time scale and shockwave sweeps
func TestCombat_FinisherSequence(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	r.w.Ship.Angle = 0
	r.w.Finisher.Meter = 100
	r.w.Finisher.Ready = true

	target := enemyAt(500, 300, 3)
	tank := enemyAt(505, 300, 100)
	r.w.Enemies = append(r.w.Enemies, target, tank)

	// Dash edge with a ready meter and a target ahead starts the execution
	r.w.Input.Dash = true
	r.w.Dash.Cooldown = 0
	r.ship.Update(testDT)
	if !r.w.Finisher.Executing || r.w.Finisher.Phase != component.PhaseLockOn {
		t.Fatalf("Expected lock-on, got phase %v", r.w.Finisher.Phase)
	}
	if r.sched.TimeScale() != 0.5 {
		t.Errorf("Expected lock-on time scale 0.5, got %v", r.sched.TimeScale())
	}
	if r.w.Ship.Invulnerable < 156 {
		t.Errorf("Expected invulnerability to cover the sequence, got %v", r.w.Ship.Invulnerable)
	}

	r.w.Events.Consume()

	var phases []component.FinisherPhase
	for i := 0; i < 200 && (r.w.Finisher.Executing || len(phases) == 0); i++ {
		if r.w.Finisher.Phase == component.PhaseImpact && r.sched.TimeScale() != 0.1 {
			t.Errorf("Expected impact time scale 0.1, got %v", r.sched.TimeScale())
		}
		r.combat.Update(testDT)
		for _, ev := range r.w.Events.Consume() {
			if ev.Type == event.EventFinisherPhase {
				phases = append(phases, ev.Payload.(*event.FinisherPhasePayload).To)
			}
		}
	}

	want := []component.FinisherPhase{
		component.PhasePreImpact,
		component.PhaseImpact,
		component.PhasePostImpact,
		component.PhaseIdle,
	}
	if len(phases) != len(want) {
		t.Fatalf("Expected phases %v, got %v", want, phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("Phase %d: expected %v, got %v", i, want[i], phases[i])
		}
	}

	for _, e := range r.w.Enemies {
		if e == target {
			t.Errorf("Expected locked target removed")
		}
	}
	// Two sweeps at close range, no more
	if tank.Health != 94 {
		t.Errorf("Expected exactly two close-range sweeps (health 94), got %d", tank.Health)
	}
	if r.sched.TimeScale() != 1.0 {
		t.Errorf("Expected normal time restored, got %v", r.sched.TimeScale())
	}
	if r.w.Finisher.Meter != 0 || r.w.Finisher.Ready {
		t.Errorf("Expected meter consumed")
	}
	if r.w.Ship.Dashing != 0 {
		t.Errorf("Expected dash cleared at the end, got %v", r.w.Ship.Dashing)
	}
	if r.w.State.Score < 500 {
		t.Errorf("Expected finisher score, got %d", r.w.State.Score)
	}
}

// TestCombat_FinisherMissingTarget tests that a vanished target still completes the sequence
func TestCombat_FinisherMissingTarget(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	target := enemyAt(500, 300, 3)
	r.w.Enemies = append(r.w.Enemies, target)
	r.combat.StartExecution(target)
	r.w.Enemies = r.w.Enemies[:0]

	for i := 0; i < 126; i++ {
		r.combat.Update(testDT)
	}
	if r.w.Finisher.Executing || r.w.Finisher.Phase != component.PhaseIdle {
		t.Errorf("Expected idle after 126 ticks, got %v", r.w.Finisher.Phase)
	}
	if r.w.State.Score != 0 {
		t.Errorf("Expected no payoff for a vanished target, got %d", r.w.State.Score)
	}
}

// TestCombat_SweepAtImpactPoint tests that an enemy sitting on the impact point is pushed in some direction
func TestCombat_SweepAtImpactPoint(t *testing.T) {
	r := newRig()
	r.parkShip(50, 50)
	e := enemyAt(300, 300, 100)
	r.w.Enemies = append(r.w.Enemies, e)
	f := &r.w.Finisher
	f.ImpactX, f.ImpactY = 300, 300
	f.ShockwaveRadius = 50

	r.combat.sweep()

	if e.Health != 100-r.w.Cfg.Finisher.DamageClose {
		t.Errorf("Expected close-range damage, got health %d", e.Health)
	}
	speed := math.Hypot(e.VelX, e.VelY)
	if math.IsNaN(speed) || speed == 0 {
		t.Fatalf("Expected a finite knockback, got (%v,%v)", e.VelX, e.VelY)
	}
	if want := r.w.Scaled(r.w.Cfg.Finisher.Knockback); math.Abs(speed-want) > 1e-9 {
		t.Errorf("Expected full-strength knockback %v, got %v", want, speed)
	}
}
