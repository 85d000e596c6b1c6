package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/asteroids/engine"
)

// TestShip_ShootEdgeConsumed tests that one shoot edge fires once and arms the cooldown
func TestShip_ShootEdgeConsumed(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)

	r.w.Input.Shoot = true
	r.ship.Update(testDT)
	if len(r.w.Bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(r.w.Bullets))
	}
	if r.w.Input.Shoot {
		t.Errorf("Expected shoot edge consumed")
	}
	if r.w.State.BulletCooldown != 10 {
		t.Errorf("Expected cooldown 10, got %v", r.w.State.BulletCooldown)
	}

	// Held edge during cooldown does not fire
	r.w.Input.Shoot = true
	r.ship.Update(testDT)
	if len(r.w.Bullets) != 1 {
		t.Errorf("Expected no shot during cooldown, got %d bullets", len(r.w.Bullets))
	}
}

// TestShip_TripleShotAndRapidFire tests spread count and the shorter cooldown
func TestShip_TripleShotAndRapidFire(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	r.w.Ship.TripleShot = 100
	r.w.Ship.RapidFire = 100

	r.w.Input.Shoot = true
	r.ship.Update(testDT)
	if len(r.w.Bullets) != 3 {
		t.Fatalf("Expected 3 bullets, got %d", len(r.w.Bullets))
	}
	if r.w.State.BulletCooldown != 5 {
		t.Errorf("Expected rapid cooldown 5, got %v", r.w.State.BulletCooldown)
	}
}

// TestShip_SilentAudioFallback tests the visual flash when the shoot cue cannot play
func TestShip_SilentAudioFallback(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	audio := &engine.RecordingAudio{Result: false}
	r.w.Audio = audio

	r.w.Input.Shoot = true
	r.ship.Update(testDT)
	if audio.Count(engine.CueShoot) != 1 {
		t.Errorf("Expected shoot cue requested")
	}
	if r.w.Ship.PowerUpFlash <= 0 {
		t.Errorf("Expected fallback flash when audio fails")
	}
}

// TestShip_NoFireWhileRespawning tests that respawning ships cannot shoot
func TestShip_NoFireWhileRespawning(t *testing.T) {
	r := newRig()
	r.w.Ship.Respawning = 50
	r.w.Input.Shoot = true
	r.ship.Update(testDT)
	if len(r.w.Bullets) != 0 {
		t.Errorf("Expected no bullets while respawning")
	}
}

// TestShip_PlainDash tests dash motion, cooldown and invulnerability
func TestShip_PlainDash(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	r.w.Ship.Invulnerable = 0
	r.w.Ship.Angle = 0

	r.w.Input.Dash = true
	r.ship.Update(testDT)
	if r.w.Ship.Dashing != 15 {
		t.Fatalf("Expected dash 15, got %v", r.w.Ship.Dashing)
	}
	if r.w.Dash.Cooldown != 120 {
		t.Errorf("Expected cooldown 120, got %v", r.w.Dash.Cooldown)
	}

	r.ship.Update(testDT)
	want := 6.4 * 3
	if math.Abs(r.w.Ship.VelX-want) > 1e-9 {
		t.Errorf("Expected dash velocity %v, got %v", want, r.w.Ship.VelX)
	}
	if r.w.Ship.Vulnerable() {
		t.Errorf("Expected ship invulnerable while dashing")
	}
	if r.w.Ship.DashTrail.Len() == 0 {
		t.Errorf("Expected dash ghosts")
	}
}

// TestShip_SpeedCapAndWrap tests the thrust cap and toroidal wrap
func TestShip_SpeedCapAndWrap(t *testing.T) {
	r := newRig()
	r.parkShip(795, 300)
	r.w.Ship.Angle = 0
	r.w.Input.Thrust = true

	for i := 0; i < 200; i++ {
		r.ship.Update(testDT)
		if x := r.w.Ship.X; x < 0 || x >= r.w.Width {
			t.Fatalf("Tick %d: x %v outside arena", i, x)
		}
		if sp := math.Hypot(r.w.Ship.VelX, r.w.Ship.VelY); sp > 6.4+1e-9 {
			t.Fatalf("Tick %d: speed %v above cap", i, sp)
		}
	}
}

// TestShip_SlowMotionScalesTurn tests that the turn rate follows the time scale
func TestShip_SlowMotionScalesTurn(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	r.w.Ship.Angle = 0
	r.w.Input.Turn = 1
	r.sched.SetTimeScale(0.5)

	r.ship.Update(testDT)
	if math.Abs(r.w.Ship.Angle-3) > 1e-9 {
		t.Errorf("Expected 3 degrees at half speed, got %v", r.w.Ship.Angle)
	}
}
