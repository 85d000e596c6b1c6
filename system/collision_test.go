package system

import (
	"testing"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/event"
)

// TestCollision_SplitLaw tests that a size 3 hit yields two size 2 children at the impact point
func TestCollision_SplitLaw(t *testing.T) {
	r := newRig()
	r.parkShip(50, 50)

	parent := rock(400, 300, 3)
	r.w.Asteroids = append(r.w.Asteroids, parent)
	r.w.Bullets = append(r.w.Bullets, bulletAt(405, 300))

	r.collision.Update(testDT)

	if len(r.w.Bullets) != 0 {
		t.Errorf("Expected bullet consumed, got %d", len(r.w.Bullets))
	}
	if len(r.w.Asteroids) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(r.w.Asteroids))
	}
	for _, a := range r.w.Asteroids {
		if a == parent {
			t.Errorf("Expected parent removed")
		}
		if a.Size != 2 {
			t.Errorf("Expected child size 2, got %d", a.Size)
		}
		if a.X != 405 || a.Y != 300 {
			t.Errorf("Expected child at impact point (405,300), got (%v,%v)", a.X, a.Y)
		}
	}
	if r.w.State.Score != 100 {
		t.Errorf("Expected base score 100 with no combo, got %d", r.w.State.Score)
	}
	if r.w.Combo.Current != 1 {
		t.Errorf("Expected combo 1, got %d", r.w.Combo.Current)
	}
	if kills := r.eventsOf(event.EventKill); len(kills) != 1 {
		t.Errorf("Expected 1 kill event, got %d", len(kills))
	}
}

// TestCollision_SmallestLeavesNothing tests that size 1 asteroids do not split
func TestCollision_SmallestLeavesNothing(t *testing.T) {
	r := newRig()
	r.parkShip(50, 50)
	r.w.Asteroids = append(r.w.Asteroids, rock(400, 300, 1))
	r.w.Bullets = append(r.w.Bullets, bulletAt(400, 300))

	r.collision.Update(testDT)

	if len(r.w.Asteroids) != 0 {
		t.Errorf("Expected no asteroids, got %d", len(r.w.Asteroids))
	}
}

// TestCollision_OneTargetPerBullet tests that a bullet between two rocks destroys only one
func TestCollision_OneTargetPerBullet(t *testing.T) {
	r := newRig()
	r.parkShip(50, 50)
	r.w.Asteroids = append(r.w.Asteroids, rock(395, 300, 1), rock(405, 300, 1))
	r.w.Bullets = append(r.w.Bullets, bulletAt(400, 300))

	r.collision.Update(testDT)

	if len(r.w.Asteroids) != 1 {
		t.Errorf("Expected exactly one survivor, got %d", len(r.w.Asteroids))
	}
}

// TestCollision_BossTakesHits tests boss health and the kill payoff
func TestCollision_BossTakesHits(t *testing.T) {
	r := newRig()
	r.parkShip(50, 50)
	boss := r.spawn.AsteroidAt(400, 300, 3, true, false)
	boss.Health = 2
	r.w.Asteroids = append(r.w.Asteroids, boss)

	r.w.Bullets = append(r.w.Bullets, bulletAt(400, 300))
	r.collision.Update(testDT)
	if boss.Health != 1 || len(r.w.Asteroids) != 1 {
		t.Fatalf("Expected boss alive with 1 health, got health %d count %d", boss.Health, len(r.w.Asteroids))
	}
	if boss.HitFlash != 8 {
		t.Errorf("Expected hit flash 8, got %v", boss.HitFlash)
	}

	r.w.Bullets = append(r.w.Bullets, bulletAt(400, 300))
	r.collision.Update(testDT)
	if len(r.w.Asteroids) != 0 {
		t.Errorf("Expected boss destroyed without splitting, got %d asteroids", len(r.w.Asteroids))
	}
	if r.w.State.Score != 1000 {
		t.Errorf("Expected boss score 1000, got %d", r.w.State.Score)
	}
	crystals := 0
	for _, p := range r.w.PowerUps {
		if p.Type == component.PowerUpCrystal {
			crystals++
		}
	}
	if crystals != 5 {
		t.Errorf("Expected 5 crystal drops, got %d", crystals)
	}
	if r.w.Progress.BossKills != 1 {
		t.Errorf("Expected boss kill recorded")
	}
	if len(r.eventsOf(event.EventBossKill)) != 1 {
		t.Errorf("Expected boss kill event")
	}
}

// TestCollision_EnemyKill tests enemy health and removal
func TestCollision_EnemyKill(t *testing.T) {
	r := newRig()
	r.parkShip(50, 50)
	e := enemyAt(400, 300, 2)
	r.w.Enemies = append(r.w.Enemies, e)

	r.w.Bullets = append(r.w.Bullets, bulletAt(400, 300))
	r.collision.Update(testDT)
	if len(r.w.Enemies) != 1 || e.Health != 1 {
		t.Fatalf("Expected damaged enemy, health %d", e.Health)
	}

	r.w.Bullets = append(r.w.Bullets, bulletAt(400, 300))
	r.collision.Update(testDT)
	if len(r.w.Enemies) != 0 {
		t.Errorf("Expected enemy removed")
	}
	if r.w.State.Score != 200 {
		t.Errorf("Expected 200, got %d", r.w.State.Score)
	}
}

// TestCollision_ShieldAbsorbs tests that a shield consumes one hit without losing a life
func TestCollision_ShieldAbsorbs(t *testing.T) {
	r := newRig()
	ship := r.w.Ship
	ship.Place(400, 300)
	ship.Invulnerable, ship.Respawning = 0, 0
	ship.Shield = 100
	r.w.Asteroids = append(r.w.Asteroids, rock(405, 300, 2))

	r.collision.Update(testDT)

	if r.w.State.Lives != 3 {
		t.Errorf("Expected lives unchanged, got %d", r.w.State.Lives)
	}
	if ship.Shield != 0 {
		t.Errorf("Expected shield consumed, got %v", ship.Shield)
	}
	if r.w.Effects.DamageFlashColor != component.ColorShieldFlash {
		t.Errorf("Expected shield flash color")
	}
	if len(r.eventsOf(event.EventShieldAbsorb)) != 1 {
		t.Errorf("Expected shield absorb event")
	}
}

// TestCollision_LifeLost tests the unshielded hit path and respawn
func TestCollision_LifeLost(t *testing.T) {
	r := newRig()
	ship := r.w.Ship
	ship.Place(100, 100)
	ship.Invulnerable, ship.Respawning = 0, 0
	r.w.Asteroids = append(r.w.Asteroids, rock(105, 100, 2), rock(95, 100, 2))

	r.collision.Update(testDT)

	if r.w.State.Lives != 2 {
		t.Errorf("Expected one life lost for overlapping rocks, got %d lives", r.w.State.Lives)
	}
	if r.w.State.Untouchable {
		t.Errorf("Expected untouchable cleared")
	}
	if ship.X != r.w.Width/2 || ship.Y != r.w.Height/2 {
		t.Errorf("Expected ship reset to center, got (%v,%v)", ship.X, ship.Y)
	}
	if ship.Invulnerable != 120 || ship.Respawning != 90 {
		t.Errorf("Expected respawn timers 120/90, got %v/%v", ship.Invulnerable, ship.Respawning)
	}
}

// TestCollision_GameOver tests that the last life ends the run
func TestCollision_GameOver(t *testing.T) {
	r := newRig()
	r.w.State.Lives = 1
	ship := r.w.Ship
	ship.Place(100, 100)
	ship.Invulnerable, ship.Respawning = 0, 0
	r.w.EnemyBullets = append(r.w.EnemyBullets, bulletAt(110, 100))

	r.collision.Update(testDT)

	if !r.w.State.GameOver {
		t.Fatalf("Expected game over")
	}
	if len(r.w.EnemyBullets) != 0 {
		t.Errorf("Expected enemy bullet consumed")
	}
	if len(r.eventsOf(event.EventGameOver)) != 1 {
		t.Errorf("Expected game over event")
	}
}

// TestCollision_InvulnerableIgnoresHits tests that invulnerable ships pass through hazards
func TestCollision_InvulnerableIgnoresHits(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	r.w.Asteroids = append(r.w.Asteroids, rock(400, 300, 3))

	r.collision.Update(testDT)

	if r.w.State.Lives != 3 {
		t.Errorf("Expected no damage while invulnerable")
	}
}

// TestCollision_Pickup tests crystal and buff collection
func TestCollision_Pickup(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	r.spawn.PowerUpOf(410, 300, component.PowerUpCrystal)
	r.spawn.PowerUpOf(390, 300, component.PowerUpShield)

	r.collision.Update(testDT)

	if len(r.w.PowerUps) != 0 {
		t.Errorf("Expected both pickups collected, %d left", len(r.w.PowerUps))
	}
	if r.w.Progress.Crystals != 10 || r.w.Progress.LifetimeCrystals != 10 {
		t.Errorf("Expected 10 crystals, got %d/%d", r.w.Progress.Crystals, r.w.Progress.LifetimeCrystals)
	}
	if r.w.Ship.Shield != 300 {
		t.Errorf("Expected shield 300, got %v", r.w.Ship.Shield)
	}
	if r.w.State.Score != 50 {
		t.Errorf("Expected 50 for the non-crystal pickup, got %d", r.w.State.Score)
	}
	if n := len(r.eventsOf(event.EventPowerUp)); n != 2 {
		t.Errorf("Expected 2 powerup events, got %d", n)
	}
}

// TestCollision_LifePickupCapped tests the lives ceiling
func TestCollision_LifePickupCapped(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	r.w.State.Lives = 5
	r.spawn.PowerUpOf(400, 300, component.PowerUpLife)

	r.collision.Update(testDT)

	if r.w.State.Lives != 5 {
		t.Errorf("Expected lives capped at 5, got %d", r.w.State.Lives)
	}
}

// TestCollision_TwoBulletsOneRock tests that a second bullet on an already destroyed rock survives
func TestCollision_TwoBulletsOneRock(t *testing.T) {
	r := newRig()
	r.parkShip(50, 50)
	r.w.Asteroids = append(r.w.Asteroids, rock(400, 300, 3))
	r.w.Bullets = append(r.w.Bullets, bulletAt(405, 300), bulletAt(395, 300))

	r.collision.Update(testDT)

	if len(r.w.Asteroids) != 2 {
		t.Errorf("Expected one split into 2 children, got %d asteroids", len(r.w.Asteroids))
	}
	if len(r.w.Bullets) != 1 {
		t.Errorf("Expected second bullet to survive, got %d bullets", len(r.w.Bullets))
	}
	if r.w.State.Score != 100 {
		t.Errorf("Expected a single kill score 100, got %d", r.w.State.Score)
	}
	if r.w.Combo.Current != 1 {
		t.Errorf("Expected combo 1, got %d", r.w.Combo.Current)
	}
}

// TestCollision_ShieldEndsTickChecks tests that an absorbed hit stops further hazards that tick
func TestCollision_ShieldEndsTickChecks(t *testing.T) {
	r := newRig()
	ship := r.w.Ship
	ship.Place(100, 100)
	ship.Invulnerable, ship.Respawning = 0, 0
	ship.Shield = 100
	r.w.Asteroids = append(r.w.Asteroids, rock(105, 100, 2), rock(95, 100, 2))

	r.collision.Update(testDT)

	if ship.Shield != 0 {
		t.Errorf("Expected shield consumed, got %v", ship.Shield)
	}
	if r.w.State.Lives != 3 {
		t.Errorf("Expected lives unchanged behind the shield, got %d", r.w.State.Lives)
	}
	if n := len(r.eventsOf(event.EventShieldAbsorb)); n != 1 {
		t.Errorf("Expected one shield absorb event, got %d", n)
	}
	if n := len(r.eventsOf(event.EventShipHit)); n != 0 {
		t.Errorf("Expected no ship hit event, got %d", n)
	}
}

// TestCollision_EnemyBulletReach tests the ship radius plus doubled bullet radius contact distance
func TestCollision_EnemyBulletReach(t *testing.T) {
	r := newRig()
	ship := r.w.Ship
	ship.Place(100, 100)
	ship.Invulnerable, ship.Respawning = 0, 0

	r.w.EnemyBullets = append(r.w.EnemyBullets, bulletAt(118, 100))
	r.collision.Update(testDT)
	if r.w.State.Lives != 3 || len(r.w.EnemyBullets) != 1 {
		t.Fatalf("Expected a bullet 18 away to miss, lives %d bullets %d", r.w.State.Lives, len(r.w.EnemyBullets))
	}

	r.w.EnemyBullets[0].Place(112, 100)
	r.collision.Update(testDT)
	if r.w.State.Lives != 2 {
		t.Errorf("Expected a bullet 12 away to hit, lives %d", r.w.State.Lives)
	}
	if len(r.w.EnemyBullets) != 0 {
		t.Errorf("Expected enemy bullet consumed")
	}
}

// TestCollision_SplitChildHitsShip tests that children spawned by this tick's bullets reach the ship check
func TestCollision_SplitChildHitsShip(t *testing.T) {
	r := newRig()
	ship := r.w.Ship
	ship.Place(420, 300)
	ship.Invulnerable, ship.Respawning = 0, 0
	parent := rock(400, 300, 3)
	// Crystal drop keeps a life pickup out of the respawn point
	parent.HasCrystals = true
	r.w.Asteroids = append(r.w.Asteroids, parent)
	r.w.Bullets = append(r.w.Bullets, bulletAt(405, 300))

	r.collision.Update(testDT)

	if len(r.w.Asteroids) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(r.w.Asteroids))
	}
	if n := len(r.eventsOf(event.EventShipHit)); n != 1 {
		t.Errorf("Expected a child at the impact point to hit the ship, got %d hits", n)
	}
	if r.w.State.Lives != 2 {
		t.Errorf("Expected one life lost, lives %d", r.w.State.Lives)
	}
}
