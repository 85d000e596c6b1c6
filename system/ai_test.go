package system

import (
	"testing"

	"github.com/lixenwraith/asteroids/component"
)

func aiEnemyAt(x, y float64, ai component.AIType) *component.Enemy {
	e := &component.Enemy{AI: ai, Health: 1, MaxHealth: 1, Radius: 10, FireCooldown: 1000}
	e.Place(x, y)
	return e
}

func TestAI_HunterApproachesAndRetreats(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	ai := NewAISystem(r.w, r.spawn, 15)

	far := aiEnemyAt(100, 300, component.AIHunter)
	near := aiEnemyAt(440, 300, component.AIHunter)
	r.w.Enemies = append(r.w.Enemies, far, near)

	ai.Update(1.0 / 15)
	if far.VelX <= 0 {
		t.Errorf("Expected far hunter to approach, vx %v", far.VelX)
	}
	if near.VelX <= 0 {
		t.Errorf("Expected near hunter to back away to the right, vx %v", near.VelX)
	}
}

func TestAI_FiresOnlyInRange(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	ai := NewAISystem(r.w, r.spawn, 15)

	inRange := aiEnemyAt(250, 300, component.AIHunter)
	inRange.FireCooldown = 0
	tooFar := aiEnemyAt(50, 300, component.AIHunter)
	tooFar.FireCooldown = 0
	r.w.Enemies = append(r.w.Enemies, inRange, tooFar)

	ai.Update(1.0 / 15)
	if len(r.w.EnemyBullets) != 1 {
		t.Fatalf("Expected one enemy bullet, got %d", len(r.w.EnemyBullets))
	}
	if inRange.FireCooldown <= 0 {
		t.Errorf("Expected cooldown re-armed, got %v", inRange.FireCooldown)
	}
	if tooFar.FireCooldown != 0 {
		t.Errorf("Expected out-of-range enemy to hold fire")
	}
}

func TestAI_SuspendedDuringTransition(t *testing.T) {
	r := newRig()
	r.parkShip(400, 300)
	ai := NewAISystem(r.w, r.spawn, 15)
	e := aiEnemyAt(100, 300, component.AIHunter)
	r.w.Enemies = append(r.w.Enemies, e)
	r.w.Effects.LevelTransition = 60

	ai.Update(1.0 / 15)
	if e.VelX != 0 || e.VelY != 0 {
		t.Errorf("Expected no steering during level transition, got (%v,%v)", e.VelX, e.VelY)
	}
}
