package system

import (
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/event"
)

const testDT = 1.0 / 60

// rig wires every system against a seeded test world
type rig struct {
	w         *engine.World
	sched     *engine.Scheduler
	spawn     *Spawner
	combat    *CombatSystem
	ship      *ShipSystem
	physics   *PhysicsSystem
	particle  *ParticleSystem
	collision *CollisionSystem
	level     *LevelSystem
}

func newRig() *rig {
	w := engine.NewTestWorld()
	sched := engine.NewScheduler(w)
	sp := NewSpawner(w)
	combat := NewCombatSystem(w, sp, sched)
	return &rig{
		w:         w,
		sched:     sched,
		spawn:     sp,
		combat:    combat,
		ship:      NewShipSystem(w, sp, combat),
		physics:   NewPhysicsSystem(w),
		particle:  NewParticleSystem(w),
		collision: NewCollisionSystem(w, sp, combat),
		level:     NewLevelSystem(w, sp),
	}
}

// tick runs the tick stage once in priority order
func (r *rig) tick() {
	r.w.StorePrevious()
	r.ship.Update(testDT)
	r.physics.Update(testDT)
	r.particle.Update(testDT)
	r.collision.Update(testDT)
	r.combat.Update(testDT)
	r.level.Update(testDT)
	r.w.Time.Tick++
}

// parkShip moves the ship out of harm's way with long invulnerability
func (r *rig) parkShip(x, y float64) {
	r.w.Ship.Place(x, y)
	r.w.Ship.Respawning = 0
	r.w.Ship.Invulnerable = 10000
}

func (r *rig) eventsOf(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.w.Events.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func rock(x, y float64, size int) *component.Asteroid {
	a := &component.Asteroid{Size: size, Radius: float64(size) * 10, Health: 1, MaxHealth: 1}
	a.Place(x, y)
	return a
}

func enemyAt(x, y float64, health int) *component.Enemy {
	e := &component.Enemy{Health: health, MaxHealth: health, Radius: 12, FireCooldown: 1000}
	e.Place(x, y)
	return e
}

func bulletAt(x, y float64) *component.Bullet {
	b := &component.Bullet{Life: 50, Trail: component.NewTrail[component.Point](8)}
	b.Place(x, y)
	return b
}
