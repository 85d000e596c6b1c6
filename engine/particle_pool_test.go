package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/asteroids/component"
)

func TestParticlePool_CapacityInvariant(t *testing.T) {
	p := NewParticlePool(16, 0.95)

	seen := make(map[any]bool)
	for i := 0; i < 16; i++ {
		pt, ok := p.Acquire()
		if !ok {
			t.Fatalf("Expected slot %d to be available", i)
		}
		if seen[pt] {
			t.Fatalf("Acquire returned an already active slot")
		}
		seen[pt] = true
		pt.Life = float64(i + 1)
		if p.ActiveCount()+p.FreeCount() != p.Cap() {
			t.Fatalf("Active %d + free %d != cap %d", p.ActiveCount(), p.FreeCount(), p.Cap())
		}
	}

	// Exhausted pool is a silent miss
	if _, ok := p.Acquire(); ok {
		t.Errorf("Expected exhausted pool to refuse")
	}

	// Life i+1 expires after i+1 ticks at scale 1
	for tick := 1; tick <= 16; tick++ {
		p.Update(1.0)
		if p.ActiveCount() != 16-tick {
			t.Fatalf("Tick %d: expected %d active, got %d", tick, 16-tick, p.ActiveCount())
		}
		if p.ActiveCount()+p.FreeCount() != p.Cap() {
			t.Fatalf("Capacity invariant broken at tick %d", tick)
		}
	}
}

func TestParticlePool_ReuseAfterExpiry(t *testing.T) {
	p := NewParticlePool(2, 0.95)
	a, _ := p.Acquire()
	a.Life = 1
	b, _ := p.Acquire()
	b.Life = 100

	p.Update(1.0)
	c, ok := p.Acquire()
	if !ok {
		t.Fatalf("Expected freed slot to be reusable")
	}
	if c != a {
		t.Errorf("Expected the expired slot to be handed out")
	}
	if !c.Active || c.Life != 0 {
		t.Errorf("Expected reset active slot, got %+v", *c)
	}
}

func TestParticlePool_DampingScalesWithTimeScale(t *testing.T) {
	p := NewParticlePool(1, 0.95)
	fast, _ := p.Acquire()
	fast.Life, fast.VX = 100, 10

	// One full tick vs ten tenth-ticks: equal total damping
	pool2 := NewParticlePool(1, 0.95)
	s2, _ := pool2.Acquire()
	s2.Life, s2.VX = 100, 10
	p.Update(1.0)
	for i := 0; i < 10; i++ {
		pool2.Update(0.1)
	}
	if math.Abs(fast.VX-s2.VX) > 1e-9 {
		t.Errorf("Expected equal damping, got %v vs %v", fast.VX, s2.VX)
	}
	if math.Abs(fast.Life-s2.Life) > 1e-9 {
		t.Errorf("Expected equal life decay, got %v vs %v", fast.Life, s2.Life)
	}
}

func TestParticlePool_Clear(t *testing.T) {
	p := NewParticlePool(8, 0.95)
	for i := 0; i < 5; i++ {
		pt, _ := p.Acquire()
		pt.Life = 50
	}
	p.Clear()
	if p.ActiveCount() != 0 || p.FreeCount() != 8 {
		t.Errorf("Expected all slots free after Clear, active=%d free=%d", p.ActiveCount(), p.FreeCount())
	}
	visited := 0
	p.ForEachActive(func(*component.Particle) { visited++ })
	if visited != 0 {
		t.Errorf("Expected no active particles, visited %d", visited)
	}
}
