package engine

import (
	"math"

	"github.com/lixenwraith/asteroids/component"
)

// ParticlePool is a fixed-capacity particle allocator
// Free slots form a set (stack plus membership bitmap) so release is O(1) and idempotent
type ParticlePool struct {
	slots    []component.Particle
	free     []int
	isFree   []bool
	friction float64
}

// NewParticlePool creates a pool with every slot free
func NewParticlePool(capacity int, friction float64) *ParticlePool {
	if capacity < 0 {
		capacity = 0
	}
	p := &ParticlePool{
		slots:    make([]component.Particle, capacity),
		free:     make([]int, 0, capacity),
		isFree:   make([]bool, capacity),
		friction: friction,
	}
	p.Clear()
	return p
}

// Acquire claims an inactive slot and marks it active
// Returns false when exhausted; callers skip the particle silently
func (p *ParticlePool) Acquire() (*component.Particle, bool) {
	n := len(p.free)
	if n == 0 {
		return nil, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.isFree[idx] = false

	pt := &p.slots[idx]
	*pt = component.Particle{Active: true}
	return pt, true
}

// release returns slot idx to the free set; repeated release is a no-op
func (p *ParticlePool) release(idx int) {
	if p.isFree[idx] {
		return
	}
	p.slots[idx].Active = false
	p.isFree[idx] = true
	p.free = append(p.free, idx)
}

// Update integrates every active particle by one tick at the given time scale
// Damping is friction^timeScale so total decay is independent of tick count
func (p *ParticlePool) Update(timeScale float64) {
	damp := math.Pow(p.friction, timeScale)
	for i := range p.slots {
		pt := &p.slots[i]
		if !pt.Active {
			continue
		}
		pt.X += pt.VX * timeScale
		pt.Y += pt.VY * timeScale
		pt.Life -= timeScale
		pt.VX *= damp
		pt.VY *= damp
		if pt.Life <= 0 {
			p.release(i)
		}
	}
}

// Clear force-frees every slot
func (p *ParticlePool) Clear() {
	p.free = p.free[:0]
	// Push in reverse so Acquire hands out low indices first
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.slots[i].Active = false
		p.isFree[i] = true
		p.free = append(p.free, i)
	}
}

// ForEachActive visits active particles in slot order
func (p *ParticlePool) ForEachActive(fn func(*component.Particle)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}

// ActiveCount returns the number of claimed slots
func (p *ParticlePool) ActiveCount() int { return len(p.slots) - len(p.free) }

// FreeCount returns the number of available slots
func (p *ParticlePool) FreeCount() int { return len(p.free) }

// Cap returns pool capacity
func (p *ParticlePool) Cap() int { return len(p.slots) }
