package component

// ParticleType tags particle behavior and rendering
type ParticleType uint8

const (
	ParticlePlain ParticleType = iota
	ParticleEnemyExplosion
	ParticleFinisher
	ParticleDash
	ParticleStreak
	ParticleBurst
	ParticleRespawn
)

// Particle is a pooled visual record, owned by the particle pool
type Particle struct {
	Active bool
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  RGB
	Type   ParticleType
}

// FloatingText is a rising score or status label
type FloatingText struct {
	X, Y         float64
	PrevX, PrevY float64
	VY           float64
	Life         float64
	Text         string
	Color        RGB
}

// StorePrevious snapshots the interpolation baseline
func (f *FloatingText) StorePrevious() {
	f.PrevX, f.PrevY = f.X, f.Y
}
