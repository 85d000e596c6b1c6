package component

import "github.com/lixenwraith/asteroids/parameter"

// Asteroid is a drifting rock; bosses carry health, others die on first hit
type Asteroid struct {
	Motion

	// Size tier in [1,3]
	Size int

	// Radius is derived from size, scale and boss multiplier at creation
	Radius float64

	// Spin is degrees per tick
	Spin float64

	// Shape perturbs each polygon vertex
	Shape [parameter.AsteroidVertexCount]float64

	IsBoss      bool
	HasCrystals bool

	// Health is 1 for non-boss asteroids until destroyed
	Health    int
	MaxHealth int

	HitFlash float64
}

func (*Asteroid) Kind() Kind { return KindAsteroid }
func (*Asteroid) body()      {}
