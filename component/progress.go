package component

// Progress is the cross-run record exchanged with persistence at session boundaries
type Progress struct {
	HighScore        int
	Crystals         int
	LifetimeCrystals int
	BossKills        int

	// Achievements holds unlocked achievement ids
	Achievements map[string]bool

	// Upgrades maps upgrade id to purchased level
	Upgrades map[string]int
}

// NewProgress returns an empty record with initialized maps
func NewProgress() *Progress {
	return &Progress{
		Achievements: make(map[string]bool),
		Upgrades:     make(map[string]int),
	}
}

// Clone returns a deep copy safe to hand across the session boundary
func (p *Progress) Clone() Progress {
	c := *p
	c.Achievements = make(map[string]bool, len(p.Achievements))
	for k, v := range p.Achievements {
		c.Achievements[k] = v
	}
	c.Upgrades = make(map[string]int, len(p.Upgrades))
	for k, v := range p.Upgrades {
		c.Upgrades[k] = v
	}
	return c
}

// Modifiers are upgrade effects resolved once per purchase or load
type Modifiers struct {
	// Damage multiplies bullet damage, truncated to at least 1 per hit
	Damage float64

	// FireRate multiplies bullet cooldown; lower fires faster
	FireRate float64

	// Speed multiplies ship max speed
	Speed float64

	// DashReduction is subtracted from dash cooldown in ticks
	DashReduction float64
}

// NeutralModifiers returns the no-upgrade values
func NeutralModifiers() Modifiers {
	return Modifiers{Damage: 1, FireRate: 1, Speed: 1}
}
