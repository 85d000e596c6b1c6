package component

// Bullet is a player or enemy projectile
type Bullet struct {
	Motion

	// Life is remaining lifetime in ticks
	Life float64

	// Enemy marks enemy fire
	Enemy bool

	Trail Trail[Point]
}

func (b *Bullet) Kind() Kind {
	if b.Enemy {
		return KindEnemyBullet
	}
	return KindBullet
}
func (*Bullet) body() {}
