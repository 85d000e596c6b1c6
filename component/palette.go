package component

// Palette
var (
	ColorWhite       = RGB{255, 255, 255}
	ColorBlueGlow    = RGB{100, 150, 255}
	ColorAsteroid    = RGB{200, 200, 255}
	ColorBullet      = RGB{255, 255, 100}
	ColorCrystal     = RGB{150, 255, 255}
	ColorEnemy       = RGB{255, 100, 100}
	ColorBoss        = RGB{255, 50, 50}
	ColorGold        = RGB{255, 215, 0}
	ColorDamageFlash = RGB{255, 0, 0}
	ColorShieldFlash = RGB{0, 150, 255}
	ColorDash        = RGB{100, 200, 255}
	ColorScoreText   = RGB{255, 255, 100}
	ColorEnemyBullet = RGB{255, 150, 150}
	ColorThruster    = RGB{255, 200, 0}
	ColorShipBlast   = RGB{255, 100, 0}
	ColorShipCore    = RGB{255, 255, 200}
	ColorShieldBlast = RGB{0, 200, 255}
)

// AsteroidBlast returns explosion color and base particle count by size tier
func AsteroidBlast(size int) (RGB, int) {
	switch size {
	case 3:
		return RGB{255, 150, 50}, 30
	case 2:
		return RGB{200, 200, 100}, 20
	default:
		return RGB{150, 150, 255}, 15
	}
}
