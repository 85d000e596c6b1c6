package component

// PowerUpType is the closed set of pickups
type PowerUpType uint8

const (
	PowerUpRapid PowerUpType = iota
	PowerUpTriple
	PowerUpShield
	PowerUpLife
	PowerUpCrystal
)

// BuffTypes are the non-crystal pickups a drop roll chooses from
var BuffTypes = [...]PowerUpType{PowerUpRapid, PowerUpTriple, PowerUpShield, PowerUpLife}

func (p PowerUpType) String() string {
	switch p {
	case PowerUpRapid:
		return "rapid"
	case PowerUpTriple:
		return "triple"
	case PowerUpShield:
		return "shield"
	case PowerUpLife:
		return "life"
	case PowerUpCrystal:
		return "crystal"
	default:
		return "unknown"
	}
}

// Color returns the pickup's display color
func (p PowerUpType) Color() RGB {
	switch p {
	case PowerUpRapid:
		return RGB{255, 255, 0}
	case PowerUpTriple:
		return RGB{0, 255, 255}
	case PowerUpShield:
		return RGB{0, 100, 255}
	case PowerUpLife:
		return RGB{0, 255, 0}
	case PowerUpCrystal:
		return RGB{200, 100, 255}
	default:
		return RGB{255, 255, 255}
	}
}

// PowerUp is a drifting pickup
type PowerUp struct {
	Motion

	Type PowerUpType

	// Lifetime is remaining ticks before expiry
	Lifetime float64

	// Pulse is the visual pulse phase
	Pulse float64
}

func (*PowerUp) Kind() Kind { return KindPowerUp }
func (*PowerUp) body()      {}
