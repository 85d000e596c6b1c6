package engine

// Audio cue names sent to the audio collaborator
const (
	CueShoot           = "shoot"
	CueDash            = "dash"
	CueExplosionSmall  = "explosion_small"
	CueExplosionMedium = "explosion_medium"
	CueExplosionLarge  = "explosion_large"
	CueEnemyExplosion  = "enemy_explosion"
	CueEnemyShoot      = "enemy_shoot"
	CuePowerUpRapid    = "powerup_rapid"
	CuePowerUpTriple   = "powerup_triple"
	CuePowerUpShield   = "powerup_shield"
	CuePowerUpLife     = "powerup_life"
	CuePowerUpCrystal  = "powerup_crystal"
	CueLevelTransition = "level_transition"
	CueAchievement     = "achievement"
)

// AudioPlayer plays fire-and-forget cues
// x is the arena position for panning; Play reports false when the cue could not be played
type AudioPlayer interface {
	Play(cue string, x, volume float64) bool
}

// NopAudio is the silent player; every cue reports failure so visual fallbacks engage
type NopAudio struct{}

func (NopAudio) Play(string, float64, float64) bool { return false }

// Intent is the decoded player input for one frame
// Shoot and Dash are edges, consumed by the first tick that reads them
type Intent struct {
	// Turn is the steering axis in [-2, 2], negative is counter-clockwise
	Turn    float64
	Thrust  bool
	Reverse bool
	Shoot   bool
	Dash    bool
}

// Merge folds a new frame's intent into the pending one, keeping unconsumed edges
func (in *Intent) Merge(next Intent) {
	in.Turn = next.Turn
	in.Thrust = next.Thrust
	in.Reverse = next.Reverse
	in.Shoot = in.Shoot || next.Shoot
	in.Dash = in.Dash || next.Dash
}
