package progression

import (
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/parameter"
)

// Achievement is a one-time goal paying a crystal reward
type Achievement uint8

const (
	AchievementFirstBlood Achievement = iota
	AchievementCombo5
	AchievementCombo10
	AchievementSurvivor
	AchievementBossSlayer
	AchievementUntouchable
	AchievementSpeedDemon
	AchievementCrystalHoarder
	achievementCount
)

// Achievements lists every achievement in display order
var Achievements = [...]Achievement{
	AchievementFirstBlood,
	AchievementCombo5,
	AchievementCombo10,
	AchievementSurvivor,
	AchievementBossSlayer,
	AchievementUntouchable,
	AchievementSpeedDemon,
	AchievementCrystalHoarder,
}

// String returns the persisted key
func (a Achievement) String() string {
	switch a {
	case AchievementFirstBlood:
		return "first_blood"
	case AchievementCombo5:
		return "combo_5"
	case AchievementCombo10:
		return "combo_10"
	case AchievementSurvivor:
		return "survivor"
	case AchievementBossSlayer:
		return "boss_slayer"
	case AchievementUntouchable:
		return "untouchable"
	case AchievementSpeedDemon:
		return "speed_demon"
	case AchievementCrystalHoarder:
		return "crystal_hoarder"
	default:
		return "unknown"
	}
}

// Name returns the display label
func (a Achievement) Name() string {
	switch a {
	case AchievementFirstBlood:
		return "First Blood"
	case AchievementCombo5:
		return "Combo x5"
	case AchievementCombo10:
		return "Combo Master"
	case AchievementSurvivor:
		return "Survivor"
	case AchievementBossSlayer:
		return "Boss Slayer"
	case AchievementUntouchable:
		return "Untouchable"
	case AchievementSpeedDemon:
		return "Speed Demon"
	case AchievementCrystalHoarder:
		return "Crystal Hoarder"
	default:
		return "Unknown"
	}
}

// Reward returns the crystal payout
func (a Achievement) Reward() int {
	switch a {
	case AchievementFirstBlood:
		return parameter.AchievementFirstBloodReward
	case AchievementCombo5:
		return parameter.AchievementCombo5Reward
	case AchievementCombo10:
		return parameter.AchievementCombo10Reward
	case AchievementSurvivor:
		return parameter.AchievementSurvivorReward
	case AchievementBossSlayer:
		return parameter.AchievementBossSlayerReward
	case AchievementUntouchable:
		return parameter.AchievementUntouchableReward
	case AchievementSpeedDemon:
		return parameter.AchievementSpeedDemonReward
	case AchievementCrystalHoarder:
		return parameter.AchievementCrystalHoarderReward
	default:
		return 0
	}
}

// Facts is the game state snapshot achievement conditions are judged on
type Facts struct {
	Score            int
	Combo            int
	Level            int
	CleanLevel       bool
	BossKills        int
	LifetimeCrystals int
	SpeedLevel       int
}

// Met reports whether the condition of a holds for f
func (a Achievement) Met(f Facts) bool {
	switch a {
	case AchievementFirstBlood:
		return f.Score > 0
	case AchievementCombo5:
		return f.Combo >= parameter.ComboMilestones[0]
	case AchievementCombo10:
		return f.Combo >= parameter.ComboMilestones[1]
	case AchievementSurvivor:
		return f.Level >= parameter.AchievementSurvivorLevel
	case AchievementBossSlayer:
		return f.BossKills > 0
	case AchievementUntouchable:
		return f.Level > 1 && f.CleanLevel
	case AchievementSpeedDemon:
		return f.SpeedLevel >= UpgradeMaxSpeed.MaxLevel()
	case AchievementCrystalHoarder:
		return f.LifetimeCrystals >= parameter.AchievementCrystalHoarderGoal
	default:
		return false
	}
}

// Unlocked reports whether a is already recorded in p
func Unlocked(p *component.Progress, a Achievement) bool {
	return p.Achievements[a.String()]
}

// Unlock records a and pays its reward; false if it was already unlocked
func Unlock(p *component.Progress, a Achievement) bool {
	key := a.String()
	if p.Achievements[key] {
		return false
	}
	if p.Achievements == nil {
		p.Achievements = make(map[string]bool)
	}
	p.Achievements[key] = true
	p.Crystals += a.Reward()
	return true
}

// Evaluate unlocks every candidate whose condition holds and returns the newly unlocked ones
func Evaluate(p *component.Progress, f Facts, candidates ...Achievement) []Achievement {
	var out []Achievement
	for _, a := range candidates {
		if Unlocked(p, a) || !a.Met(f) {
			continue
		}
		if Unlock(p, a) {
			out = append(out, a)
		}
	}
	return out
}

// ParseAchievement resolves a persisted key
func ParseAchievement(key string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.String() == key {
			return a, true
		}
	}
	return achievementCount, false
}
