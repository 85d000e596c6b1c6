package progression

import (
	"math"
	"testing"

	"github.com/lixenwraith/asteroids/component"
)

func TestUpgrade_Cost(t *testing.T) {
	tests := []struct {
		u     Upgrade
		level int
		want  int
	}{
		{UpgradeDamage, 0, 100},
		{UpgradeDamage, 1, 150},
		{UpgradeDamage, 2, 225},
		{UpgradeFireRate, 1, 112},
		{UpgradeMaxSpeed, 2, 101},
		{UpgradeDashCooldown, 2, 600},
	}
	for _, tt := range tests {
		if got := tt.u.Cost(tt.level); got != tt.want {
			t.Errorf("%v level %d: expected cost %d, got %d", tt.u, tt.level, tt.want, got)
		}
	}
}

func TestUpgrade_RoundTripKeys(t *testing.T) {
	for _, u := range Upgrades {
		got, ok := ParseUpgrade(u.String())
		if !ok || got != u {
			t.Errorf("Expected %v to parse back", u)
		}
	}
	if _, ok := ParseUpgrade("warp_drive"); ok {
		t.Errorf("Expected unknown key rejected")
	}
	if len(Upgrades) != int(upgradeCount) {
		t.Errorf("Upgrades list out of sync with enum")
	}
}

func TestModifiers(t *testing.T) {
	p := component.NewProgress()
	neutral := Modifiers(p)
	if neutral != component.NeutralModifiers() {
		t.Errorf("Expected neutral modifiers for fresh progress, got %+v", neutral)
	}

	p.Upgrades["damage"] = 5
	p.Upgrades["fire_rate"] = 2
	p.Upgrades["max_speed"] = 99 // clamped to 5
	p.Upgrades["dash_cooldown"] = 3
	m := Modifiers(p)
	if math.Abs(m.Damage-2.0) > 1e-9 {
		t.Errorf("Expected damage 2.0, got %v", m.Damage)
	}
	if math.Abs(m.FireRate-0.8) > 1e-9 {
		t.Errorf("Expected fire rate 0.8, got %v", m.FireRate)
	}
	if math.Abs(m.Speed-1.75) > 1e-9 {
		t.Errorf("Expected speed 1.75, got %v", m.Speed)
	}
	if m.DashReduction != 60 {
		t.Errorf("Expected dash reduction 60, got %v", m.DashReduction)
	}
}

func TestAchievement_UnlockOnce(t *testing.T) {
	p := component.NewProgress()
	if !Unlock(p, AchievementBossSlayer) {
		t.Fatalf("Expected first unlock to succeed")
	}
	if Unlock(p, AchievementBossSlayer) {
		t.Errorf("Expected second unlock to be refused")
	}
	if p.Crystals != 500 {
		t.Errorf("Expected reward paid once (500), got %d", p.Crystals)
	}
}

func TestAchievement_Evaluate(t *testing.T) {
	p := component.NewProgress()
	f := Facts{Score: 100, Combo: 7, Level: 1, CleanLevel: true}

	got := Evaluate(p, f, AchievementFirstBlood, AchievementCombo5, AchievementCombo10, AchievementUntouchable)
	if len(got) != 2 || got[0] != AchievementFirstBlood || got[1] != AchievementCombo5 {
		t.Errorf("Expected first_blood and combo_5, got %v", got)
	}
	if p.Crystals != 150 {
		t.Errorf("Expected 150 crystals, got %d", p.Crystals)
	}

	// Already unlocked achievements are skipped
	if again := Evaluate(p, f, AchievementFirstBlood); len(again) != 0 {
		t.Errorf("Expected no repeat unlock")
	}

	f.Level = 2
	if got := Evaluate(p, f, AchievementUntouchable); len(got) != 1 {
		t.Errorf("Expected untouchable on a clean level past the first")
	}
}

func TestAchievement_Conditions(t *testing.T) {
	tests := []struct {
		a    Achievement
		f    Facts
		want bool
	}{
		{AchievementSurvivor, Facts{Level: 9}, false},
		{AchievementSurvivor, Facts{Level: 10}, true},
		{AchievementSpeedDemon, Facts{SpeedLevel: 5}, true},
		{AchievementCrystalHoarder, Facts{LifetimeCrystals: 999}, false},
		{AchievementCrystalHoarder, Facts{LifetimeCrystals: 1000}, true},
		{AchievementUntouchable, Facts{Level: 1, CleanLevel: true}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Met(tt.f); got != tt.want {
			t.Errorf("%v with %+v: expected %v, got %v", tt.a, tt.f, tt.want, got)
		}
	}
}
