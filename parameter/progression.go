package parameter

// Upgrades
const (
	// UpgradeDamageMax is damage upgrade level cap
	UpgradeDamageMax = 5
	// UpgradeDamageBase is damage upgrade base cost
	UpgradeDamageBase = 100
	// UpgradeDamageMult is damage upgrade cost growth
	UpgradeDamageMult = 1.5
	// UpgradeDamageStep is damage multiplier gained per level
	UpgradeDamageStep = 0.2

	// UpgradeFireRateMax is fire rate upgrade level cap
	UpgradeFireRateMax = 5
	// UpgradeFireRateBase is fire rate upgrade base cost
	UpgradeFireRateBase = 80
	// UpgradeFireRateMult is fire rate upgrade cost growth
	UpgradeFireRateMult = 1.4
	// UpgradeFireRateStep is cooldown multiplier lost per level
	UpgradeFireRateStep = 0.1

	// UpgradeSpeedMax is max speed upgrade level cap
	UpgradeSpeedMax = 5
	// UpgradeSpeedBase is max speed upgrade base cost
	UpgradeSpeedBase = 60
	// UpgradeSpeedMult is max speed upgrade cost growth
	UpgradeSpeedMult = 1.3
	// UpgradeSpeedStep is speed multiplier gained per level
	UpgradeSpeedStep = 0.15

	// UpgradeDashMax is dash cooldown upgrade level cap
	UpgradeDashMax = 3
	// UpgradeDashBase is dash cooldown upgrade base cost
	UpgradeDashBase = 150
	// UpgradeDashMult is dash cooldown upgrade cost growth
	UpgradeDashMult = 2.0
	// UpgradeDashStep is dash cooldown ticks removed per level
	UpgradeDashStep = 20
)

// Achievements
const (
	// AchievementFirstBloodReward is crystals for the first kill
	AchievementFirstBloodReward = 50
	// AchievementCombo5Reward is crystals for a 5 combo
	AchievementCombo5Reward = 100
	// AchievementCombo10Reward is crystals for a 10 combo
	AchievementCombo10Reward = 200
	// AchievementSurvivorReward is crystals for reaching the survivor level
	AchievementSurvivorReward = 300
	// AchievementSurvivorLevel is the level that unlocks survivor
	AchievementSurvivorLevel = 10
	// AchievementBossSlayerReward is crystals for the first boss kill
	AchievementBossSlayerReward = 500
	// AchievementUntouchableReward is crystals for a level without losing a life
	AchievementUntouchableReward = 200
	// AchievementSpeedDemonReward is crystals for maxing the speed upgrade
	AchievementSpeedDemonReward = 150
	// AchievementCrystalHoarderReward is crystals for the lifetime crystal goal
	AchievementCrystalHoarderReward = 250
	// AchievementCrystalHoarderGoal is lifetime crystals that unlock crystal hoarder
	AchievementCrystalHoarderGoal = 1000
)
