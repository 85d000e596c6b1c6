// Package progression defines the persistent upgrades and achievements earned across sessions
package progression

import (
	"math"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/parameter"
)

// Upgrade is a purchasable permanent ship improvement
type Upgrade uint8

const (
	UpgradeDamage Upgrade = iota
	UpgradeFireRate
	UpgradeMaxSpeed
	UpgradeDashCooldown
	upgradeCount
)

// Upgrades lists every upgrade in shop order
var Upgrades = [...]Upgrade{UpgradeDamage, UpgradeFireRate, UpgradeMaxSpeed, UpgradeDashCooldown}

// String returns the persisted key
func (u Upgrade) String() string {
	switch u {
	case UpgradeDamage:
		return "damage"
	case UpgradeFireRate:
		return "fire_rate"
	case UpgradeMaxSpeed:
		return "max_speed"
	case UpgradeDashCooldown:
		return "dash_cooldown"
	default:
		return "unknown"
	}
}

// Name returns the display label
func (u Upgrade) Name() string {
	switch u {
	case UpgradeDamage:
		return "Damage"
	case UpgradeFireRate:
		return "Fire Rate"
	case UpgradeMaxSpeed:
		return "Max Speed"
	case UpgradeDashCooldown:
		return "Dash Cooldown"
	default:
		return "Unknown"
	}
}

// Description returns the shop blurb
func (u Upgrade) Description() string {
	switch u {
	case UpgradeDamage:
		return "Increases bullet damage"
	case UpgradeFireRate:
		return "Shoot faster"
	case UpgradeMaxSpeed:
		return "Increase ship speed"
	case UpgradeDashCooldown:
		return "Dash more frequently"
	default:
		return ""
	}
}

// MaxLevel returns the level cap
func (u Upgrade) MaxLevel() int {
	switch u {
	case UpgradeDamage:
		return parameter.UpgradeDamageMax
	case UpgradeFireRate:
		return parameter.UpgradeFireRateMax
	case UpgradeMaxSpeed:
		return parameter.UpgradeSpeedMax
	case UpgradeDashCooldown:
		return parameter.UpgradeDashMax
	default:
		return 0
	}
}

func (u Upgrade) costCurve() (base int, mult float64) {
	switch u {
	case UpgradeDamage:
		return parameter.UpgradeDamageBase, parameter.UpgradeDamageMult
	case UpgradeFireRate:
		return parameter.UpgradeFireRateBase, parameter.UpgradeFireRateMult
	case UpgradeMaxSpeed:
		return parameter.UpgradeSpeedBase, parameter.UpgradeSpeedMult
	case UpgradeDashCooldown:
		return parameter.UpgradeDashBase, parameter.UpgradeDashMult
	default:
		return 0, 1
	}
}

// Cost returns the crystal price of buying the next level from level
func (u Upgrade) Cost(level int) int {
	base, mult := u.costCurve()
	return int(float64(base) * math.Pow(mult, float64(level)))
}

// ParseUpgrade resolves a persisted key
func ParseUpgrade(key string) (Upgrade, bool) {
	for _, u := range Upgrades {
		if u.String() == key {
			return u, true
		}
	}
	return upgradeCount, false
}

// Level reads an upgrade level from progress, clamped to the valid range
func Level(p *component.Progress, u Upgrade) int {
	if p == nil {
		return 0
	}
	return max(0, min(p.Upgrades[u.String()], u.MaxLevel()))
}

// Modifiers derives gameplay multipliers from purchased levels
func Modifiers(p *component.Progress) component.Modifiers {
	m := component.NeutralModifiers()
	m.Damage = 1 + float64(Level(p, UpgradeDamage))*parameter.UpgradeDamageStep
	m.FireRate = 1 - float64(Level(p, UpgradeFireRate))*parameter.UpgradeFireRateStep
	m.Speed = 1 + float64(Level(p, UpgradeMaxSpeed))*parameter.UpgradeSpeedStep
	m.DashReduction = float64(Level(p, UpgradeDashCooldown) * parameter.UpgradeDashStep)
	return m
}
