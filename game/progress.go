package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/persistence"
	"github.com/lixenwraith/asteroids/progression"
)

var (
	// ErrUnknownUpgrade reports a purchase of an upgrade outside the shop list
	ErrUnknownUpgrade = errors.New("unknown upgrade")

	// ErrUpgradeMaxed reports a purchase past the level cap
	ErrUpgradeMaxed = errors.New("upgrade already at max level")

	// ErrInsufficientCrystals reports a purchase the balance cannot cover
	ErrInsufficientCrystals = errors.New("not enough crystals")
)

// Load replaces progress from the store
// A missing or invalid record keeps the built-in defaults; only store failures are returned
func (g *Game) Load(ctx context.Context) error {
	p, err := g.store.Load(ctx)
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		g.logger.Info().Msg("No saved progress, starting fresh")
		return nil
	case errors.Is(err, persistence.ErrInvalidProgress):
		g.logger.Warn().Err(err).Msg("Saved progress rejected, starting fresh")
		return nil
	case err != nil:
		return fmt.Errorf("loading progress: %w", err)
	}

	*g.World.Progress = p
	if g.World.Progress.Achievements == nil {
		g.World.Progress.Achievements = make(map[string]bool)
	}
	if g.World.Progress.Upgrades == nil {
		g.World.Progress.Upgrades = make(map[string]int)
	}
	g.World.Mods = progression.Modifiers(g.World.Progress)
	g.logger.Info().
		Int("high_score", p.HighScore).
		Int("crystals", p.Crystals).
		Int("achievements", len(p.Achievements)).
		Msg("Progress loaded")
	return nil
}

// Save writes a snapshot of progress to the store
func (g *Game) Save(ctx context.Context) error {
	g.World.UpdateHighScore()
	if err := g.store.Save(ctx, g.World.Progress.Clone()); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

// Progress returns a copy of the persistent record
func (g *Game) Progress() component.Progress {
	return g.World.Progress.Clone()
}

// PurchaseUpgrade spends crystals on the next level of u and returns the new level
func (g *Game) PurchaseUpgrade(u progression.Upgrade) (int, error) {
	if _, ok := progression.ParseUpgrade(u.String()); !ok {
		return 0, ErrUnknownUpgrade
	}
	p := g.World.Progress
	level := progression.Level(p, u)
	if level >= u.MaxLevel() {
		return level, ErrUpgradeMaxed
	}
	cost := u.Cost(level)
	if p.Crystals < cost {
		return level, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCrystals, cost, p.Crystals)
	}

	p.Crystals -= cost
	level++
	p.Upgrades[u.String()] = level
	g.World.Mods = progression.Modifiers(p)
	g.logger.Info().Str("upgrade", u.String()).Int("level", level).Int("cost", cost).Msg("Upgrade purchased")

	g.unlock(g.facts(), progression.AchievementSpeedDemon)
	return level, nil
}

// PurchaseSlot buys the upgrade at shop position slot
func (g *Game) PurchaseSlot(slot int) (int, error) {
	if slot < 0 || slot >= len(progression.Upgrades) {
		return 0, ErrUnknownUpgrade
	}
	return g.PurchaseUpgrade(progression.Upgrades[slot])
}

// ShopLines describes every upgrade with its level and next price
func (g *Game) ShopLines() []string {
	lines := make([]string, 0, len(progression.Upgrades))
	for i, u := range progression.Upgrades {
		level := progression.Level(g.World.Progress, u)
		price := "MAX"
		if level < u.MaxLevel() {
			price = fmt.Sprintf("◆ %d", u.Cost(level))
		}
		lines = append(lines, fmt.Sprintf("%d. %-14s %d/%d  %-7s %s", i+1, u.Name(), level, u.MaxLevel(), price, u.Description()))
	}
	return lines
}

// facts snapshots the world for achievement checks
func (g *Game) facts() progression.Facts {
	w := g.World
	return progression.Facts{
		Score:            w.State.Score,
		Combo:            w.Combo.Current,
		Level:            w.State.Level,
		BossKills:        w.Progress.BossKills,
		LifetimeCrystals: w.Progress.LifetimeCrystals,
		SpeedLevel:       progression.Level(w.Progress, progression.UpgradeMaxSpeed),
	}
}

// unlock evaluates candidates and announces every new unlock
func (g *Game) unlock(f progression.Facts, candidates ...progression.Achievement) {
	w := g.World
	for _, a := range progression.Evaluate(w.Progress, f, candidates...) {
		cx, cy := w.Width/2, w.Height/2
		g.spawn.Text(cx, cy-w.Scaled(100), "ACHIEVEMENT: "+a.Name(), component.ColorGold)
		g.spawn.Text(cx, cy-w.Scaled(70), fmt.Sprintf("+%d Crystals", a.Reward()), component.PowerUpCrystal.Color())
		w.PlaySound(engine.CueAchievement, cx, 1.0)
		w.PushEvent(event.EventAchievement, &event.AchievementPayload{ID: a.String(), Reward: a.Reward()})
		g.logger.Info().Str("achievement", a.String()).Int("reward", a.Reward()).Msg("Achievement unlocked")
	}
}
