package game

import (
	"context"
	"time"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/progression"
)

// saveTimeout bounds the game over save so a slow store cannot stall the frame loop
const saveTimeout = 2 * time.Second

// drainEvents consumes the frame's events, logs them and runs progression checks
func (g *Game) drainEvents() {
	for _, ev := range g.World.Events.Consume() {
		g.handle(ev)
	}
}

func (g *Game) handle(ev event.GameEvent) {
	f := g.facts()

	switch ev.Type {
	case event.EventLevelStart:
		p, _ := ev.Payload.(*event.LevelPayload)
		if p == nil {
			return
		}
		g.logger.Info().Int("level", p.Level).Bool("boss", p.Boss).Bool("clean", p.Clean).Msg("Level start")
		f.Level = p.Level
		f.CleanLevel = p.Clean
		g.unlock(f, progression.AchievementSurvivor, progression.AchievementUntouchable)

	case event.EventLevelComplete:
		if p, ok := ev.Payload.(*event.LevelPayload); ok {
			g.logger.Info().Int("level", p.Level).Int("score", g.World.State.Score).Msg("Level complete")
		}

	case event.EventKill:
		g.unlock(f, progression.AchievementFirstBlood)

	case event.EventBossKill:
		if p, ok := ev.Payload.(*event.KillPayload); ok {
			g.logger.Info().Int("score", p.Score).Msg("Boss destroyed")
		}
		g.unlock(f, progression.AchievementFirstBlood, progression.AchievementBossSlayer)

	case event.EventComboMilestone:
		if p, ok := ev.Payload.(*event.ComboPayload); ok {
			f.Combo = p.Combo
			g.logger.Debug().Int("combo", p.Combo).Msg("Combo milestone")
		}
		g.unlock(f, progression.AchievementCombo5, progression.AchievementCombo10)

	case event.EventPowerUp:
		p, ok := ev.Payload.(*event.PowerUpPayload)
		if !ok {
			return
		}
		g.logger.Debug().Str("type", p.Type.String()).Msg("Power-up collected")
		if p.Type == component.PowerUpCrystal {
			g.unlock(f, progression.AchievementCrystalHoarder)
		}

	case event.EventShipHit:
		g.logger.Debug().Int("lives", g.World.State.Lives).Msg("Ship hit")

	case event.EventFinisherPhase:
		if p, ok := ev.Payload.(*event.FinisherPhasePayload); ok {
			g.logger.Debug().Str("from", p.From.String()).Str("to", p.To.String()).Msg("Finisher phase")
		}

	case event.EventAchievement:
		// Announced at unlock time

	case event.EventGameOver:
		g.World.UpdateHighScore()
		g.logger.Info().
			Int("score", g.World.State.Score).
			Int("level", g.World.State.Level).
			Int("high_score", g.World.Progress.HighScore).
			Msg("Game over")
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := g.Save(ctx); err != nil {
			g.logger.Error().Err(err).Msg("Progress save failed")
		}
	}
}
