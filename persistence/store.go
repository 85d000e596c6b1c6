// Package persistence stores cross-run progress at session boundaries
// Backends are a TOML save file and a gorm SQL database (sqlite or postgres)
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/progression"
)

var (
	// ErrNotFound reports that no progress has been saved yet
	ErrNotFound = errors.New("progress not found")

	// ErrInvalidProgress reports a record that fails validation
	ErrInvalidProgress = errors.New("invalid progress")
)

// Store loads and saves the progress record
type Store interface {
	Load(ctx context.Context) (component.Progress, error)
	Save(ctx context.Context, p component.Progress) error
	Close() error
}

// Open builds the store selected by cfg
func Open(cfg config.StoreConfig, logger zerolog.Logger) (Store, error) {
	switch cfg.Backend {
	case config.StoreFile:
		return NewFileStore(cfg.Path), nil
	case config.StoreSQLite:
		return OpenSQLite(cfg.Path, logger)
	case config.StorePostgres:
		return OpenPostgres(cfg.DSN, logger)
	case config.StoreNone:
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Validate checks counters are non-negative and every key names a known upgrade or achievement
func Validate(p *component.Progress) error {
	if p.HighScore < 0 || p.Crystals < 0 || p.LifetimeCrystals < 0 || p.BossKills < 0 {
		return fmt.Errorf("%w: negative counter", ErrInvalidProgress)
	}
	for key, level := range p.Upgrades {
		u, ok := progression.ParseUpgrade(key)
		if !ok {
			return fmt.Errorf("%w: unknown upgrade %q", ErrInvalidProgress, key)
		}
		if level < 0 || level > u.MaxLevel() {
			return fmt.Errorf("%w: upgrade %s level %d out of range", ErrInvalidProgress, key, level)
		}
	}
	for key := range p.Achievements {
		if _, ok := progression.ParseAchievement(key); !ok {
			return fmt.Errorf("%w: unknown achievement %q", ErrInvalidProgress, key)
		}
	}
	return nil
}

// NopStore discards saves and never finds progress
type NopStore struct{}

func (NopStore) Load(context.Context) (component.Progress, error) {
	return component.Progress{}, ErrNotFound
}

func (NopStore) Save(context.Context, component.Progress) error { return nil }

func (NopStore) Close() error { return nil }
