package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/asteroids/component"
)

// profileID is the single progress row; the game keeps one profile per database
const profileID = 1

// ProgressRecord is the scalar part of progress
type ProgressRecord struct {
	ID               uint `gorm:"primaryKey"`
	HighScore        int
	Crystals         int
	LifetimeCrystals int
	BossKills        int
}

// AchievementRecord is one unlocked achievement
type AchievementRecord struct {
	ProgressID uint   `gorm:"primaryKey"`
	Key        string `gorm:"primaryKey;size:64"`
}

// UpgradeRecord is one purchased upgrade level
type UpgradeRecord struct {
	ProgressID uint   `gorm:"primaryKey"`
	Key        string `gorm:"primaryKey;size:64"`
	Level      int
}

// models lists every table the store migrates
var models = []any{&ProgressRecord{}, &AchievementRecord{}, &UpgradeRecord{}}

// SQLStore keeps progress in a relational database through gorm
type SQLStore struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// OpenSQLite opens or creates a sqlite database at path, empty path is in-memory
func OpenSQLite(path string, log zerolog.Logger) (*SQLStore, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("setting pragma: %w", err)
		}
	}

	log.Info().Str("path", path).Msg("Using SQLite progress store")
	return NewSQLStore(db, log)
}

// OpenPostgres connects to the postgres database at dsn
func OpenPostgres(dsn string, log zerolog.Logger) (*SQLStore, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing sql interface: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("validating postgres connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(4)

	log.Info().Msg("Using Postgres progress store")
	return NewSQLStore(db, log)
}

// NewSQLStore migrates the schema on db and wraps it
func NewSQLStore(db *gorm.DB, log zerolog.Logger) (*SQLStore, error) {
	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("migrating progress schema: %w", err)
	}
	return &SQLStore{db: db, logger: log}, nil
}

// Load reads the profile row and its children
func (s *SQLStore) Load(ctx context.Context) (component.Progress, error) {
	db := s.db.WithContext(ctx)

	var rec ProgressRecord
	if err := db.First(&rec, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return component.Progress{}, ErrNotFound
		}
		return component.Progress{}, fmt.Errorf("loading progress: %w", err)
	}

	var achievements []AchievementRecord
	if err := db.Where("progress_id = ?", profileID).Find(&achievements).Error; err != nil {
		return component.Progress{}, fmt.Errorf("loading achievements: %w", err)
	}
	var upgrades []UpgradeRecord
	if err := db.Where("progress_id = ?", profileID).Find(&upgrades).Error; err != nil {
		return component.Progress{}, fmt.Errorf("loading upgrades: %w", err)
	}

	p := component.NewProgress()
	p.HighScore = rec.HighScore
	p.Crystals = rec.Crystals
	p.LifetimeCrystals = rec.LifetimeCrystals
	p.BossKills = rec.BossKills
	for _, a := range achievements {
		p.Achievements[a.Key] = true
	}
	for _, u := range upgrades {
		p.Upgrades[u.Key] = u.Level
	}

	if err := Validate(p); err != nil {
		return component.Progress{}, err
	}
	return *p, nil
}

// Save replaces the profile and its children in one transaction
func (s *SQLStore) Save(ctx context.Context, p component.Progress) error {
	if err := Validate(&p); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := ProgressRecord{
			ID:               profileID,
			HighScore:        p.HighScore,
			Crystals:         p.Crystals,
			LifetimeCrystals: p.LifetimeCrystals,
			BossKills:        p.BossKills,
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
			return fmt.Errorf("upserting progress: %w", err)
		}

		if err := tx.Where("progress_id = ?", profileID).Delete(&AchievementRecord{}).Error; err != nil {
			return fmt.Errorf("clearing achievements: %w", err)
		}
		if err := tx.Where("progress_id = ?", profileID).Delete(&UpgradeRecord{}).Error; err != nil {
			return fmt.Errorf("clearing upgrades: %w", err)
		}

		achievements := make([]AchievementRecord, 0, len(p.Achievements))
		for k, v := range p.Achievements {
			if v {
				achievements = append(achievements, AchievementRecord{ProgressID: profileID, Key: k})
			}
		}
		if len(achievements) > 0 {
			if err := tx.Create(&achievements).Error; err != nil {
				return fmt.Errorf("writing achievements: %w", err)
			}
		}

		upgrades := make([]UpgradeRecord, 0, len(p.Upgrades))
		for k, v := range p.Upgrades {
			upgrades = append(upgrades, UpgradeRecord{ProgressID: profileID, Key: k, Level: v})
		}
		if len(upgrades) > 0 {
			if err := tx.Create(&upgrades).Error; err != nil {
				return fmt.Errorf("writing upgrades: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug().Int("crystals", p.Crystals).Int("high_score", p.HighScore).Msg("Progress saved")
	return nil
}

// Close releases the underlying connection pool
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("accessing sql interface: %w", err)
	}
	return sqlDB.Close()
}
