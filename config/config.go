// Package config loads session settings and simulation tuning through viper
// Tuning is read once at startup and treated as immutable for the session
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix for overrides, e.g. ASTEROIDS_SHIP_MAX_SPEED
const EnvPrefix = "ASTEROIDS"

// Store backends
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreNone     = "none"
)

// Config is the complete startup configuration
type Config struct {
	Session  Session        `toml:"session" mapstructure:"session"`
	Arena    ArenaConfig    `toml:"arena" mapstructure:"arena"`
	Timing   TimingConfig   `toml:"timing" mapstructure:"timing"`
	Ship     ShipConfig     `toml:"ship" mapstructure:"ship"`
	Dash     DashConfig     `toml:"dash" mapstructure:"dash"`
	Bullet   BulletConfig   `toml:"bullet" mapstructure:"bullet"`
	Asteroid AsteroidConfig `toml:"asteroid" mapstructure:"asteroid"`
	Boss     BossConfig     `toml:"boss" mapstructure:"boss"`
	Enemy    EnemyConfig    `toml:"enemy" mapstructure:"enemy"`
	Finisher FinisherConfig `toml:"finisher" mapstructure:"finisher"`
	Combo    ComboConfig    `toml:"combo" mapstructure:"combo"`
	PowerUp  PowerUpConfig  `toml:"powerup" mapstructure:"powerup"`
	Particle ParticleConfig `toml:"particle" mapstructure:"particle"`
}

// Session holds process-level settings that never reach the simulation core
type Session struct {
	LogLevel  string      `toml:"log_level" mapstructure:"log_level"`
	LogPath   string      `toml:"log_path" mapstructure:"log_path"`
	Seed      uint64      `toml:"seed" mapstructure:"seed"` // 0 = time based
	Audio     bool        `toml:"audio" mapstructure:"audio"`
	Volume    float64     `toml:"volume" mapstructure:"volume"` // master volume in [0,1]
	Telemetry bool        `toml:"telemetry" mapstructure:"telemetry"`
	Store     StoreConfig `toml:"store" mapstructure:"store"`
}

// StoreConfig selects the progress persistence backend
type StoreConfig struct {
	Backend string `toml:"backend" mapstructure:"backend"`
	Path    string `toml:"path" mapstructure:"path"` // file or sqlite path
	DSN     string `toml:"dsn" mapstructure:"dsn"`   // postgres
}

// Load builds a Config from defaults, an optional file at path, and environment overrides
// A missing file is not an error; an unreadable or invalid one is
func Load(path string) (*Config, error) {
	v := viper.New()

	base, err := toml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(base)); err != nil {
		return nil, fmt.Errorf("reading defaults: %w", err)
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, statErr)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML to path, used to seed an editable config file
func Write(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate rejects tuning the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena dimensions must be positive")
	check(c.Timing.PhysicsHz > 0, "timing.physics_hz must be positive")
	check(c.Timing.AIHz > 0 && c.Timing.ParticleHz > 0 && c.Timing.UIHz > 0 && c.Timing.EffectsHz > 0,
		"timing sub-rates must be positive")
	check(c.Timing.MaxFrameDelta > 0, "timing.max_frame_delta must be positive")
	check(c.Timing.MaxTicksPerFrame >= 1, "timing.max_ticks_per_frame must be at least 1")
	check(c.Particle.PoolSize > 0, "particle.pool_size must be positive")
	check(c.Ship.InitialLives > 0 && c.Ship.MaxLives >= c.Ship.InitialLives, "ship lives out of range")
	check(c.Ship.Friction > 0 && c.Ship.Friction <= 1, "ship.friction must be in (0,1]")
	check(c.Enemy.Friction > 0 && c.Enemy.Friction <= 1, "enemy.friction must be in (0,1]")
	check(c.Particle.Friction > 0 && c.Particle.Friction <= 1, "particle.friction must be in (0,1]")
	check(c.Combo.Timeout > 0, "combo.timeout must be positive")
	check(c.Finisher.LockOnTicks > 0 && c.Finisher.PreImpactTicks > 0 &&
		c.Finisher.ImpactTicks > 0 && c.Finisher.PostImpactTicks > 0, "finisher phase durations must be positive")
	check(c.Asteroid.SplitCount >= 0, "asteroid.split_count must not be negative")
	check(c.Session.Volume >= 0 && c.Session.Volume <= 1, "session.volume must be in [0,1]")

	switch c.Session.Store.Backend {
	case StoreFile, StoreSQLite, StorePostgres, StoreNone:
	default:
		errs = append(errs, fmt.Errorf("unknown store backend %q", c.Session.Store.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
