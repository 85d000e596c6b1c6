package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/asteroids/component"
)

// saveFile is the on-disk layout of the TOML save
type saveFile struct {
	HighScore        int             `toml:"high_score"`
	Crystals         int             `toml:"crystals"`
	LifetimeCrystals int             `toml:"lifetime_crystals"`
	BossKills        int             `toml:"boss_kills"`
	Achievements     map[string]bool `toml:"achievements"`
	Upgrades         map[string]int  `toml:"upgrades"`
}

// FileStore keeps progress in a single TOML file
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the save file location
func (s *FileStore) Path() string { return s.path }

// Load reads and validates the save file
func (s *FileStore) Load(_ context.Context) (component.Progress, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return component.Progress{}, ErrNotFound
		}
		return component.Progress{}, fmt.Errorf("reading save %s: %w", s.path, err)
	}

	var f saveFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return component.Progress{}, fmt.Errorf("%w: decoding save %s: %v", ErrInvalidProgress, s.path, err)
	}

	p := component.NewProgress()
	p.HighScore = f.HighScore
	p.Crystals = f.Crystals
	p.LifetimeCrystals = f.LifetimeCrystals
	p.BossKills = f.BossKills
	for k, v := range f.Achievements {
		if v {
			p.Achievements[k] = true
		}
	}
	for k, v := range f.Upgrades {
		p.Upgrades[k] = v
	}

	if err := Validate(p); err != nil {
		return component.Progress{}, err
	}
	return *p, nil
}

// Save writes progress through a temp file and rename so a crash never leaves a torn save
func (s *FileStore) Save(_ context.Context, p component.Progress) error {
	if err := Validate(&p); err != nil {
		return err
	}

	data, err := toml.Marshal(saveFile{
		HighScore:        p.HighScore,
		Crystals:         p.Crystals,
		LifetimeCrystals: p.LifetimeCrystals,
		BossKills:        p.BossKills,
		Achievements:     p.Achievements,
		Upgrades:         p.Upgrades,
	})
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp save: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp save: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing save %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for file storage
func (s *FileStore) Close() error { return nil }
