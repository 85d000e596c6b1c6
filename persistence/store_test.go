package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/config"
)

func sampleProgress() component.Progress {
	p := component.NewProgress()
	p.HighScore = 12345
	p.Crystals = 340
	p.LifetimeCrystals = 1200
	p.BossKills = 2
	p.Achievements["first_blood"] = true
	p.Achievements["boss_slayer"] = true
	p.Upgrades["damage"] = 3
	p.Upgrades["dash_cooldown"] = 1
	return *p
}

func assertProgressEqual(t *testing.T, want, got component.Progress) {
	t.Helper()
	if got.HighScore != want.HighScore || got.Crystals != want.Crystals ||
		got.LifetimeCrystals != want.LifetimeCrystals || got.BossKills != want.BossKills {
		t.Errorf("Expected counters %+v, got %+v", want, got)
	}
	if len(got.Achievements) != len(want.Achievements) {
		t.Errorf("Expected %d achievements, got %d", len(want.Achievements), len(got.Achievements))
	}
	for k := range want.Achievements {
		if !got.Achievements[k] {
			t.Errorf("Expected achievement %s", k)
		}
	}
	if len(got.Upgrades) != len(want.Upgrades) {
		t.Errorf("Expected %d upgrades, got %d", len(want.Upgrades), len(got.Upgrades))
	}
	for k, v := range want.Upgrades {
		if got.Upgrades[k] != v {
			t.Errorf("Upgrade %s: expected %d, got %d", k, v, got.Upgrades[k])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *component.Progress)
		valid  bool
	}{
		{"sample", func(p *component.Progress) {}, true},
		{"negative crystals", func(p *component.Progress) { p.Crystals = -1 }, false},
		{"unknown upgrade", func(p *component.Progress) { p.Upgrades["warp"] = 1 }, false},
		{"upgrade over cap", func(p *component.Progress) { p.Upgrades["dash_cooldown"] = 4 }, false},
		{"unknown achievement", func(p *component.Progress) { p.Achievements["pacifist"] = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sampleProgress()
			c := p.Clone()
			tt.mutate(&c)
			err := Validate(&c)
			if tt.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidProgress) {
				t.Errorf("Expected ErrInvalidProgress, got %v", err)
			}
		})
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "save", "progress.toml"))

	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound before first save, got %v", err)
	}

	want := sampleProgress()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertProgressEqual(t, want, got)

	// Overwrite keeps only the latest record
	want.Crystals = 5
	delete(want.Upgrades, "damage")
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	got, _ = s.Load(ctx)
	assertProgressEqual(t, want, got)
}

func TestFileStore_RejectsCorruptSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.toml")
	if err := os.WriteFile(path, []byte("high_score = \"lots\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(context.Background()); !errors.Is(err, ErrInvalidProgress) {
		t.Errorf("Expected ErrInvalidProgress, got %v", err)
	}
}

func TestFileStore_SaveRejectsInvalid(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "progress.toml"))
	p := sampleProgress()
	p.BossKills = -3
	if err := s.Save(context.Background(), p); !errors.Is(err, ErrInvalidProgress) {
		t.Errorf("Expected ErrInvalidProgress, got %v", err)
	}
	if _, err := os.Stat(s.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected no file written for invalid progress")
	}
}

func TestSQLStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "progress.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()

	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on empty database, got %v", err)
	}

	want := sampleProgress()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertProgressEqual(t, want, got)

	// Children are replaced, not merged
	want.Achievements = map[string]bool{"combo_5": true}
	want.Upgrades = map[string]int{"max_speed": 5}
	want.HighScore = 99999
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("Second load failed: %v", err)
	}
	assertProgressEqual(t, want, got)
}

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(config.StoreConfig{Backend: config.StoreFile, Path: filepath.Join(dir, "p.toml")}, zerolog.Nop())
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Expected *FileStore, got %T", s)
	}

	s, err = Open(config.StoreConfig{Backend: config.StoreNone}, zerolog.Nop())
	if err != nil {
		t.Fatalf("none backend: %v", err)
	}
	if _, err := s.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected NopStore to report ErrNotFound")
	}

	if _, err := Open(config.StoreConfig{Backend: "floppy"}, zerolog.Nop()); err == nil {
		t.Errorf("Expected unknown backend rejected")
	}
}
