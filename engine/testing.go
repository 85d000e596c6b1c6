package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/asteroids/config"
)

// NewTestWorld creates a world on default tuning with a fixed seed
func NewTestWorld() *World {
	cfg := config.Default()
	cfg.Session.Seed = 42
	return NewWorld(cfg)
}

// RecordingAudio is an AudioPlayer test double that records cues
type RecordingAudio struct {
	mu     sync.Mutex
	Cues   []string
	Result bool
}

// Play records the cue and returns the configured result
func (r *RecordingAudio) Play(cue string, _, _ float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cues = append(r.Cues, cue)
	return r.Result
}

// Count returns how many times cue was played
func (r *RecordingAudio) Count(cue string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.Cues {
		if c == cue {
			n++
		}
	}
	return n
}

// ManualTime is a TimeProvider that only moves when told to
type ManualTime struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualTime starts at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves time forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceTicks moves time forward by n steps of a hz-rate clock
func (m *ManualTime) AdvanceTicks(n, hz int) {
	m.Advance(time.Duration(n) * time.Second / time.Duration(hz))
}
