package engine

import (
	"math"
	"testing"
	"time"
)

func TestManualTime(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewManualTime(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time to be %v, got %v", start, now)
	}

	mock.Advance(time.Second)
	mock.AdvanceTicks(30, 60)
	expected := start.Add(1500 * time.Millisecond)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestFrameClock_DrivesScheduler(t *testing.T) {
	mock := NewManualTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)
	s := NewScheduler(NewTestWorld())

	// Half a tick of slack keeps the count away from float rounding at the boundary
	mock.AdvanceTicks(7, 120)
	if n := s.Frame(clock.Delta()); n != 3 {
		t.Errorf("Expected 3 ticks for 3.5 tick durations, got %d", n)
	}
}

func TestFrameClock_Delta(t *testing.T) {
	mock := NewManualTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)

	mock.Advance(16 * time.Millisecond)
	if d := clock.Delta(); math.Abs(d-0.016) > 1e-9 {
		t.Errorf("Expected 0.016s, got %v", d)
	}
	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected 0 with no advance, got %v", d)
	}
}

func TestFrameClock_PauseDiscardsSpan(t *testing.T) {
	mock := NewManualTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)

	clock.Pause()
	mock.Advance(5 * time.Second)
	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected 0 while paused, got %v", d)
	}
	if !clock.IsPaused() {
		t.Errorf("Expected paused clock")
	}

	mock.Advance(2 * time.Second)
	clock.Resume()
	mock.Advance(10 * time.Millisecond)
	if d := clock.Delta(); math.Abs(d-0.010) > 1e-9 {
		t.Errorf("Expected only post-resume time, got %v", d)
	}
}

func TestView_InterpolateWrapped(t *testing.T) {
	if got := InterpolateWrapped(100, 110, 0.5, 800); got != 105 {
		t.Errorf("Expected 105, got %v", got)
	}
	// Crossing the edge snaps instead of sweeping across the arena
	if got := InterpolateWrapped(798, 2, 0.5, 800); got != 2 {
		t.Errorf("Expected snap to 2, got %v", got)
	}
	if got := InterpolateAngle(350, 10, 0.5); math.Abs(got) > 1e-9 && math.Abs(got-360) > 1e-9 {
		t.Errorf("Expected shortest-arc blend to 0, got %v", got)
	}
}

func TestWorld_UpdateTimer(t *testing.T) {
	w := NewTestWorld()
	if v := w.UpdateTimer(10, 1); v != 9 {
		t.Errorf("Expected 9, got %v", v)
	}
	w.Time.Scale = 0.5
	if v := w.UpdateTimer(10, 1); v != 9.5 {
		t.Errorf("Expected 9.5 at half scale, got %v", v)
	}
	if v := w.UpdateTimer(0.2, 1); v != 0 {
		t.Errorf("Expected clamp to 0, got %v", v)
	}
}
