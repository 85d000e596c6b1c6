package vmath

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{805, 800, 5},
		{-5, 800, 795},
		{800, 800, 0},
		{0, 800, 0},
		{-1600, 800, 0},
		{-1e-18, 800, 0},
	}
	for _, tt := range tests {
		got := Wrap(tt.v, tt.size)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Wrap(%v, %v): expected %v, got %v", tt.v, tt.size, tt.want, got)
		}
		if got < 0 || got >= tt.size {
			t.Errorf("Wrap(%v, %v) = %v outside [0, size)", tt.v, tt.size, got)
		}
	}
}

func TestAngleDelta(t *testing.T) {
	if d := AngleDelta(350, 10); math.Abs(d-20) > 1e-9 {
		t.Errorf("Expected 20, got %v", d)
	}
	if d := AngleDelta(10, 350); math.Abs(d+20) > 1e-9 {
		t.Errorf("Expected -20, got %v", d)
	}
	if d := AngleDelta(0, 180); d != 180 {
		t.Errorf("Expected 180, got %v", d)
	}
}

func TestClosestOnSegment(t *testing.T) {
	tt, dsq := ClosestOnSegment(0, 0, 100, 0, 50, 10)
	if tt != 0.5 || dsq != 100 {
		t.Errorf("Expected (0.5, 100), got (%v, %v)", tt, dsq)
	}
	tt, _ = ClosestOnSegment(0, 0, 100, 0, -50, 0)
	if tt != 0 {
		t.Errorf("Expected clamp to 0, got %v", tt)
	}
	tt, dsq = ClosestOnSegment(5, 5, 5, 5, 8, 9)
	if tt != 0 || dsq != 25 {
		t.Errorf("Expected degenerate segment (0, 25), got (%v, %v)", tt, dsq)
	}
}

func TestFastRand_Deterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences at step %d", i)
		}
	}

	zero := NewFastRand(0)
	one := NewFastRand(1)
	if zero.Next() != one.Next() {
		t.Errorf("Expected zero seed remapped to 1")
	}
}

func TestFastRand_Bounds(t *testing.T) {
	r := NewFastRand(99)
	for i := 0; i < 1000; i++ {
		if v := r.IntRange(-3, 3); v < -3 || v > 3 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if f := r.Range(2, 5); f < 2 || f >= 5 {
			t.Fatalf("Range out of bounds: %v", f)
		}
		if a := r.Angle(); a < 0 || a >= 360 {
			t.Fatalf("Angle out of bounds: %v", a)
		}
	}
}
