package physics

import (
	"math"
	"testing"
)

func TestIntegrateWrap(t *testing.T) {
	k := &Kinetic{X: 798, Y: 1, VelX: 5, VelY: -3}
	IntegrateWrap(k, 1.0, 800, 600)
	if k.X != 3 || k.Y != 598 {
		t.Errorf("Expected (3,598), got (%v,%v)", k.X, k.Y)
	}
}

func TestFriction_ScaleInvariant(t *testing.T) {
	whole := &Kinetic{VelX: 10}
	split := &Kinetic{VelX: 10}
	ApplyFriction(whole, 0.985, 1.0)
	for i := 0; i < 4; i++ {
		ApplyFriction(split, 0.985, 0.25)
	}
	if math.Abs(whole.VelX-split.VelX) > 1e-12 {
		t.Errorf("Expected equal damping, got %v vs %v", whole.VelX, split.VelX)
	}
}

func TestCapSpeed(t *testing.T) {
	k := &Kinetic{VelX: 30, VelY: 40}
	if !CapSpeed(k, 10) {
		t.Fatalf("Expected clamp")
	}
	if math.Abs(Speed(k)-10) > 1e-9 {
		t.Errorf("Expected speed 10, got %v", Speed(k))
	}
	if CapSpeed(k, 20) {
		t.Errorf("Expected no clamp under the cap")
	}
}

func TestSteer(t *testing.T) {
	k := &Kinetic{X: 0, Y: 0}
	if Steer(k, 0, 0, 1) {
		t.Errorf("Expected no-op on coincident target")
	}
	Steer(k, 0, 10, 2)
	if k.VelX != 0 || k.VelY != 2 {
		t.Errorf("Expected (0,2), got (%v,%v)", k.VelX, k.VelY)
	}
}
