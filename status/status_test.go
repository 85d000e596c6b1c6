package status

import (
	"testing"

	"go.opentelemetry.io/otel/metric/noop"
)

// TestMetricMap_GetCachesPointer tests that repeated Get returns the same cell
func TestMetricMap_GetCachesPointer(t *testing.T) {
	reg := NewRegistry()
	a := reg.Ints.Get("scheduler.ticks")
	b := reg.Ints.Get("scheduler.ticks")
	if a != b {
		t.Fatal("Expected cached pointer on second Get")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

// TestRegistry_Snapshot tests flattening of int and float metrics
func TestRegistry_Snapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("particles.active").Store(42)
	reg.Floats.Get("scheduler.alpha").Set(0.5)
	reg.Strings.Get("finisher.phase").Store("impact")

	snap := reg.Snapshot()
	if snap["particles.active"] != 42 {
		t.Errorf("Expected 42, got %v", snap["particles.active"])
	}
	if snap["scheduler.alpha"] != 0.5 {
		t.Errorf("Expected 0.5, got %v", snap["scheduler.alpha"])
	}
	if _, ok := snap["finisher.phase"]; ok {
		t.Error("Expected string metrics excluded from snapshot")
	}
	if reg.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", reg.TotalCount())
	}
}

// TestRange_SortedKeys tests deterministic iteration order
func TestRange_SortedKeys(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("b")
	m.Get("c")
	m.Get("a")

	var keys []string
	m.Range(func(key string, _ *AtomicFloat) { keys = append(keys, key) })
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
}

// TestAtomicString_Truncates tests label length bound
func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store("a-label-much-longer-than-the-allowed-bound")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}

// TestExporter_NoopMeter tests gauge registration against a no-op provider
func TestExporter_NoopMeter(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("scheduler.ticks").Store(7)

	exp, err := NewExporter(reg, noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	if err := exp.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
