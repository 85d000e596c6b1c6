package status

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/asteroids/status"

// Exporter publishes registry metrics as OpenTelemetry observable gauges
// Each registry key becomes a "metric" attribute on one of two gauges
type Exporter struct {
	reg          *Registry
	ints         metric.Int64ObservableGauge
	floats       metric.Float64ObservableGauge
	registration metric.Registration
}

// NewExporter registers gauges on meter, nil meter uses the global provider
// The global provider is a no-op until the binary installs one
func NewExporter(reg *Registry, m metric.Meter) (*Exporter, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}
	e := &Exporter{reg: reg}

	var err error
	e.ints, err = m.Int64ObservableGauge(
		"asteroids.metric.int",
		metric.WithDescription("Integer simulation metrics keyed by the metric attribute"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating int gauge: %w", err)
	}

	e.floats, err = m.Float64ObservableGauge(
		"asteroids.metric.float",
		metric.WithDescription("Float simulation metrics keyed by the metric attribute"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating float gauge: %w", err)
	}

	e.registration, err = m.RegisterCallback(e.observe, e.ints, e.floats)
	if err != nil {
		return nil, fmt.Errorf("registering metrics callback: %w", err)
	}
	return e, nil
}

func (e *Exporter) observe(_ context.Context, o metric.Observer) error {
	e.reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		o.ObserveInt64(e.ints, ptr.Load(), metric.WithAttributes(attribute.String("metric", key)))
	})
	e.reg.Floats.Range(func(key string, ptr *AtomicFloat) {
		o.ObserveFloat64(e.floats, ptr.Get(), metric.WithAttributes(attribute.String("metric", key)))
	})
	return nil
}

// Close unregisters the callback
func (e *Exporter) Close() error {
	if e.registration == nil {
		return nil
	}
	if err := e.registration.Unregister(); err != nil {
		return fmt.Errorf("unregistering metrics callback: %w", err)
	}
	return nil
}
