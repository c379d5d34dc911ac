// Package metrics turns simulation events into Prometheus metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/napolitain/solver-bar/internal/events"
)

const subsystem = "simulation"

// Collector is an events.Sink that records simulation metrics
type Collector struct {
	constructionsTotal *prometheus.CounterVec
	failuresTotal      *prometheus.CounterVec
	stallsTotal        *prometheus.CounterVec
	schedulerTotal     *prometheus.CounterVec
	adviceTotal        prometheus.Counter
	convertedMetal     prometheus.Counter
	buildDuration      *prometheus.HistogramVec
	simulatedTime      prometheus.Gauge
	metalPerSecond     prometheus.Gauge
	energyPerSecond    prometheus.Gauge
	buildpower         prometheus.Gauge
}

// NewCollector creates a collector whose metric names start with namespace
func NewCollector(namespace string) *Collector {
	return &Collector{
		// Completed constructions by object
		constructionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "constructions_total",
				Help:      "Total number of completed constructions by object",
			},
			[]string{"object", "theoretical"},
		),

		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "construction_failures_total",
				Help:      "Total number of rejected constructions by object",
			},
			[]string{"object"},
		),

		// Resource stalls by object and resource
		stallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stalls_total",
				Help:      "Total number of constructions limited by a resource",
			},
			[]string{"object", "resource"},
		),

		// Scheduler decisions: fallback, wait, skipped, exhausted
		schedulerTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "scheduler_decisions_total",
				Help:      "Total number of scheduler decisions by kind",
			},
			[]string{"decision"},
		),

		adviceTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "advice_total",
				Help:      "Total number of advisor recommendations",
			},
		),

		convertedMetal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "converted_metal_total",
				Help:      "Metal produced by energy converters",
			},
		),

		// Simulated build time, not wall clock
		buildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "build_duration_seconds",
				Help:      "Simulated construction duration distribution",
				Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
			},
			[]string{"object"},
		),

		simulatedTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "time_seconds",
				Help:      "Simulated time of the last completed construction",
			},
		),

		metalPerSecond: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "metal_per_second",
				Help:      "Metal income after the last completed construction",
			},
		),

		energyPerSecond: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "energy_per_second",
				Help:      "Energy income after the last completed construction",
			},
		),

		buildpower: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "buildpower",
				Help:      "Total buildpower after the last completed construction",
			},
		),
	}
}

// Register registers all simulation metrics with the registry
func (c *Collector) Register(registry prometheus.Registerer) error {
	if registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.constructionsTotal,
		c.failuresTotal,
		c.stallsTotal,
		c.schedulerTotal,
		c.adviceTotal,
		c.convertedMetal,
		c.buildDuration,
		c.simulatedTime,
		c.metalPerSecond,
		c.energyPerSecond,
		c.buildpower,
	}

	for _, metric := range metrics {
		if err := registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// Emit records e
func (c *Collector) Emit(e events.Event) {
	switch e.Type {
	case events.EventConstructionCompleted:
		c.RecordConstruction(e)
	case events.EventConstructionFailed:
		c.failuresTotal.WithLabelValues(e.Object).Inc()
	case events.EventStallWarning:
		c.stallsTotal.WithLabelValues(e.Object, e.Resource).Inc()
	case events.EventConversion:
		c.convertedMetal.Add(e.Conversion.Metal)
	case events.EventSchedulerFallback:
		c.schedulerTotal.WithLabelValues("fallback").Inc()
	case events.EventSchedulerWait:
		c.schedulerTotal.WithLabelValues("wait").Inc()
	case events.EventSchedulerSkipped:
		c.schedulerTotal.WithLabelValues("skipped").Inc()
	case events.EventSchedulerExhausted:
		c.schedulerTotal.WithLabelValues("exhausted").Inc()
	case events.EventAdvice:
		c.adviceTotal.Inc()
	}
}

// RecordConstruction records a completed construction
func (c *Collector) RecordConstruction(e events.Event) {
	theoretical := "false"
	if e.Theoretical {
		theoretical = "true"
	}
	c.constructionsTotal.WithLabelValues(e.Object, theoretical).Inc()
	c.buildDuration.WithLabelValues(e.Object).Observe(e.BuildTimes.Total)

	// Branches must not move the gauges of the real run
	if e.Theoretical {
		return
	}
	c.simulatedTime.Set(e.Snapshot.Time)
	c.metalPerSecond.Set(e.Snapshot.MetalPerSecond)
	c.energyPerSecond.Set(e.Snapshot.EnergyPerSecond)
	c.buildpower.Set(e.Snapshot.Buildpower)
}
