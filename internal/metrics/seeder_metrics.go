package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every seeder metric
const DefaultNamespace = "skill_seeder"

// SeederMetrics holds the counters of a seeding run. Metrics live on a
// private registry because the seeder is a batch job with no scrape
// endpoint; they are exported through WriteTextfile.
type SeederMetrics struct {
	registry *prometheus.Registry

	// Outcomes counts catalog entries by outcome (inserted, skipped, failed)
	Outcomes *prometheus.CounterVec

	// LastRunTimestamp is the unix time the last run finished
	LastRunTimestamp prometheus.Gauge

	// LastRunDuration is how long the last run took
	LastRunDuration prometheus.Gauge
}

// NewSeederMetrics creates seeder metrics on a fresh registry
func NewSeederMetrics(namespace string) *SeederMetrics {
	return NewSeederMetricsWithRegistry(namespace, prometheus.NewRegistry())
}

// NewSeederMetricsWithRegistry creates seeder metrics on the given registry
func NewSeederMetricsWithRegistry(namespace string, registry *prometheus.Registry) *SeederMetrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(registry)

	return &SeederMetrics{
		registry: registry,
		Outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outcomes_total",
				Help:      "Catalog entries processed, by outcome",
			},
			[]string{"outcome"},
		),
		LastRunTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time the last seeding run finished",
			},
		),
		LastRunDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_duration_seconds",
				Help:      "Duration of the last seeding run",
			},
		),
	}
}

// ObserveOutcome counts one processed catalog entry
func (m *SeederMetrics) ObserveOutcome(outcome string) {
	m.Outcomes.WithLabelValues(outcome).Inc()
}

// ObserveRun records when a run finished and how long it took
func (m *SeederMetrics) ObserveRun(finished time.Time, duration time.Duration) {
	m.LastRunTimestamp.Set(float64(finished.Unix()))
	m.LastRunDuration.Set(duration.Seconds())
}

// Gatherer exposes the registry, mainly for tests
func (m *SeederMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the metrics in the node exporter textfile format
func (m *SeederMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
