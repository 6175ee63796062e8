package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skill-seeder/internal/metrics"
)

func TestSeederMetrics_ObserveOutcome(t *testing.T) {
	m := metrics.NewSeederMetrics("")

	m.ObserveOutcome("inserted")
	m.ObserveOutcome("inserted")
	m.ObserveOutcome("failed")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Outcomes.WithLabelValues("inserted")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.Outcomes.WithLabelValues("skipped")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Outcomes.WithLabelValues("failed")))
}

func TestSeederMetrics_ObserveRun(t *testing.T) {
	m := metrics.NewSeederMetrics("")
	finished := time.Unix(1_750_000_000, 0)

	m.ObserveRun(finished, 1500*time.Millisecond)

	assert.Equal(t, float64(1_750_000_000), testutil.ToFloat64(m.LastRunTimestamp))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.LastRunDuration))
}

func TestSeederMetrics_WriteTextfile(t *testing.T) {
	m := metrics.NewSeederMetrics("")
	m.ObserveOutcome("skipped")

	path := filepath.Join(t.TempDir(), "skill_seeder.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `skill_seeder_outcomes_total{outcome="skipped"} 1`)
	assert.Contains(t, string(content), "skill_seeder_last_run_timestamp_seconds")
}

func TestSeederMetrics_WriteTextfileBadPath(t *testing.T) {
	m := metrics.NewSeederMetrics("")

	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "skill_seeder.prom"))
	assert.Error(t, err)
}
