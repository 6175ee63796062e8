package reporter_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skill-seeder/internal/reporter"
	"github.com/KirkDiggler/skill-seeder/internal/services/seeder"
)

func TestConsoleReporter_Report(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewConsoleReporter(&out)

	err := r.Report(&seeder.RunResult{Outcomes: []*seeder.Outcome{
		{Name: "Atacar", Status: seeder.OutcomeInserted, ID: "id-1"},
		{Name: "Defender", Status: seeder.OutcomeSkipped},
		{Name: "Tiro Duplo", Status: seeder.OutcomeFailed, Err: errors.New("write timeout")},
		{Status: seeder.OutcomeFailed, Err: errors.New("catalog entry is nil")},
	}})
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "inserted  Atacar (id id-1)\n")
	assert.Contains(t, report, "skipped   Defender (already exists)\n")
	assert.Contains(t, report, "failed    Tiro Duplo: write timeout\n")
	assert.Contains(t, report, "Skill seeding complete: 1 inserted, 1 skipped, 2 failed\n")
	assert.Contains(t, report, "Failed skills: Tiro Duplo, <unnamed>\n")
}

func TestConsoleReporter_NoFailures(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewConsoleReporter(&out)

	err := r.Report(&seeder.RunResult{Outcomes: []*seeder.Outcome{
		{Name: "Atacar", Status: seeder.OutcomeSkipped},
	}})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "0 inserted, 1 skipped, 0 failed")
	assert.NotContains(t, out.String(), "Failed skills")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsoleReporter_Errors(t *testing.T) {
	assert.Error(t, reporter.NewConsoleReporter(&bytes.Buffer{}).Report(nil))

	err := reporter.NewConsoleReporter(failingWriter{}).Report(&seeder.RunResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
