package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/skill-seeder/internal/services/seeder"
)

// Reporter presents the outcome of a seeding run to an operator
type Reporter interface {
	Report(result *seeder.RunResult) error
}

// ConsoleReporter writes a line per entry followed by a summary
type ConsoleReporter struct {
	out io.Writer
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

func (r *ConsoleReporter) Report(result *seeder.RunResult) error {
	if result == nil {
		return fmt.Errorf("run result cannot be nil")
	}

	var b strings.Builder
	for _, outcome := range result.Outcomes {
		switch outcome.Status {
		case seeder.OutcomeInserted:
			fmt.Fprintf(&b, "inserted  %s (id %s)\n", outcome.Name, outcome.ID)
		case seeder.OutcomeSkipped:
			fmt.Fprintf(&b, "skipped   %s (already exists)\n", outcome.Name)
		case seeder.OutcomeFailed:
			fmt.Fprintf(&b, "failed    %s: %v\n", displayName(outcome.Name), outcome.Err)
		}
	}

	fmt.Fprintf(&b, "\nSkill seeding complete: %d inserted, %d skipped, %d failed\n",
		result.Inserted(), result.Skipped(), result.Failed())

	if failed := result.FailedNames(); len(failed) > 0 {
		names := make([]string, len(failed))
		for i, name := range failed {
			names[i] = displayName(name)
		}
		fmt.Fprintf(&b, "Failed skills: %s\n", strings.Join(names, ", "))
	}

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// displayName keeps unnamed catalog entries visible in the report
func displayName(name string) string {
	if name == "" {
		return "<unnamed>"
	}
	return name
}
