package seeder

// OutcomeStatus is what happened to one catalog entry
type OutcomeStatus string

const (
	OutcomeInserted OutcomeStatus = "inserted"
	OutcomeSkipped  OutcomeStatus = "skipped"
	OutcomeFailed   OutcomeStatus = "failed"
)

// Outcome is the result of seeding one catalog entry.
// ID is set for inserted entries, Err for failed ones.
type Outcome struct {
	Name   string
	Status OutcomeStatus
	ID     string
	Err    error
}

// RunResult holds the outcomes of a run in catalog order
type RunResult struct {
	Outcomes []*Outcome
}

func (r *RunResult) count(status OutcomeStatus) int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			n++
		}
	}
	return n
}

func (r *RunResult) Inserted() int {
	return r.count(OutcomeInserted)
}

func (r *RunResult) Skipped() int {
	return r.count(OutcomeSkipped)
}

func (r *RunResult) Failed() int {
	return r.count(OutcomeFailed)
}

// FailedNames returns the names of failed entries in catalog order
func (r *RunResult) FailedNames() []string {
	var names []string
	for _, outcome := range r.Outcomes {
		if outcome.Status == OutcomeFailed {
			names = append(names, outcome.Name)
		}
	}
	return names
}

// HasFailures reports whether any entry failed
func (r *RunResult) HasFailures() bool {
	return r.Failed() > 0
}
