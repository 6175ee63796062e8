package seeder

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/skill-seeder/internal/entities"
	dnderr "github.com/KirkDiggler/skill-seeder/internal/errors"
	"github.com/KirkDiggler/skill-seeder/internal/repositories/skills"
)

// Service seeds a skill collection from a declared catalog
type Service interface {
	// Seed inserts every catalog entry whose name is not stored yet.
	// Existing records are never modified. Entry failures are recorded in
	// the result; an error is returned only when the catalog is unusable.
	Seed(ctx context.Context, catalog []*entities.Skill) (*RunResult, error)
}

// OutcomeObserver receives one call per processed entry
type OutcomeObserver interface {
	ObserveOutcome(outcome string)
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository skills.Repository // Required
	Logger     *slog.Logger      // Optional, defaults to slog.Default()
	Observer   OutcomeObserver   // Optional
}

type service struct {
	repository skills.Repository
	logger     *slog.Logger
	observer   OutcomeObserver
}

// NewService creates a new seeder service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		logger:     cfg.Logger,
		observer:   cfg.Observer,
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

// Seed processes entries one at a time in catalog order. The lookup and the
// insert for a name are never interleaved with another entry.
func (s *service) Seed(ctx context.Context, catalog []*entities.Skill) (*RunResult, error) {
	if len(catalog) == 0 {
		return nil, dnderr.InvalidArgument("catalog cannot be empty")
	}

	result := &RunResult{
		Outcomes: make([]*Outcome, 0, len(catalog)),
	}

	for _, skill := range catalog {
		outcome := s.seedOne(ctx, skill)
		result.Outcomes = append(result.Outcomes, outcome)
		s.record(outcome)
	}

	s.logger.InfoContext(ctx, "skill seeding finished",
		"inserted", result.Inserted(),
		"skipped", result.Skipped(),
		"failed", result.Failed(),
	)

	return result, nil
}

func (s *service) seedOne(ctx context.Context, skill *entities.Skill) *Outcome {
	if skill == nil {
		return &Outcome{Status: OutcomeFailed, Err: dnderr.InvalidArgument("catalog entry is nil")}
	}

	name := skill.Name
	existing, err := s.repository.FindByName(ctx, name)
	if err != nil {
		return failed(name, dnderr.Wrapf(err, "failed to look up skill %s", name))
	}
	// A stored name wins, whatever the declared definition looks like
	if existing != nil {
		return &Outcome{Name: name, Status: OutcomeSkipped, ID: existing.ID}
	}

	if err := skill.Validate(); err != nil {
		return failed(name, err)
	}

	id, err := s.repository.Insert(ctx, skill)
	if err != nil {
		// Lost the name to an earlier entry of the same run
		if dnderr.IsAlreadyExists(err) {
			return &Outcome{Name: name, Status: OutcomeSkipped}
		}
		return failed(name, dnderr.Wrapf(err, "failed to insert skill %s", name))
	}

	return &Outcome{Name: name, Status: OutcomeInserted, ID: id}
}

func (s *service) record(outcome *Outcome) {
	switch outcome.Status {
	case OutcomeInserted:
		s.logger.Info("skill inserted", "skill", outcome.Name, "id", outcome.ID)
	case OutcomeSkipped:
		s.logger.Info("skill already exists, skipping", "skill", outcome.Name)
	case OutcomeFailed:
		s.logger.Error("skill failed", "skill", outcome.Name, "error", outcome.Err, "code", dnderr.GetCode(outcome.Err))
	}

	if s.observer != nil {
		s.observer.ObserveOutcome(string(outcome.Status))
	}
}

func failed(name string, err error) *Outcome {
	return &Outcome{Name: name, Status: OutcomeFailed, Err: err}
}
