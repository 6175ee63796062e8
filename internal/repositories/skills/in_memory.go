package skills

import (
	"context"
	"sync"

	"github.com/KirkDiggler/skill-seeder/internal/clock"
	"github.com/KirkDiggler/skill-seeder/internal/entities"
	dnderr "github.com/KirkDiggler/skill-seeder/internal/errors"
	"github.com/KirkDiggler/skill-seeder/internal/uuid"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu            sync.RWMutex
	skills        map[string]*entities.Skill
	idsByName     map[string]string
	order         []string
	uuidGenerator uuid.Generator
	timeProvider  clock.TimeProvider
}

// NewInMemoryRepository creates a new in-memory skill repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		skills:        make(map[string]*entities.Skill),
		idsByName:     make(map[string]string),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  clock.UTC{},
	}
}

func (r *inMemoryRepository) FindByName(_ context.Context, name string) (*entities.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.idsByName[name]
	if !exists {
		return nil, nil
	}

	return r.skills[id].Clone(), nil
}

func (r *inMemoryRepository) Insert(_ context.Context, skill *entities.Skill) (string, error) {
	if skill == nil {
		return "", dnderr.InvalidArgument("skill cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.idsByName[skill.Name]; exists {
		return "", dnderr.AlreadyExistsf("skill with name %s already exists", skill.Name)
	}

	stored := skill.Clone()
	stored.ID = r.uuidGenerator.New()
	stored.CreatedAt = r.timeProvider.Now()
	stored.UpdatedAt = stored.CreatedAt

	r.skills[stored.ID] = stored
	r.idsByName[stored.Name] = stored.ID
	r.order = append(r.order, stored.ID)

	return stored.ID, nil
}

func (r *inMemoryRepository) List(_ context.Context) ([]*entities.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skills := make([]*entities.Skill, 0, len(r.order))
	for _, id := range r.order {
		skills = append(skills, r.skills[id].Clone())
	}

	return skills, nil
}
