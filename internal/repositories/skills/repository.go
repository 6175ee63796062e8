package skills

//go:generate mockgen -destination=mock/mock_repository.go -package=mockskills -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/skill-seeder/internal/entities"
)

// DefaultCollection is the collection holding skill records
const DefaultCollection = "skills"

// Repository is the skill collection. Records are identified by name;
// the store-assigned id is informational only.
type Repository interface {
	// FindByName returns the stored skill with the given name, or nil if there is none
	FindByName(ctx context.Context, name string) (*entities.Skill, error)

	// Insert stores a new skill and returns its assigned id.
	// It fails with an already_exists error when the name is taken.
	Insert(ctx context.Context, skill *entities.Skill) (string, error)

	// List returns every stored skill
	List(ctx context.Context) ([]*entities.Skill, error)
}
