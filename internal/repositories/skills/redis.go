package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/skill-seeder/internal/clock"
	"github.com/KirkDiggler/skill-seeder/internal/entities"
	dnderr "github.com/KirkDiggler/skill-seeder/internal/errors"
	"github.com/KirkDiggler/skill-seeder/internal/uuid"
)

// maxConcurrentLoads bounds the document reads issued by List
const maxConcurrentLoads = 8

// releaseNameScript deletes a name index entry only while it still holds the given id
var releaseNameScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Data is the stored document. Field names are read by the combat service
// and must not change.
type Data struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	RequiredLevel int                `json:"requiredLevel"`
	Class         []entities.Class   `json:"class"`
	Effect        *entities.Effect   `json:"effect"`
	Cooldown      int                `json:"cooldown"`
	Type          entities.SkillType `json:"type"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	Collection    string             // Optional, defaults to DefaultCollection
	UUIDGenerator uuid.Generator     // Optional, defaults to random UUIDs
	TimeProvider  clock.TimeProvider // Optional, defaults to UTC wall clock
}

// redisRepository stores each skill as a JSON document under <collection>:<id>.
// <collection>:name:<name> maps a name to its id and <collection>:all holds
// every id.
type redisRepository struct {
	client        redis.UniversalClient
	collection    string
	uuidGenerator uuid.Generator
	timeProvider  clock.TimeProvider
}

// NewRedisRepository creates a new Redis-backed skill repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	repo := &redisRepository{
		client:        cfg.Client,
		collection:    cfg.Collection,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}

	if repo.collection == "" {
		repo.collection = DefaultCollection
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = clock.UTC{}
	}

	return repo
}

func (r *redisRepository) skillKey(id string) string {
	return fmt.Sprintf("%s:%s", r.collection, id)
}

func (r *redisRepository) nameKey(name string) string {
	return fmt.Sprintf("%s:name:%s", r.collection, name)
}

func (r *redisRepository) allKey() string {
	return r.collection + ":all"
}

func (r *redisRepository) FindByName(ctx context.Context, name string) (*entities.Skill, error) {
	nameKey := r.nameKey(name)
	id, err := r.client.Get(ctx, nameKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, fmt.Sprintf("failed to look up skill %s", name))
	}

	skill, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		// Dangling index left by an interrupted insert. Drop it so the name
		// can be inserted again.
		if err := releaseNameScript.Run(ctx, r.client, []string{nameKey}, id).Err(); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal,
				fmt.Sprintf("skill %s is indexed as %s but the record is missing and the index could not be released", name, id))
		}
		return nil, nil
	}

	return skill, nil
}

// Insert writes the document before claiming the name with SETNX, so the
// name index never points at a document that was not written.
func (r *redisRepository) Insert(ctx context.Context, skill *entities.Skill) (string, error) {
	if skill == nil {
		return "", dnderr.InvalidArgument("skill cannot be nil")
	}
	if skill.Name == "" {
		return "", dnderr.InvalidArgument("skill name cannot be empty")
	}

	now := r.timeProvider.Now()
	data := toSkillData(skill, r.uuidGenerator.New(), now)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal skill data")
	}

	skillKey := r.skillKey(data.ID)
	if err := r.client.Set(ctx, skillKey, string(jsonData), 0).Err(); err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeInternal, fmt.Sprintf("failed to store skill %s", skill.Name))
	}

	nameKey := r.nameKey(skill.Name)
	claimed, err := r.client.SetNX(ctx, nameKey, data.ID, 0).Result()
	if err != nil {
		return "", dnderr.WrapWithCode(errors.Join(err, r.client.Del(ctx, skillKey).Err()), dnderr.CodeInternal,
			fmt.Sprintf("failed to claim skill name %s", skill.Name))
	}
	if !claimed {
		if delErr := r.client.Del(ctx, skillKey).Err(); delErr != nil {
			return "", dnderr.WrapWithCode(delErr, dnderr.CodeAlreadyExists,
				fmt.Sprintf("skill with name %s already exists and document %s could not be removed", skill.Name, data.ID))
		}
		return "", dnderr.AlreadyExistsf("skill with name %s already exists", skill.Name)
	}

	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, r.allKey(), data.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", dnderr.WrapWithCode(errors.Join(err, r.rollback(ctx, nameKey, skillKey)), dnderr.CodeInternal,
			fmt.Sprintf("failed to index skill %s", skill.Name))
	}

	return data.ID, nil
}

// rollback removes the name claim and then the document so the next run
// can insert the name again
func (r *redisRepository) rollback(ctx context.Context, nameKey, skillKey string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, nameKey)
	pipe.Del(ctx, skillKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

func (r *redisRepository) List(ctx context.Context) ([]*entities.Skill, error) {
	ids, err := r.client.SMembers(ctx, r.allKey()).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to list skill ids")
	}

	loaded := make([]*entities.Skill, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, id := range ids {
		g.Go(func() error {
			skill, err := r.get(gctx, id)
			if err != nil {
				return err
			}
			loaded[i] = skill
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	skills := make([]*entities.Skill, 0, len(loaded))
	for _, skill := range loaded {
		if skill != nil {
			skills = append(skills, skill)
		}
	}

	sort.SliceStable(skills, func(i, j int) bool {
		if !skills[i].CreatedAt.Equal(skills[j].CreatedAt) {
			return skills[i].CreatedAt.Before(skills[j].CreatedAt)
		}
		return skills[i].Name < skills[j].Name
	})

	return skills, nil
}

// get returns nil, nil when the document does not exist
func (r *redisRepository) get(ctx context.Context, id string) (*entities.Skill, error) {
	jsonData, err := r.client.Get(ctx, r.skillKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, fmt.Sprintf("failed to get skill %s", id))
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, fmt.Sprintf("failed to unmarshal skill %s", id))
	}

	return toSkill(&data), nil
}

func toSkillData(skill *entities.Skill, id string, now time.Time) *Data {
	clone := skill.Clone()

	return &Data{
		ID:            id,
		Name:          clone.Name,
		Description:   clone.Description,
		RequiredLevel: clone.RequiredLevel,
		Class:         clone.Classes,
		Effect:        clone.Effect,
		Cooldown:      clone.Cooldown,
		Type:          clone.Type,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func toSkill(data *Data) *entities.Skill {
	if data == nil {
		return nil
	}

	return &entities.Skill{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		RequiredLevel: data.RequiredLevel,
		Classes:       data.Class,
		Effect:        data.Effect,
		Cooldown:      data.Cooldown,
		Type:          data.Type,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
