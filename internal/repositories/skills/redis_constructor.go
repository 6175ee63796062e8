package skills

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed skill repository for the named collection
func NewRedis(client redis.UniversalClient, collection string) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:     client,
		Collection: collection,
	})
}
