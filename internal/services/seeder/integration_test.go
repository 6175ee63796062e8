//go:build integration

package seeder_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skill-seeder/internal/catalog"
	"github.com/KirkDiggler/skill-seeder/internal/config"
	"github.com/KirkDiggler/skill-seeder/internal/repositories/skills"
	"github.com/KirkDiggler/skill-seeder/internal/services/seeder"
	"github.com/KirkDiggler/skill-seeder/internal/store"
	"github.com/KirkDiggler/skill-seeder/internal/testutils"
)

func TestSeed_RedisContainer(t *testing.T) {
	ctx := context.Background()
	url := testutils.StartRedisContainer(t)

	handle, err := store.Connect(ctx, &config.StoreConfig{
		Driver:         config.DriverRedis,
		URL:            url,
		Collection:     "skills",
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	defer func() { assert.NoError(t, handle.Close()) }()

	svc := seeder.NewService(&seeder.ServiceConfig{Repository: handle.Skills()})
	defaults := catalog.Default()

	first, err := svc.Seed(ctx, defaults)
	require.NoError(t, err)
	assert.Equal(t, len(defaults), first.Inserted())
	assert.Zero(t, first.Failed())

	before, err := handle.Skills().List(ctx)
	require.NoError(t, err)
	require.Len(t, before, len(defaults))

	second, err := svc.Seed(ctx, catalog.Default())
	require.NoError(t, err)
	assert.Zero(t, second.Inserted())
	assert.Equal(t, len(defaults), second.Skipped())

	after, err := handle.Skills().List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Name, after[i].Name)
		assert.True(t, before[i].UpdatedAt.Equal(after[i].UpdatedAt), "existing records are not rewritten")
	}
}

func TestRedisRepository_SharedServer(t *testing.T) {
	ctx := context.Background()
	client := testutils.CreateTestRedisClient(t, nil)
	repo := skills.NewRedis(client, "skills_it")

	for _, skill := range testutils.CreateTestCatalog() {
		_, err := repo.Insert(ctx, skill)
		require.NoError(t, err)
	}

	_, err := repo.Insert(ctx, testutils.CreateTestDamageSkill("Atacar", 99))
	require.Error(t, err)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	found, err := repo.FindByName(ctx, "Atacar")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 10.0, found.Effect.Value)
}
