package config_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skill-seeder/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SKILLS_STORE_DRIVER", "SKILLS_STORE_URL", "REDIS_URL", "SKILLS_COLLECTION",
		"SKILLS_CONNECT_TIMEOUT", "SKILLS_CATALOG_FILE", "METRICS_TEXTFILE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SKILLS_STORE_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Store.URL)
	assert.Equal(t, "skills", cfg.Store.Collection)
	assert.Equal(t, 5*time.Second, cfg.Store.ConnectTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Catalog.File)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_FallsBackToRedisURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_URL", "redis://cache:6379/2")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "redis://cache:6379/2", cfg.Store.URL)
}

func TestLoad_RedisRequiresURL(t *testing.T) {
	clearEnv(t)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SKILLS_STORE_URL")
}

func TestLoad_MemoryDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("SKILLS_STORE_DRIVER", "memory")
	t.Setenv("SKILLS_COLLECTION", "skills_test")
	t.Setenv("SKILLS_CONNECT_TIMEOUT", "250ms")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "skills_test", cfg.Store.Collection)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.ConnectTimeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unknown driver", env: map[string]string{"SKILLS_STORE_DRIVER": "mongo"}, want: "unknown SKILLS_STORE_DRIVER"},
		{name: "bad timeout", env: map[string]string{"SKILLS_STORE_DRIVER": "memory", "SKILLS_CONNECT_TIMEOUT": "soon"}, want: "parse env"},
		{name: "bad log format", env: map[string]string{"SKILLS_STORE_DRIVER": "memory", "LOG_FORMAT": "xml"}, want: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	var out bytes.Buffer
	logger := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&out)

	logger.Info("hidden")
	logger.Warn("shown", "skill", "Atacar")

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "Atacar", line["skill"])
}
