// Package store opens the document store that holds the skill collection.
package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/skill-seeder/internal/config"
	dnderr "github.com/KirkDiggler/skill-seeder/internal/errors"
	"github.com/KirkDiggler/skill-seeder/internal/repositories/skills"
)

// ConnectionError means the store could not be reached. Nothing was read or written.
type ConnectionError struct {
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s store: %v", e.Driver, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func newConnectionError(driver string, err error, message string) *ConnectionError {
	return &ConnectionError{
		Driver: driver,
		Err:    dnderr.WrapWithCode(err, dnderr.CodeUnavailable, message),
	}
}

// Handle is an open store connection scoped to one collection.
// Callers defer Close right after a successful Connect.
type Handle struct {
	client redis.UniversalClient
	skills skills.Repository
}

// NewRedisHandle wraps an already connected client
func NewRedisHandle(client redis.UniversalClient, collection string) *Handle {
	return &Handle{
		client: client,
		skills: skills.NewRedis(client, collection),
	}
}

// NewMemoryHandle returns a handle over a process-local collection
func NewMemoryHandle() *Handle {
	return &Handle{skills: skills.NewInMemoryRepository()}
}

// Skills returns the skill collection
func (h *Handle) Skills() skills.Repository {
	return h.skills
}

// Close releases the connection
func (h *Handle) Close() error {
	if h.client == nil {
		return nil
	}
	if err := h.client.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

// Connect opens the store described by cfg
func Connect(ctx context.Context, cfg *config.StoreConfig) (*Handle, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("store config is required")
	}

	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryHandle(), nil
	case config.DriverRedis:
		return connectRedis(ctx, cfg)
	default:
		return nil, dnderr.InvalidArgumentf("unknown store driver %q", cfg.Driver)
	}
}

func connectRedis(ctx context.Context, cfg *config.StoreConfig) (*Handle, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		// the URL may carry a password, keep it out of the message
		return nil, newConnectionError(cfg.Driver, err, "invalid connection URL")
	}
	opts.DialTimeout = cfg.ConnectTimeout

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, newConnectionError(cfg.Driver, err, "ping failed")
	}

	return NewRedisHandle(client, cfg.Collection), nil
}
