package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vincentbai/watss-forms/internal/cache"
	"github.com/vincentbai/watss-forms/internal/config"
	"github.com/vincentbai/watss-forms/internal/database"
	"github.com/vincentbai/watss-forms/internal/relay"
	"github.com/vincentbai/watss-forms/internal/storage"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

// openSlots opens the configured storage backend. The caller closes it.
func openSlots(ctx context.Context, cfg *config.Config) (storage.Slots, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return storage.NewMemory(), nil
	case config.StorageRedis:
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		pingContext, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingContext).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return cache.NewRedisSlots(client), nil
	default:
		db, err := database.NewDatabase(cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		return db, nil
	}
}

// requireLocalVariant guards commands that read or write local storage.
func requireLocalVariant(cfg *config.Config, command string) error {
	if cfg.Variant == config.VariantRelay {
		return fmt.Errorf("%s is unavailable in the %q variant: submissions go to the form-relay service", command, cfg.Variant)
	}
	return nil
}

func newStore(slots storage.Slots, cfg *config.Config, logger *zap.Logger) *submissions.Store {
	return submissions.NewStore(submissions.NewRepository(slots, cfg.SlotKey), submissions.Options{
		Policy:     cfg.CorruptPolicy,
		DateLayout: cfg.DateLayout,
		TimeLayout: cfg.TimeLayout,
		Logger:     logger.Named("submissions"),
	})
}

func newRelayClient(cfg *config.Config, logger *zap.Logger) *relay.Client {
	return relay.NewClient(relay.Config{
		Destination: cfg.RelayURL,
		PageOrigin:  cfg.PageOrigin,
		Logger:      logger.Named("relay"),
	})
}
