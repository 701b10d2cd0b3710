package session

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fkhayef/eatnsplit/internal/config"
	"github.com/fkhayef/eatnsplit/internal/friend"
	"github.com/fkhayef/eatnsplit/internal/metrics"
)

// NewFromConfig builds a session with its registry seeded as configured
func NewFromConfig(cfg *config.Config, reg prometheus.Registerer, logger *slog.Logger) (*Service, error) {
	ids, err := friend.NewGenerator(cfg.IDStrategy)
	if err != nil {
		return nil, err
	}

	registry := friend.NewRegistry(ids)

	if cfg.SeedEnabled {
		seed := friend.DefaultSeed()
		if cfg.SeedFile != "" {
			seed, err = friend.LoadSeed(cfg.SeedFile)
			if err != nil {
				return nil, err
			}
		}
		if err := registry.Seed(seed...); err != nil {
			return nil, fmt.Errorf("failed to seed friends: %w", err)
		}
		logger.Info("Friends seeded", "count", registry.Len(), "file", cfg.SeedFile)
	}

	return NewService(registry, metrics.New(reg), logger), nil
}
