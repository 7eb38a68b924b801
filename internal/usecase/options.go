// Package usecase contains the business logic of the flight route query service.
// It validates requests, resolves carriers and delegates reads to the repositories.
package usecase

import (
	"time"

	"github.com/flight-search/flight-route-query-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

// DefaultSearchTimeout bounds a search when no timeout is configured.
const DefaultSearchTimeout = 5 * time.Second

// Config contains configuration options for the use cases.
type Config struct {
	// SearchTimeout bounds the carrier lookup and leg read of one search
	SearchTimeout time.Duration

	// Logger receives data-access failures; nil disables logging
	Logger *logger.Logger

	// Clock stamps saved preferences and itineraries; nil uses the system clock
	Clock timeutil.Clock
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchTimeout: DefaultSearchTimeout,
		Logger:        logger.Nop(),
		Clock:         timeutil.NewRealClock(),
	}
}

// resolve fills unset fields of config from DefaultConfig.
func resolve(config *Config) Config {
	cfg := DefaultConfig()
	if config == nil {
		return cfg
	}
	if config.SearchTimeout > 0 {
		cfg.SearchTimeout = config.SearchTimeout
	}
	if config.Logger != nil {
		cfg.Logger = config.Logger
	}
	if config.Clock != nil {
		cfg.Clock = config.Clock
	}
	return cfg
}
