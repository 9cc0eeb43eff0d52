package repository

import (
	"context"
	"fmt"

	"github.com/set-night/gemigram/internal/config"
)

// Open returns the store selected by STORE_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		return NewMongoStore(ctx, cfg.MongoURI, cfg.DBName)
	case config.DriverPostgres:
		return OpenPostgresStore(ctx, cfg.DatabaseURL)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
