package usage

import (
	"fmt"

	"listinghub/internal/config"
	"listinghub/pkg/database"
)

// OpenStore builds the configured backend. The returned closer releases
// any underlying connection and is safe to call once.
func OpenStore(cfg config.StoreConfig) (AdminStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := database.Open(database.Config{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate sqlite store: %w", err)
		}
		return NewSQLiteStore(db), db.Close, nil

	case config.BackendJSON:
		store, err := NewJSONFileStore(cfg.JSONDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open json store: %w", err)
		}
		return store, noop, nil

	case config.BackendRedis:
		store, err := NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		return store, noop, nil

	case config.BackendMemory:
		return NewMemoryStore(), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
