package storage

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/picksplaydoit-ai/superappprofe/internal/config"
)

// Open builds the KV backend selected by cfg.Driver and wraps it in a Store.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*Store, error) {
	var (
		kv  KV
		err error
	)
	switch cfg.Driver {
	case "sqlite":
		kv, err = OpenSQL(ctx, DriverSQLite, cfg.DSN)
	case "postgres":
		kv, err = OpenSQL(ctx, DriverPostgres, cfg.DSN)
	case "redis":
		kv, err = NewRedisKV(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
	case "memory":
		kv = NewMemoryKV()
	default:
		return nil, errors.Errorf("unsupported storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", zap.String("driver", cfg.Driver))
	return NewStore(kv, cfg.KeyPrefix, logger), nil
}
