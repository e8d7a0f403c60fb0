package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisKV keeps each key as a plain redis string without expiry.
type RedisKV struct {
	rdb *goredis.Client
}

// NewRedisKV connects and pings the server before returning.
func NewRedisKV(ctx context.Context, opts RedisOptions, logger *zap.Logger) (*RedisKV, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	logger.Info("redis connected", zap.String("addr", opts.Addr))
	return &RedisKV{rdb: rdb}, nil
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}
	return v, nil
}

func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return errors.Wrapf(s.rdb.Set(ctx, key, value, 0).Err(), "redis set %s", key)
}

func (s *RedisKV) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.rdb.Del(ctx, key).Err(), "redis del %s", key)
}

func (s *RedisKV) Close() error { return s.rdb.Close() }
