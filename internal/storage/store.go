package storage

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store is the best-effort persistence used by the application: reads fall
// back to the caller's default and writes never fail loudly.
type Store struct {
	kv     KV
	prefix string
	logger *zap.Logger
}

func NewStore(kv KV, prefix string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, prefix: prefix, logger: logger}
}

func (s *Store) key(k string) string { return s.prefix + k }

// Get returns the JSON value stored under key, or def when the key is
// missing, the backend fails or the stored value cannot be decoded.
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("error reading from storage", zap.String("key", key), zap.Error(err))
		}
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.Error("error decoding stored value", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// Set stores v as JSON under key. Failures are logged and swallowed.
func (s *Store) Set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("error encoding value", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.key(key), raw); err != nil {
		s.logger.Error("error writing to storage", zap.String("key", key), zap.Error(err))
	}
}

// Remove deletes key; failures are logged and swallowed.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.kv.Delete(ctx, s.key(key)); err != nil {
		s.logger.Error("error removing from storage", zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) Close() error { return s.kv.Close() }
