package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisStorage struct {
	client redisKV
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedis crea un storage respaldado por redis; prefix separa el namespace de
// cada sesión de navegador. Un ttl <= 0 deja las claves sin expiración.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration, logger *zap.Logger) Storage {
	if client == nil {
		return nil
	}
	return &redisStorage{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *redisStorage) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logger != nil {
			s.logger.Warn("redis storage get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return v, true
}

func (s *redisStorage) Set(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil && s.logger != nil {
		s.logger.Warn("redis storage set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisStorage) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil && s.logger != nil {
		s.logger.Warn("redis storage del failed", zap.String("key", key), zap.Error(err))
	}
}
