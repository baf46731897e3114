// Package cache implements the session cache on top of Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	svc "workdesk/internal/session/ports/services"
	"workdesk/pkg/logger"
)

// Константы для сообщений кэша сессий.
const (
	errStoreSession  = "failed to store session"
	errGetSession    = "failed to get session"
	errDeleteSession = "failed to delete session"
	logSessionStored = "session stored"
	logSessionMiss   = "session not found in cache"
)

const sessionKeyPrefix = "session:"

// RedisSessionCache реализует SessionCache поверх Redis.
type RedisSessionCache struct {
	client *redis.Client
}

// NewRedisSessionCache создает кэш сессий.
func NewRedisSessionCache(client *redis.Client) svc.SessionCache {
	return &RedisSessionCache{client: client}
}

// Store связывает токен сессии с пользователем на время ttl.
func (c *RedisSessionCache) Store(ctx context.Context, token, userID string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", "RedisSessionCache.Store"))

	if err := c.client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err(); err != nil {
		log.Error(ctx, errStoreSession, zap.Error(err))
		return fmt.Errorf("%s: %w", errStoreSession, err)
	}

	log.Debug(ctx, logSessionStored, zap.String("userID", userID), zap.Duration("ttl", ttl))

	return nil
}

// Get возвращает ID пользователя по токену. Неизвестный или истекший
// токен дает пустую строку без ошибки.
func (c *RedisSessionCache) Get(ctx context.Context, token string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "RedisSessionCache.Get"))

	userID, err := c.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Debug(ctx, logSessionMiss)
			return "", nil
		}
		log.Error(ctx, errGetSession, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errGetSession, err)
	}

	return userID, nil
}

// Delete снимает сессию с токена.
func (c *RedisSessionCache) Delete(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", "RedisSessionCache.Delete"))

	if err := c.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		log.Error(ctx, errDeleteSession, zap.Error(err))
		return fmt.Errorf("%s: %w", errDeleteSession, err)
	}

	return nil
}
