// Package redis предоставляет подключение к Redis для кеша сессий.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const errConnectRedis = "failed to connect to redis"

// Время ожидания проверочного пинга при подключении.
const pingTimeout = 5 * time.Second

// Client держит соединение с Redis. Операции над ключами выполняются
// адаптерами напрямую через RawClient.
type Client struct {
	rdb *redis.Client
}

// NewClient открывает соединение и проверяет его пингом.
func NewClient(cfg *Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errConnectRedis, err)
	}

	return &Client{rdb: rdb}, nil
}

// RawClient возвращает низкоуровневый клиент для адаптеров.
func (c *Client) RawClient() *redis.Client {
	return c.rdb
}

// Close закрывает соединение с Redis.
func (c *Client) Close() error {
	return c.rdb.Close()
}
