package config

import (
	"fmt"
	"time"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"WORKDESK_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"WORKDESK_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"WORKDESK_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"WORKDESK_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"WORKDESK_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"WORKDESK_REDIS_TIMEOUT" env-default:"3s"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
