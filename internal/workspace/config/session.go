package config

import "time"

// SessionConfig содержит настройки сессий пользователей.
type SessionConfig struct {
	SecretKey  string        `yaml:"secret_key" env:"WORKDESK_SESSION_SECRET" env-default:"change-me"`
	TTL        time.Duration `yaml:"ttl" env:"WORKDESK_SESSION_TTL" env-default:"24h"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"WORKDESK_SESSION_BCRYPT_COST" env-default:"10"`
}
