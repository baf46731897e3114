package config

import "time"

// AutosaveConfig содержит настройки цикла автосохранения.
type AutosaveConfig struct {
	Interval time.Duration `yaml:"interval" env:"WORKDESK_AUTOSAVE_INTERVAL" env-default:"30s"`
	Path     string        `yaml:"path" env:"WORKDESK_AUTOSAVE_PATH" env-default:"autosave.json"`
}
