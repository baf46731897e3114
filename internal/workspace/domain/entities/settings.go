package entities

import "time"

// Значения настроек по умолчанию.
const (
	DefaultTheme            = "light"
	DefaultAutosaveInterval = 30 * time.Second
)

// Settings - пользовательские настройки рабочего пространства.
type Settings struct {
	Theme            string        `json:"theme"`
	AutosaveInterval time.Duration `json:"autosaveInterval"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:            DefaultTheme,
		AutosaveInterval: DefaultAutosaveInterval,
	}
}
