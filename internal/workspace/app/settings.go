package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"workdesk/internal/workspace/domain/entities"
	"workdesk/internal/workspace/ports/storage"
	"workdesk/pkg/logger"
)

// Константы для сообщений журнала и ошибок сервиса настроек.
const (
	errReadSettings    = "failed to read settings"
	errWriteSettings   = "failed to write settings"
	errDecodeSettings  = "failed to decode settings"
	errEncodeSettings  = "failed to encode settings"
	errUnknownTheme    = "unknown theme"
	errBadInterval     = "autosave interval must be positive"
	logSettingsUpdated = "settings updated"
)

// Темы оформления, которые принимает сервис настроек.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// settingsDoc - схема хранения настроек в формате JSON.
type settingsDoc struct {
	Theme                   string `json:"theme"`
	AutosaveIntervalSeconds int    `json:"autosaveIntervalSeconds"`
}

// SettingsService читает и записывает настройки рабочего пространства.
type SettingsService struct {
	store storage.SettingsStore
}

// NewSettingsService создает сервис настроек.
func NewSettingsService(store storage.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get возвращает сохраненные настройки. Пока настройки ни разу
// не записывались, возвращаются значения по умолчанию.
func (s *SettingsService) Get(ctx context.Context) (*entities.Settings, error) {
	log := logger.Log(ctx).With(zap.String("method", "SettingsService.Get"))

	value, err := s.store.Get(ctx)
	if err != nil {
		log.Error(ctx, errReadSettings, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errReadSettings, err)
	}
	if value == nil {
		return entities.DefaultSettings(), nil
	}

	var doc settingsDoc
	if err := json.Unmarshal(value, &doc); err != nil {
		log.Error(ctx, errDecodeSettings, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errDecodeSettings, err)
	}

	return &entities.Settings{
		Theme:            doc.Theme,
		AutosaveInterval: time.Duration(doc.AutosaveIntervalSeconds) * time.Second,
	}, nil
}

// Update проверяет и записывает настройки, заменяя предыдущие.
func (s *SettingsService) Update(ctx context.Context, settings *entities.Settings) error {
	log := logger.Log(ctx).With(zap.String("method", "SettingsService.Update"))

	if settings.Theme != ThemeLight && settings.Theme != ThemeDark {
		return fmt.Errorf("%s %q: %w", errUnknownTheme, settings.Theme, ErrValidation)
	}
	if settings.AutosaveInterval <= 0 {
		return fmt.Errorf("%s: %w", errBadInterval, ErrValidation)
	}

	doc := settingsDoc{
		Theme:                   settings.Theme,
		AutosaveIntervalSeconds: int(settings.AutosaveInterval / time.Second),
	}
	value, err := json.Marshal(doc)
	if err != nil {
		log.Error(ctx, errEncodeSettings, zap.Error(err))
		return fmt.Errorf("%s: %w", errEncodeSettings, err)
	}

	if err := s.store.Put(ctx, value); err != nil {
		log.Error(ctx, errWriteSettings, zap.Error(err))
		return fmt.Errorf("%s: %w", errWriteSettings, err)
	}

	log.Info(ctx, logSettingsUpdated,
		zap.String("theme", settings.Theme),
		zap.Duration("autosaveInterval", settings.AutosaveInterval),
	)

	return nil
}
