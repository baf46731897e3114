package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"workdesk/internal/workspace/ports/storage"
	"workdesk/pkg/logger"
)

// Константы для сообщений об ошибках хранилища настроек.
const (
	errGetSettings = "failed to get settings"
	errPutSettings = "failed to put settings"
)

// SettingsStore хранит единственную строку настроек рабочего пространства.
type SettingsStore struct {
	pool PgxPool
}

// NewSettingsStore создает новое хранилище настроек.
func NewSettingsStore(pool PgxPool) storage.SettingsStore {
	return &SettingsStore{pool: pool}
}

// Get возвращает сохраненный блок настроек или nil, если он еще не записан.
func (s *SettingsStore) Get(ctx context.Context) ([]byte, error) {
	log := logger.Log(ctx).With(zap.String("method", "SettingsStore.Get"))
	log.Debug(ctx, "getting settings")

	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM workspace_settings WHERE id = 1`,
	).Scan(&value)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		log.Error(ctx, errGetSettings, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errGetSettings, storage.ErrUnavailable, err)
	}

	return value, nil
}

// Put записывает блок настроек, заменяя предыдущий.
func (s *SettingsStore) Put(ctx context.Context, value []byte) error {
	log := logger.Log(ctx).With(zap.String("method", "SettingsStore.Put"))
	log.Debug(ctx, "putting settings")

	_, err := s.pool.Exec(ctx,
		`INSERT INTO workspace_settings (id, value)
         VALUES (1, $1)
         ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value`,
		value,
	)
	if err != nil {
		log.Error(ctx, errPutSettings, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errPutSettings, storage.ErrUnavailable, err)
	}

	return nil
}
