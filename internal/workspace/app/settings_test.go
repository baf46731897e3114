package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/workspace/app"
	"workdesk/internal/workspace/domain/entities"
)

// fakeSettingsStore хранит блок настроек в памяти.
type fakeSettingsStore struct {
	value  []byte
	getErr error
	putErr error
}

func (s *fakeSettingsStore) Get(_ context.Context) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.value, nil
}

func (s *fakeSettingsStore) Put(_ context.Context, value []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.value = value
	return nil
}

func TestSettingsService(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults before the first write", func(t *testing.T) {
		svc := app.NewSettingsService(&fakeSettingsStore{})

		settings, err := svc.Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, entities.DefaultTheme, settings.Theme)
		assert.Equal(t, entities.DefaultAutosaveInterval, settings.AutosaveInterval)
	})

	t.Run("update round trip", func(t *testing.T) {
		svc := app.NewSettingsService(&fakeSettingsStore{})

		err := svc.Update(ctx, &entities.Settings{
			Theme:            app.ThemeDark,
			AutosaveInterval: 45 * time.Second,
		})
		require.NoError(t, err)

		settings, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, app.ThemeDark, settings.Theme)
		assert.Equal(t, 45*time.Second, settings.AutosaveInterval)
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		svc := app.NewSettingsService(&fakeSettingsStore{})

		err := svc.Update(ctx, &entities.Settings{
			Theme:            "sepia",
			AutosaveInterval: time.Minute,
		})

		require.ErrorIs(t, err, app.ErrValidation)
	})

	t.Run("non-positive interval is rejected", func(t *testing.T) {
		svc := app.NewSettingsService(&fakeSettingsStore{})

		err := svc.Update(ctx, &entities.Settings{
			Theme:            app.ThemeLight,
			AutosaveInterval: 0,
		})

		require.ErrorIs(t, err, app.ErrValidation)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		svc := app.NewSettingsService(&fakeSettingsStore{getErr: errStoreDown})

		settings, err := svc.Get(ctx)

		require.Nil(t, settings)
		require.ErrorIs(t, err, errStoreDown)
	})
}
