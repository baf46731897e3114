package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/workspace/adapters/postgres"
	"workdesk/internal/workspace/domain/entities"
	"workdesk/internal/workspace/ports/storage"
	"workdesk/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection failed")

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

func TestNewStoreFactory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	factory := postgres.NewStoreFactory(mock)

	require.NotNil(t, factory)
	assert.NotNil(t, factory.NoteStore())
	assert.NotNil(t, factory.ToolStore())
	assert.NotNil(t, factory.SettingsStore())
}

func TestNoteStore_ListAll(t *testing.T) {
	ctx := testContext(t)

	createdAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 3, 11, 15, 30, 0, 0, time.UTC)

	t.Run("returns all notes", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, title, content, tags, pinned, archived, created_at, updated_at").
			WillReturnRows(pgxmock.NewRows(
				[]string{"id", "title", "content", "tags", "pinned", "archived", "created_at", "updated_at"}).
				AddRow("note-1", "First", "body", []byte(`["go","web"]`), true, false, createdAt, updatedAt).
				AddRow("note-2", "Second", "", []byte(`[]`), false, true, createdAt, updatedAt))

		store := postgres.NewNoteStore(mock)
		notes, err := store.ListAll(ctx)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "note-1", notes[0].ID)
		assert.Equal(t, []string{"go", "web"}, notes[0].Tags)
		assert.True(t, notes[0].Pinned)
		assert.Equal(t, "note-2", notes[1].ID)
		assert.Empty(t, notes[1].Tags)
		assert.True(t, notes[1].Archived)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty collection", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, title, content, tags, pinned, archived, created_at, updated_at").
			WillReturnRows(pgxmock.NewRows(
				[]string{"id", "title", "content", "tags", "pinned", "archived", "created_at", "updated_at"}))

		store := postgres.NewNoteStore(mock)
		notes, err := store.ListAll(ctx)

		require.NoError(t, err)
		require.NotNil(t, notes)
		require.Empty(t, notes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database connection error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, title, content, tags, pinned, archived, created_at, updated_at").
			WillReturnError(errDatabaseConnection)

		store := postgres.NewNoteStore(mock)
		notes, err := store.ListAll(ctx)

		require.Nil(t, notes)
		require.Error(t, err)
		require.ErrorIs(t, err, storage.ErrUnavailable)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteStore_Upsert(t *testing.T) {
	ctx := testContext(t)

	note := &entities.Note{
		ID:        "note-1",
		Title:     "First",
		Content:   "body",
		Tags:      []string{"go"},
		Pinned:    true,
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 11, 15, 30, 0, 0, time.UTC),
	}

	t.Run("successful upsert", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO notes").
			WithArgs(note.ID, note.Title, note.Content, []byte(`["go"]`),
				note.Pinned, note.Archived, note.CreatedAt, note.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		store := postgres.NewNoteStore(mock)
		require.NoError(t, store.Upsert(ctx, note))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database connection error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO notes").
			WithArgs(note.ID, note.Title, note.Content, []byte(`["go"]`),
				note.Pinned, note.Archived, note.CreatedAt, note.UpdatedAt).
			WillReturnError(errDatabaseConnection)

		store := postgres.NewNoteStore(mock)
		err = store.Upsert(ctx, note)

		require.Error(t, err)
		require.ErrorIs(t, err, storage.ErrUnavailable)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteStore_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful delete", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs("note-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		store := postgres.NewNoteStore(mock)
		require.NoError(t, store.Delete(ctx, "note-1"))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id is not an error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs("ghost").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		store := postgres.NewNoteStore(mock)
		require.NoError(t, store.Delete(ctx, "ghost"))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database connection error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs("note-1").
			WillReturnError(errDatabaseConnection)

		store := postgres.NewNoteStore(mock)
		err = store.Delete(ctx, "note-1")

		require.Error(t, err)
		require.ErrorIs(t, err, storage.ErrUnavailable)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestToolStore_ListAll(t *testing.T) {
	ctx := testContext(t)

	createdAt := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)

	t.Run("returns all tools", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, url, description, tags, favorite, created_at, updated_at").
			WillReturnRows(pgxmock.NewRows(
				[]string{"id", "name", "url", "description", "tags", "favorite", "created_at", "updated_at"}).
				AddRow("tool-1", "Grafana", "https://grafana.local", "dashboards",
					[]byte(`["observability"]`), true, createdAt, updatedAt))

		store := postgres.NewToolStore(mock)
		tools, err := store.ListAll(ctx)

		require.NoError(t, err)
		require.Len(t, tools, 1)
		assert.Equal(t, "Grafana", tools[0].Name)
		assert.Equal(t, []string{"observability"}, tools[0].Tags)
		assert.True(t, tools[0].Favorite)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database connection error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, url, description, tags, favorite, created_at, updated_at").
			WillReturnError(errDatabaseConnection)

		store := postgres.NewToolStore(mock)
		tools, err := store.ListAll(ctx)

		require.Nil(t, tools)
		require.ErrorIs(t, err, storage.ErrUnavailable)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestToolStore_Upsert(t *testing.T) {
	ctx := testContext(t)

	tool := &entities.Tool{
		ID:          "tool-1",
		Name:        "Grafana",
		URL:         "https://grafana.local",
		Description: "dashboards",
		Tags:        []string{"observability"},
		Favorite:    true,
		CreatedAt:   time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC),
	}

	t.Run("successful upsert", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO tools").
			WithArgs(tool.ID, tool.Name, tool.URL, tool.Description, []byte(`["observability"]`),
				tool.Favorite, tool.CreatedAt, tool.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		store := postgres.NewToolStore(mock)
		require.NoError(t, store.Upsert(ctx, tool))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database connection error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO tools").
			WithArgs(tool.ID, tool.Name, tool.URL, tool.Description, []byte(`["observability"]`),
				tool.Favorite, tool.CreatedAt, tool.UpdatedAt).
			WillReturnError(errDatabaseConnection)

		store := postgres.NewToolStore(mock)
		err = store.Upsert(ctx, tool)

		require.ErrorIs(t, err, storage.ErrUnavailable)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestToolStore_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful delete", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM tools").
			WithArgs("tool-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		store := postgres.NewToolStore(mock)
		require.NoError(t, store.Delete(ctx, "tool-1"))

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingsStore(t *testing.T) {
	ctx := testContext(t)

	t.Run("get returns stored value", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT value FROM workspace_settings").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`{"theme":"dark"}`)))

		store := postgres.NewSettingsStore(mock)
		value, err := store.Get(ctx)

		require.NoError(t, err)
		assert.JSONEq(t, `{"theme":"dark"}`, string(value))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get returns nil when never written", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT value FROM workspace_settings").
			WillReturnRows(pgxmock.NewRows([]string{"value"}))

		store := postgres.NewSettingsStore(mock)
		value, err := store.Get(ctx)

		require.NoError(t, err)
		require.Nil(t, value)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT value FROM workspace_settings").
			WillReturnError(errDatabaseConnection)

		store := postgres.NewSettingsStore(mock)
		value, err := store.Get(ctx)

		require.Nil(t, value)
		require.ErrorIs(t, err, storage.ErrUnavailable)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("put stores value", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO workspace_settings").
			WithArgs([]byte(`{"theme":"dark"}`)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		store := postgres.NewSettingsStore(mock)
		require.NoError(t, store.Put(ctx, []byte(`{"theme":"dark"}`)))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("put database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO workspace_settings").
			WithArgs([]byte(`{"theme":"dark"}`)).
			WillReturnError(errDatabaseConnection)

		store := postgres.NewSettingsStore(mock)
		err = store.Put(ctx, []byte(`{"theme":"dark"}`))

		require.ErrorIs(t, err, storage.ErrUnavailable)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
