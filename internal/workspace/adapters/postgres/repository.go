// Package postgres provides PostgreSQL implementations of the workspace stores.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"workdesk/internal/workspace/domain/entities"
	"workdesk/internal/workspace/ports/storage"
)

// PgxPool - подмножество операций pgxpool.Pool, используемое хранилищами.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StoreFactory создает хранилища для работы с базой данных.
type StoreFactory struct {
	pool PgxPool
}

// NewStoreFactory создает новую фабрику хранилищ.
func NewStoreFactory(pool PgxPool) *StoreFactory {
	return &StoreFactory{pool: pool}
}

// NoteStore возвращает хранилище заметок.
func (f *StoreFactory) NoteStore() storage.Store[*entities.Note] {
	return NewNoteStore(f.pool)
}

// ToolStore возвращает хранилище инструментов.
func (f *StoreFactory) ToolStore() storage.Store[*entities.Tool] {
	return NewToolStore(f.pool)
}

// SettingsStore возвращает хранилище настроек.
func (f *StoreFactory) SettingsStore() storage.SettingsStore {
	return NewSettingsStore(f.pool)
}
