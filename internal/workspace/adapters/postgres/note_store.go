package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"workdesk/internal/workspace/domain/entities"
	"workdesk/internal/workspace/ports/storage"
	"workdesk/pkg/logger"
)

// Константы для сообщений об ошибках хранилища заметок.
const (
	errListNotes   = "failed to list notes"
	errScanNote    = "failed to scan note"
	errUpsertNote  = "failed to upsert note"
	errDeleteNote  = "failed to delete note"
	errEncodeTags  = "failed to encode tags"
	errDecodeTags  = "failed to decode tags"
	errIterateRows = "error iterating rows"
)

// NoteStore реализует storage.Store для коллекции заметок.
type NoteStore struct {
	pool PgxPool
}

// NewNoteStore создает новое хранилище заметок.
func NewNoteStore(pool PgxPool) storage.Store[*entities.Note] {
	return &NoteStore{pool: pool}
}

// ListAll возвращает все заметки коллекции.
func (s *NoteStore) ListAll(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.ListAll"))
	log.Debug(ctx, "listing notes")

	rows, err := s.pool.Query(ctx,
		`SELECT id, title, content, tags, pinned, archived, created_at, updated_at
         FROM notes
         ORDER BY updated_at DESC`,
	)
	if err != nil {
		log.Error(ctx, errListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errListNotes, storage.ErrUnavailable, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		var tags []byte
		err := rows.Scan(&note.ID, &note.Title, &note.Content, &tags,
			&note.Pinned, &note.Archived, &note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			log.Error(ctx, errScanNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w: %w", errScanNote, storage.ErrUnavailable, err)
		}
		if err := json.Unmarshal(tags, &note.Tags); err != nil {
			log.Error(ctx, errDecodeTags, zap.Error(err), zap.String("noteID", note.ID))
			return nil, fmt.Errorf("%s: %w", errDecodeTags, err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, errIterateRows, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errIterateRows, storage.ErrUnavailable, err)
	}

	return notes, nil
}

// Upsert вставляет заметку или целиком заменяет существующую с тем же ID.
func (s *NoteStore) Upsert(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.Upsert"))
	log.Debug(ctx, "upserting note", zap.String("noteID", note.ID))

	tags, err := json.Marshal(note.Tags)
	if err != nil {
		log.Error(ctx, errEncodeTags, zap.Error(err))
		return fmt.Errorf("%s: %w", errEncodeTags, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO notes (id, title, content, tags, pinned, archived, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         ON CONFLICT (id) DO UPDATE SET
             title = EXCLUDED.title,
             content = EXCLUDED.content,
             tags = EXCLUDED.tags,
             pinned = EXCLUDED.pinned,
             archived = EXCLUDED.archived,
             created_at = EXCLUDED.created_at,
             updated_at = EXCLUDED.updated_at`,
		note.ID, note.Title, note.Content, tags,
		note.Pinned, note.Archived, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		log.Error(ctx, errUpsertNote, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errUpsertNote, storage.ErrUnavailable, err)
	}

	return nil
}

// Delete удаляет заметку по ID. Отсутствие записи не является ошибкой.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", id))

	_, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, errDeleteNote, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errDeleteNote, storage.ErrUnavailable, err)
	}

	return nil
}
