package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"workdesk/internal/workspace/domain/entities"
	"workdesk/internal/workspace/ports/storage"
	"workdesk/pkg/logger"
)

// Константы для сообщений журнала и ошибок репозитория заметок.
const (
	errLoadNotes      = "failed to load notes"
	errSaveNote       = "failed to save note"
	errRemoveNote     = "failed to remove note"
	errImportNote     = "failed to import note"
	logNotesLoaded    = "notes loaded"
	logNoteSaved      = "note saved"
	logNoteRemoved    = "note removed"
	logNoteNotPresent = "note not present"
)

// NoteRepository управляет заметками поверх постоянного хранилища,
// поддерживая полную копию коллекции в памяти. Копия меняется только
// после успешной записи в хранилище.
type NoteRepository struct {
	store storage.Store[*entities.Note]
	clock func() time.Time

	mu    sync.RWMutex
	notes []*entities.Note
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository(store storage.Store[*entities.Note]) *NoteRepository {
	return &NoteRepository{
		store: store,
		clock: time.Now,
		notes: make([]*entities.Note, 0),
	}
}

// Load заполняет копию в памяти содержимым хранилища.
func (r *NoteRepository) Load(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Load"))

	notes, err := r.store.ListAll(ctx)
	if err != nil {
		log.Error(ctx, errLoadNotes, zap.Error(err))
		return fmt.Errorf("%s: %w", errLoadNotes, err)
	}

	r.mu.Lock()
	r.notes = notes
	r.mu.Unlock()

	log.Info(ctx, logNotesLoaded, zap.Int("count", len(notes)))

	return nil
}

// All возвращает копию текущего списка заметок.
func (r *NoteRepository) All() []*entities.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Note, len(r.notes))
	copy(out, r.notes)

	return out
}

// Get возвращает заметку по ID или ErrNotFound.
func (r *NoteRepository) Get(id string) (*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, note := range r.notes {
		if note.ID == id {
			return note, nil
		}
	}

	return nil, ErrNotFound
}

// Save записывает заметку в хранилище и обновляет копию в памяти.
// Пустой заголовок заменяется заголовком по умолчанию, момент
// сохранения фиксируется в UpdatedAt.
func (r *NoteRepository) Save(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Save"))

	if strings.TrimSpace(note.Title) == "" {
		note.Title = entities.DefaultNoteTitle
	}
	note.UpdatedAt = r.clock().UTC()

	if err := r.store.Upsert(ctx, note); err != nil {
		log.Error(ctx, errSaveNote, zap.Error(err), zap.String("noteID", note.ID))
		return fmt.Errorf("%s: %w", errSaveNote, err)
	}

	r.replace(note)
	log.Info(ctx, logNoteSaved, zap.String("noteID", note.ID))

	return nil
}

// Import записывает заметку как есть, не трогая ее временные метки.
func (r *NoteRepository) Import(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Import"))

	if err := r.store.Upsert(ctx, note); err != nil {
		log.Error(ctx, errImportNote, zap.Error(err), zap.String("noteID", note.ID))
		return fmt.Errorf("%s: %w", errImportNote, err)
	}

	r.replace(note)

	return nil
}

// Delete удаляет заметку из хранилища и копии в памяти.
// Удаление несуществующего ID завершается успешно.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))

	if err := r.store.Delete(ctx, id); err != nil {
		log.Error(ctx, errRemoveNote, zap.Error(err), zap.String("noteID", id))
		return fmt.Errorf("%s: %w", errRemoveNote, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, note := range r.notes {
		if note.ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			log.Info(ctx, logNoteRemoved, zap.String("noteID", id))
			return nil
		}
	}

	log.Debug(ctx, logNoteNotPresent, zap.String("noteID", id))

	return nil
}

func (r *NoteRepository) replace(note *entities.Note) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.notes {
		if existing.ID == note.ID {
			r.notes[i] = note
			return
		}
	}

	r.notes = append(r.notes, note)
}
