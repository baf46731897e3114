package app

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"workdesk/internal/workspace/domain/entities"
	"workdesk/pkg/logger"
)

// Константы для сообщений журнала и ошибок слияния снимков.
const (
	errDecodeSnapshot  = "failed to decode snapshot"
	errSnapshotShape   = "snapshot must carry notes and tools collections"
	errRecordWithoutID = "record has no id"
	logImportFinished  = "snapshot import finished"
	logNoteRejected    = "note rejected during import"
	logToolRejected    = "tool rejected during import"
)

// ImportResult отражает итог слияния снимка по каждой коллекции.
type ImportResult struct {
	NotesMerged int `json:"notesMerged"`
	NotesFailed int `json:"notesFailed"`
	ToolsMerged int `json:"toolsMerged"`
	ToolsFailed int `json:"toolsFailed"`
}

// Failed возвращает общее число отклоненных записей.
func (r *ImportResult) Failed() int {
	return r.NotesFailed + r.ToolsFailed
}

// snapshotDoc повторяет схему снимка указателями, чтобы отличать
// отсутствующую коллекцию от пустой.
type snapshotDoc struct {
	Notes *[]entities.Note `json:"notes"`
	Tools *[]entities.Tool `json:"tools"`
}

// Importer вливает снимок рабочего пространства в репозитории.
// Запись с существующим ID целиком заменяет хранимую, новая
// добавляется без изменений. Повторный импорт того же снимка
// не меняет состояние.
type Importer struct {
	notes *NoteRepository
	tools *ToolRepository
}

// NewImporter создает движок слияния снимков.
func NewImporter(notes *NoteRepository, tools *ToolRepository) *Importer {
	return &Importer{notes: notes, tools: tools}
}

// Import разбирает снимок и вливает его записи. Сбой отдельной записи
// учитывается в результате, обработка остальных продолжается. При
// наличии отклоненных записей возвращается ErrPartialImport вместе
// с заполненным результатом.
func (i *Importer) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	log := logger.Log(ctx).With(zap.String("method", "Importer.Import"))

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn(ctx, errDecodeSnapshot, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errDecodeSnapshot, ErrInvalidFormat)
	}
	if doc.Notes == nil || doc.Tools == nil {
		log.Warn(ctx, errSnapshotShape)
		return nil, fmt.Errorf("%s: %w", errSnapshotShape, ErrInvalidFormat)
	}

	result := &ImportResult{}

	for idx := range *doc.Notes {
		note := (*doc.Notes)[idx]
		if err := i.importNote(ctx, &note); err != nil {
			log.Warn(ctx, logNoteRejected, zap.Error(err), zap.String("noteID", note.ID))
			result.NotesFailed++
			continue
		}
		result.NotesMerged++
	}

	for idx := range *doc.Tools {
		tool := (*doc.Tools)[idx]
		if err := i.importTool(ctx, &tool); err != nil {
			log.Warn(ctx, logToolRejected, zap.Error(err), zap.String("toolID", tool.ID))
			result.ToolsFailed++
			continue
		}
		result.ToolsMerged++
	}

	log.Info(ctx, logImportFinished,
		zap.Int("notesMerged", result.NotesMerged),
		zap.Int("notesFailed", result.NotesFailed),
		zap.Int("toolsMerged", result.ToolsMerged),
		zap.Int("toolsFailed", result.ToolsFailed),
	)

	if result.Failed() > 0 {
		return result, ErrPartialImport
	}

	return result, nil
}

func (i *Importer) importNote(ctx context.Context, note *entities.Note) error {
	if note.ID == "" {
		return fmt.Errorf("%s: %w", errRecordWithoutID, ErrValidation)
	}

	return i.notes.Import(ctx, note)
}

func (i *Importer) importTool(ctx context.Context, tool *entities.Tool) error {
	if tool.ID == "" {
		return fmt.Errorf("%s: %w", errRecordWithoutID, ErrValidation)
	}

	return i.tools.Import(ctx, tool)
}
