package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"workdesk/internal/workspace/domain/entities"
	"workdesk/pkg/logger"
)

const logSnapshotExported = "snapshot exported"

// Exporter собирает снимок рабочего пространства из репозиториев.
type Exporter struct {
	notes *NoteRepository
	tools *ToolRepository
	clock func() time.Time
}

// NewExporter создает движок экспорта снимков.
func NewExporter(notes *NoteRepository, tools *ToolRepository) *Exporter {
	return &Exporter{notes: notes, tools: tools, clock: time.Now}
}

// Export возвращает снимок всех заметок и инструментов с моментом выгрузки.
func (e *Exporter) Export(ctx context.Context) *entities.Snapshot {
	log := logger.Log(ctx).With(zap.String("method", "Exporter.Export"))

	snapshot := &entities.Snapshot{
		Notes:      e.notes.All(),
		Tools:      e.tools.All(),
		ExportedAt: e.clock().UTC(),
	}

	log.Info(ctx, logSnapshotExported,
		zap.Int("notes", len(snapshot.Notes)),
		zap.Int("tools", len(snapshot.Tools)),
	)

	return snapshot
}
