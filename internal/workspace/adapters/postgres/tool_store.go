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

// Константы для сообщений об ошибках хранилища инструментов.
const (
	errListTools  = "failed to list tools"
	errScanTool   = "failed to scan tool"
	errUpsertTool = "failed to upsert tool"
	errDeleteTool = "failed to delete tool"
)

// ToolStore реализует storage.Store для коллекции инструментов.
type ToolStore struct {
	pool PgxPool
}

// NewToolStore создает новое хранилище инструментов.
func NewToolStore(pool PgxPool) storage.Store[*entities.Tool] {
	return &ToolStore{pool: pool}
}

// ListAll возвращает все инструменты коллекции.
func (s *ToolStore) ListAll(ctx context.Context) ([]*entities.Tool, error) {
	log := logger.Log(ctx).With(zap.String("method", "ToolStore.ListAll"))
	log.Debug(ctx, "listing tools")

	rows, err := s.pool.Query(ctx,
		`SELECT id, name, url, description, tags, favorite, created_at, updated_at
         FROM tools
         ORDER BY updated_at DESC`,
	)
	if err != nil {
		log.Error(ctx, errListTools, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errListTools, storage.ErrUnavailable, err)
	}
	defer rows.Close()

	tools := make([]*entities.Tool, 0)
	for rows.Next() {
		var tool entities.Tool
		var tags []byte
		err := rows.Scan(&tool.ID, &tool.Name, &tool.URL, &tool.Description, &tags,
			&tool.Favorite, &tool.CreatedAt, &tool.UpdatedAt)
		if err != nil {
			log.Error(ctx, errScanTool, zap.Error(err))
			return nil, fmt.Errorf("%s: %w: %w", errScanTool, storage.ErrUnavailable, err)
		}
		if err := json.Unmarshal(tags, &tool.Tags); err != nil {
			log.Error(ctx, errDecodeTags, zap.Error(err), zap.String("toolID", tool.ID))
			return nil, fmt.Errorf("%s: %w", errDecodeTags, err)
		}
		tools = append(tools, &tool)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, errIterateRows, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errIterateRows, storage.ErrUnavailable, err)
	}

	return tools, nil
}

// Upsert вставляет инструмент или целиком заменяет существующий с тем же ID.
func (s *ToolStore) Upsert(ctx context.Context, tool *entities.Tool) error {
	log := logger.Log(ctx).With(zap.String("method", "ToolStore.Upsert"))
	log.Debug(ctx, "upserting tool", zap.String("toolID", tool.ID))

	tags, err := json.Marshal(tool.Tags)
	if err != nil {
		log.Error(ctx, errEncodeTags, zap.Error(err))
		return fmt.Errorf("%s: %w", errEncodeTags, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO tools (id, name, url, description, tags, favorite, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         ON CONFLICT (id) DO UPDATE SET
             name = EXCLUDED.name,
             url = EXCLUDED.url,
             description = EXCLUDED.description,
             tags = EXCLUDED.tags,
             favorite = EXCLUDED.favorite,
             created_at = EXCLUDED.created_at,
             updated_at = EXCLUDED.updated_at`,
		tool.ID, tool.Name, tool.URL, tool.Description, tags,
		tool.Favorite, tool.CreatedAt, tool.UpdatedAt,
	)
	if err != nil {
		log.Error(ctx, errUpsertTool, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errUpsertTool, storage.ErrUnavailable, err)
	}

	return nil
}

// Delete удаляет инструмент по ID. Отсутствие записи не является ошибкой.
func (s *ToolStore) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "ToolStore.Delete"))
	log.Debug(ctx, "deleting tool", zap.String("toolID", id))

	_, err := s.pool.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, errDeleteTool, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errDeleteTool, storage.ErrUnavailable, err)
	}

	return nil
}
