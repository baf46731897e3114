package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"workdesk/internal/workspace/domain/entities"
	"workdesk/internal/workspace/ports/storage"
	"workdesk/pkg/logger"
)

// Константы для сообщений журнала и ошибок репозитория инструментов.
const (
	errLoadTools      = "failed to load tools"
	errSaveTool       = "failed to save tool"
	errRemoveTool     = "failed to remove tool"
	errImportTool     = "failed to import tool"
	errToolInvalid    = "tool is invalid"
	logToolsLoaded    = "tools loaded"
	logToolSaved      = "tool saved"
	logToolRemoved    = "tool removed"
	logToolNotPresent = "tool not present"
	logFavoriteToggle = "tool favorite toggled"
)

// ToolRepository управляет инструментами поверх постоянного хранилища,
// поддерживая полную копию коллекции в памяти. Копия меняется только
// после успешной записи в хранилище.
type ToolRepository struct {
	store storage.Store[*entities.Tool]
	clock func() time.Time

	mu    sync.RWMutex
	tools []*entities.Tool
}

// NewToolRepository создает репозиторий инструментов.
func NewToolRepository(store storage.Store[*entities.Tool]) *ToolRepository {
	return &ToolRepository{
		store: store,
		clock: time.Now,
		tools: make([]*entities.Tool, 0),
	}
}

// Load заполняет копию в памяти содержимым хранилища.
func (r *ToolRepository) Load(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", "ToolRepository.Load"))

	tools, err := r.store.ListAll(ctx)
	if err != nil {
		log.Error(ctx, errLoadTools, zap.Error(err))
		return fmt.Errorf("%s: %w", errLoadTools, err)
	}

	r.mu.Lock()
	r.tools = tools
	r.mu.Unlock()

	log.Info(ctx, logToolsLoaded, zap.Int("count", len(tools)))

	return nil
}

// All возвращает копию текущего списка инструментов.
func (r *ToolRepository) All() []*entities.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Tool, len(r.tools))
	copy(out, r.tools)

	return out
}

// Get возвращает инструмент по ID или ErrNotFound.
func (r *ToolRepository) Get(id string) (*entities.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tool := range r.tools {
		if tool.ID == id {
			return tool, nil
		}
	}

	return nil, ErrNotFound
}

// Save проверяет инструмент, записывает его в хранилище и обновляет
// копию в памяти. Момент сохранения фиксируется в UpdatedAt.
func (r *ToolRepository) Save(ctx context.Context, tool *entities.Tool) error {
	log := logger.Log(ctx).With(zap.String("method", "ToolRepository.Save"))

	if err := tool.Validate(); err != nil {
		log.Warn(ctx, errToolInvalid, zap.Error(err), zap.String("toolID", tool.ID))
		return fmt.Errorf("%s: %w: %w", errToolInvalid, ErrValidation, err)
	}
	tool.UpdatedAt = r.clock().UTC()

	if err := r.store.Upsert(ctx, tool); err != nil {
		log.Error(ctx, errSaveTool, zap.Error(err), zap.String("toolID", tool.ID))
		return fmt.Errorf("%s: %w", errSaveTool, err)
	}

	r.replace(tool)
	log.Info(ctx, logToolSaved, zap.String("toolID", tool.ID))

	return nil
}

// Import записывает инструмент как есть, не трогая его временные метки.
// Инструмент, не проходящий проверку, отклоняется.
func (r *ToolRepository) Import(ctx context.Context, tool *entities.Tool) error {
	log := logger.Log(ctx).With(zap.String("method", "ToolRepository.Import"))

	if err := tool.Validate(); err != nil {
		log.Warn(ctx, errToolInvalid, zap.Error(err), zap.String("toolID", tool.ID))
		return fmt.Errorf("%s: %w: %w", errToolInvalid, ErrValidation, err)
	}

	if err := r.store.Upsert(ctx, tool); err != nil {
		log.Error(ctx, errImportTool, zap.Error(err), zap.String("toolID", tool.ID))
		return fmt.Errorf("%s: %w", errImportTool, err)
	}

	r.replace(tool)

	return nil
}

// ToggleFavorite переключает флаг избранного. Отсутствующий ID не
// является ошибкой, переключение просто не происходит.
func (r *ToolRepository) ToggleFavorite(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "ToolRepository.ToggleFavorite"))

	tool, err := r.Get(id)
	if err != nil {
		log.Debug(ctx, logToolNotPresent, zap.String("toolID", id))
		return nil
	}

	toggled := *tool
	toggled.Favorite = !toggled.Favorite
	toggled.UpdatedAt = r.clock().UTC()

	if err := r.store.Upsert(ctx, &toggled); err != nil {
		log.Error(ctx, errSaveTool, zap.Error(err), zap.String("toolID", id))
		return fmt.Errorf("%s: %w", errSaveTool, err)
	}

	r.replace(&toggled)
	log.Info(ctx, logFavoriteToggle,
		zap.String("toolID", id), zap.Bool("favorite", toggled.Favorite))

	return nil
}

// Delete удаляет инструмент из хранилища и копии в памяти.
// Удаление несуществующего ID завершается успешно.
func (r *ToolRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "ToolRepository.Delete"))

	if err := r.store.Delete(ctx, id); err != nil {
		log.Error(ctx, errRemoveTool, zap.Error(err), zap.String("toolID", id))
		return fmt.Errorf("%s: %w", errRemoveTool, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, tool := range r.tools {
		if tool.ID == id {
			r.tools = append(r.tools[:i], r.tools[i+1:]...)
			log.Info(ctx, logToolRemoved, zap.String("toolID", id))
			return nil
		}
	}

	log.Debug(ctx, logToolNotPresent, zap.String("toolID", id))

	return nil
}

func (r *ToolRepository) replace(tool *entities.Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.tools {
		if existing.ID == tool.ID {
			r.tools[i] = tool
			return
		}
	}

	r.tools = append(r.tools, tool)
}
