// Package tools содержит HTTP обработчики для работы с инструментами.
package tools

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"workdesk/internal/workspace/adapters/http/dto"
	"workdesk/internal/workspace/app"
	"workdesk/internal/workspace/domain/entities"
	"workdesk/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerList     = "tools handler: list"
	LogHandlerCreate   = "tools handler: create"
	LogHandlerUpdate   = "tools handler: update"
	LogHandlerDelete   = "tools handler: delete"
	LogHandlerFavorite = "tools handler: toggle favorite"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики инструментов.
type Handler struct {
	repo *app.ToolRepository
}

// NewHandler создает новый обработчик инструментов.
func NewHandler(repo *app.ToolRepository) *Handler {
	return &Handler{repo: repo}
}

// List возвращает инструменты с учетом фильтра, поиска и сортировки.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerList)

	query := app.Query{
		Tag:    ctx.Query("tag"),
		Search: ctx.Query("q"),
		Sort:   app.SortKey(ctx.Query("sort")),
	}

	return ctx.Status(http.StatusOK).JSON(app.QueryTools(h.repo.All(), query))
}

// Create создает новый инструмент.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.ToolRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	tool := entities.NewTool()
	applyToolRequest(tool, &req)

	if err := h.repo.Save(requestCtx, tool); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusCreated).JSON(tool)
}

// Update изменяет существующий инструмент.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	var req dto.ToolRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	tool, err := h.repo.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updated := *tool
	applyToolRequest(&updated, &req)

	if err := h.repo.Save(requestCtx, &updated); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(&updated)
}

// ToggleFavorite переключает флаг избранного. Отсутствующий ID
// не меняет состояние, но запрос считается успешным.
func (h *Handler) ToggleFavorite(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerFavorite)

	if err := h.repo.ToggleFavorite(requestCtx, ctx.Params("id")); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.SendStatus(http.StatusNoContent)
}

// Delete удаляет инструмент. Повторное удаление того же ID тоже успешно.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	if err := h.repo.Delete(requestCtx, ctx.Params("id")); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.SendStatus(http.StatusNoContent)
}

func applyToolRequest(tool *entities.Tool, req *dto.ToolRequest) {
	tool.Name = req.Name
	tool.URL = req.URL
	tool.Description = req.Description
	tool.Tags = dto.ParseTags(req.Tags)
	tool.Favorite = req.Favorite
}
