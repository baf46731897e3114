// Package settings содержит HTTP обработчики настроек рабочего пространства.
package settings

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"workdesk/internal/workspace/adapters/http/dto"
	"workdesk/internal/workspace/app"
	"workdesk/internal/workspace/domain/entities"
	"workdesk/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGet    = "settings handler: get"
	LogHandlerUpdate = "settings handler: update"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// IntervalReset принимает новый интервал автосохранения.
type IntervalReset interface {
	Reset(interval time.Duration)
}

// Handler содержит HTTP обработчики настроек.
type Handler struct {
	service  *app.SettingsService
	autosave IntervalReset
}

// NewHandler создает новый обработчик настроек. autosave может быть nil.
func NewHandler(service *app.SettingsService, autosave IntervalReset) *Handler {
	return &Handler{service: service, autosave: autosave}
}

// Get возвращает текущие настройки.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerGet)

	current, err := h.service.Get(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewSettingsResponse(current))
}

// Update заменяет настройки и перенастраивает интервал автосохранения.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	var req dto.SettingsRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	updated := &entities.Settings{
		Theme:            req.Theme,
		AutosaveInterval: time.Duration(req.AutosaveIntervalSeconds) * time.Second,
	}

	if err := h.service.Update(requestCtx, updated); err != nil {
		log.Warn(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if h.autosave != nil {
		h.autosave.Reset(updated.AutosaveInterval)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewSettingsResponse(updated))
}
