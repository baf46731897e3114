// Package workspace содержит HTTP обработчики экспорта и импорта снимков.
package workspace

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"workdesk/internal/workspace/adapters/http/dto"
	"workdesk/internal/workspace/app"
	"workdesk/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerExport = "workspace handler: export"
	LogHandlerImport = "workspace handler: import"

	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики снимков рабочего пространства.
type Handler struct {
	exporter *app.Exporter
	importer *app.Importer
}

// NewHandler создает новый обработчик снимков.
func NewHandler(exporter *app.Exporter, importer *app.Importer) *Handler {
	return &Handler{exporter: exporter, importer: importer}
}

// Export отдает снимок всех заметок и инструментов.
func (h *Handler) Export(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerExport)

	return ctx.Status(http.StatusOK).JSON(h.exporter.Export(requestCtx))
}

// Import вливает снимок в рабочее пространство. Частично влившийся
// снимок отвечает статусом 207 и счетчиками по коллекциям.
func (h *Handler) Import(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerImport)

	result, err := h.importer.Import(requestCtx, ctx.Body())
	if err != nil {
		if errors.Is(err, app.ErrPartialImport) {
			return ctx.Status(http.StatusMultiStatus).JSON(result)
		}

		log.Warn(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(result)
}
