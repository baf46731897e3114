// Package notes содержит HTTP обработчики для работы с заметками.
package notes

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
	LogHandlerList   = "notes handler: list"
	LogHandlerGet    = "notes handler: get"
	LogHandlerCreate = "notes handler: create"
	LogHandlerUpdate = "notes handler: update"
	LogHandlerDelete = "notes handler: delete"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики заметок.
type Handler struct {
	repo *app.NoteRepository
}

// NewHandler создает новый обработчик заметок.
func NewHandler(repo *app.NoteRepository) *Handler {
	return &Handler{repo: repo}
}

// List возвращает заметки с учетом фильтра, поиска и сортировки.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerList)

	query := app.Query{
		Tag:    ctx.Query("tag"),
		Search: ctx.Query("q"),
		Sort:   app.SortKey(ctx.Query("sort")),
	}

	return ctx.Status(http.StatusOK).JSON(app.QueryNotes(h.repo.All(), query))
}

// Get возвращает одну заметку.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerGet)

	note, err := h.repo.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(note)
}

// Create создает новую заметку.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.NoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	note := entities.NewNote()
	applyNoteRequest(note, &req)

	if err := h.repo.Save(requestCtx, note); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusCreated).JSON(note)
}

// Update изменяет существующую заметку.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	var req dto.NoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	note, err := h.repo.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updated := *note
	applyNoteRequest(&updated, &req)

	if err := h.repo.Save(requestCtx, &updated); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(dto.StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(&updated)
}

// Delete удаляет заметку. Повторное удаление того же ID тоже успешно.
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

func applyNoteRequest(note *entities.Note, req *dto.NoteRequest) {
	note.Title = req.Title
	note.Content = req.Content
	note.Tags = dto.ParseTags(req.Tags)
	note.Pinned = req.Pinned
	note.Archived = req.Archived
}
