// Package auth содержит HTTP обработчики для работы с сессиями.
package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	sessionapp "workdesk/internal/session/app"
	"workdesk/internal/session/domain/entities"
	"workdesk/internal/workspace/adapters/http/dto"
	"workdesk/internal/workspace/adapters/http/middleware"
	"workdesk/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"
	LogHandlerLogout   = "auth handler: logout"
	LogHandlerMe       = "auth handler: current user"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// SessionService определяет сценарии сессий, нужные обработчикам.
type SessionService interface {
	Register(ctx context.Context, email, username, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*entities.User, error)
}

// Handler содержит HTTP обработчики сессий.
type Handler struct {
	sessions SessionService
}

// NewHandler создает новый обработчик сессий.
func NewHandler(sessions SessionService) *Handler {
	return &Handler{sessions: sessions}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "email, username and password are required",
		})
	}

	user, err := h.sessions.Register(requestCtx, req.Email, req.Username, req.Password)
	if err != nil {
		log.Warn(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(registerStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusCreated).JSON(dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
}

// Login открывает сессию и выставляет cookie с токеном.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.Email == "" || req.Password == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	token, expiresAt, err := h.sessions.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Warn(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return ctx.SendStatus(http.StatusNoContent)
}

// Logout закрывает сессию и сбрасывает cookie.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	token := ctx.Cookies(middleware.SessionCookie)
	if token != "" {
		if err := h.sessions.Logout(requestCtx, token); err != nil {
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return ctx.SendStatus(http.StatusNoContent)
}

// Me возвращает пользователя активной сессии.
func (h *Handler) Me(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerMe)

	user, err := h.sessions.CurrentUser(requestCtx, ctx.Cookies(middleware.SessionCookie))
	if err != nil {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
}

func registerStatus(err error) int {
	switch {
	case errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, entities.ErrEmptyUsername),
		errors.Is(err, entities.ErrPasswordTooShort):
		return http.StatusBadRequest
	case errors.Is(err, sessionapp.ErrEmailAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
