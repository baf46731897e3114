package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"workdesk/pkg/logger"
)

// Константы для промежуточного ПО сессий.
const (
	// SessionCookie - имя cookie с токеном сессии.
	SessionCookie = "workdesk_session"

	// UserIDKey - ключ, под которым ID пользователя кладется в Locals.
	UserIDKey = "userID"

	errNoSession = "no active session"
)

// Authenticator проверяет токен сессии и возвращает ID пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// NewSessionMiddleware создает промежуточное ПО, пропускающее только
// запросы с действительной сессией.
func NewSessionMiddleware(auth Authenticator) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "session"))

		token := ctx.Cookies(SessionCookie)
		if token == "" {
			log.Debug(requestCtx, errNoSession)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": errNoSession,
			})
		}

		userID, err := auth.Authenticate(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, errNoSession, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": errNoSession,
			})
		}

		ctx.Locals(UserIDKey, userID)

		return ctx.Next()
	}
}
