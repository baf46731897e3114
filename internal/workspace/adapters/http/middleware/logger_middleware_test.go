package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/workspace/adapters/http/middleware"
	"workdesk/pkg/logger"
)

func TestNewLoggerMiddleware(t *testing.T) {
	t.Run("request id reaches the handler context", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewLoggerMiddleware())

		var requestID string
		app.Get("/ping", func(c fiber.Ctx) error {
			if id, ok := logger.GetRequestID(c.Context()); ok {
				requestID = id
			}
			return c.SendStatus(http.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, requestID)
	})

	t.Run("each request gets its own id", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewLoggerMiddleware())

		seen := make([]string, 0, 2)
		app.Get("/ping", func(c fiber.Ctx) error {
			id, _ := logger.GetRequestID(c.Context())
			seen = append(seen, id)
			return c.SendStatus(http.StatusOK)
		})

		for i := 0; i < 2; i++ {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}

		require.Len(t, seen, 2)
		assert.NotEqual(t, seen[0], seen[1])
	})

	t.Run("handler error is passed through", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewLoggerMiddleware())

		app.Get("/fail", func(c fiber.Ctx) error {
			return fiber.ErrTeapot
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	})
}
