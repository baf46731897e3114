// Package http содержит компоненты HTTP сервера рабочего пространства.
package http

import (
	"github.com/gofiber/fiber/v3"

	sessionapp "workdesk/internal/session/app"
	"workdesk/internal/workspace/adapters/http/auth"
	"workdesk/internal/workspace/adapters/http/middleware"
	"workdesk/internal/workspace/adapters/http/notes"
	"workdesk/internal/workspace/adapters/http/settings"
	"workdesk/internal/workspace/adapters/http/tools"
	"workdesk/internal/workspace/adapters/http/workspace"
	"workdesk/internal/workspace/app"
)

// Deps собирает зависимости маршрутизатора.
type Deps struct {
	Sessions *sessionapp.SessionUseCase
	Notes    *app.NoteRepository
	Tools    *app.ToolRepository
	Exporter *app.Exporter
	Importer *app.Importer
	Settings *app.SettingsService
	Autosave *app.Autosaver
}

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(fiberApp *fiber.App, deps Deps) {
	authHandler := auth.NewHandler(deps.Sessions)
	notesHandler := notes.NewHandler(deps.Notes)
	toolsHandler := tools.NewHandler(deps.Tools)
	workspaceHandler := workspace.NewHandler(deps.Exporter, deps.Importer)
	settingsHandler := settings.NewHandler(deps.Settings, deps.Autosave)

	// Middleware для всех запросов.
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := fiberApp.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", authHandler.Me)

	// Защищенные маршруты.
	protected := apiV1.Group("", middleware.NewSessionMiddleware(deps.Sessions))

	noteRoutes := protected.Group("/notes")
	noteRoutes.Get("/", notesHandler.List)
	noteRoutes.Post("/", notesHandler.Create)
	noteRoutes.Get("/:id", notesHandler.Get)
	noteRoutes.Put("/:id", notesHandler.Update)
	noteRoutes.Delete("/:id", notesHandler.Delete)

	toolRoutes := protected.Group("/tools")
	toolRoutes.Get("/", toolsHandler.List)
	toolRoutes.Post("/", toolsHandler.Create)
	toolRoutes.Put("/:id", toolsHandler.Update)
	toolRoutes.Delete("/:id", toolsHandler.Delete)
	toolRoutes.Post("/:id/favorite", toolsHandler.ToggleFavorite)

	workspaceRoutes := protected.Group("/workspace")
	workspaceRoutes.Get("/export", workspaceHandler.Export)
	workspaceRoutes.Post("/import", workspaceHandler.Import)

	settingsRoutes := protected.Group("/settings")
	settingsRoutes.Get("/", settingsHandler.Get)
	settingsRoutes.Put("/", settingsHandler.Update)

	// Обработчик для несуществующих маршрутов.
	fiberApp.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
