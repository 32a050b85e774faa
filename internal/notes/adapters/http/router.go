// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notekeeper/internal/notes/adapters/http/middleware"
	"notekeeper/internal/notes/adapters/http/notes"
	noteapp "notekeeper/internal/notes/app"
	"notekeeper/internal/notes/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, noteUseCase *noteapp.NoteUseCase, tokenService services.TokenService) {
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Маршруты заметок (требуют авторизации).
	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/search", notesHandler.SearchNotes)
	notesRoutes.Get("/trash", notesHandler.ListTrashedNotes)
	notesRoutes.Patch("/:note_id", notesHandler.EditNote)
	notesRoutes.Put("/:note_id/pin", notesHandler.UpdateNotePinned)
	notesRoutes.Put("/:note_id/trash", notesHandler.MoveToTrash)
	notesRoutes.Put("/:note_id/restore", notesHandler.RestoreNote)
	notesRoutes.Delete("/:note_id", notesHandler.PermanentlyDeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Route not found",
		})
	})
}
