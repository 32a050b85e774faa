// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/notes/adapters/http/middleware"
	"notekeeper/internal/notes/app"
	"notekeeper/internal/notes/app/dto"
	"notekeeper/internal/notes/domain/entities"
	"notekeeper/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote  = "handling create note request"
	LogHandlerEditNote    = "handling edit note request"
	LogHandlerListNotes   = "handling list notes request"
	LogHandlerSetPinned   = "handling set pinned request"
	LogHandlerListTrashed = "handling list trashed notes request"
	LogHandlerMoveToTrash = "handling move to trash request"
	LogHandlerRestore     = "handling restore note request"
	LogHandlerDelete      = "handling permanent delete request"
	LogHandlerSearch      = "handling search notes request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgNotAuthenticated   = "user is not authenticated"
)

// Сообщения успешных ответов.
const (
	MsgNoteCreated     = "Note created successfully"
	MsgNoteUpdated     = "Note updated successfully"
	MsgNotesRetrieved  = "All notes retrieved successfully"
	MsgTrashRetrieved  = "Trashed notes retrieved successfully"
	MsgNoteTrashed     = "Note moved to trash"
	MsgNoteRestored    = "Note restored successfully"
	MsgNoteDeleted     = "Note permanently deleted"
	MsgSearchRetrieved = "Notes matching the search query retrieved successfully"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase *app.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase *app.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.CreateNote(userCtx, userID, req.Title, req.Content, req.Tags)
	if err != nil {
		log.Error(userCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NoteResponse{
		Success: true,
		Message: MsgNoteCreated,
		Note:    note,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// EditNote обрабатывает запрос на частичную правку заметки.
func (h *Handler) EditNote(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.EditNote"))
	log.Debug(userCtx, LogHandlerEditNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(userCtx, ErrMsgInvalidNoteID)
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.EditNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.EditNote(userCtx, userID, noteID, app.EditNoteParams{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		IsPinned:  req.IsPinned,
		IsDeleted: req.IsDeleted,
	})
	if err != nil {
		log.Error(userCtx, "failed to edit note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteResponse{
		Success: true,
		Message: MsgNoteUpdated,
		Note:    note,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение активных заметок.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	notes, err := h.noteUseCase.ListActiveNotes(userCtx, userID)
	if err != nil {
		log.Error(userCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NotesResponse{
		Success: true,
		Message: MsgNotesRetrieved,
		Notes:   notes,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNotePinned обрабатывает запрос на установку флага закрепления.
func (h *Handler) UpdateNotePinned(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateNotePinned"))
	log.Debug(userCtx, LogHandlerSetPinned)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(userCtx, ErrMsgInvalidNoteID)
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.SetPinnedRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.SetNotePinned(userCtx, userID, noteID, req.IsPinned)
	if err != nil {
		log.Error(userCtx, "failed to update pinned flag", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteResponse{
		Success: true,
		Message: MsgNoteUpdated,
		Note:    note,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListTrashedNotes обрабатывает запрос на получение заметок из корзины.
func (h *Handler) ListTrashedNotes(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListTrashedNotes"))
	log.Debug(userCtx, LogHandlerListTrashed)

	notes, err := h.noteUseCase.ListTrashedNotes(userCtx, userID)
	if err != nil {
		log.Error(userCtx, "failed to list trashed notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NotesResponse{
		Success: true,
		Message: MsgTrashRetrieved,
		Notes:   notes,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// MoveToTrash обрабатывает запрос на перемещение заметки в корзину.
func (h *Handler) MoveToTrash(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.MoveToTrash"))
	log.Debug(userCtx, LogHandlerMoveToTrash)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(userCtx, ErrMsgInvalidNoteID)
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.noteUseCase.MoveToTrash(userCtx, userID, noteID)
	if err != nil {
		log.Error(userCtx, "failed to move note to trash", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteResponse{
		Success: true,
		Message: MsgNoteTrashed,
		Note:    note,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// RestoreNote обрабатывает запрос на восстановление заметки из корзины.
func (h *Handler) RestoreNote(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.RestoreNote"))
	log.Debug(userCtx, LogHandlerRestore)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(userCtx, ErrMsgInvalidNoteID)
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.noteUseCase.RestoreNote(userCtx, userID, noteID)
	if err != nil {
		log.Error(userCtx, "failed to restore note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteResponse{
		Success: true,
		Message: MsgNoteRestored,
		Note:    note,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// PermanentlyDeleteNote обрабатывает запрос на безвозвратное удаление заметки.
func (h *Handler) PermanentlyDeleteNote(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.PermanentlyDeleteNote"))
	log.Debug(userCtx, LogHandlerDelete)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(userCtx, ErrMsgInvalidNoteID)
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.noteUseCase.PermanentlyDeleteNote(userCtx, userID, noteID); err != nil {
		log.Error(userCtx, "failed to permanently delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.MessageResponse{
		Success: true,
		Message: MsgNoteDeleted,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// SearchNotes обрабатывает запрос на поиск заметок.
func (h *Handler) SearchNotes(ctx fiber.Ctx) error {
	userCtx, userID, err := requestIdentity(ctx)
	if err != nil {
		return err
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.SearchNotes"))
	log.Debug(userCtx, LogHandlerSearch)

	query := ctx.Query("query")

	notes, err := h.noteUseCase.SearchNotes(userCtx, userID, query)
	if err != nil {
		log.Error(userCtx, "failed to search notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NotesResponse{
		Success: true,
		Message: MsgSearchRetrieved,
		Notes:   notes,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// requestIdentity извлекает контекст запроса и ID аутентифицированного
// пользователя, проставленные промежуточным ПО.
func requestIdentity(ctx fiber.Ctx) (context.Context, string, error) {
	userCtx, ok := ctx.Locals(middleware.UserContextKey).(context.Context)
	if !ok {
		userCtx = ctx.Context()
	}

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return userCtx, "", respondError(ctx, fiber.StatusUnauthorized, ErrMsgNotAuthenticated)
	}

	return userCtx, userID, nil
}

// handleError преобразует доменные ошибки в HTTP-статусы.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrTitleRequired),
		errors.Is(err, entities.ErrContentRequired),
		errors.Is(err, entities.ErrNoChangesProvided),
		errors.Is(err, entities.ErrQueryRequired):
		return respondError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrNotNoteOwner):
		return respondError(ctx, fiber.StatusUnauthorized, "you can only update your own note")
	case errors.Is(err, entities.ErrNoteNotFound):
		return respondError(ctx, fiber.StatusNotFound, entities.ErrNoteNotFound.Error())
	default:
		return respondError(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}

// respondError отправляет JSON-ответ об ошибке с заданным статусом.
func respondError(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	}); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}
