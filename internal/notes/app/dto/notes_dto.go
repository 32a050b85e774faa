// Package dto содержит структуры запросов и ответов HTTP API заметок.
package dto

import (
	"notekeeper/internal/notes/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

// EditNoteRequest содержит данные для частичной правки заметки.
// Отсутствующие поля не изменяются.
type EditNoteRequest struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Tags      *[]string `json:"tags"`
	IsPinned  *bool     `json:"is_pinned"`
	IsDeleted *bool     `json:"is_deleted"`
}

// SetPinnedRequest содержит флаг закрепления заметки.
type SetPinnedRequest struct {
	IsPinned bool `json:"is_pinned"`
}

// NoteResponse содержит одну заметку для ответа.
type NoteResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Note    *entities.Note `json:"note"`
}

// NotesResponse содержит список заметок для ответа.
type NotesResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Notes   []*entities.Note `json:"notes"`
}

// MessageResponse содержит подтверждение без тела заметки.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
