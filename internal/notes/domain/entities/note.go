// Package entities defines the domain entities for the notes service.
package entities

import (
	"errors"
	"time"
)

// Ошибки доменного уровня для заметок.
var (
	ErrTitleRequired     = errors.New("title is required")
	ErrContentRequired   = errors.New("content is required")
	ErrNoChangesProvided = errors.New("no changes provided")
	ErrQueryRequired     = errors.New("search query is required")
	ErrNoteNotFound      = errors.New("note not found")
	ErrNotNoteOwner      = errors.New("note belongs to another user")
)

// Note представляет собой заметку пользователя.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"is_pinned"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a new note owned by userID. A fresh note is unpinned
// and not trashed; nil tags become an empty list.
func NewNote(userID, title, content string, tags []string) *Note {
	if tags == nil {
		tags = []string{}
	}
	now := time.Now()
	return &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		IsPinned:  false,
		IsDeleted: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedBy сообщает, принадлежит ли заметка указанному пользователю.
func (n *Note) OwnedBy(userID string) bool {
	return n.UserID == userID
}
