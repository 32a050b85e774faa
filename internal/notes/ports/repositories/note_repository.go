// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"notekeeper/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
//
// GetByID ищет заметку только по идентификатору; GetByIDAndOwner объединяет
// проверку существования и владения в одном запросе. Отсутствие заметки оба
// метода сообщают как (nil, nil).
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (string, error)
	GetByID(ctx context.Context, noteID string) (*entities.Note, error)
	GetByIDAndOwner(ctx context.Context, noteID, userID string) (*entities.Note, error)
	ListActive(ctx context.Context, userID string) ([]*entities.Note, error)
	ListTrashed(ctx context.Context, userID string) ([]*entities.Note, error)
	Search(ctx context.Context, userID, query string) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) error
	Delete(ctx context.Context, noteID, userID string) error
}
