// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notekeeper/internal/notes/domain/entities"
	"notekeeper/internal/notes/ports/cache"
	"notekeeper/internal/notes/ports/repositories"
	"notekeeper/pkg/logger"
)

// Константы для кэширования активных заметок.
const (
	activeNotesCacheKeyPrefix = "notes:active:"
	activeNotesCacheTTL       = 5 * time.Minute
)

// EditNoteParams перечисляет распознаваемые необязательные поля правки.
// Отсутствующее поле (nil) оставляет атрибут без изменений.
//
// IsPinned и IsDeleted применяются только со значением true: снятие флага
// через общую правку не действует, для этого есть SetNotePinned и
// RestoreNote.
type EditNoteParams struct {
	Title     *string
	Content   *string
	Tags      *[]string
	IsPinned  *bool
	IsDeleted *bool
}

// hasFieldChanges сообщает, содержит ли правка хотя бы одно содержательное поле.
// Правка, состоящая только из флагов закрепления/корзины, отклоняется:
// для флагов существуют отдельные операции.
func (p EditNoteParams) hasFieldChanges() bool {
	return p.Title != nil || p.Content != nil || p.Tags != nil
}

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
	cache    cache.Cache
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository, noteCache cache.Cache) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		cache:    noteCache,
	}
}

// CreateNote создает новую заметку для пользователя.
func (uc *NoteUseCase) CreateNote(ctx context.Context, userID, title, content string, tags []string) (*entities.Note, error) {
	if title == "" {
		return nil, entities.ErrTitleRequired
	}
	if content == "" {
		return nil, entities.ErrContentRequired
	}

	note := entities.NewNote(userID, title, content, tags)
	noteID, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	note.ID = noteID

	uc.invalidateActiveCache(ctx, userID)

	return note, nil
}

// EditNote применяет частичную правку к заметке пользователя.
//
// Заметка ищется без учета владельца; чужая, но существующая заметка
// дает ErrNotNoteOwner, отличимую от ErrNoteNotFound.
func (uc *NoteUseCase) EditNote(ctx context.Context, userID, noteID string, params EditNoteParams) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}

	if !note.OwnedBy(userID) {
		return nil, entities.ErrNotNoteOwner
	}

	if !params.hasFieldChanges() {
		return nil, entities.ErrNoChangesProvided
	}

	if params.Title != nil {
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = *params.Content
	}
	if params.Tags != nil {
		note.Tags = *params.Tags
	}
	if params.IsPinned != nil && *params.IsPinned {
		note.IsPinned = true
	}
	if params.IsDeleted != nil && *params.IsDeleted {
		note.IsDeleted = true
	}
	note.UpdatedAt = time.Now()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	uc.invalidateActiveCache(ctx, userID)

	return note, nil
}

// SetNotePinned безусловно выставляет флаг закрепления заметки.
// В отличие от EditNote здесь действуют оба значения, true и false.
func (uc *NoteUseCase) SetNotePinned(ctx context.Context, userID, noteID string, isPinned bool) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}

	if !note.OwnedBy(userID) {
		return nil, entities.ErrNotNoteOwner
	}

	note.IsPinned = isPinned
	note.UpdatedAt = time.Now()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	uc.invalidateActiveCache(ctx, userID)

	return note, nil
}

// ListActiveNotes возвращает активные заметки пользователя,
// закрепленные перед незакрепленными.
func (uc *NoteUseCase) ListActiveNotes(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx)

	cacheKey := activeNotesCacheKeyPrefix + userID
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var notes []*entities.Note
		if err := json.Unmarshal([]byte(cached), &notes); err == nil {
			return notes, nil
		}
		log.Warn(ctx, "failed to decode cached notes, falling back to repository", zap.String("key", cacheKey))
	}

	notes, err := uc.noteRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active notes: %w", err)
	}

	if encoded, err := json.Marshal(notes); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, string(encoded), activeNotesCacheTTL); err != nil {
			log.Warn(ctx, "failed to cache active notes", zap.Error(err))
		}
	}

	return notes, nil
}

// MoveToTrash помечает заметку пользователя как удаленную.
// Существование и владение проверяются одним запросом: чужая заметка
// неотличима от несуществующей.
func (uc *NoteUseCase) MoveToTrash(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByIDAndOwner(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}

	note.IsDeleted = true
	note.UpdatedAt = time.Now()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	uc.invalidateActiveCache(ctx, userID)

	return note, nil
}

// RestoreNote возвращает заметку пользователя из корзины.
func (uc *NoteUseCase) RestoreNote(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByIDAndOwner(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}

	note.IsDeleted = false
	note.UpdatedAt = time.Now()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	uc.invalidateActiveCache(ctx, userID)

	return note, nil
}

// ListTrashedNotes возвращает заметки пользователя из корзины.
func (uc *NoteUseCase) ListTrashedNotes(ctx context.Context, userID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListTrashed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trashed notes: %w", err)
	}

	return notes, nil
}

// PermanentlyDeleteNote безвозвратно удаляет заметку пользователя.
func (uc *NoteUseCase) PermanentlyDeleteNote(ctx context.Context, userID, noteID string) error {
	note, err := uc.noteRepo.GetByIDAndOwner(ctx, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return entities.ErrNoteNotFound
	}

	if err := uc.noteRepo.Delete(ctx, noteID, userID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	uc.invalidateActiveCache(ctx, userID)

	return nil
}

// SearchNotes ищет заметки пользователя по подстроке в заголовке или
// содержимом без учета регистра. Активные и удаленные заметки ищутся
// одинаково.
func (uc *NoteUseCase) SearchNotes(ctx context.Context, userID, query string) ([]*entities.Note, error) {
	if query == "" {
		return nil, entities.ErrQueryRequired
	}

	notes, err := uc.noteRepo.Search(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	return notes, nil
}

// invalidateActiveCache сбрасывает закэшированный список активных заметок.
// Ошибки кэша не влияют на результат операции.
func (uc *NoteUseCase) invalidateActiveCache(ctx context.Context, userID string) {
	key := activeNotesCacheKeyPrefix + userID
	if err := uc.cache.Delete(ctx, key); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to invalidate notes cache", zap.String("key", key), zap.Error(err))
	}
}
