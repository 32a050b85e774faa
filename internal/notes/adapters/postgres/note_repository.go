package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notekeeper/internal/notes/domain/entities"
	"notekeeper/internal/notes/ports/repositories"
	"notekeeper/pkg/logger"
)

// noteColumns - список колонок заметки в порядке сканирования.
const noteColumns = "id, user_id, title, content, tags, is_pinned, is_deleted, created_at, updated_at"

// ErrNoteNotFoundOrNotOwned is returned when a note doesn't exist or belongs to another user.
var ErrNoteNotFoundOrNotOwned = errors.New("note not found or not owned by user")

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool DB
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool DB) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	var noteID string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content, tags) VALUES ($1, $2, $3, $4) RETURNING id`,
		note.UserID, note.Title, note.Content, note.Tags,
	).Scan(&noteID)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", noteID))
	return noteID, nil
}

// GetByID получает заметку только по ID, без учета владельца.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID))

	row := r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1`,
		noteID,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// GetByIDAndOwner получает заметку по ID и ID владельца одним запросом.
func (r *NoteRepository) GetByIDAndOwner(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByIDAndOwner"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID), zap.String("userID", userID))

	row := r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// ListActive получает активные заметки пользователя, закрепленные первыми.
func (r *NoteRepository) ListActive(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListActive"))
	log.Debug(ctx, "listing active notes", zap.String("userID", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes
         WHERE user_id = $1 AND is_deleted = false
         ORDER BY is_pinned DESC`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list active notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list active notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(ctx, rows)
}

// ListTrashed получает заметки пользователя из корзины.
func (r *NoteRepository) ListTrashed(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListTrashed"))
	log.Debug(ctx, "listing trashed notes", zap.String("userID", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes
         WHERE user_id = $1 AND is_deleted = true`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list trashed notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list trashed notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(ctx, rows)
}

// Search ищет заметки пользователя по подстроке в заголовке или содержимом.
// Запрос пользователя трактуется буквально: метасимволы шаблона экранируются.
func (r *NoteRepository) Search(ctx context.Context, userID, query string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Search"))
	log.Debug(ctx, "searching notes", zap.String("userID", userID))

	pattern := SearchPattern(query)

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes
         WHERE user_id = $1 AND (title ILIKE $2 OR content ILIKE $2)`,
		userID, pattern,
	)
	if err != nil {
		log.Error(ctx, "failed to search notes", zap.Error(err))
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(ctx, rows)
}

// Update обновляет существующую заметку целиком.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes
         SET title = $1, content = $2, tags = $3, is_pinned = $4, is_deleted = $5, updated_at = $6
         WHERE id = $7 AND user_id = $8`,
		note.Title, note.Content, note.Tags, note.IsPinned, note.IsDeleted, note.UpdatedAt,
		note.ID, note.UserID,
	)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err))
		return fmt.Errorf("failed to update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return ErrNoteNotFoundOrNotOwned
	}

	return nil
}

// Delete безвозвратно удаляет заметку пользователя.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return ErrNoteNotFoundOrNotOwned
	}

	return nil
}

// scanNote сканирует одну строку заметки.
func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.Tags,
		&note.IsPinned, &note.IsDeleted, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// collectNotes сканирует все строки результата в список заметок.
func collectNotes(ctx context.Context, rows pgx.Rows) ([]*entities.Note, error) {
	log := logger.Log(ctx)

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}
