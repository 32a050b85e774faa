// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"notekeeper/internal/notes/ports/repositories"
)

// DB описывает операции пула соединений, используемые репозиториями.
// Ему удовлетворяют и pgxpool.Pool, и pgxmock в тестах.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RepositoryFactory создает репозитории для работы с базой данных.
type RepositoryFactory struct {
	pool DB
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool DB) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// NoteRepository возвращает репозиторий для работы с заметками.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.pool)
}
