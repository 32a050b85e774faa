package noteusecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/notes/app"
	"notekeeper/internal/notes/domain/entities"
)

func TestMoveToTrash(t *testing.T) {
	testUserID := "user-123"
	testNoteID := "note-abc"

	t.Run("Success - note marked deleted", func(t *testing.T) {
		repo := &mockNoteRepository{}
		repo.On("GetByIDAndOwner", mock.Anything, testNoteID, testUserID).
			Return(ownedNote(testUserID), nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.IsDeleted
		})).Return(nil).Once()

		uc := app.NewNoteUseCase(repo, noopCache())
		note, err := uc.MoveToTrash(context.Background(), testUserID, testNoteID)

		require.NoError(t, err)
		assert.True(t, note.IsDeleted)
		repo.AssertExpectations(t)
	})

	t.Run("Error - foreign note indistinguishable from missing", func(t *testing.T) {
		repo := &mockNoteRepository{}
		repo.On("GetByIDAndOwner", mock.Anything, testNoteID, "user-456").
			Return(nil, nil).Once()

		uc := app.NewNoteUseCase(repo, noopCache())
		note, err := uc.MoveToTrash(context.Background(), "user-456", testNoteID)

		require.ErrorIs(t, err, entities.ErrNoteNotFound)
		assert.Nil(t, note)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Error - repository failure", func(t *testing.T) {
		repo := &mockNoteRepository{}
		repo.On("GetByIDAndOwner", mock.Anything, testNoteID, testUserID).
			Return(nil, errRepository).Once()

		uc := app.NewNoteUseCase(repo, noopCache())
		_, err := uc.MoveToTrash(context.Background(), testUserID, testNoteID)

		require.ErrorIs(t, err, errRepository)
	})
}

func TestRestoreNote(t *testing.T) {
	testUserID := "user-123"
	testNoteID := "note-abc"

	t.Run("Success - trash then restore round-trips the note", func(t *testing.T) {
		note := ownedNote(testUserID)
		originalTitle := note.Title
		originalContent := note.Content
		originalTags := append([]string(nil), note.Tags...)

		repo := &mockNoteRepository{}
		repo.On("GetByIDAndOwner", mock.Anything, testNoteID, testUserID).Return(note, nil).Twice()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Twice()

		uc := app.NewNoteUseCase(repo, noopCache())

		trashed, err := uc.MoveToTrash(context.Background(), testUserID, testNoteID)
		require.NoError(t, err)
		require.True(t, trashed.IsDeleted)

		restored, err := uc.RestoreNote(context.Background(), testUserID, testNoteID)
		require.NoError(t, err)

		assert.False(t, restored.IsDeleted)
		assert.Equal(t, originalTitle, restored.Title)
		assert.Equal(t, originalContent, restored.Content)
		assert.Equal(t, originalTags, restored.Tags)
		repo.AssertExpectations(t)
	})

	t.Run("Error - note not found", func(t *testing.T) {
		repo := &mockNoteRepository{}
		repo.On("GetByIDAndOwner", mock.Anything, testNoteID, testUserID).
			Return(nil, nil).Once()

		uc := app.NewNoteUseCase(repo, noopCache())
		note, err := uc.RestoreNote(context.Background(), testUserID, testNoteID)

		require.ErrorIs(t, err, entities.ErrNoteNotFound)
		assert.Nil(t, note)
	})
}
