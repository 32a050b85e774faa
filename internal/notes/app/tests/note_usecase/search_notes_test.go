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

func TestSearchNotes(t *testing.T) {
	testUserID := "user-123"

	t.Run("Success - matching notes returned", func(t *testing.T) {
		matched := ownedNote(testUserID)

		repo := &mockNoteRepository{}
		repo.On("Search", mock.Anything, testUserID, "milk").
			Return([]*entities.Note{matched}, nil).Once()

		uc := app.NewNoteUseCase(repo, noopCache())
		notes, err := uc.SearchNotes(context.Background(), testUserID, "milk")

		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, matched, notes[0])
		repo.AssertExpectations(t)
	})

	t.Run("Error - empty query rejected before the store is touched", func(t *testing.T) {
		repo := &mockNoteRepository{}

		uc := app.NewNoteUseCase(repo, noopCache())
		notes, err := uc.SearchNotes(context.Background(), testUserID, "")

		require.ErrorIs(t, err, entities.ErrQueryRequired)
		assert.Nil(t, notes)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - no matches yields empty list", func(t *testing.T) {
		repo := &mockNoteRepository{}
		repo.On("Search", mock.Anything, testUserID, "nothing").
			Return([]*entities.Note{}, nil).Once()

		uc := app.NewNoteUseCase(repo, noopCache())
		notes, err := uc.SearchNotes(context.Background(), testUserID, "nothing")

		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Error - repository failure", func(t *testing.T) {
		repo := &mockNoteRepository{}
		repo.On("Search", mock.Anything, testUserID, "milk").Return(nil, errRepository).Once()

		uc := app.NewNoteUseCase(repo, noopCache())
		_, err := uc.SearchNotes(context.Background(), testUserID, "milk")

		require.ErrorIs(t, err, errRepository)
	})
}
