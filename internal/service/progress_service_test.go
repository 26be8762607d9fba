package service_test

import (
	"context"
	"errors"
	"testing"

	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/repository"
	"go_5_vocab_cards/internal/repository/mocks"
	"go_5_vocab_cards/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressService(db *gorm.DB) service.ProgressService {
	return service.NewProgressService(db,
		repository.NewGormCardProgressRepository(),
		repository.NewGormLevelProgressRepository(),
		repository.NewGormWordRepository(),
	)
}

func Test_progressService_RecordAnswerAndStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(db)
	userID := uintPtr(1)

	require.NoError(t, svc.RecordAnswer(ctx, model.AnswerRecord{UserID: userID, WordID: 1, IsCorrect: true, UserAnswer: "Hello"}))
	require.NoError(t, svc.RecordAnswer(ctx, model.AnswerRecord{UserID: userID, WordID: 2, IsCorrect: false, UserAnswer: "Bok"}))
	require.NoError(t, svc.RecordAnswer(ctx, model.AnswerRecord{UserID: userID, WordID: 3, IsCorrect: false, UserAnswer: ""}))
	require.NoError(t, svc.RecordAnswer(ctx, model.AnswerRecord{UserID: nil, WordID: 3, IsCorrect: true, UserAnswer: "x"}))

	stats, err := svc.GetStats(ctx, *userID)
	require.NoError(t, err)
	assert.Equal(t, model.ProgressStats{Correct: 1, Incorrect: 2, Total: 3}, *stats)
}

func Test_progressService_RecordLevelProgress(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(db)

	t.Run("不正なレベルは ErrInvalidInput", func(t *testing.T) {
		_, err := svc.RecordLevelProgress(ctx, model.LevelRecord{UserID: 1, Level: "C1", Score: 100})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("合格後の不合格で completed は戻らない", func(t *testing.T) {
		saved, err := svc.RecordLevelProgress(ctx, model.LevelRecord{UserID: 1, Level: model.LevelA1, Score: 800, Completed: true})
		require.NoError(t, err)
		assert.True(t, saved.Completed)
		require.NotNil(t, saved.CompletedAt)
		completedAt := *saved.CompletedAt

		saved, err = svc.RecordLevelProgress(ctx, model.LevelRecord{UserID: 1, Level: model.LevelA1, Score: 200, Completed: false})
		require.NoError(t, err)
		assert.Equal(t, 200, saved.Score)
		assert.True(t, saved.Completed)
		require.NotNil(t, saved.CompletedAt)
		assert.True(t, completedAt.Equal(*saved.CompletedAt))
	})
}

func Test_progressService_GetLevels(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(db)

	require.NoError(t, repository.NewGormWordRepository().CreateBatch(ctx, db, []*model.Word{
		{Turkish: "Merhaba", English: "Hello", Level: model.LevelA1},
		{Turkish: "Zaman", English: "Time", Level: model.LevelA2},
	}))

	t.Run("匿名は A1 のみ解放", func(t *testing.T) {
		levels, err := svc.GetLevels(ctx, nil)
		require.NoError(t, err)
		require.Len(t, levels, 3)
		assert.True(t, levels[0].Unlocked)
		assert.Nil(t, levels[0].RequiredLevel)
		assert.Equal(t, int64(1), levels[0].WordCount)
		assert.False(t, levels[1].Unlocked)
		require.NotNil(t, levels[1].RequiredLevel)
		assert.Equal(t, model.LevelA1, *levels[1].RequiredLevel)
		assert.False(t, levels[2].Unlocked)
	})

	t.Run("A1 完了で A2 が解放される", func(t *testing.T) {
		_, err := svc.RecordLevelProgress(ctx, model.LevelRecord{UserID: 9, Level: model.LevelA1, Score: 700, Completed: true})
		require.NoError(t, err)

		levels, err := svc.GetLevels(ctx, uintPtr(9))
		require.NoError(t, err)
		assert.True(t, levels[0].Completed)
		assert.Equal(t, 700, levels[0].Score)
		assert.True(t, levels[1].Unlocked)
		assert.False(t, levels[2].Unlocked)

		unlocked, err := svc.IsUnlocked(ctx, 9, model.LevelA2)
		require.NoError(t, err)
		assert.True(t, unlocked)

		unlocked, err = svc.IsUnlocked(ctx, 9, model.LevelB1)
		require.NoError(t, err)
		assert.False(t, unlocked)
	})
}

func Test_progressService_GetStats_RepositoryError(t *testing.T) {
	cardRepo := mocks.NewCardProgressRepository(t)
	cardRepo.On("CountByUser", mock.Anything, mock.Anything, uint(1), true).Return(int64(0), errors.New("boom")).Once()
	svc := service.NewProgressService(nil, cardRepo, mocks.NewLevelProgressRepository(t), mocks.NewWordRepository(t))

	_, err := svc.GetStats(context.Background(), 1)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
}
