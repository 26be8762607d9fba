package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリ SQLite を用意する
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.NewDB("file:"+uuid.NewString()+"?mode=memory&cache=shared", logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestNewDB_UnsupportedURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := repository.NewDB("mysql://localhost/vocab", logger)
	assert.Error(t, err)
}

func TestWordRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormWordRepository()

	words := []*model.Word{
		{Turkish: "Merhaba", English: "Hello", Level: model.LevelA1},
		{Turkish: "Kitap", English: "Book", Level: model.LevelA1},
		{Turkish: "Zaman", English: "Time", Level: model.LevelA2},
	}
	require.NoError(t, repo.CreateBatch(ctx, db, words))

	t.Run("レベルごとにID昇順で返す", func(t *testing.T) {
		got, err := repo.FindByLevel(ctx, db, model.LevelA1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Merhaba", got[0].Turkish)
		assert.Equal(t, "Kitap", got[1].Turkish)
		assert.Less(t, got[0].ID, got[1].ID)
	})

	t.Run("単語の無いレベルは空スライス", func(t *testing.T) {
		got, err := repo.FindByLevel(ctx, db, model.LevelB1)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("存在チェックは大文字小文字を区別しない", func(t *testing.T) {
		exists, err := repo.Exists(ctx, db, model.LevelA1, "merhaba", "HELLO")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, db, model.LevelA2, "merhaba", "hello")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("レベルごとの件数", func(t *testing.T) {
		counts, err := repo.CountByLevel(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts[model.LevelA1])
		assert.Equal(t, int64(1), counts[model.LevelA2])
		assert.Equal(t, int64(0), counts[model.LevelB1])
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormUserRepository()

	user := &model.User{Username: "ayse", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, db, user))
	assert.NotZero(t, user.ID)

	t.Run("ユーザー名の重複は ErrConflict", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.User{Username: "ayse", PasswordHash: "other"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("ユーザー名で検索できる", func(t *testing.T) {
		got, err := repo.FindByUsername(ctx, db, "ayse")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("存在しないIDは ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, 9999)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestCardProgressRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormCardProgressRepository()
	userID := uint(7)

	records := []*model.CardProgress{
		{UserID: &userID, WordID: 1, IsCorrect: true, UserAnswer: "Hello"},
		{UserID: &userID, WordID: 2, IsCorrect: false, UserAnswer: "Bock"},
		{UserID: &userID, WordID: 3, IsCorrect: false, UserAnswer: ""}, // スキップ
		{UserID: nil, WordID: 1, IsCorrect: true, UserAnswer: "hello"}, // 匿名
	}
	for _, r := range records {
		require.NoError(t, repo.Create(ctx, db, r))
	}

	correct, err := repo.CountByUser(ctx, db, userID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), correct)

	incorrect, err := repo.CountByUser(ctx, db, userID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), incorrect)

	// スキップは NULL ではなく空文字で保存される
	var skipped model.CardProgress
	require.NoError(t, db.Where("word_id = ? AND user_id = ?", 3, userID).First(&skipped).Error)
	assert.Equal(t, "", skipped.UserAnswer)
	var nulls int64
	require.NoError(t, db.Model(&model.CardProgress{}).Where("user_answer IS NULL").Count(&nulls).Error)
	assert.Zero(t, nulls)
}

func TestLevelProgressRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormLevelProgressRepository()
	userID := uint(3)

	upsert := func(score int, completed bool) *model.LevelProgress {
		t.Helper()
		require.NoError(t, repo.Upsert(ctx, db, &model.LevelProgress{
			UserID:    userID,
			Level:     model.LevelA1,
			Score:     score,
			Completed: completed,
		}))
		got, err := repo.FindByUserAndLevel(ctx, db, userID, model.LevelA1)
		require.NoError(t, err)
		return got
	}

	first := upsert(500, false)
	assert.Equal(t, 500, first.Score)
	assert.False(t, first.Completed)

	passed := upsert(800, true)
	assert.Equal(t, 800, passed.Score)
	assert.True(t, passed.Completed)

	// 後の不合格でも completed は true のまま、score は最新
	failedAgain := upsert(300, false)
	assert.Equal(t, 300, failedAgain.Score)
	assert.True(t, failedAgain.Completed)

	all, err := repo.FindByUser(ctx, db, userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.FindByUserAndLevel(ctx, db, userID, model.LevelA2)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
