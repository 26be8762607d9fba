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
)

func Test_wordService_GetWordsByLevel(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("db down")

	tests := []struct {
		name      string
		level     string
		setupMock func(m *mocks.WordRepository)
		wantErr   error
		wantLen   int
	}{
		{
			name:  "正常系: 小文字のレベルも受け付ける",
			level: "a1",
			setupMock: func(m *mocks.WordRepository) {
				m.On("FindByLevel", mock.Anything, mock.Anything, model.LevelA1).Return(makeWords(model.LevelA1, 3), nil).Once()
			},
			wantLen: 3,
		},
		{
			name:  "正常系: 単語が無いレベルは空",
			level: "B1",
			setupMock: func(m *mocks.WordRepository) {
				m.On("FindByLevel", mock.Anything, mock.Anything, model.LevelB1).Return([]model.Word{}, nil).Once()
			},
			wantLen: 0,
		},
		{
			name:    "異常系: 不正なレベル",
			level:   "C2",
			wantErr: model.ErrInvalidInput,
		},
		{
			name:  "異常系: リポジトリエラー",
			level: "A2",
			setupMock: func(m *mocks.WordRepository) {
				m.On("FindByLevel", mock.Anything, mock.Anything, model.LevelA2).Return(nil, dbErr).Once()
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWordRepo := mocks.NewWordRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(mockWordRepo)
			}
			svc := service.NewWordService(nil, mockWordRepo)

			words, err := svc.GetWordsByLevel(ctx, tt.level)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, words, tt.wantLen)
		})
	}
}

func Test_wordService_ImportWords(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := service.NewWordService(db, repository.NewGormWordRepository())

	rows := []model.ImportWordRow{
		{Turkish: "Merhaba", English: "Hello", Level: model.LevelA1},
		{Turkish: "merhaba", English: "hello", Level: model.LevelA1}, // ファイル内の重複
		{Turkish: "Zaman", English: "Time", Level: model.LevelA2},
	}

	result, err := svc.ImportWords(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 1, result.Skipped)

	// 2回目は全て既存としてスキップ
	result, err = svc.ImportWords(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 3, result.Skipped)

	words, err := svc.GetWordsByLevel(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "Merhaba", words[0].Turkish)
}
