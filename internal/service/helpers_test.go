package service_test

import (
	"testing"

	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリ SQLite を返す
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func makeWords(level model.Level, n int) []model.Word {
	words := make([]model.Word, n)
	for i := range words {
		words[i] = model.Word{
			ID:      uint(i + 1),
			Turkish: "tr" + string(rune('a'+i)),
			English: "en" + string(rune('a'+i)),
			Level:   level,
		}
	}
	return words
}

func uintPtr(v uint) *uint { return &v }
