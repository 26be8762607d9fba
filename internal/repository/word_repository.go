//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"

	"gorm.io/gorm"
)

type WordRepository interface {
	FindByLevel(ctx context.Context, db *gorm.DB, level model.Level) ([]model.Word, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, words []*model.Word) error
	Exists(ctx context.Context, db *gorm.DB, level model.Level, turkish, english string) (bool, error)
	CountByLevel(ctx context.Context, db *gorm.DB) (map[model.Level]int64, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

// FindByLevel は ID 昇順で返します。該当なしは空スライス (エラーではない)。
func (r *gormWordRepository) FindByLevel(ctx context.Context, db *gorm.DB, level model.Level) ([]model.Word, error) {
	logger := middleware.GetLogger(ctx)
	words := []model.Word{}
	result := db.WithContext(ctx).Where("level = ?", level).Order("id ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by level in DB",
			"error", result.Error,
			"level", level,
		)
		return nil, fmt.Errorf("gormWordRepository.FindByLevel: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) CreateBatch(ctx context.Context, tx *gorm.DB, words []*model.Word) error {
	logger := middleware.GetLogger(ctx)
	if len(words) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).CreateInBatches(words, 100)
	if result.Error != nil {
		logger.Error("Error creating words in DB",
			"error", result.Error,
			"count", len(words),
		)
		return fmt.Errorf("gormWordRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) Exists(ctx context.Context, db *gorm.DB, level model.Level, turkish, english string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).
		Where("level = ? AND LOWER(turkish) = LOWER(?) AND LOWER(english) = LOWER(?)", level, turkish, english).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking word existence in DB",
			"error", result.Error,
			"level", level,
			"turkish", turkish,
		)
		return false, fmt.Errorf("gormWordRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormWordRepository) CountByLevel(ctx context.Context, db *gorm.DB) (map[model.Level]int64, error) {
	logger := middleware.GetLogger(ctx)
	var rows []struct {
		Level model.Level
		Count int64
	}
	result := db.WithContext(ctx).Model(&model.Word{}).
		Select("level, COUNT(*) AS count").
		Group("level").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting words by level in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.CountByLevel: %w", result.Error)
	}
	counts := make(map[model.Level]int64, len(rows))
	for _, row := range rows {
		counts[row.Level] = row.Count
	}
	return counts, nil
}
