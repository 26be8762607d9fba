//go:generate mockery --name CardProgressRepository --output ./mocks --outpkg mocks --case=underscore
//go:generate mockery --name LevelProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardProgressRepository interface {
	Create(ctx context.Context, db *gorm.DB, progress *model.CardProgress) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uint, isCorrect bool) (int64, error)
}

type LevelProgressRepository interface {
	Upsert(ctx context.Context, db *gorm.DB, progress *model.LevelProgress) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]*model.LevelProgress, error)
	FindByUserAndLevel(ctx context.Context, db *gorm.DB, userID uint, level model.Level) (*model.LevelProgress, error)
}

type gormCardProgressRepository struct{}

func NewGormCardProgressRepository() CardProgressRepository {
	return &gormCardProgressRepository{}
}

func (r *gormCardProgressRepository) Create(ctx context.Context, db *gorm.DB, progress *model.CardProgress) error {
	logger := middleware.GetLogger(ctx)
	// UserAnswer の空文字 (スキップ) をそのまま保存するため Select で明示する
	result := db.WithContext(ctx).Select("UserID", "WordID", "IsCorrect", "UserAnswer", "CreatedAt").Create(progress)
	if result.Error != nil {
		logger.Error("Error creating card progress in DB",
			"error", result.Error,
			"word_id", progress.WordID,
		)
		return fmt.Errorf("gormCardProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardProgressRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uint, isCorrect bool) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.CardProgress{}).
		Where("user_id = ? AND is_correct = ?", userID, isCorrect).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting card progress in DB", "error", result.Error, "user_id", userID)
		return 0, fmt.Errorf("gormCardProgressRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

type gormLevelProgressRepository struct{}

func NewGormLevelProgressRepository() LevelProgressRepository {
	return &gormLevelProgressRepository{}
}

// Upsert は (user_id, level) をキーに作成または更新します。
// score は常に最新の値で上書きするが、completed は一度 true になったら false に戻さない。
func (r *gormLevelProgressRepository) Upsert(ctx context.Context, db *gorm.DB, progress *model.LevelProgress) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "level"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":        gorm.Expr("excluded.score"),
			"completed":    gorm.Expr("level_progress.completed OR excluded.completed"),
			"completed_at": gorm.Expr("CASE WHEN level_progress.completed THEN level_progress.completed_at ELSE excluded.completed_at END"),
			"updated_at":   gorm.Expr("excluded.updated_at"),
		}),
	}).Create(progress)
	if result.Error != nil {
		logger.Error("Error upserting level progress in DB",
			"error", result.Error,
			"user_id", progress.UserID,
			"level", progress.Level,
		)
		return fmt.Errorf("gormLevelProgressRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormLevelProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]*model.LevelProgress, error) {
	logger := middleware.GetLogger(ctx)
	progresses := []*model.LevelProgress{}
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("level ASC").Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding level progress in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormLevelProgressRepository.FindByUser: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormLevelProgressRepository) FindByUserAndLevel(ctx context.Context, db *gorm.DB, userID uint, level model.Level) (*model.LevelProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.LevelProgress
	result := db.WithContext(ctx).Where("user_id = ? AND level = ?", userID, level).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding level progress in DB", "error", result.Error, "user_id", userID, "level", level)
		return nil, fmt.Errorf("gormLevelProgressRepository.FindByUserAndLevel: %w", result.Error)
	}
	return &progress, nil
}
