package service

import (
	"context"
	"errors"
	"time"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/repository"

	"gorm.io/gorm"
)

type ProgressService interface {
	RecordAnswer(ctx context.Context, rec model.AnswerRecord) error
	GetStats(ctx context.Context, userID uint) (*model.ProgressStats, error)
	RecordLevelProgress(ctx context.Context, rec model.LevelRecord) (*model.LevelProgress, error)
	GetLevelProgress(ctx context.Context, userID uint) ([]*model.LevelProgress, error)
	GetLevels(ctx context.Context, userID *uint) ([]model.LevelStatus, error)
	IsUnlocked(ctx context.Context, userID uint, level model.Level) (bool, error)
}

type progressService struct {
	db        *gorm.DB
	cardRepo  repository.CardProgressRepository
	levelRepo repository.LevelProgressRepository
	wordRepo  repository.WordRepository
}

func NewProgressService(db *gorm.DB, cardRepo repository.CardProgressRepository, levelRepo repository.LevelProgressRepository, wordRepo repository.WordRepository) ProgressService {
	return &progressService{
		db:        db,
		cardRepo:  cardRepo,
		levelRepo: levelRepo,
		wordRepo:  wordRepo,
	}
}

// RecordAnswer は1回答を記録します。UserAnswer は加工せずに保存する ("" はスキップ)。
func (s *progressService) RecordAnswer(ctx context.Context, rec model.AnswerRecord) error {
	logger := middleware.GetLogger(ctx).With("word_id", rec.WordID)

	progress := &model.CardProgress{
		UserID:     rec.UserID,
		WordID:     rec.WordID,
		IsCorrect:  rec.IsCorrect,
		UserAnswer: rec.UserAnswer,
	}
	if err := s.cardRepo.Create(ctx, s.db, progress); err != nil {
		logger.Error("Failed to record answer", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Cevap kaydedilemedi.", "", err)
	}
	return nil
}

func (s *progressService) GetStats(ctx context.Context, userID uint) (*model.ProgressStats, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	correct, err := s.cardRepo.CountByUser(ctx, s.db, userID, true)
	if err != nil {
		logger.Error("Failed to count correct answers", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "İstatistikler alınamadı.", "", err)
	}
	incorrect, err := s.cardRepo.CountByUser(ctx, s.db, userID, false)
	if err != nil {
		logger.Error("Failed to count incorrect answers", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "İstatistikler alınamadı.", "", err)
	}

	return &model.ProgressStats{
		Correct:   correct,
		Incorrect: incorrect,
		Total:     correct + incorrect,
	}, nil
}

// RecordLevelProgress はレベルの結果を upsert し、保存後の値を返します。
// 一度 completed になったレベルは後の不合格で false に戻らない。
func (s *progressService) RecordLevelProgress(ctx context.Context, rec model.LevelRecord) (*model.LevelProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", rec.UserID, "level", rec.Level)

	if !rec.Level.Valid() {
		logger.Warn("Invalid level for level progress")
		return nil, model.NewAppError("INVALID_LEVEL", "Geçersiz seviye.", "level", model.ErrInvalidInput)
	}

	progress := &model.LevelProgress{
		UserID:    rec.UserID,
		Level:     rec.Level,
		Score:     rec.Score,
		Completed: rec.Completed,
	}
	if rec.Completed {
		now := time.Now()
		progress.CompletedAt = &now
	}

	var saved *model.LevelProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.levelRepo.Upsert(ctx, tx, progress); err != nil {
			return err
		}
		var err error
		saved, err = s.levelRepo.FindByUserAndLevel(ctx, tx, rec.UserID, rec.Level)
		return err
	})
	if err != nil {
		logger.Error("Failed to record level progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Seviye ilerlemesi kaydedilemedi.", "", err)
	}

	logger.Info("Level progress recorded", "score", saved.Score, "completed", saved.Completed)
	return saved, nil
}

func (s *progressService) GetLevelProgress(ctx context.Context, userID uint) ([]*model.LevelProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	progresses, err := s.levelRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to find level progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Seviye ilerlemesi alınamadı.", "", err)
	}
	return progresses, nil
}

// GetLevels はレベル一覧と解放状態を返します。匿名の場合は A1 のみ解放。
func (s *progressService) GetLevels(ctx context.Context, userID *uint) ([]model.LevelStatus, error) {
	logger := middleware.GetLogger(ctx)

	counts, err := s.wordRepo.CountByLevel(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count words by level", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Seviyeler alınamadı.", "", err)
	}

	byLevel := map[model.Level]*model.LevelProgress{}
	if userID != nil {
		progresses, err := s.levelRepo.FindByUser(ctx, s.db, *userID)
		if err != nil {
			logger.Error("Failed to find level progress", "error", err, "user_id", *userID)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Seviyeler alınamadı.", "", err)
		}
		for _, p := range progresses {
			byLevel[p.Level] = p
		}
	}

	statuses := make([]model.LevelStatus, 0, len(model.Levels))
	for _, level := range model.Levels {
		status := model.LevelStatus{
			Level:     level,
			Unlocked:  true,
			WordCount: counts[level],
		}
		if prev, ok := level.Previous(); ok {
			required := prev
			status.RequiredLevel = &required
			p := byLevel[prev]
			status.Unlocked = p != nil && p.Completed
		}
		if p := byLevel[level]; p != nil {
			status.Completed = p.Completed
			status.Score = p.Score
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// IsUnlocked は直前のレベルを完了しているかを返します。A1 は常に true。
func (s *progressService) IsUnlocked(ctx context.Context, userID uint, level model.Level) (bool, error) {
	prev, ok := level.Previous()
	if !ok {
		return true, nil
	}
	p, err := s.levelRepo.FindByUserAndLevel(ctx, s.db, userID, prev)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		middleware.GetLogger(ctx).Error("Failed to check level unlock", "error", err, "user_id", userID, "level", level)
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "Seviye durumu alınamadı.", "", err)
	}
	return p.Completed, nil
}
