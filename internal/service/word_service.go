package service

import (
	"context"
	"strings"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/repository"

	"gorm.io/gorm"
)

// ImportResult は単語取り込みの結果
type ImportResult struct {
	Inserted int
	Skipped  int
}

type WordService interface {
	GetWordsByLevel(ctx context.Context, level string) ([]model.Word, error)
	ImportWords(ctx context.Context, rows []model.ImportWordRow) (*ImportResult, error)
}

type wordService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo repository.WordRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
	}
}

// GetWordsByLevel はレベルの単語を ID 昇順で返します。単語が無い場合は空スライス。
func (s *wordService) GetWordsByLevel(ctx context.Context, levelParam string) ([]model.Word, error) {
	logger := middleware.GetLogger(ctx).With("level", levelParam)

	level, err := model.ParseLevel(levelParam)
	if err != nil {
		logger.Warn("Invalid level requested")
		return nil, model.NewAppError("INVALID_LEVEL", "Geçersiz seviye.", "level", model.ErrInvalidInput)
	}

	words, err := s.wordRepo.FindByLevel(ctx, s.db, level)
	if err != nil {
		logger.Error("Failed to find words from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Kelimeler alınamadı.", "", err)
	}

	logger.Debug("Words retrieved", "count", len(words))
	return words, nil
}

// ImportWords は同じレベル・同じ対訳の単語を飛ばしながら1トランザクションで取り込みます。
func (s *wordService) ImportWords(ctx context.Context, rows []model.ImportWordRow) (*ImportResult, error) {
	logger := middleware.GetLogger(ctx)
	result := &ImportResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := make(map[string]bool, len(rows))
		toCreate := make([]*model.Word, 0, len(rows))

		for _, row := range rows {
			key := string(row.Level) + "\x00" + strings.ToLower(row.Turkish) + "\x00" + strings.ToLower(row.English)
			if seen[key] {
				result.Skipped++
				continue
			}
			seen[key] = true

			exists, err := s.wordRepo.Exists(ctx, tx, row.Level, row.Turkish, row.English)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped++
				continue
			}
			toCreate = append(toCreate, &model.Word{
				Turkish: row.Turkish,
				English: row.English,
				Level:   row.Level,
			})
		}

		if err := s.wordRepo.CreateBatch(ctx, tx, toCreate); err != nil {
			return err
		}
		result.Inserted = len(toCreate)
		return nil
	})
	if err != nil {
		logger.Error("Failed to import words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Kelimeler içe aktarılamadı.", "", err)
	}

	logger.Info("Words imported", "inserted", result.Inserted, "skipped", result.Skipped)
	return result, nil
}
