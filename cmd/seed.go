package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/repository"
	"go_5_vocab_cards/internal/service"
	"go_5_vocab_cards/internal/wordbank"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "組み込みの単語リスト (A1/A2/B1) を登録する",
	Long:  "組み込みの単語リストを登録します。登録済みの単語はスキップされるので何度実行しても安全です。",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		db, closeDB, err := openDB(logger)
		if err != nil {
			return err
		}
		defer closeDB()

		wordService := service.NewWordService(db, repository.NewGormWordRepository())
		ctx := middleware.WithLogger(cmd.Context(), logger.With("command", "seed"))

		res, err := wordService.ImportWords(ctx, wordbank.SeedWords())
		if err != nil {
			return err
		}
		logger.Info("Seed completed", slog.Int("inserted", res.Inserted), slog.Int("skipped", res.Skipped))
		return nil
	},
}
