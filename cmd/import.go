package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/repository"
	"go_5_vocab_cards/internal/service"
	"go_5_vocab_cards/internal/wordbank"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Excel/CSV ファイルから単語を取り込む",
	Long: `Excel/CSV ファイルから単語を取り込みます。
列は turkish, english, level (A1/A2/B1) の順です。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, _ := cmd.Flags().GetString("sheet")
		noHeader, _ := cmd.Flags().GetBool("no-header")
		strict, _ := cmd.Flags().GetBool("strict")

		logger, err := loadConfigAndLogger()
		if err != nil {
			return err
		}

		importCfg := wordbank.DefaultImportConfig()
		importCfg.SheetName = sheet
		importCfg.SkipHeader = !noHeader

		parsed, err := wordbank.ReadFile(args[0], importCfg)
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		for _, msg := range parsed.Errors {
			logger.Warn("Skipping invalid row", slog.String("detail", msg))
		}
		if strict && len(parsed.Errors) > 0 {
			return fmt.Errorf("%d invalid rows in %s", len(parsed.Errors), args[0])
		}
		if len(parsed.Rows) == 0 {
			return errors.New("no valid rows to import")
		}

		db, closeDB, err := openDB(logger)
		if err != nil {
			return err
		}
		defer closeDB()

		wordService := service.NewWordService(db, repository.NewGormWordRepository())
		ctx := middleware.WithLogger(cmd.Context(), logger.With("command", "import"))

		res, err := wordService.ImportWords(ctx, parsed.Rows)
		if err != nil {
			return err
		}
		logger.Info("Import completed",
			slog.String("file", args[0]),
			slog.Int("inserted", res.Inserted),
			slog.Int("skipped", res.Skipped),
			slog.Int("invalid", len(parsed.Errors)),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "読み込むシート名 (省略時は最初のシート)")
	importCmd.Flags().Bool("no-header", false, "1行目もデータとして扱う")
	importCmd.Flags().Bool("strict", false, "不正な行が1つでもあれば取り込まない")
}
