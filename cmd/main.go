// cmd/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go_5_vocab_cards/internal/config"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "Türkçe/İngilizce kelime kartı çalışma servisi",
	Version:       config.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "../configs", "config.yaml を探すディレクトリ")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
