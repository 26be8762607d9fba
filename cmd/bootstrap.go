package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gorm.io/gorm"

	"go_5_vocab_cards/internal/config"
	"go_5_vocab_cards/internal/repository"
)

// loadConfigAndLogger は設定を読み込み、設定に従った slog ロガーをデフォルトに設定します
func loadConfigAndLogger() (*slog.Logger, error) {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig(configDir); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo) // 不明な場合はInfo
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	log.Println("Log Config Loaded...")
	return logger, nil
}

// openDB は DB に接続し、スキーマを最新にします。戻り値の close は必ず呼ぶこと。
func openDB(logger *slog.Logger) (*gorm.DB, func(), error) {
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("getting underlying sql.DB from GORM: %w", err)
	}
	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}
	if err := repository.Migrate(db); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, closeFn, nil
}
