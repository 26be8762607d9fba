package service

import (
	"context"
	"log/slog"
	"sync"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
)

// AsyncProgressGateway は学習ラウンドからの書き込みをバックグラウンドで実行します。
// 失敗はログに出すだけで呼び出し元には返さない。リトライもしない。
type AsyncProgressGateway struct {
	progress ProgressService
	logger   *slog.Logger
	wg       sync.WaitGroup
}

func NewAsyncProgressGateway(progress ProgressService, logger *slog.Logger) *AsyncProgressGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &AsyncProgressGateway{progress: progress, logger: logger}
}

func (g *AsyncProgressGateway) RecordAnswer(ctx context.Context, rec model.AnswerRecord) {
	g.run(ctx, "record_answer", func(ctx context.Context) error {
		return g.progress.RecordAnswer(ctx, rec)
	}, slog.Uint64("word_id", uint64(rec.WordID)))
}

func (g *AsyncProgressGateway) RecordLevelProgress(ctx context.Context, rec model.LevelRecord) {
	g.run(ctx, "record_level_progress", func(ctx context.Context) error {
		_, err := g.progress.RecordLevelProgress(ctx, rec)
		return err
	}, slog.Uint64("user_id", uint64(rec.UserID)), slog.String("level", rec.Level.String()))
}

// Wait は実行中の書き込みがすべて終わるまで待ちます (シャットダウン時用)。
func (g *AsyncProgressGateway) Wait() {
	g.wg.Wait()
}

func (g *AsyncProgressGateway) run(ctx context.Context, op string, fn func(context.Context) error, attrs ...any) {
	// リクエストが終わってもキャンセルされないようにする (ロガーなどの値は引き継ぐ)
	bg := context.WithoutCancel(ctx)
	logger := middleware.GetLogger(ctx)
	if logger == slog.Default() {
		logger = g.logger
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := fn(bg); err != nil {
			logger.Warn("Progress write failed", append([]any{"op", op, "error", err}, attrs...)...)
		}
	}()
}
