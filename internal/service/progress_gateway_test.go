package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/service"
	servicemocks "go_5_vocab_cards/internal/service/mocks"

	"github.com/stretchr/testify/mock"
)

func TestAsyncProgressGateway(t *testing.T) {
	progress := servicemocks.NewProgressService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gateway := service.NewAsyncProgressGateway(progress, logger)

	answer := model.AnswerRecord{UserID: uintPtr(1), WordID: 10, IsCorrect: false, UserAnswer: ""}
	level := model.LevelRecord{UserID: 1, Level: model.LevelA1, Score: 700, Completed: true}

	notCanceled := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	progress.On("RecordAnswer", notCanceled, answer).Return(errors.New("db down")).Once()
	progress.On("RecordLevelProgress", notCanceled, level).Return(&model.LevelProgress{}, nil).Once()

	// リクエストのコンテキストがキャンセルされても書き込みは続く
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gateway.RecordAnswer(ctx, answer) // 失敗しても呼び出し側には何も返らない
	gateway.RecordLevelProgress(ctx, level)
	gateway.Wait()
}
