package service

import (
	"context"
	"log/slog"
	"time"

	"go_5_vocab_cards/internal/middleware"

	"github.com/go-co-op/gocron"
)

// SessionReaper は放置された学習セッションを定期的に削除します。
type SessionReaper struct {
	scheduler *gocron.Scheduler
	study     StudyService
	interval  time.Duration
	maxIdle   time.Duration
	logger    *slog.Logger
}

func NewSessionReaper(study StudyService, interval, maxIdle time.Duration, logger *slog.Logger) *SessionReaper {
	return &SessionReaper{
		scheduler: gocron.NewScheduler(time.UTC),
		study:     study,
		interval:  interval,
		maxIdle:   maxIdle,
		logger:    logger,
	}
}

// Start はスケジューラをバックグラウンドで起動します。
func (r *SessionReaper) Start() error {
	if _, err := r.scheduler.Every(r.interval).WaitForSchedule().Do(r.purge); err != nil {
		return err
	}
	r.scheduler.StartAsync()
	r.logger.Info("Session reaper started", "interval", r.interval.String(), "max_idle", r.maxIdle.String())
	return nil
}

func (r *SessionReaper) Stop() {
	r.scheduler.Stop()
}

func (r *SessionReaper) purge() {
	ctx := middleware.WithLogger(context.Background(), r.logger.With("job", "session_reaper"))
	r.study.PurgeIdle(ctx, r.maxIdle)
}
