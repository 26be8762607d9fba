package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go_5_vocab_cards/internal/config"
	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/session"

	"github.com/google/uuid"
)

// StudyService は学習セッション (ラウンドの状態) をメモリ上に保持し、HTTP から1件ずつ遷移させます。
// caller はリクエストのユーザーID (匿名は nil)。
type StudyService interface {
	Start(ctx context.Context, caller *uint, level string) (*model.StudySessionView, error)
	Get(ctx context.Context, caller *uint, sessionID uuid.UUID) (*model.StudySessionView, error)
	Answer(ctx context.Context, caller *uint, sessionID uuid.UUID, req *model.StudyAnswerRequest) (*model.StudySessionView, error)
	Skip(ctx context.Context, caller *uint, sessionID uuid.UUID, req *model.StudySkipRequest) (*model.StudySessionView, error)
	Retry(ctx context.Context, caller *uint, sessionID uuid.UUID) (*model.StudySessionView, error)
	Restart(ctx context.Context, caller *uint, sessionID uuid.UUID) (*model.StudySessionView, error)
	End(ctx context.Context, caller *uint, sessionID uuid.UUID) error
	PurgeIdle(ctx context.Context, maxIdle time.Duration) int
}

type studyEntry struct {
	words        []model.Word // 最初に読み込んだデッキ (やり直し用)
	state        session.RoundState
	lastActivity time.Time
}

type studyService struct {
	words      WordService
	progress   ProgressService
	controller *session.Controller
	cfg        *config.Config

	mu       sync.Mutex
	sessions map[uuid.UUID]*studyEntry
	now      func() time.Time
}

func NewStudyService(words WordService, progress ProgressService, controller *session.Controller, cfg *config.Config) StudyService {
	return &studyService{
		words:      words,
		progress:   progress,
		controller: controller,
		cfg:        cfg,
		sessions:   make(map[uuid.UUID]*studyEntry),
		now:        time.Now,
	}
}

func (s *studyService) Start(ctx context.Context, caller *uint, levelParam string) (*model.StudySessionView, error) {
	logger := middleware.GetLogger(ctx).With("level", levelParam)

	level, err := model.ParseLevel(levelParam)
	if err != nil {
		return nil, model.NewAppError("INVALID_LEVEL", "Geçersiz seviye.", "level", model.ErrInvalidInput)
	}

	if caller != nil && s.cfg.App.EnforceLevelUnlock {
		unlocked, err := s.progress.IsUnlocked(ctx, *caller, level)
		if err != nil {
			return nil, err
		}
		if !unlocked {
			logger.Warn("Level is locked for user", "user_id", *caller)
			return nil, model.NewAppError("LEVEL_LOCKED", "Bu seviye henüz açılmadı.", "level", model.ErrForbidden)
		}
	}

	words, err := s.words.GetWordsByLevel(ctx, level.String())
	if err != nil {
		return nil, err
	}

	state, err := s.controller.StartRound(level, caller, words, true)
	if err != nil {
		return nil, s.mapSessionError(ctx, err)
	}

	id := uuid.New()
	entry := &studyEntry{words: words, state: state, lastActivity: s.now()}

	s.mu.Lock()
	s.sessions[id] = entry
	view := toSessionView(id, entry)
	s.mu.Unlock()

	logger.Info("Study session started", "session_id", id, "deck_size", len(state.Deck))
	return view, nil
}

func (s *studyService) Get(ctx context.Context, caller *uint, sessionID uuid.UUID) (*model.StudySessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(ctx, caller, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionView(sessionID, entry), nil
}

// Answer は入力された回答を判定して反映します。空白だけの回答は「わからない」扱い。
func (s *studyService) Answer(ctx context.Context, caller *uint, sessionID uuid.UUID, req *model.StudyAnswerRequest) (*model.StudySessionView, error) {
	return s.transition(ctx, caller, sessionID, func(state session.RoundState) (session.RoundState, error) {
		card, ok := state.Current()
		if !ok {
			return state, session.ErrRoundComplete
		}
		outcome := session.Classify(card, req.Answer)
		return s.controller.RecordOutcome(ctx, state, req.WordID, outcome, req.Answer)
	})
}

func (s *studyService) Skip(ctx context.Context, caller *uint, sessionID uuid.UUID, req *model.StudySkipRequest) (*model.StudySessionView, error) {
	return s.transition(ctx, caller, sessionID, func(state session.RoundState) (session.RoundState, error) {
		return s.controller.RecordOutcome(ctx, state, req.WordID, session.Unknown, "")
	})
}

func (s *studyService) Retry(ctx context.Context, caller *uint, sessionID uuid.UUID) (*model.StudySessionView, error) {
	return s.transition(ctx, caller, sessionID, func(state session.RoundState) (session.RoundState, error) {
		return s.controller.Retry(state)
	})
}

// Restart は同じレベルの最初のデッキで新しいラウンドを始めます (累計スコアもリセット)。
func (s *studyService) Restart(ctx context.Context, caller *uint, sessionID uuid.UUID) (*model.StudySessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(ctx, caller, sessionID)
	if err != nil {
		return nil, err
	}
	state, err := s.controller.StartRound(entry.state.Level, entry.state.Owner, entry.words, entry.state.Graded)
	if err != nil {
		return nil, s.mapSessionError(ctx, err)
	}
	entry.state = state
	entry.lastActivity = s.now()

	middleware.GetLogger(ctx).Info("Study session restarted", "session_id", sessionID)
	return toSessionView(sessionID, entry), nil
}

func (s *studyService) End(ctx context.Context, caller *uint, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(ctx, caller, sessionID); err != nil {
		return err
	}
	delete(s.sessions, sessionID)
	middleware.GetLogger(ctx).Info("Study session ended", "session_id", sessionID)
	return nil
}

// PurgeIdle は maxIdle 以上操作のないセッションを削除し、削除件数を返します。
func (s *studyService) PurgeIdle(ctx context.Context, maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	purged := 0
	for id, entry := range s.sessions {
		if entry.lastActivity.Before(cutoff) {
			delete(s.sessions, id)
			purged++
		}
	}
	if purged > 0 {
		middleware.GetLogger(ctx).Info("Idle study sessions purged", "count", purged, "remaining", len(s.sessions))
	}
	return purged
}

// transition はセッションをロックしたまま1回分の状態遷移を行う。失敗時は状態を変えない。
func (s *studyService) transition(ctx context.Context, caller *uint, sessionID uuid.UUID, fn func(session.RoundState) (session.RoundState, error)) (*model.StudySessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(ctx, caller, sessionID)
	if err != nil {
		return nil, err
	}
	next, err := fn(entry.state)
	if err != nil {
		return nil, s.mapSessionError(ctx, err)
	}
	entry.state = next
	entry.lastActivity = s.now()
	return toSessionView(sessionID, entry), nil
}

// lookup は s.mu を保持した状態で呼ぶこと
func (s *studyService) lookup(ctx context.Context, caller *uint, sessionID uuid.UUID) (*studyEntry, error) {
	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.NewAppError("SESSION_NOT_FOUND", "Çalışma oturumu bulunamadı.", "session_id", model.ErrNotFound)
	}
	// ログインユーザーが始めたセッションは本人しか操作できない
	if owner := entry.state.Owner; owner != nil && (caller == nil || *caller != *owner) {
		middleware.GetLogger(ctx).Warn("Study session accessed by another user", "session_id", sessionID)
		return nil, model.NewAppError("SESSION_FORBIDDEN", "Bu oturuma erişim izniniz yok.", "", model.ErrForbidden)
	}
	return entry, nil
}

func (s *studyService) mapSessionError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, session.ErrEmptyDeck):
		return model.NewAppError("LEVEL_EMPTY", "Bu seviyede henüz kelime yok.", "level", model.ErrNotFound)
	case errors.Is(err, session.ErrCardMismatch):
		// クライアントと状態がずれている (呼び出し側のバグ)
		middleware.GetLogger(ctx).Error("Answer for a card that is not being presented", "error", err)
		return model.NewAppError("CARD_MISMATCH", "Bu kart şu anda sorulmuyor.", "word_id", model.ErrConflict)
	case errors.Is(err, session.ErrInvalidOutcome):
		return model.NewAppError("INVALID_ANSWER", "Geçersiz cevap.", "answer", model.ErrInvalidInput)
	case errors.Is(err, session.ErrRoundComplete):
		return model.NewAppError("ROUND_COMPLETE", "Tur zaten tamamlandı.", "", model.ErrConflict)
	case errors.Is(err, session.ErrRoundNotComplete):
		return model.NewAppError("ROUND_IN_PROGRESS", "Tur henüz bitmedi.", "", model.ErrConflict)
	case errors.Is(err, session.ErrNothingToRetry):
		return model.NewAppError("NOTHING_TO_RETRY", "Tekrar edilecek kelime kalmadı.", "", model.ErrConflict)
	}
	return err
}

func toSessionView(id uuid.UUID, entry *studyEntry) *model.StudySessionView {
	st := entry.state
	view := &model.StudySessionView{
		SessionID:      id,
		Level:          st.Level,
		Mode:           st.Mode.String(),
		Status:         st.Status.String(),
		Round:          st.Round,
		Position:       min(st.Cursor+1, len(st.Deck)),
		DeckSize:       len(st.Deck),
		Score:          st.Score,
		PassingScore:   session.PassingScore,
		CorrectCount:   len(st.Correct),
		IncorrectCount: len(st.Incorrect),
		UnknownCount:   len(st.Unknown),
		History:        make([]model.StudyRoundView, 0, len(st.History)),
		LastActivityAt: entry.lastActivity,
	}

	if card, ok := st.Current(); ok {
		view.Card = &model.StudyCardView{
			WordID:         card.Word.ID,
			Prompt:         card.Prompt(),
			PromptLanguage: card.PromptLanguage(),
			AnswerLanguage: card.AnswerLanguage(),
		}
	}
	if st.Last != nil {
		view.Last = &model.StudyAttemptView{
			WordID:     st.Last.WordID,
			Outcome:    st.Last.Outcome.String(),
			UserAnswer: st.Last.UserAnswer,
			Expected:   st.Last.Expected,
			Points:     st.Last.Points,
		}
	}
	if st.Status == session.Complete {
		view.RetryAvailable = len(st.Remaining)
		if st.Passed != nil {
			passed := *st.Passed
			view.Passed = &passed
			if passed {
				if next, ok := st.Level.Next(); ok {
					view.NextLevel = &next
				}
			}
		}
	}
	for _, h := range st.History {
		view.History = append(view.History, model.StudyRoundView{
			Round:      h.Round,
			Mode:       h.Mode.String(),
			DeckSize:   h.DeckSize,
			Correct:    h.Correct,
			Incorrect:  h.Incorrect,
			Unknown:    h.Unknown,
			ScoreAfter: h.ScoreAfter,
		})
	}
	return view
}
