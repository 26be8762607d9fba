package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_5_vocab_cards/internal/model"

	"github.com/samber/lo"
)

var (
	ErrEmptyDeck        = errors.New("session: no words to study")
	ErrCardMismatch     = errors.New("session: word is not the card being presented")
	ErrInvalidOutcome   = errors.New("session: invalid outcome")
	ErrRoundComplete    = errors.New("session: round already complete")
	ErrRoundNotComplete = errors.New("session: round still in progress")
	ErrNothingToRetry   = errors.New("session: no words left to retry")
)

// ProgressGateway は永続化への副作用の出口。
// ベストエフォート・最大1回・リトライ無し。失敗してもラウンドの進行には影響させないため戻り値を持たない。
type ProgressGateway interface {
	RecordAnswer(ctx context.Context, rec model.AnswerRecord)
	RecordLevelProgress(ctx context.Context, rec model.LevelRecord)
}

type discardGateway struct{}

func (discardGateway) RecordAnswer(context.Context, model.AnswerRecord)       {}
func (discardGateway) RecordLevelProgress(context.Context, model.LevelRecord) {}

// Controller はラウンドの状態遷移を担当します。状態そのものは保持しない。
type Controller struct {
	gateway ProgressGateway
	picker  DirectionPicker
}

func NewController(gateway ProgressGateway, picker DirectionPicker) *Controller {
	if gateway == nil {
		gateway = discardGateway{}
	}
	if picker == nil {
		picker = FixedDirection(TurkishToEnglish)
	}
	return &Controller{gateway: gateway, picker: picker}
}

// StartRound は読み込んだ単語リストから最初のラウンドを作ります。
// 同じIDの単語は最初の1件だけ残す。
func (c *Controller) StartRound(level model.Level, owner *uint, words []model.Word, graded bool) (RoundState, error) {
	unique := lo.UniqBy(words, func(w model.Word) uint { return w.ID })
	if len(unique) == 0 {
		return RoundState{}, ErrEmptyDeck
	}

	state := RoundState{
		Level:  level,
		Graded: graded,
		Mode:   Initial,
		Round:  1,
		Status: InProgress,
		Deck:   c.deal(unique),
	}
	if owner != nil {
		id := *owner
		state.Owner = &id
	}
	return state, nil
}

// RecordOutcome は出題中のカードに対する結果を反映し、次の状態を返します。
// wordID が出題中のカードでなければ呼び出し側のバグなので ErrCardMismatch を返し、状態は変えない。
func (c *Controller) RecordOutcome(ctx context.Context, state RoundState, wordID uint, outcome Outcome, rawAnswer string) (RoundState, error) {
	if state.Status == Complete {
		return state, ErrRoundComplete
	}
	card, ok := state.Current()
	if !ok || card.Word.ID != wordID {
		return state, fmt.Errorf("%w: expected %d, got %d", ErrCardMismatch, card.Word.ID, wordID)
	}
	if !outcome.Valid() {
		return state, fmt.Errorf("%w: %d", ErrInvalidOutcome, outcome)
	}
	if outcome == Incorrect && strings.TrimSpace(rawAnswer) == "" {
		return state, fmt.Errorf("%w: incorrect outcome needs an answer", ErrInvalidOutcome)
	}

	next := state.clone()
	points := 0
	answer := rawAnswer

	switch outcome {
	case Correct:
		points = PointsPerCorrect
		// 前のバケットから先に取り除いてから correct に入れる
		next.Incorrect = lo.Without(next.Incorrect, wordID)
		next.Unknown = lo.Without(next.Unknown, wordID)
		next.Correct = appendOnce(next.Correct, wordID)
	case Incorrect:
		next.Correct = lo.Without(next.Correct, wordID)
		next.Unknown = lo.Without(next.Unknown, wordID)
		next.Incorrect = appendOnce(next.Incorrect, wordID)
	case Unknown:
		// スキップは空文字で記録する (誤答との区別に使われる)
		answer = ""
		next.Correct = lo.Without(next.Correct, wordID)
		next.Incorrect = lo.Without(next.Incorrect, wordID)
		next.Unknown = appendOnce(next.Unknown, wordID)
	}

	next.Score += points
	next.Last = &Attempt{
		WordID:     wordID,
		Outcome:    outcome,
		UserAnswer: answer,
		Expected:   card.Expected(),
		Points:     points,
	}
	next.Cursor++

	c.gateway.RecordAnswer(ctx, model.AnswerRecord{
		UserID:     next.Owner,
		WordID:     wordID,
		IsCorrect:  outcome == Correct,
		UserAnswer: answer,
	})

	if next.Cursor >= len(next.Deck) {
		next = c.completeRound(ctx, next)
	}
	return next, nil
}

// Retry は完了したラウンドの残り候補で再挑戦ラウンドを始めます (手動)。
func (c *Controller) Retry(state RoundState) (RoundState, error) {
	if state.Status != Complete {
		return state, ErrRoundNotComplete
	}
	if len(state.Remaining) == 0 {
		return state, ErrNothingToRetry
	}
	return c.retryRound(state, state.Remaining), nil
}

func (c *Controller) completeRound(ctx context.Context, s RoundState) RoundState {
	candidates := s.RetryCandidates()
	s.History = append(s.History, s.summary())

	if !s.Graded {
		s.Status = Complete
		s.Remaining = candidates
		return s
	}

	gate := ComputeGate(s.Score, len(candidates))
	if s.Owner != nil {
		c.gateway.RecordLevelProgress(ctx, model.LevelRecord{
			UserID:    *s.Owner,
			Level:     s.Level,
			Score:     s.Score,
			Completed: gate.Passed,
		})
	}

	// 自動の再挑戦は候補が前のデッキより減っている場合のみ (最初のラウンドは常に可)。
	// これで再挑戦ラウンド数は最初のデッキの枚数以下に収まる。
	if gate.ShouldRetry && (s.Mode == Initial || len(candidates) < len(s.Deck)) {
		return c.retryRound(s, candidates)
	}

	passed := gate.Passed
	s.Status = Complete
	s.Passed = &passed
	s.Remaining = candidates
	return s
}

func (c *Controller) retryRound(s RoundState, ids []uint) RoundState {
	byID := make(map[uint]model.Word, len(s.Deck))
	for _, card := range s.Deck {
		byID[card.Word.ID] = card.Word
	}
	words := make([]model.Word, 0, len(ids))
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			words = append(words, w)
		}
	}

	next := RoundState{
		Level:   s.Level,
		Graded:  s.Graded,
		Mode:    Retry,
		Round:   s.Round + 1,
		Status:  InProgress,
		Deck:    c.deal(words),
		Score:   s.Score,
		Last:    s.Last,
		History: s.History,
	}
	if s.Owner != nil {
		id := *s.Owner
		next.Owner = &id
	}
	return next.clone()
}

func (c *Controller) deal(words []model.Word) []Card {
	deck := make([]Card, len(words))
	for i, w := range words {
		deck[i] = Card{Word: w, Direction: c.picker.Pick(w)}
	}
	return deck
}

func appendOnce(ids []uint, id uint) []uint {
	if lo.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}
