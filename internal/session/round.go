package session

import (
	"slices"

	"go_5_vocab_cards/internal/model"

	"github.com/samber/lo"
)

// Mode はラウンドの種別
type Mode int

const (
	Initial Mode = iota
	Retry
)

func (m Mode) String() string {
	if m == Retry {
		return "retry"
	}
	return "initial"
}

// Status はラウンドの進行状態
type Status int

const (
	InProgress Status = iota
	Complete
)

func (s Status) String() string {
	if s == Complete {
		return "complete"
	}
	return "in_progress"
}

// Attempt は直前の回答 (UI で正解を見せるため Expected も持つ)
type Attempt struct {
	WordID     uint
	Outcome    Outcome
	UserAnswer string
	Expected   string
	Points     int
}

// RoundSummary は終了したラウンド1回分の集計
type RoundSummary struct {
	Round      int
	Mode       Mode
	DeckSize   int
	Correct    int
	Incorrect  int
	Unknown    int
	ScoreAfter int
}

// RoundState は1ラウンド分の状態。値として受け渡し、遷移ごとに新しい値を返す。
// Correct / Incorrect / Unknown の3バケットは常に互いに素。
type RoundState struct {
	Level  model.Level
	Owner  *uint // 匿名の場合は nil
	Graded bool  // レベル全体のデッキの場合のみ合否判定を行う
	Mode   Mode
	Round  int
	Status Status

	Deck   []Card
	Cursor int

	Correct   []uint
	Incorrect []uint
	Unknown   []uint

	// Score はセッション全体の累計 (再挑戦ラウンドでも引き継ぐ)
	Score int

	Last    *Attempt
	History []RoundSummary

	// 以下は Status == Complete のときのみ意味を持つ
	Passed    *bool
	Remaining []uint
}

// Current は出題中のカードを返します。
func (s RoundState) Current() (Card, bool) {
	if s.Status == Complete || s.Cursor >= len(s.Deck) {
		return Card{}, false
	}
	return s.Deck[s.Cursor], true
}

// RetryCandidates は unknown → incorrect の順に、最初に出た位置を保って重複を除いたもの
func (s RoundState) RetryCandidates() []uint {
	ids := make([]uint, 0, len(s.Unknown)+len(s.Incorrect))
	ids = append(ids, s.Unknown...)
	ids = append(ids, s.Incorrect...)
	return lo.Uniq(ids)
}

func (s RoundState) clone() RoundState {
	c := s
	if s.Owner != nil {
		owner := *s.Owner
		c.Owner = &owner
	}
	c.Deck = slices.Clone(s.Deck)
	c.Correct = slices.Clone(s.Correct)
	c.Incorrect = slices.Clone(s.Incorrect)
	c.Unknown = slices.Clone(s.Unknown)
	c.History = slices.Clone(s.History)
	c.Remaining = slices.Clone(s.Remaining)
	if s.Last != nil {
		last := *s.Last
		c.Last = &last
	}
	if s.Passed != nil {
		passed := *s.Passed
		c.Passed = &passed
	}
	return c
}

func (s RoundState) summary() RoundSummary {
	return RoundSummary{
		Round:      s.Round,
		Mode:       s.Mode,
		DeckSize:   len(s.Deck),
		Correct:    len(s.Correct),
		Incorrect:  len(s.Incorrect),
		Unknown:    len(s.Unknown),
		ScoreAfter: s.Score,
	}
}
