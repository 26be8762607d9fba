package session

import (
	"context"
	"fmt"
	"testing"

	"go_5_vocab_cards/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGateway は呼び出しを記録するだけのテスト用 ProgressGateway
type recordingGateway struct {
	answers []model.AnswerRecord
	levels  []model.LevelRecord
}

func (g *recordingGateway) RecordAnswer(_ context.Context, rec model.AnswerRecord) {
	g.answers = append(g.answers, rec)
}

func (g *recordingGateway) RecordLevelProgress(_ context.Context, rec model.LevelRecord) {
	g.levels = append(g.levels, rec)
}

func makeWords(n int) []model.Word {
	words := make([]model.Word, n)
	for i := range words {
		words[i] = model.Word{
			ID:      uint(i + 1),
			Turkish: fmt.Sprintf("tr%d", i+1),
			English: fmt.Sprintf("en%d", i+1),
			Level:   model.LevelA1,
		}
	}
	return words
}

func newTestController() (*Controller, *recordingGateway) {
	gw := &recordingGateway{}
	return NewController(gw, FixedDirection(TurkishToEnglish)), gw
}

func userID(id uint) *uint { return &id }

// answerCurrent は出題中のカードに指定の結果で回答するヘルパー
func answerCurrent(t *testing.T, c *Controller, s RoundState, outcome Outcome) RoundState {
	t.Helper()
	card, ok := s.Current()
	require.True(t, ok, "no card under cursor")

	raw := ""
	switch outcome {
	case Correct:
		raw = card.Expected()
	case Incorrect:
		raw = "yanlış"
	}
	next, err := c.RecordOutcome(context.Background(), s, card.Word.ID, outcome, raw)
	require.NoError(t, err)
	return next
}

func TestController_StartRound(t *testing.T) {
	c, _ := newTestController()

	t.Run("正常系: 初期状態", func(t *testing.T) {
		s, err := c.StartRound(model.LevelA1, userID(1), makeWords(3), true)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Cursor)
		assert.Equal(t, 0, s.Score)
		assert.Equal(t, Initial, s.Mode)
		assert.Equal(t, InProgress, s.Status)
		assert.Equal(t, 1, s.Round)
		assert.Len(t, s.Deck, 3)
		assert.Empty(t, s.Correct)
		assert.Empty(t, s.Incorrect)
		assert.Empty(t, s.Unknown)
	})

	t.Run("異常系: 単語が0件", func(t *testing.T) {
		_, err := c.StartRound(model.LevelB1, nil, nil, true)
		assert.ErrorIs(t, err, ErrEmptyDeck)
	})

	t.Run("重複IDは1枚にまとめる", func(t *testing.T) {
		words := append(makeWords(2), makeWords(2)...)
		s, err := c.StartRound(model.LevelA1, nil, words, true)
		require.NoError(t, err)
		assert.Len(t, s.Deck, 2)
	})
}

func TestController_AllCorrect(t *testing.T) {
	for n := 1; n <= 10; n++ {
		t.Run(fmt.Sprintf("%d枚すべて正解", n), func(t *testing.T) {
			c, gw := newTestController()
			s, err := c.StartRound(model.LevelA1, userID(7), makeWords(n), true)
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				s = answerCurrent(t, c, s, Correct)
			}

			assert.Equal(t, Complete, s.Status)
			assert.Equal(t, 100*n, s.Score)
			assert.Empty(t, s.RetryCandidates())
			assert.Empty(t, s.Remaining)
			require.NotNil(t, s.Passed)
			assert.Equal(t, 100*n >= PassingScore, *s.Passed)

			require.Len(t, gw.levels, 1)
			assert.Equal(t, model.LevelRecord{UserID: 7, Level: model.LevelA1, Score: 100 * n, Completed: 100*n >= PassingScore}, gw.levels[0])
			assert.Len(t, gw.answers, n)
		})
	}
}

func TestController_SixOfSevenStartsRetryRound(t *testing.T) {
	c, gw := newTestController()
	s, err := c.StartRound(model.LevelA1, userID(1), makeWords(7), true)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		s = answerCurrent(t, c, s, Correct)
	}
	s = answerCurrent(t, c, s, Incorrect)

	// 600 < 700 なので word7 だけの再挑戦ラウンドが始まる
	assert.Equal(t, InProgress, s.Status)
	assert.Equal(t, Retry, s.Mode)
	assert.Equal(t, 2, s.Round)
	assert.Equal(t, 600, s.Score)
	require.Len(t, s.Deck, 1)
	assert.Equal(t, uint(7), s.Deck[0].Word.ID)
	assert.Empty(t, s.Correct)
	assert.Empty(t, s.Incorrect)
	require.Len(t, s.History, 1)
	assert.Equal(t, RoundSummary{Round: 1, Mode: Initial, DeckSize: 7, Correct: 6, Incorrect: 1, ScoreAfter: 600}, s.History[0])

	require.Len(t, gw.levels, 1)
	assert.False(t, gw.levels[0].Completed)
	assert.Equal(t, 600, gw.levels[0].Score)

	// 再挑戦で正解すると累計 700 で合格
	s = answerCurrent(t, c, s, Correct)
	assert.Equal(t, Complete, s.Status)
	assert.Equal(t, 700, s.Score)
	require.NotNil(t, s.Passed)
	assert.True(t, *s.Passed)
	require.Len(t, gw.levels, 2)
	assert.True(t, gw.levels[1].Completed)
	assert.Equal(t, 700, gw.levels[1].Score)
}

func TestController_PassedWithLeftovers(t *testing.T) {
	c, _ := newTestController()
	s, err := c.StartRound(model.LevelA2, userID(1), makeWords(9), true)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		s = answerCurrent(t, c, s, Correct)
	}
	s = answerCurrent(t, c, s, Incorrect)
	s = answerCurrent(t, c, s, Unknown)

	assert.Equal(t, Complete, s.Status)
	require.NotNil(t, s.Passed)
	assert.True(t, *s.Passed)
	// unknown → incorrect の順
	assert.Equal(t, []uint{9, 8}, s.Remaining)

	retry, err := c.Retry(s)
	require.NoError(t, err)
	assert.Equal(t, Retry, retry.Mode)
	assert.Equal(t, 700, retry.Score)
	assert.Len(t, retry.Deck, 2)
	assert.Equal(t, uint(9), retry.Deck[0].Word.ID)
}

func TestController_SkipAndIncorrectArePersistedDifferently(t *testing.T) {
	c, gw := newTestController()
	s, err := c.StartRound(model.LevelA1, nil, makeWords(3), true)
	require.NoError(t, err)

	card, _ := s.Current()
	// Unknown は入力があっても空文字で記録される
	s, err = c.RecordOutcome(context.Background(), s, card.Word.ID, Unknown, "ignored")
	require.NoError(t, err)
	card, _ = s.Current()
	s, err = c.RecordOutcome(context.Background(), s, card.Word.ID, Incorrect, "wrong")
	require.NoError(t, err)
	card, _ = s.Current()
	_, err = c.RecordOutcome(context.Background(), s, card.Word.ID, Correct, " EN3 ")
	require.NoError(t, err)

	require.Len(t, gw.answers, 3)
	assert.Equal(t, model.AnswerRecord{WordID: 1, IsCorrect: false, UserAnswer: ""}, gw.answers[0])
	assert.Equal(t, model.AnswerRecord{WordID: 2, IsCorrect: false, UserAnswer: "wrong"}, gw.answers[1])
	assert.Equal(t, model.AnswerRecord{WordID: 3, IsCorrect: true, UserAnswer: " EN3 "}, gw.answers[2])
	// 匿名なのでレベル進捗は書かない
	assert.Empty(t, gw.levels)
}

func TestController_RecordOutcomeErrors(t *testing.T) {
	c, gw := newTestController()
	s, err := c.StartRound(model.LevelA1, nil, makeWords(3), true)
	require.NoError(t, err)

	t.Run("出題中でない単語", func(t *testing.T) {
		next, err := c.RecordOutcome(context.Background(), s, 3, Correct, "en3")
		assert.ErrorIs(t, err, ErrCardMismatch)
		assert.Equal(t, 0, next.Cursor)
	})

	t.Run("誤答なのに回答が空", func(t *testing.T) {
		_, err := c.RecordOutcome(context.Background(), s, 1, Incorrect, "  ")
		assert.ErrorIs(t, err, ErrInvalidOutcome)
	})

	t.Run("不正な Outcome", func(t *testing.T) {
		_, err := c.RecordOutcome(context.Background(), s, 1, Outcome(0), "x")
		assert.ErrorIs(t, err, ErrInvalidOutcome)
	})

	t.Run("完了後の回答", func(t *testing.T) {
		done := s
		for i := 0; i < 3; i++ {
			done = answerCurrent(t, c, done, Correct)
		}
		require.Equal(t, Complete, done.Status)
		_, err := c.RecordOutcome(context.Background(), done, 3, Correct, "en3")
		assert.ErrorIs(t, err, ErrRoundComplete)
	})

	t.Run("進行中のラウンドは手動再挑戦できない", func(t *testing.T) {
		_, err := c.Retry(s)
		assert.ErrorIs(t, err, ErrRoundNotComplete)
	})

	assert.Len(t, gw.answers, 3)
}

func TestController_DoesNotMutateInput(t *testing.T) {
	c, _ := newTestController()
	s, err := c.StartRound(model.LevelA1, userID(3), makeWords(2), true)
	require.NoError(t, err)

	next := answerCurrent(t, c, s, Correct)

	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 0, s.Score)
	assert.Empty(t, s.Correct)
	assert.Nil(t, s.Last)
	assert.Equal(t, 1, next.Cursor)
	assert.Equal(t, []uint{1}, next.Correct)
}

func TestController_RetryLoopTerminates(t *testing.T) {
	for _, outcome := range []Outcome{Unknown, Incorrect} {
		t.Run(outcome.String(), func(t *testing.T) {
			const n = 5
			c, _ := newTestController()
			s, err := c.StartRound(model.LevelB1, userID(1), makeWords(n), true)
			require.NoError(t, err)

			retryRounds := 0
			for steps := 0; s.Status != Complete; steps++ {
				require.Less(t, steps, 10*n, "loop did not terminate")
				prevRound := s.Round
				s = answerCurrent(t, c, s, outcome)
				if s.Round != prevRound {
					retryRounds++
				}
			}

			assert.LessOrEqual(t, retryRounds, n)
			require.NotNil(t, s.Passed)
			assert.False(t, *s.Passed)
			assert.Equal(t, 0, s.Score)
			assert.Len(t, s.Remaining, n)
		})
	}
}

func TestController_RetryRoundsShrink(t *testing.T) {
	c, _ := newTestController()
	s, err := c.StartRound(model.LevelA1, userID(1), makeWords(4), true)
	require.NoError(t, err)

	// 1周目: 全部わからない
	for i := 0; i < 4; i++ {
		s = answerCurrent(t, c, s, Unknown)
	}
	require.Equal(t, Retry, s.Mode)
	require.Len(t, s.Deck, 4)

	// 2周目: 1枚だけ正解 → 3枚で3周目
	s = answerCurrent(t, c, s, Correct)
	for i := 0; i < 3; i++ {
		s = answerCurrent(t, c, s, Incorrect)
	}
	require.Equal(t, InProgress, s.Status)
	assert.Len(t, s.Deck, 3)
	assert.Equal(t, 3, s.Round)
	assert.Equal(t, 100, s.Score)

	// 3周目: 全部誤答 → 減っていないので完了 (不合格)、手動再挑戦は可能
	for i := 0; i < 3; i++ {
		s = answerCurrent(t, c, s, Incorrect)
	}
	assert.Equal(t, Complete, s.Status)
	require.NotNil(t, s.Passed)
	assert.False(t, *s.Passed)
	assert.Len(t, s.Remaining, 3)

	_, err = c.Retry(s)
	assert.NoError(t, err)
}

func TestController_Ungraded(t *testing.T) {
	c, gw := newTestController()
	s, err := c.StartRound(model.LevelA1, userID(1), makeWords(2), false)
	require.NoError(t, err)

	s = answerCurrent(t, c, s, Correct)
	s = answerCurrent(t, c, s, Incorrect)

	assert.Equal(t, Complete, s.Status)
	assert.Nil(t, s.Passed)
	assert.Equal(t, []uint{2}, s.Remaining)
	assert.Empty(t, gw.levels)
}
