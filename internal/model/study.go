// internal/model/study.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyCardView は出題中のカード。正解はクライアントに渡さない。
type StudyCardView struct {
	WordID         uint   `json:"word_id"`
	Prompt         string `json:"prompt"`
	PromptLanguage string `json:"prompt_language"`
	AnswerLanguage string `json:"answer_language"`
}

// StudyAttemptView は直前の回答結果 (正解表示用)
type StudyAttemptView struct {
	WordID     uint   `json:"word_id"`
	Outcome    string `json:"outcome"`
	UserAnswer string `json:"user_answer"`
	Expected   string `json:"expected"`
	Points     int    `json:"points"`
}

// StudyRoundView は終了したラウンドの集計
type StudyRoundView struct {
	Round      int    `json:"round"`
	Mode       string `json:"mode"`
	DeckSize   int    `json:"deck_size"`
	Correct    int    `json:"correct"`
	Incorrect  int    `json:"incorrect"`
	Unknown    int    `json:"unknown"`
	ScoreAfter int    `json:"score_after"`
}

// StudySessionView は学習セッションの状態レスポンス
type StudySessionView struct {
	SessionID      uuid.UUID         `json:"session_id"`
	Level          Level             `json:"level"`
	Mode           string            `json:"mode"`
	Status         string            `json:"status"`
	Round          int               `json:"round"`
	Position       int               `json:"position"` // 1始まり
	DeckSize       int               `json:"deck_size"`
	Score          int               `json:"score"`
	PassingScore   int               `json:"passing_score"`
	CorrectCount   int               `json:"correct_count"`
	IncorrectCount int               `json:"incorrect_count"`
	UnknownCount   int               `json:"unknown_count"`
	Card           *StudyCardView    `json:"card,omitempty"`
	Last           *StudyAttemptView `json:"last,omitempty"`
	Passed         *bool             `json:"passed,omitempty"`
	RetryAvailable int               `json:"retry_available"`
	NextLevel      *Level            `json:"next_level,omitempty"`
	History        []StudyRoundView  `json:"history"`
	LastActivityAt time.Time         `json:"last_activity_at"`
}

// StudyAnswerRequest は回答送信リクエスト
type StudyAnswerRequest struct {
	WordID uint   `json:"word_id" validate:"required"`
	Answer string `json:"answer" validate:"required,max=200"`
}

// StudySkipRequest は「わからない」送信リクエスト
type StudySkipRequest struct {
	WordID uint `json:"word_id" validate:"required"`
}
