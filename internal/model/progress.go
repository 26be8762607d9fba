// internal/model/progress.go
package model

import "time"

// CardProgress は1回の回答記録 (1カード1回答)
// UserAnswer が空文字の場合は「bilmiyorum (わからない)」でスキップしたことを表す。
// 誤答の場合は必ず空でない文字列が入るため、NULL には変換しない。
type CardProgress struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     *uint     `gorm:"index" json:"user_id,omitempty"` // 匿名モードでは nil
	WordID     uint      `gorm:"not null;index" json:"word_id"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
	UserAnswer string    `gorm:"not null;default:''" json:"user_answer"`
	CreatedAt  time.Time `json:"created_at"`
}

func (CardProgress) TableName() string {
	return "card_progress"
}

// LevelProgress はユーザーごと・レベルごとの最終結果 (user_id, level で一意)
type LevelProgress struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_user_level" json:"-"`
	Level       Level      `gorm:"type:varchar(8);not null;uniqueIndex:idx_user_level" json:"level"`
	Score       int        `gorm:"not null;default:0" json:"score"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (LevelProgress) TableName() string {
	return "level_progress"
}

// AnswerRecord は回答の永続化リクエスト。
// IsCorrect=false かつ UserAnswer="" はスキップ、UserAnswer!="" は誤答。
type AnswerRecord struct {
	UserID     *uint
	WordID     uint
	IsCorrect  bool
	UserAnswer string
}

// LevelRecord はレベル完了時の永続化リクエスト
type LevelRecord struct {
	UserID    uint
	Level     Level
	Score     int
	Completed bool
}

// RecordAnswerRequest は POST /api/progress のリクエストボディ
type RecordAnswerRequest struct {
	WordID     uint    `json:"word_id" validate:"required"`
	IsCorrect  *bool   `json:"is_correct" validate:"required"`
	UserAnswer *string `json:"user_answer,omitempty"`
}

// ProgressStats はユーザーの回答統計
type ProgressStats struct {
	Correct   int64 `json:"correct"`
	Incorrect int64 `json:"incorrect"`
	Total     int64 `json:"total"`
}

// LevelProgressRequest は POST /api/level-progress のリクエストボディ
type LevelProgressRequest struct {
	Level     string `json:"level" validate:"required"`
	Score     int    `json:"score" validate:"gte=0"`
	Completed bool   `json:"completed"`
}

// LevelStatus はレベル選択画面用の解放状態
type LevelStatus struct {
	Level         Level  `json:"level"`
	RequiredLevel *Level `json:"required_level,omitempty"`
	Unlocked      bool   `json:"unlocked"`
	Completed     bool   `json:"completed"`
	Score         int    `json:"score"`
	WordCount     int64  `json:"word_count"`
}
