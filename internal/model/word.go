// internal/model/word.go
package model

import "time"

// Word はトルコ語と英語の対訳ペアを表します
type Word struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Turkish   string    `gorm:"not null" json:"turkish"`
	English   string    `gorm:"not null" json:"english"`
	Level     Level     `gorm:"type:varchar(8);not null;index" json:"level"`
	CreatedAt time.Time `json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// ImportWordRow はファイル取り込み時の1行分
type ImportWordRow struct {
	Turkish string `validate:"required"`
	English string `validate:"required"`
	Level   Level  `validate:"required"`
}
