// internal/model/level.go
package model

import "strings"

// Level は CEFR のレベル (A1/A2/B1)
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
)

// Levels は学習順に並んだレベル一覧
var Levels = []Level{LevelA1, LevelA2, LevelB1}

// 次のレベルへの固定テーブル。B1 の次は無し。
var nextLevel = map[Level]Level{
	LevelA1: LevelA2,
	LevelA2: LevelB1,
}

// ParseLevel は大文字小文字を区別せずにレベルを解釈します。
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", ErrInvalidInput
	}
	return l, nil
}

func (l Level) Valid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1:
		return true
	}
	return false
}

// Next は次のレベルを返します。最上位の場合は ok=false。
func (l Level) Next() (Level, bool) {
	n, ok := nextLevel[l]
	return n, ok
}

// Previous は解放条件となる直前のレベルを返します。A1 は条件無し。
func (l Level) Previous() (Level, bool) {
	for prev, next := range nextLevel {
		if next == l {
			return prev, true
		}
	}
	return "", false
}

func (l Level) String() string {
	return string(l)
}
