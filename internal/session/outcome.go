package session

import (
	"strings"

	"go_5_vocab_cards/internal/model"
)

// Outcome は1回の出題に対する判定結果
type Outcome int

const (
	Correct Outcome = iota + 1
	Incorrect
	// Unknown は「bilmiyorum」ボタンによる明示的なスキップ。誤答とは区別する。
	Unknown
)

func (o Outcome) Valid() bool {
	return o >= Correct && o <= Unknown
}

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

// Direction はカードのどちら側を問題として表示するか
type Direction int

const (
	TurkishToEnglish Direction = iota
	EnglishToTurkish
)

// Card は単語と、今回の出題で決めた出題方向の組
type Card struct {
	Word      model.Word
	Direction Direction
}

func (c Card) Prompt() string {
	if c.Direction == EnglishToTurkish {
		return c.Word.English
	}
	return c.Word.Turkish
}

// Expected は学習者が入力すべき訳語
func (c Card) Expected() string {
	if c.Direction == EnglishToTurkish {
		return c.Word.Turkish
	}
	return c.Word.English
}

func (c Card) PromptLanguage() string {
	if c.Direction == EnglishToTurkish {
		return "en"
	}
	return "tr"
}

func (c Card) AnswerLanguage() string {
	if c.Direction == EnglishToTurkish {
		return "tr"
	}
	return "en"
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AnswersMatch は前後の空白を除去・小文字化した上で完全一致を判定します。
// アクセント記号の同一視や部分点は行わない (意図的な仕様)。
func AnswersMatch(expected, raw string) bool {
	return normalizeAnswer(expected) == normalizeAnswer(raw)
}

// Classify は自由入力の回答を判定します。空欄はスキップ扱い。
func Classify(c Card, raw string) Outcome {
	if strings.TrimSpace(raw) == "" {
		return Unknown
	}
	if AnswersMatch(c.Expected(), raw) {
		return Correct
	}
	return Incorrect
}
