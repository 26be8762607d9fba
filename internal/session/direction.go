package session

import (
	"math/rand"
	"sync"
	"time"

	"go_5_vocab_cards/internal/model"
)

// DirectionPicker は出題ごとに1回だけ出題方向を決めます
type DirectionPicker interface {
	Pick(w model.Word) Direction
}

// RandomDirections は等確率で方向を選ぶ。複数セッションから同時に呼ばれても安全。
type RandomDirections struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomDirections はシード付きの picker を返します。seed=0 なら現在時刻を使う。
func NewRandomDirections(seed int64) *RandomDirections {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomDirections{rnd: rand.New(rand.NewSource(seed))}
}

func (r *RandomDirections) Pick(model.Word) Direction {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rnd.Intn(2) == 0 {
		return TurkishToEnglish
	}
	return EnglishToTurkish
}

// FixedDirection は常に同じ方向を返す (テスト・固定モード用)
type FixedDirection Direction

func (f FixedDirection) Pick(model.Word) Direction {
	return Direction(f)
}
