package session

const (
	// PassingScore はデッキの枚数に関係なく固定
	PassingScore     = 700
	PointsPerCorrect = 100
)

// Gate は採点対象ラウンド終了時の合否判定
type Gate struct {
	Passed      bool
	ShouldRetry bool
}

// ComputeGate は累計スコアと再挑戦候補数だけから合否を決める純粋関数
func ComputeGate(cumulativeScore, retryCandidateCount int) Gate {
	passed := cumulativeScore >= PassingScore
	return Gate{
		Passed:      passed,
		ShouldRetry: !passed && retryCandidateCount > 0,
	}
}
