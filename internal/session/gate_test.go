package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGate(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		candidates int
		want       Gate
	}{
		{name: "合格・残り無し", score: 700, candidates: 0, want: Gate{Passed: true}},
		{name: "合格・残り有りでも再挑戦しない", score: 900, candidates: 2, want: Gate{Passed: true}},
		{name: "不合格・残り有り", score: 600, candidates: 1, want: Gate{ShouldRetry: true}},
		{name: "不合格・残り無し", score: 300, candidates: 0, want: Gate{}},
		{name: "境界値 699", score: 699, candidates: 1, want: Gate{ShouldRetry: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeGate(tt.score, tt.candidates))
		})
	}
}
