package ranking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omnipdr/omnipdr/internal/ranking"
)

var sampleTable = ranking.Table{
	{Score: 500, Rank: 1},
	{Score: 400, Rank: 38000},
	{Score: 300, Rank: 303000},
}

func TestEstimateRank(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected int
	}{
		{
			name:     "midpoint of a bracket interpolates linearly",
			score:    350,
			expected: 170500,
		},
		{
			name:     "exact table point returns its rank",
			score:    400,
			expected: 38000,
		},
		{
			name:     "score above the table saturates at the best rank",
			score:    600,
			expected: 1,
		},
		{
			name:     "score below the table saturates at the worst rank",
			score:    120,
			expected: 303000,
		},
		{
			name:     "quarter into the top bracket",
			score:    475,
			expected: 1 + (38000-1)/4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ranking.EstimateRank(tt.score, sampleTable))
		})
	}
}

func TestEstimateRank_EmptyTable(t *testing.T) {
	assert.Equal(t, 0, ranking.EstimateRank(420, nil))
}

func TestEstimateRank_DegenerateBracket(t *testing.T) {
	table := ranking.Table{
		{Score: 400, Rank: 100},
		{Score: 400, Rank: 500},
		{Score: 300, Rank: 1000},
	}
	// Equal bracket scores must not divide by zero; the upper rank wins.
	assert.Equal(t, 100, ranking.EstimateRank(400, table))
}

func TestEstimateRank_Monotonic(t *testing.T) {
	prev := 0
	for score := 500; score >= 300; score -= 10 {
		rank := ranking.EstimateRank(float64(score), sampleTable)
		assert.GreaterOrEqual(t, rank, prev, "rank must not improve as score falls (score=%d)", score)
		prev = rank
	}
}

func TestScoreForRank(t *testing.T) {
	tests := []struct {
		name     string
		rank     int
		expected float64
	}{
		{
			name:     "midpoint of a rank bracket",
			rank:     170500,
			expected: 350,
		},
		{
			name:     "exact table rank returns its score",
			rank:     38000,
			expected: 400,
		},
		{
			name:     "rank better than the table saturates at the top score",
			rank:     1,
			expected: 500,
		},
		{
			name:     "rank worse than the table saturates at the bottom score",
			rank:     999999,
			expected: 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ranking.ScoreForRank(tt.rank, sampleTable), 0.01)
		})
	}
}

func TestScoreForRank_EmptyTable(t *testing.T) {
	assert.Equal(t, 0.0, ranking.ScoreForRank(1000, nil))
}

func TestRankScoreRoundTrip(t *testing.T) {
	// A score inside the table should survive score -> rank -> score within
	// the resolution lost to integer rank truncation.
	for _, score := range []float64{480, 420, 360, 310} {
		rank := ranking.EstimateRank(score, sampleTable)
		back := ranking.ScoreForRank(rank, sampleTable)
		assert.InDelta(t, score, back, 0.5, "round trip for score %.0f", score)
	}
}
