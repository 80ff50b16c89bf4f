// Package ranking estimates national cohort ranks from exam scores (and the
// inverse) by piecewise-linear interpolation over empirical lookup tables.
package ranking

// Point pairs a score with the national rank observed at that score.
type Point struct {
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// Table is an empirical score-to-rank lookup, sorted by descending score.
// Rank grows as score falls: a better score means a lower rank number.
type Table []Point

// EstimateRank maps a score to an estimated rank. Scores beyond either end of
// the table saturate at the best or worst tabulated rank; in between, the
// bracketing pair is interpolated linearly and the result truncated to an
// integer.
func EstimateRank(score float64, table Table) int {
	if len(table) == 0 {
		return 0
	}
	if score >= table[0].Score {
		return table[0].Rank
	}
	last := table[len(table)-1]
	if score <= last.Score {
		return last.Rank
	}

	for i := 0; i < len(table)-1; i++ {
		upper, lower := table[i], table[i+1]
		if upper.Score >= score && score >= lower.Score {
			// Equal bracket scores would divide by zero; treat as the upper point.
			fraction := 0.0
			if upper.Score != lower.Score {
				fraction = (upper.Score - score) / (upper.Score - lower.Score)
			}
			return upper.Rank + int(fraction*float64(lower.Rank-upper.Rank))
		}
	}
	return last.Rank
}

// ScoreForRank is the inverse of EstimateRank: the score needed to reach the
// given rank, bracketing on rank instead of score.
func ScoreForRank(rank int, table Table) float64 {
	if len(table) == 0 {
		return 0
	}
	if rank <= table[0].Rank {
		return table[0].Score
	}
	last := table[len(table)-1]
	if rank >= last.Rank {
		return last.Score
	}

	for i := 0; i < len(table)-1; i++ {
		upper, lower := table[i], table[i+1]
		if upper.Rank <= rank && rank <= lower.Rank {
			fraction := 0.0
			if upper.Rank != lower.Rank {
				fraction = float64(rank-upper.Rank) / float64(lower.Rank-upper.Rank)
			}
			return upper.Score - fraction*(upper.Score-lower.Score)
		}
	}
	return last.Score
}
