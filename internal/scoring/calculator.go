// Package scoring converts raw answer counts into nets and composite exam
// scores for the TYT, AYT and LGS formulas, backed by swappable score tables.
package scoring

import (
	"math"

	apperrors "github.com/omnipdr/omnipdr/internal/errors"
	"github.com/omnipdr/omnipdr/internal/ranking"
)

const (
	// YKSPenalty and LGSPenalty: how many wrong answers cancel one correct
	// answer on each exam family.
	YKSPenalty = 4.0
	LGSPenalty = 3.0

	// LGSCohortSize approximates the national candidate count used for the
	// percentile estimate.
	LGSCohortSize = 1_100_000
)

// Net converts correct/incorrect counts to a net value:
// max(0, correct - incorrect/penalty). Wrong answers cancel right ones but
// never drive a subject below zero.
func Net(correct, incorrect int, penalty float64) (float64, error) {
	if correct < 0 {
		return 0, apperrors.NewValidationError("correct", "cannot be negative")
	}
	if incorrect < 0 {
		return 0, apperrors.NewValidationError("incorrect", "cannot be negative")
	}
	if penalty <= 0 {
		return 0, apperrors.NewValidationError("penalty", "must be positive")
	}
	return math.Max(0, float64(correct)-float64(incorrect)/penalty), nil
}

// YKSNet computes a net under the YKS rule (4 wrong cancel 1 right).
func YKSNet(correct, incorrect int) (float64, error) {
	return Net(correct, incorrect, YKSPenalty)
}

// LGSNet computes a net under the LGS rule (3 wrong cancel 1 right).
func LGSNet(correct, incorrect int) (float64, error) {
	return Net(correct, incorrect, LGSPenalty)
}

// LGSResult carries the combined transition score with its rank estimate.
type LGSResult struct {
	Score         float64            `json:"score"`
	EstimatedRank int                `json:"estimated_rank"`
	Percentile    float64            `json:"percentile"`
	SubjectScores map[string]float64 `json:"subject_scores"`
}

// YKSResult carries the full YKS computation: TYT, AYT, placement and the
// rank estimated from the track's table.
type YKSResult struct {
	TYTScore       float64            `json:"tyt_score"`
	AYTScore       float64            `json:"ayt_score"`
	PlacementScore float64            `json:"placement_score"`
	Track          ScoreTrack         `json:"track"`
	EstimatedRank  int                `json:"estimated_rank"`
	Detail         map[string]float64 `json:"detail"`
}

// Calculator evaluates the score formulas against a table set. It holds no
// other state; the same calculator can serve any number of computations.
type Calculator struct {
	tables *Tables
}

// NewCalculator creates a calculator over the given tables, falling back to
// the defaults when nil.
func NewCalculator(tables *Tables) *Calculator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Calculator{tables: tables}
}

// Tables exposes the calculator's configuration for rank lookups.
func (c *Calculator) Tables() *Tables {
	return c.tables
}

// TYTScore computes the foundational test score: baseline plus net times
// coefficient per known subject, clamped to the maximum. Subjects missing
// from the net map contribute nothing; unknown subjects are ignored.
func (c *Calculator) TYTScore(nets map[string]float64) float64 {
	score := c.tables.Baseline
	for subject, spec := range c.tables.TYT {
		score += nets[subject] * spec.Coefficient
	}
	return math.Min(score, c.tables.Maximum)
}

// AYTScore computes the specialization test score for a track. Each track
// zeroes the coefficients of subjects irrelevant to it. An unknown track
// falls back to SAY.
func (c *Calculator) AYTScore(nets map[string]float64, track ScoreTrack) float64 {
	coefficients, ok := c.tables.AYT[track]
	if !ok {
		coefficients = c.tables.AYT[TrackSAY]
	}
	score := c.tables.Baseline
	for subject, coefficient := range coefficients {
		score += nets[subject] * coefficient
	}
	return math.Min(score, c.tables.Maximum)
}

// PlacementScore combines TYT, AYT and the diploma grade (OBP):
// tyt*0.40 + ayt*0.60 + min(obp*0.6, 60). The OBP contribution is capped so
// the diploma component cannot dominate the composite.
func PlacementScore(tyt, ayt, obp float64) float64 {
	return tyt*0.40 + ayt*0.60 + math.Min(obp*0.6, 60.0)
}

// LGSScore computes the combined transition score: a weighted net average
// normalized to a 0-500 scale, with per-subject percentage scores and a rank
// and percentile estimate.
func (c *Calculator) LGSScore(nets map[string]float64) LGSResult {
	var weightedTotal, weightedMax float64
	subjectScores := make(map[string]float64, len(c.tables.LGS))

	for subject, spec := range c.tables.LGS {
		net := nets[subject]
		weightedTotal += net * float64(spec.Weight)
		weightedMax += float64(spec.Questions * spec.Weight)
		if spec.Questions > 0 {
			subjectScores[subject] = round(net/float64(spec.Questions)*100, 1)
		} else {
			subjectScores[subject] = 0
		}
	}

	score := 0.0
	if weightedMax > 0 {
		score = weightedTotal / weightedMax * c.tables.Maximum
	}
	rank := ranking.EstimateRank(score, c.tables.Ranks["LGS"])
	percentile := math.Max(0.01, math.Min(100.0, float64(rank)/LGSCohortSize*100))

	return LGSResult{
		Score:         round(score, 2),
		EstimatedRank: rank,
		Percentile:    round(percentile, 2),
		SubjectScores: subjectScores,
	}
}

// YKS runs the full pipeline: TYT, AYT for the track, placement with OBP,
// and the rank estimate from the track's table.
func (c *Calculator) YKS(tytNets, aytNets map[string]float64, track ScoreTrack, obp float64) YKSResult {
	tyt := c.TYTScore(tytNets)
	ayt := c.AYTScore(aytNets, track)
	placement := PlacementScore(tyt, ayt, obp)

	table, ok := c.tables.Ranks[string(track)]
	if !ok {
		table = c.tables.Ranks[string(TrackSAY)]
	}

	return YKSResult{
		TYTScore:       round(tyt, 2),
		AYTScore:       round(ayt, 2),
		PlacementScore: round(placement, 2),
		Track:          track,
		EstimatedRank:  ranking.EstimateRank(placement, table),
		Detail: map[string]float64{
			"tyt":              round(tyt, 2),
			"ayt":              round(ayt, 2),
			"obp_contribution": round(math.Min(obp*0.6, 60.0), 2),
			"placement":        round(placement, 2),
		},
	}
}

// TargetNetGap estimates, for an LGS student, how many extra nets per subject
// are needed to reach a target rank. A simple linear split: the score gap is
// spread evenly across the subjects present in the net map.
func (c *Calculator) TargetNetGap(nets map[string]float64, targetRank int) map[string]float64 {
	if len(nets) == 0 {
		return map[string]float64{}
	}
	current := c.LGSScore(nets)
	targetScore := ranking.ScoreForRank(targetRank, c.tables.Ranks["LGS"])
	scoreGap := targetScore - current.Score
	if scoreGap <= 0 {
		return map[string]float64{}
	}
	perSubject := scoreGap / float64(len(nets)) / 4 // rough score-per-net factor
	gaps := make(map[string]float64, len(nets))
	for subject := range nets {
		gaps[subject] = round(perSubject, 1)
	}
	return gaps
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
