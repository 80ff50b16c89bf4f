package analytics

import (
	"math"
	"time"

	"github.com/omnipdr/omnipdr/internal/models"
)

// frameRow is one exam record flattened for column-wise computation.
type frameRow struct {
	date        time.Time
	totalNet    float64
	studyHours  float64
	stressScore float64
	sleepHours  float64
	subjectNets map[string]float64
}

// frame is the tabular projection of a student's exam history. It is built
// lazily, cached by the engine, and must be rebuilt after any mutation of
// the record list.
type frame struct {
	rows []frameRow
}

// buildFrame projects the records (already sorted by date) into rows.
func buildFrame(records []models.ExamRecord) *frame {
	rows := make([]frameRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, frameRow{
			date:        r.Date,
			totalNet:    r.TotalNet(),
			studyHours:  r.StudyHours,
			stressScore: float64(r.StressScore),
			sleepHours:  r.SleepHours,
			subjectNets: r.SubjectNets,
		})
	}
	return &frame{rows: rows}
}

func (f *frame) len() int {
	return len(f.rows)
}

func (f *frame) totals() []float64 {
	out := make([]float64, len(f.rows))
	for i, r := range f.rows {
		out[i] = r.totalNet
	}
	return out
}

func (f *frame) metric(name string) []float64 {
	out := make([]float64, len(f.rows))
	for i, r := range f.rows {
		switch name {
		case "study_hours":
			out[i] = r.studyHours
		case "stress_score":
			out[i] = r.stressScore
		case "sleep_hours":
			out[i] = r.sleepHours
		}
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Zero variance in either series yields 0 instead of NaN.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-mx, ys[i]-my
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
