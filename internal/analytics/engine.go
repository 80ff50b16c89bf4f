// Package analytics derives trend, burnout, target-zone and correlation
// signals from a student's time-ordered exam history.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/omnipdr/omnipdr/internal/models"
)

// Thresholds and minimum sample sizes for the analyses.
const (
	minRecordsBurnout     = 2
	minRecordsZPD         = 1
	minRecordsCorrelation = 3

	zpdLowerRatio  = 0.92 // below this the work is too easy to grow on
	zpdUpperRatio  = 1.15 // above this the target breeds anxiety
	zpdTargetRatio = 1.07 // realistic short-term push

	highStressThreshold = 7
	lowSleepThreshold   = 6.0
	studyShiftRatio     = 1.15 // >15% change in study hours counts as a shift
	trendDeltaThreshold = 2.0
)

// Engine runs every analysis for a single student. It caches the tabular
// projection of the exam history; the owner must call Invalidate after
// appending a record, and the engine is not safe for concurrent use.
type Engine struct {
	student *models.Student
	frame   *frame
	now     func() time.Time
}

// NewEngine creates an engine over the student's current history.
func NewEngine(student *models.Student) *Engine {
	return &Engine{student: student, now: time.Now}
}

// NewEngineAt creates an engine with a fixed clock. Review-schedule results
// depend on "today", so schedule-sensitive callers and tests pin it.
func NewEngineAt(student *models.Student, now func() time.Time) *Engine {
	return &Engine{student: student, now: now}
}

// Invalidate drops the cached projection. Must be called whenever the
// student's exam records change.
func (e *Engine) Invalidate() {
	e.frame = nil
}

func (e *Engine) dataFrame() *frame {
	if e.frame == nil {
		e.frame = buildFrame(e.student.ExamRecords)
	}
	return e.frame
}

// Burnout runs the ordered burnout rule chain over the earlier and later
// halves of the history. First matching rule wins. Fewer than two records
// yields an insufficient-data report.
func (e *Engine) Burnout() BurnoutReport {
	records := e.student.ExamRecords
	if len(records) < minRecordsBurnout {
		return BurnoutReport{
			Kind:             BurnoutNone,
			Severity:         SeverityNormal,
			Message:          "Trend analysis needs at least 2 exam records.",
			Detail:           "Add more practice-exam entries to enable burnout detection.",
			InsufficientData: true,
		}
	}

	// Integer floor split; the later half gets the remainder. With 3-4
	// records the earlier half is a single exam, which amplifies noise.
	half := len(records) / 2
	if half < 1 {
		half = 1
	}
	earlier, later := records[:half], records[half:]

	earlierNet := meanTotalNet(earlier)
	laterNet := meanTotalNet(later)
	earlierStudy := meanStudyHours(earlier)
	laterStudy := meanStudyHours(later)
	latest := records[len(records)-1]

	netDropped := laterNet < earlierNet
	studyRose := laterStudy > earlierStudy*studyShiftRatio
	studyFell := laterStudy < earlierStudy/studyShiftRatio
	highStress := latest.StressScore >= highStressThreshold
	lowSleep := latest.SleepHours < lowSleepThreshold

	switch {
	case studyRose && netDropped && highStress:
		return BurnoutReport{
			Kind:     BurnoutAcademic,
			Severity: SeverityCritical,
			Message:  "Critical: academic burnout risk detected.",
			Detail: fmt.Sprintf(
				"Study hours rose (%.1fh to %.1fh) yet the total net fell (%.1f to %.1f), with stress at %d/10. This is the classic burnout signature.",
				earlierStudy, laterStudy, earlierNet, laterNet, latest.StressScore),
			Recommendations: []string{
				"Cut study time by 25-30% this week.",
				"Switch to deep-work blocks: 90 minutes focused, 20 minutes fully off.",
				"Add at least 30 minutes of light exercise per day.",
				"Keep social media out of study hours entirely.",
				"Fix a consistent sleep and wake schedule.",
				"Declare this a recovery week and talk it through with the counselor.",
			},
		}
	case studyFell && netDropped && highStress:
		return BurnoutReport{
			Kind:     BurnoutAnxietyAvoidant,
			Severity: SeverityWarning,
			Message:  "Warning: anxiety-driven avoidance pattern.",
			Detail: fmt.Sprintf(
				"Both study hours (%.1fh to %.1fh) and nets (%.1f to %.1f) are falling while stress is high (%d/10); avoidance behavior is likely.",
				earlierStudy, laterStudy, earlierNet, laterNet, latest.StressScore),
			Recommendations: []string{
				"Do 10 minutes of breathing or mindfulness practice daily.",
				"Keep a worry journal: write exam anxieties down to clear them out.",
				"Shrink goals to concrete units, e.g. ten questions from one topic today.",
				"Share how the preparation feels with someone trusted.",
				"List past successes; the anxiety is not a realistic forecast.",
			},
		}
	case lowSleep && netDropped:
		return BurnoutReport{
			Kind:     BurnoutSleepDeficit,
			Severity: SeverityWarning,
			Message:  "Warning: insufficient sleep is degrading performance.",
			Detail: fmt.Sprintf(
				"An average of %.1f hours of sleep is below what memory consolidation needs; nets fell from %.1f to %.1f.",
				latest.SleepHours, earlierNet, laterNet),
			Recommendations: []string{
				"Target 7-8 hours of uninterrupted sleep.",
				"Screens off one hour before bed.",
				"No caffeine after early afternoon.",
				"Keep the room cool, around 18-20°C.",
				"Wake at the same time on weekends to protect the rhythm.",
			},
		}
	case netDropped && !highStress && studyFell:
		return BurnoutReport{
			Kind:     BurnoutMotivationLoss,
			Severity: SeverityCaution,
			Message:  "Caution: signs of motivation loss.",
			Detail: fmt.Sprintf(
				"Study hours (%.1fh to %.1fh) and nets (%.1f to %.1f) are both drifting down while stress stays low; this usually points to fading motivation.",
				earlierStudy, laterStudy, earlierNet, laterNet),
			Recommendations: []string{
				"Set short, concrete weekly mini-goals.",
				"Change the study environment for a while.",
				"Revisit material about the target program to reconnect with the goal.",
				"Find a study partner or group.",
			},
		}
	}

	return BurnoutReport{
		Kind:     BurnoutNone,
		Severity: SeverityNormal,
		Message:  "No risk factors detected. Keep going.",
	}
}

// ZPD estimates the zone of proximal development from the mean of the last
// three totals and classifies the student's declared target against it.
func (e *Engine) ZPD() ZPDReport {
	records := e.student.ExamRecords
	if len(records) < minRecordsZPD {
		return ZPDReport{
			Status:           ZoneNoTarget,
			Message:          "Target-zone analysis needs at least 1 exam record.",
			InsufficientData: true,
		}
	}

	recent := records
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	baseline := meanTotalNet(recent)
	current := records[len(records)-1].TotalNet()

	lower := baseline * zpdLowerRatio
	upper := baseline * zpdUpperRatio
	suggested := baseline * zpdTargetRatio

	report := ZPDReport{
		CurrentLevel:    round(current, 1),
		LowerBound:      round(lower, 1),
		UpperBound:      round(upper, 1),
		SuggestedTarget: round(suggested, 1),
	}

	target := e.student.TargetNet
	switch {
	case target == nil:
		report.Status = ZoneNoTarget
		report.Message = fmt.Sprintf("Suggested short-term target: %.0f total net.", suggested)
	case *target > upper:
		report.Status = ZoneAbove
		report.Message = fmt.Sprintf(
			"The declared target of %.0f net is %.0f above the upper bound; aim for %.0f first and climb gradually.",
			*target, *target-upper, suggested)
	case *target < lower:
		report.Status = ZoneBelow
		report.Message = fmt.Sprintf(
			"The declared target of %.0f net is below the current potential; raise it to at least %.0f.",
			*target, suggested)
	default:
		report.Status = ZoneWithin
		report.Message = "The target sits in the growth zone: neither too easy nor anxiety-inducing."
	}
	return report
}

// WeeklyTrend compares the last two exam totals against a ±2 net threshold.
func (e *Engine) WeeklyTrend() TrendReport {
	records := e.student.ExamRecords
	if len(records) < 2 {
		return TrendReport{Direction: TrendFlat, InsufficientData: true}
	}
	delta := records[len(records)-1].TotalNet() - records[len(records)-2].TotalNet()
	direction := TrendFlat
	if delta > trendDeltaThreshold {
		direction = TrendRising
	} else if delta < -trendDeltaThreshold {
		direction = TrendFalling
	}
	return TrendReport{Direction: direction, Delta: round(delta, 1)}
}

// SubjectStrengths ranks the latest exam's subjects by net. Top three with a
// positive net are strong; bottom three with a non-negative net are weak.
func (e *Engine) SubjectStrengths() SubjectStrengths {
	latest := e.student.LatestExam()
	if latest == nil {
		return SubjectStrengths{}
	}

	type subjectNet struct {
		subject string
		net     float64
	}
	ranked := make([]subjectNet, 0, len(latest.SubjectNets))
	for subject, net := range latest.SubjectNets {
		ranked = append(ranked, subjectNet{subject, net})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].net != ranked[j].net {
			return ranked[i].net > ranked[j].net
		}
		return ranked[i].subject < ranked[j].subject
	})

	var result SubjectStrengths
	for i := 0; i < len(ranked) && i < 3; i++ {
		if ranked[i].net > 0 {
			result.Strong = append(result.Strong, ranked[i].subject)
		}
	}
	start := len(ranked) - 3
	if start < 0 {
		start = 0
	}
	for _, sn := range ranked[start:] {
		if sn.net >= 0 {
			result.Weak = append(result.Weak, sn.subject)
		}
	}
	return result
}

// SleepWarning returns an advisory when the latest record reports less than
// six hours of sleep, otherwise the empty string.
func (e *Engine) SleepWarning() string {
	latest := e.student.LatestExam()
	if latest == nil || latest.SleepHours >= lowSleepThreshold {
		return ""
	}
	return fmt.Sprintf(
		"Average sleep in the latest entry is %.1f hours. Sleeping under 7 hours measurably disrupts long-term memory consolidation.",
		latest.SleepHours)
}

// ErrorDensity aggregates the error log per subject, sorted by error count
// descending (subject name breaks ties for a stable order).
func (e *Engine) ErrorDensity() []ErrorDensityRow {
	today := e.now()
	bySubject := map[string]*ErrorDensityRow{}
	for _, entry := range e.student.ErrorLog {
		row, ok := bySubject[entry.Subject]
		if !ok {
			row = &ErrorDensityRow{Subject: entry.Subject}
			bySubject[entry.Subject] = row
		}
		row.Errors++
		row.PendingReviews += entry.PendingReviews(today)
	}

	rows := make([]ErrorDensityRow, 0, len(bySubject))
	for _, row := range bySubject {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Errors != rows[j].Errors {
			return rows[i].Errors > rows[j].Errors
		}
		return rows[i].Subject < rows[j].Subject
	})
	return rows
}

// Correlations computes Pearson coefficients between total net and each
// holistic metric over the whole history, rounded to three decimals.
// Below three records correlation is not meaningful and the result is empty.
func (e *Engine) Correlations() Correlations {
	f := e.dataFrame()
	if f.len() < minRecordsCorrelation {
		return Correlations{}
	}
	totals := f.totals()
	result := Correlations{}
	for _, metric := range []string{"study_hours", "stress_score", "sleep_hours"} {
		result[metric] = round(pearson(totals, f.metric(metric)), 3)
	}
	return result
}

// FullReport runs every analysis and bundles the results. Calling it twice
// on an unchanged student yields identical reports.
func (e *Engine) FullReport() Report {
	return Report{
		Burnout:      e.Burnout(),
		ZPD:          e.ZPD(),
		Trend:        e.WeeklyTrend(),
		Strengths:    e.SubjectStrengths(),
		DueToday:     e.student.DueToday(e.now()),
		SleepWarning: e.SleepWarning(),
		ErrorDensity: e.ErrorDensity(),
		Correlations: e.Correlations(),
	}
}

func meanTotalNet(records []models.ExamRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.TotalNet()
	}
	return sum / float64(len(records))
}

func meanStudyHours(records []models.ExamRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.StudyHours
	}
	return sum / float64(len(records))
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
