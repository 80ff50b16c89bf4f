package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnipdr/omnipdr/internal/analytics"
	"github.com/omnipdr/omnipdr/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// addRecord appends an exam with a single-subject net equal to the wanted
// total, spaced a week apart so ordering stays unambiguous.
func addRecord(t *testing.T, s *models.Student, week int, total, study float64, stress int, sleep float64) {
	t.Helper()
	rec, err := models.NewExamRecord(
		day(2026, 1, 4).AddDate(0, 0, 7*week),
		map[string]float64{"Toplam": total},
		study, stress, sleep, "")
	require.NoError(t, err)
	s.AddExamRecord(rec)
}

func newStudent(target *float64) *models.Student {
	return models.NewStudent("Test", "", models.TrackYKS, target)
}

func TestBurnout_InsufficientData(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 200, 20, 5, 7)

	report := analytics.NewEngine(s).Burnout()
	assert.True(t, report.InsufficientData)
	assert.Equal(t, analytics.BurnoutNone, report.Kind)
	assert.Equal(t, analytics.SeverityNormal, report.Severity)
}

func TestBurnout_AcademicBurnout(t *testing.T) {
	s := newStudent(nil)
	// Earlier half: strong nets on moderate study. Later half: more study,
	// worse nets, high stress. The classic burnout signature.
	addRecord(t, s, 0, 250, 20, 5, 7)
	addRecord(t, s, 1, 250, 20, 5, 7)
	addRecord(t, s, 2, 230, 24, 7, 7)
	addRecord(t, s, 3, 230, 24, 8, 7)

	report := analytics.NewEngine(s).Burnout()
	assert.Equal(t, analytics.BurnoutAcademic, report.Kind)
	assert.Equal(t, analytics.SeverityCritical, report.Severity)
	assert.False(t, report.InsufficientData)
	assert.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Detail, "20.0h to 24.0h")
}

func TestBurnout_AnxietyAvoidance(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 250, 20, 5, 7)
	addRecord(t, s, 1, 250, 20, 5, 7)
	addRecord(t, s, 2, 220, 15, 8, 7)
	addRecord(t, s, 3, 210, 14, 9, 7)

	report := analytics.NewEngine(s).Burnout()
	assert.Equal(t, analytics.BurnoutAnxietyAvoidant, report.Kind)
	assert.Equal(t, analytics.SeverityWarning, report.Severity)
	assert.NotEmpty(t, report.Recommendations)
}

func TestBurnout_SleepDeficit(t *testing.T) {
	s := newStudent(nil)
	// Study hours hold steady so the first two rules cannot fire.
	addRecord(t, s, 0, 250, 20, 5, 7)
	addRecord(t, s, 1, 250, 20, 5, 7)
	addRecord(t, s, 2, 235, 20, 5, 6)
	addRecord(t, s, 3, 230, 20, 5, 5)

	report := analytics.NewEngine(s).Burnout()
	assert.Equal(t, analytics.BurnoutSleepDeficit, report.Kind)
	assert.Equal(t, analytics.SeverityWarning, report.Severity)
}

func TestBurnout_MotivationLoss(t *testing.T) {
	s := newStudent(nil)
	// Nets and study hours drift down with low stress and normal sleep.
	addRecord(t, s, 0, 250, 20, 4, 7.5)
	addRecord(t, s, 1, 250, 20, 4, 7.5)
	addRecord(t, s, 2, 230, 15, 4, 7.5)
	addRecord(t, s, 3, 225, 14, 4, 7.5)

	report := analytics.NewEngine(s).Burnout()
	assert.Equal(t, analytics.BurnoutMotivationLoss, report.Kind)
	assert.Equal(t, analytics.SeverityCaution, report.Severity)
}

func TestBurnout_NoRisk(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 200, 20, 5, 7)
	addRecord(t, s, 1, 210, 20, 5, 7)
	addRecord(t, s, 2, 225, 21, 4, 7.5)
	addRecord(t, s, 3, 240, 21, 4, 8)

	report := analytics.NewEngine(s).Burnout()
	assert.Equal(t, analytics.BurnoutNone, report.Kind)
	assert.Equal(t, analytics.SeverityNormal, report.Severity)
	assert.False(t, report.InsufficientData)
}

func TestBurnout_TwoRecords(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 250, 20, 5, 7)
	addRecord(t, s, 1, 230, 24, 8, 7)

	report := analytics.NewEngine(s).Burnout()
	assert.Equal(t, analytics.BurnoutAcademic, report.Kind)
	assert.Equal(t, analytics.SeverityCritical, report.Severity)
}

func TestBurnout_ThreeRecordSplit(t *testing.T) {
	s := newStudent(nil)
	// With three records the earlier half is a single exam.
	addRecord(t, s, 0, 250, 20, 5, 7)
	addRecord(t, s, 1, 230, 24, 8, 7)
	addRecord(t, s, 2, 225, 25, 8, 7)

	report := analytics.NewEngine(s).Burnout()
	assert.Equal(t, analytics.BurnoutAcademic, report.Kind)
}

func TestZPD(t *testing.T) {
	target := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		target   *float64
		expected analytics.ZoneStatus
	}{
		{name: "no declared target", target: nil, expected: analytics.ZoneNoTarget},
		{name: "target above upper bound", target: target(130), expected: analytics.ZoneAbove},
		{name: "target below lower bound", target: target(90), expected: analytics.ZoneBelow},
		{name: "target inside the zone", target: target(110), expected: analytics.ZoneWithin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStudent(tt.target)
			addRecord(t, s, 0, 100, 20, 5, 7)
			addRecord(t, s, 1, 110, 20, 5, 7)
			addRecord(t, s, 2, 120, 20, 5, 7)

			report := analytics.NewEngine(s).ZPD()
			assert.Equal(t, tt.expected, report.Status)
			assert.False(t, report.InsufficientData)

			// Baseline is the mean of the last three totals: 110.
			assert.InDelta(t, 120.0, report.CurrentLevel, 0.05)
			assert.InDelta(t, 101.2, report.LowerBound, 0.05)
			assert.InDelta(t, 126.5, report.UpperBound, 0.05)
			assert.InDelta(t, 117.7, report.SuggestedTarget, 0.05)
			assert.NotEmpty(t, report.Message)
		})
	}
}

func TestZPD_BaselineUsesOnlyLastThree(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 10, 20, 5, 7) // must be ignored
	addRecord(t, s, 1, 100, 20, 5, 7)
	addRecord(t, s, 2, 110, 20, 5, 7)
	addRecord(t, s, 3, 120, 20, 5, 7)

	report := analytics.NewEngine(s).ZPD()
	assert.InDelta(t, 101.2, report.LowerBound, 0.05)
}

func TestZPD_InsufficientData(t *testing.T) {
	s := newStudent(nil)
	report := analytics.NewEngine(s).ZPD()
	assert.True(t, report.InsufficientData)
	assert.Equal(t, analytics.ZoneNoTarget, report.Status)
}

func TestWeeklyTrend(t *testing.T) {
	tests := []struct {
		name     string
		prev     float64
		last     float64
		expected analytics.TrendDirection
		delta    float64
	}{
		{name: "rising", prev: 110, last: 120, expected: analytics.TrendRising, delta: 10},
		{name: "falling", prev: 120, last: 110, expected: analytics.TrendFalling, delta: -10},
		{name: "small change is flat", prev: 110, last: 111.5, expected: analytics.TrendFlat, delta: 1.5},
		{name: "exactly plus two is flat", prev: 110, last: 112, expected: analytics.TrendFlat, delta: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStudent(nil)
			addRecord(t, s, 0, tt.prev, 20, 5, 7)
			addRecord(t, s, 1, tt.last, 20, 5, 7)

			report := analytics.NewEngine(s).WeeklyTrend()
			assert.Equal(t, tt.expected, report.Direction)
			assert.InDelta(t, tt.delta, report.Delta, 0.05)
		})
	}
}

func TestWeeklyTrend_InsufficientData(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 110, 20, 5, 7)

	report := analytics.NewEngine(s).WeeklyTrend()
	assert.True(t, report.InsufficientData)
	assert.Equal(t, analytics.TrendFlat, report.Direction)
}

func TestSubjectStrengths(t *testing.T) {
	s := newStudent(nil)
	rec, err := models.NewExamRecord(day(2026, 3, 1), map[string]float64{
		"Türkçe":    30,
		"Matematik": 20,
		"Fizik":     10,
		"Kimya":     5,
		"Biyoloji":  0,
	}, 20, 5, 7, "")
	require.NoError(t, err)
	s.AddExamRecord(rec)

	strengths := analytics.NewEngine(s).SubjectStrengths()
	assert.Equal(t, []string{"Türkçe", "Matematik", "Fizik"}, strengths.Strong)
	assert.Equal(t, []string{"Fizik", "Kimya", "Biyoloji"}, strengths.Weak)
}

func TestSubjectStrengths_FewSubjectsOverlap(t *testing.T) {
	s := newStudent(nil)
	rec, err := models.NewExamRecord(day(2026, 3, 1),
		map[string]float64{"Türkçe": 25, "Matematik": 15}, 20, 5, 7, "")
	require.NoError(t, err)
	s.AddExamRecord(rec)

	// With two subjects both lists contain both, strongest first.
	strengths := analytics.NewEngine(s).SubjectStrengths()
	assert.Equal(t, []string{"Türkçe", "Matematik"}, strengths.Strong)
	assert.Equal(t, []string{"Türkçe", "Matematik"}, strengths.Weak)
}

func TestSubjectStrengths_NoRecords(t *testing.T) {
	strengths := analytics.NewEngine(newStudent(nil)).SubjectStrengths()
	assert.Empty(t, strengths.Strong)
	assert.Empty(t, strengths.Weak)
}

func TestSleepWarning(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 200, 20, 5, 5.5)
	assert.NotEmpty(t, analytics.NewEngine(s).SleepWarning())

	rested := newStudent(nil)
	addRecord(t, rested, 0, 200, 20, 5, 7.5)
	assert.Empty(t, analytics.NewEngine(rested).SleepWarning())
}

func TestErrorDensity(t *testing.T) {
	s := newStudent(nil)
	s.LogError("Matematik", "Türev", day(2026, 3, 1))
	s.LogError("Matematik", "Limit", day(2026, 3, 1))
	s.LogError("Türkçe", "Paragraf", day(2026, 3, 2))

	engine := analytics.NewEngineAt(s, fixedNow(day(2026, 3, 10)))
	rows := engine.ErrorDensity()

	require.Len(t, rows, 2)
	assert.Equal(t, "Matematik", rows[0].Subject)
	assert.Equal(t, 2, rows[0].Errors)
	assert.Equal(t, 6, rows[0].PendingReviews) // +1, +3, +7 pending per entry
	assert.Equal(t, "Türkçe", rows[1].Subject)
	assert.Equal(t, 1, rows[1].Errors)
	assert.Equal(t, 3, rows[1].PendingReviews)
}

func TestErrorDensity_TieBreaksOnSubject(t *testing.T) {
	s := newStudent(nil)
	s.LogError("Türkçe", "Paragraf", day(2026, 3, 1))
	s.LogError("Matematik", "Limit", day(2026, 3, 1))

	rows := analytics.NewEngineAt(s, fixedNow(day(2026, 3, 10))).ErrorDensity()
	require.Len(t, rows, 2)
	assert.Equal(t, "Matematik", rows[0].Subject)
	assert.Equal(t, "Türkçe", rows[1].Subject)
}

func TestCorrelations(t *testing.T) {
	s := newStudent(nil)
	// Totals rise exactly with study hours and against stress; sleep is
	// constant so its correlation degenerates to zero.
	addRecord(t, s, 0, 10, 1, 3, 7)
	addRecord(t, s, 1, 20, 2, 2, 7)
	addRecord(t, s, 2, 30, 3, 1, 7)

	corr := analytics.NewEngine(s).Correlations()
	require.Len(t, corr, 3)
	assert.InDelta(t, 1.0, corr["study_hours"], 0.001)
	assert.InDelta(t, -1.0, corr["stress_score"], 0.001)
	assert.InDelta(t, 0.0, corr["sleep_hours"], 0.001)
}

func TestCorrelations_InsufficientData(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 10, 1, 3, 7)
	addRecord(t, s, 1, 20, 2, 2, 7)

	assert.Empty(t, analytics.NewEngine(s).Correlations())
}

func TestFullReport_Idempotent(t *testing.T) {
	target := 240.0
	s := newStudent(&target)
	addRecord(t, s, 0, 250, 20, 5, 7)
	addRecord(t, s, 1, 245, 21, 6, 6.5)
	addRecord(t, s, 2, 230, 24, 8, 5.5)
	s.LogError("Matematik", "Türev", day(2026, 1, 4))

	engine := analytics.NewEngineAt(s, fixedNow(day(2026, 1, 25)))
	first := engine.FullReport()
	second := engine.FullReport()
	assert.Equal(t, first, second)
}

func TestInvalidate_RebuildsFrame(t *testing.T) {
	s := newStudent(nil)
	addRecord(t, s, 0, 10, 1, 3, 7)
	addRecord(t, s, 1, 20, 2, 2, 7)
	addRecord(t, s, 2, 30, 3, 1, 7)

	engine := analytics.NewEngine(s)
	require.Len(t, engine.Correlations(), 3)

	addRecord(t, s, 3, 5, 9, 9, 7)
	engine.Invalidate()

	// The new record breaks the perfect correlation.
	corr := engine.Correlations()
	assert.Less(t, corr["study_hours"], 1.0)
}
