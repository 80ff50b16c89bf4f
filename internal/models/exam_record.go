package models

import (
	"time"

	apperrors "github.com/omnipdr/omnipdr/internal/errors"
)

// DefaultSleepHours is used when a stored record predates the sleep_hours
// field. Older data must keep loading after the schema gained the column.
const DefaultSleepHours = 7.0

// ExamRecord is one practice-exam entry together with that week's holistic
// self-report metrics. Records are immutable once created; a student's
// history only ever grows.
type ExamRecord struct {
	Date        time.Time          `json:"date"`
	SubjectNets map[string]float64 `json:"subject_nets"`
	StudyHours  float64            `json:"study_hours"`
	StressScore int                `json:"stress_score"`
	SleepHours  float64            `json:"sleep_hours"`
	Notes       string             `json:"notes"`
}

// NewExamRecord validates the raw entry values and returns a record with a
// day-granular date. Validation happens here, at construction, so the
// analytics pipeline never sees malformed data.
func NewExamRecord(date time.Time, nets map[string]float64, studyHours float64, stressScore int, sleepHours float64, notes string) (ExamRecord, error) {
	if stressScore < 1 || stressScore > 10 {
		return ExamRecord{}, apperrors.NewValidationError("stress_score", "must be between 1 and 10")
	}
	if studyHours < 0 {
		return ExamRecord{}, apperrors.NewValidationError("study_hours", "cannot be negative")
	}
	if sleepHours < 0 {
		return ExamRecord{}, apperrors.NewValidationError("sleep_hours", "cannot be negative")
	}
	clean := make(map[string]float64, len(nets))
	for subject, net := range nets {
		if net < 0 {
			return ExamRecord{}, apperrors.NewValidationError("subject_nets", "net for "+subject+" cannot be negative")
		}
		clean[subject] = net
	}
	return ExamRecord{
		Date:        DateOnly(date),
		SubjectNets: clean,
		StudyHours:  studyHours,
		StressScore: stressScore,
		SleepHours:  sleepHours,
		Notes:       notes,
	}, nil
}

// TotalNet is the sum of all subject nets in the record.
func (r ExamRecord) TotalNet() float64 {
	var total float64
	for _, net := range r.SubjectNets {
		total += net
	}
	return total
}
