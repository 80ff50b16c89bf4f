package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ConsultationNote is a dated counseling note with an optional counselor
// assessment.
type ConsultationNote struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Content    string    `json:"content"`
	Assessment string    `json:"assessment"`
}

// Student is the aggregate root of the system. It exclusively owns its exam
// history, error log and consultation notes; nothing outside the aggregate
// holds references into these slices.
type Student struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Track         ExamTrack          `json:"track"`
	TargetProgram string             `json:"target_program"`
	TargetNet     *float64           `json:"target_net"`
	EnrolledAt    time.Time          `json:"enrolled_at"`
	ExamRecords   []ExamRecord       `json:"exam_records"`
	ErrorLog      []ErrorEntry       `json:"error_log"`
	Consultations []ConsultationNote `json:"consultations"`
}

// NewStudent creates a student with a fresh id, enrolled today.
func NewStudent(name, targetProgram string, track ExamTrack, targetNet *float64) *Student {
	return &Student{
		ID:            uuid.NewString(),
		Name:          name,
		Track:         track,
		TargetProgram: targetProgram,
		TargetNet:     targetNet,
		EnrolledAt:    DateOnly(time.Now()),
	}
}

// AddExamRecord appends a record and keeps the history sorted ascending by
// date. Analytics relies on this ordering invariant.
func (s *Student) AddExamRecord(rec ExamRecord) {
	s.ExamRecords = append(s.ExamRecords, rec)
	sort.SliceStable(s.ExamRecords, func(i, j int) bool {
		return s.ExamRecords[i].Date.Before(s.ExamRecords[j].Date)
	})
}

// LogError records a missed topic and generates its review schedule.
func (s *Student) LogError(subject, topic string, on time.Time) ErrorEntry {
	entry := NewErrorEntry(subject, topic, on)
	s.ErrorLog = append(s.ErrorLog, entry)
	return entry
}

// AddConsultation appends a counseling note for the given session date.
func (s *Student) AddConsultation(on time.Time, content, assessment string) ConsultationNote {
	note := ConsultationNote{
		ID:         uuid.NewString(),
		Date:       DateOnly(on),
		Content:    content,
		Assessment: assessment,
	}
	s.Consultations = append(s.Consultations, note)
	return note
}

// FindError returns a pointer into the error log, or nil when the id is
// unknown. The pointer is only valid until the log is next mutated.
func (s *Student) FindError(id string) *ErrorEntry {
	for i := range s.ErrorLog {
		if s.ErrorLog[i].ID == id {
			return &s.ErrorLog[i]
		}
	}
	return nil
}

// LatestExam returns the most recent exam record, or nil when the history is
// empty.
func (s *Student) LatestExam() *ExamRecord {
	if len(s.ExamRecords) == 0 {
		return nil
	}
	return &s.ExamRecords[len(s.ExamRecords)-1]
}

// DueToday lists error entries with a review session scheduled for the given
// day and not yet completed.
func (s *Student) DueToday(today time.Time) []ErrorEntry {
	var due []ErrorEntry
	for _, e := range s.ErrorLog {
		if e.DueOn(today) {
			due = append(due, e)
		}
	}
	return due
}

// PendingReviewCount sums pending review sessions across the error log.
func (s *Student) PendingReviewCount(today time.Time) int {
	total := 0
	for _, e := range s.ErrorLog {
		total += e.PendingReviews(today)
	}
	return total
}

// Subjects returns the canonical subject list for the student's track.
func (s *Student) Subjects() []string {
	if s.Track == TrackLGS {
		return SubjectsLGS
	}
	return SubjectsYKS
}
