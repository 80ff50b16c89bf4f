package services

import (
	"context"
	"strings"
	"time"

	"github.com/omnipdr/omnipdr/internal/analytics"
	apperrors "github.com/omnipdr/omnipdr/internal/errors"
	"github.com/omnipdr/omnipdr/internal/logger"
	"github.com/omnipdr/omnipdr/internal/models"
	"github.com/omnipdr/omnipdr/internal/repository"
)

// StudentService owns the student aggregate: enrollment, exam history,
// the error log with its review schedule, and consultation notes.
type StudentService struct {
	students repository.StudentRepository
}

func NewStudentService(students repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

// CreateStudentRequest carries the fields accepted at enrollment.
type CreateStudentRequest struct {
	Name          string   `json:"name"`
	Track         string   `json:"track"`
	TargetProgram string   `json:"targetProgram,omitempty"`
	TargetNet     *float64 `json:"targetNet,omitempty"`
}

func (s *StudentService) CreateStudent(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	log := logger.FromContext(ctx).WithPrefix("student_service")

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	track := models.ExamTrack(strings.ToUpper(strings.TrimSpace(req.Track)))
	if !track.IsValid() {
		return nil, apperrors.NewValidationError("track", "must be YKS or LGS")
	}
	if req.TargetNet != nil && *req.TargetNet < 0 {
		return nil, apperrors.NewValidationError("targetNet", "must not be negative")
	}

	existing, err := s.students.GetByName(ctx, name)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("name", "a student with this name already exists")
	}

	student := models.NewStudent(name, strings.TrimSpace(req.TargetProgram), track, req.TargetNet)

	if err := s.students.Save(ctx, student); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	log.Info("enrolled student: id=%s, name=%s, track=%s", student.ID, student.Name, student.Track)
	return student, nil
}

func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("student", id)
	}
	return student, nil
}

func (s *StudentService) ListStudents(ctx context.Context, filter repository.StudentFilter) ([]models.Student, error) {
	if filter.Track != "" && !filter.Track.IsValid() {
		return nil, apperrors.NewValidationError("track", "must be YKS or LGS")
	}
	students, err := s.students.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return students, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("student_service")

	deleted, err := s.students.Delete(ctx, id)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !deleted {
		return apperrors.NewNotFoundError("student", id)
	}
	log.Info("deleted student: id=%s", id)
	return nil
}

// AddExamRecordRequest carries one mock exam result.
type AddExamRecordRequest struct {
	Date        time.Time          `json:"date"`
	SubjectNets map[string]float64 `json:"subjectNets"`
	StudyHours  float64            `json:"studyHours"`
	StressScore int                `json:"stressScore"`
	SleepHours  float64            `json:"sleepHours"`
	Notes       string             `json:"notes,omitempty"`
}

func (s *StudentService) AddExamRecord(ctx context.Context, studentID string, req AddExamRecordRequest) (*models.Student, error) {
	log := logger.FromContext(ctx).WithPrefix("student_service")

	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	record, err := models.NewExamRecord(date, req.SubjectNets, req.StudyHours, req.StressScore, req.SleepHours, req.Notes)
	if err != nil {
		return nil, err
	}

	student.AddExamRecord(record)
	if err := s.students.Save(ctx, student); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	log.Info("recorded exam: student=%s, date=%s, total_net=%.2f", student.ID, record.Date.Format("2006-01-02"), record.TotalNet())
	return student, nil
}

// LogErrorRequest registers one wrong answer for spaced review.
type LogErrorRequest struct {
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	ErrorDate time.Time `json:"errorDate"`
}

func (s *StudentService) LogError(ctx context.Context, studentID string, req LogErrorRequest) (*models.ErrorEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("student_service")

	if strings.TrimSpace(req.Subject) == "" {
		return nil, apperrors.NewValidationError("subject", "must not be empty")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return nil, apperrors.NewValidationError("topic", "must not be empty")
	}

	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	date := req.ErrorDate
	if date.IsZero() {
		date = time.Now().UTC()
	}
	entry := student.LogError(req.Subject, req.Topic, date)

	if err := s.students.Save(ctx, student); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	log.Info("logged error: student=%s, subject=%s, topic=%s", student.ID, entry.Subject, entry.Topic)
	return &entry, nil
}

// CompleteReview marks the review scheduled on the given date as done.
func (s *StudentService) CompleteReview(ctx context.Context, studentID, errorID string, on time.Time) (*models.ErrorEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("student_service")

	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	entry := student.FindError(errorID)
	if entry == nil {
		return nil, apperrors.NewNotFoundError("error entry", errorID)
	}
	if on.IsZero() {
		on = time.Now().UTC()
	}
	if !entry.CompleteReview(on) {
		return nil, apperrors.NewValidationError("date", "no pending review scheduled on this date")
	}

	if err := s.students.Save(ctx, student); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	log.Info("completed review: student=%s, error=%s, date=%s", student.ID, entry.ID, on.Format("2006-01-02"))
	return entry, nil
}

// AddConsultationRequest carries one counseling session note.
type AddConsultationRequest struct {
	Date       time.Time `json:"date"`
	Content    string    `json:"content"`
	Assessment string    `json:"assessment,omitempty"`
}

func (s *StudentService) AddConsultation(ctx context.Context, studentID string, req AddConsultationRequest) (*models.ConsultationNote, error) {
	log := logger.FromContext(ctx).WithPrefix("student_service")

	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("content", "must not be empty")
	}

	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	note := student.AddConsultation(date, req.Content, req.Assessment)

	if err := s.students.Save(ctx, student); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	log.Info("added consultation note: student=%s, note=%s", student.ID, note.ID)
	return &note, nil
}

// FullReport runs every analysis over the student's history.
func (s *StudentService) FullReport(ctx context.Context, studentID string) (*analytics.Report, error) {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	report := analytics.NewEngine(student).FullReport()
	return &report, nil
}
