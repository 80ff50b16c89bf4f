package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/omnipdr/omnipdr/internal/models"
)

const dayFormat = "2006-01-02"

// tx runs fn inside a transaction, rolling back on error or panic.
func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	t, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			t.Rollback()
			panic(p)
		}
	}()
	if err := fn(t); err != nil {
		if rbErr := t.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	return t.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var (
		s         models.Student
		track     string
		targetNet sql.NullFloat64
	)
	if err := row.Scan(&s.ID, &s.Name, &track, &s.TargetProgram, &targetNet, &s.EnrolledAt); err != nil {
		return nil, err
	}
	s.Track = models.ExamTrack(track)
	if targetNet.Valid {
		s.TargetNet = &targetNet.Float64
	}
	return &s, nil
}

func (r *studentRepository) loadCollections(ctx context.Context, s *models.Student) error {
	if err := r.loadExamRecords(ctx, s); err != nil {
		return err
	}
	if err := r.loadErrorEntries(ctx, s); err != nil {
		return err
	}
	return r.loadConsultations(ctx, s)
}

func (r *studentRepository) loadExamRecords(ctx context.Context, s *models.Student) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT exam_date, subject_nets, study_hours, stress_score, sleep_hours, notes
FROM exam_records WHERE student_id = ? ORDER BY exam_date ASC, id ASC
`, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	s.ExamRecords = nil
	for rows.Next() {
		var (
			rec   models.ExamRecord
			nets  string
			sleep sql.NullFloat64
		)
		if err := rows.Scan(&rec.Date, &nets, &rec.StudyHours, &rec.StressScore, &sleep, &rec.Notes); err != nil {
			return err
		}
		if rec.SubjectNets, err = unmarshalNets(nets); err != nil {
			return err
		}
		// Rows written before sleep tracking existed carry NULL here.
		rec.SleepHours = models.DefaultSleepHours
		if sleep.Valid {
			rec.SleepHours = sleep.Float64
		}
		s.ExamRecords = append(s.ExamRecords, rec)
	}
	return rows.Err()
}

func (r *studentRepository) loadErrorEntries(ctx context.Context, s *models.Student) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, subject, topic, error_date, review_dates, completed_reviews
FROM error_entries WHERE student_id = ? ORDER BY error_date ASC, id ASC
`, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	s.ErrorLog = nil
	for rows.Next() {
		var (
			entry     models.ErrorEntry
			reviews   string
			completed string
		)
		if err := rows.Scan(&entry.ID, &entry.Subject, &entry.Topic, &entry.ErrorDate, &reviews, &completed); err != nil {
			return err
		}
		if entry.ReviewDates, err = unmarshalDates(reviews); err != nil {
			return err
		}
		if entry.CompletedReviews, err = unmarshalDates(completed); err != nil {
			return err
		}
		s.ErrorLog = append(s.ErrorLog, entry)
	}
	return rows.Err()
}

func (r *studentRepository) loadConsultations(ctx context.Context, s *models.Student) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, note_date, content, assessment
FROM consultation_notes WHERE student_id = ? ORDER BY note_date ASC, id ASC
`, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	s.Consultations = nil
	for rows.Next() {
		var note models.ConsultationNote
		if err := rows.Scan(&note.ID, &note.Date, &note.Content, &note.Assessment); err != nil {
			return err
		}
		s.Consultations = append(s.Consultations, note)
	}
	return rows.Err()
}

func marshalNets(nets map[string]float64) (string, error) {
	if nets == nil {
		nets = map[string]float64{}
	}
	data, err := json.Marshal(nets)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalNets(data string) (map[string]float64, error) {
	nets := map[string]float64{}
	if data == "" {
		return nets, nil
	}
	if err := json.Unmarshal([]byte(data), &nets); err != nil {
		return nil, fmt.Errorf("malformed subject nets: %w", err)
	}
	return nets, nil
}

func marshalDates(dates []time.Time) (string, error) {
	days := make([]string, len(dates))
	for i, d := range dates {
		days[i] = d.Format(dayFormat)
	}
	data, err := json.Marshal(days)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalDates(data string) ([]time.Time, error) {
	if data == "" {
		return nil, nil
	}
	var days []string
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		return nil, fmt.Errorf("malformed review dates: %w", err)
	}
	dates := make([]time.Time, len(days))
	for i, day := range days {
		parsed, err := time.Parse(dayFormat, day)
		if err != nil {
			return nil, fmt.Errorf("malformed review date %q: %w", day, err)
		}
		dates[i] = parsed
	}
	return dates, nil
}
