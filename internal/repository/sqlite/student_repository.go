package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/omnipdr/omnipdr/internal/logger"
	"github.com/omnipdr/omnipdr/internal/models"
	"github.com/omnipdr/omnipdr/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a StudentRepository backed by sqlite.
func NewStudentRepository(db *sql.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// Save upserts the whole aggregate in one transaction: the student row is
// replaced and the child collections rewritten, so readers see either the
// old record set or the new one, never a mix.
func (r *studentRepository) Save(ctx context.Context, s *models.Student) error {
	log := logger.FromContext(ctx).WithPrefix("student_repo")
	log.Debug("saving student: id=%s, records=%d, errors=%d", s.ID, len(s.ExamRecords), len(s.ErrorLog))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `
INSERT INTO students (id, name, track, target_program, target_net, enrolled_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    track = excluded.track,
    target_program = excluded.target_program,
    target_net = excluded.target_net,
    enrolled_at = excluded.enrolled_at
`, s.ID, s.Name, string(s.Track), s.TargetProgram, s.TargetNet, s.EnrolledAt); err != nil {
			return err
		}

		for _, table := range []string{"exam_records", "error_entries", "consultation_notes"} {
			if _, err := t.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE student_id = ?`, table), s.ID); err != nil {
				return err
			}
		}

		for _, rec := range s.ExamRecords {
			nets, err := marshalNets(rec.SubjectNets)
			if err != nil {
				return err
			}
			if _, err := t.ExecContext(ctx, `
INSERT INTO exam_records (student_id, exam_date, subject_nets, study_hours, stress_score, sleep_hours, notes)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, s.ID, rec.Date, nets, rec.StudyHours, rec.StressScore, rec.SleepHours, rec.Notes); err != nil {
				return err
			}
		}

		for _, entry := range s.ErrorLog {
			reviewDates, err := marshalDates(entry.ReviewDates)
			if err != nil {
				return err
			}
			completed, err := marshalDates(entry.CompletedReviews)
			if err != nil {
				return err
			}
			if _, err := t.ExecContext(ctx, `
INSERT INTO error_entries (id, student_id, subject, topic, error_date, review_dates, completed_reviews)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, entry.ID, s.ID, entry.Subject, entry.Topic, entry.ErrorDate, reviewDates, completed); err != nil {
				return err
			}
		}

		for _, note := range s.Consultations {
			if _, err := t.ExecContext(ctx, `
INSERT INTO consultation_notes (id, student_id, note_date, content, assessment)
VALUES (?, ?, ?, ?, ?)
`, note.ID, s.ID, note.Date, note.Content, note.Assessment); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return r.getOne(ctx, `SELECT id, name, track, target_program, target_net, enrolled_at FROM students WHERE id = ?`, id)
}

// GetByName matches the name case-insensitively but exactly.
func (r *studentRepository) GetByName(ctx context.Context, name string) (*models.Student, error) {
	return r.getOne(ctx, `SELECT id, name, track, target_program, target_net, enrolled_at FROM students WHERE LOWER(name) = LOWER(?) LIMIT 1`, name)
}

func (r *studentRepository) getOne(ctx context.Context, query string, arg any) (*models.Student, error) {
	log := logger.FromContext(ctx).WithPrefix("student_repo")

	s, err := scanStudent(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("student not found: %v", arg)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to load student: %v", err)
		return nil, err
	}

	if err := r.loadCollections(ctx, s); err != nil {
		log.Error("failed to load student collections: %v", err)
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) List(ctx context.Context, filter repository.StudentFilter) ([]models.Student, error) {
	log := logger.FromContext(ctx).WithPrefix("student_repo")
	log.Debug("listing students: track=%s, name=%q", filter.Track, filter.Name)

	query := sqlBuilder.
		Select("id", "name", "track", "target_program", "target_net", "enrolled_at").
		From("students").
		OrderBy("name ASC")
	if filter.Track != "" {
		query = query.Where(squirrel.Eq{"track": string(filter.Track)})
	}
	if filter.Name != "" {
		query = query.Where(squirrel.Like{"LOWER(name)": "%" + strings.ToLower(filter.Name) + "%"})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query students: %v", err)
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			log.Error("failed to scan student row: %v", err)
			return nil, err
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range students {
		if err := r.loadCollections(ctx, &students[i]); err != nil {
			return nil, err
		}
	}
	log.Debug("found %d students", len(students))
	return students, nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("student_repo")
	log.Debug("deleting student: id=%s", id)

	// Child rows go with the student via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete student: %v", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
