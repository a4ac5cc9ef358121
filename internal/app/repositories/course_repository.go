package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/db"
	"github.com/ozank/classhub/internal/pkg/dberrors"
)

// Course error types
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseCodeTaken = errors.New("course code already in use")
)

// ICourseRepository defines database operations for courses and enrollments
type ICourseRepository interface {
	CreateWithRoster(ctx context.Context, course *models.Course, studentEmails []string) (int, error)
	GetByProfessor(ctx context.Context, professorID int64) ([]*models.Course, error)
	GetByStudentEmail(ctx context.Context, studentEmail string) ([]*models.Course, error)
	Delete(ctx context.Context, id int64) (*models.Course, error)
}

// CourseRepository handles database operations for courses and enrollments
type CourseRepository struct {
	db *db.PostgresDB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database *db.PostgresDB) *CourseRepository {
	return &CourseRepository{db: database}
}

// CreateWithRoster inserts the course and enrolls every roster email that
// belongs to a registered user, all in one transaction. Emails without a
// matching user are skipped, not errors. Returns the number of enrollments
// created.
func (r *CourseRepository) CreateWithRoster(ctx context.Context, course *models.Course, studentEmails []string) (int, error) {
	enrolled := 0

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insertCourse := `
			INSERT INTO courses (name, code, professor_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRow(ctx, insertCourse, course.Name, course.Code, course.ProfessorID).Scan(&course.ID); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
				return ErrCourseCodeTaken
			}
			return fmt.Errorf("error creating course: %w", err)
		}

		// The INSERT..SELECT only fires for emails of registered users, so
		// unknown emails fall through with zero rows affected.
		insertEnrollment := `
			INSERT INTO enrollments (course_id, student_email)
			SELECT $1, u.email FROM users u WHERE u.email = $2
			ON CONFLICT (course_id, student_email) DO NOTHING
		`
		for _, email := range studentEmails {
			tag, err := tx.Exec(ctx, insertEnrollment, course.ID, email)
			if err != nil {
				return fmt.Errorf("error enrolling %s: %w", email, err)
			}
			enrolled += int(tag.RowsAffected())
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return enrolled, nil
}

// GetByProfessor retrieves all courses created by a professor
func (r *CourseRepository) GetByProfessor(ctx context.Context, professorID int64) ([]*models.Course, error) {
	query := `
		SELECT id, name, code, professor_id
		FROM courses
		WHERE professor_id = $1
		ORDER BY id
	`
	return r.scanCourses(ctx, query, professorID)
}

// GetByStudentEmail resolves a student's enrollments to the matching courses
func (r *CourseRepository) GetByStudentEmail(ctx context.Context, studentEmail string) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.code, c.professor_id
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.student_email = $1
		ORDER BY c.id
	`
	return r.scanCourses(ctx, query, studentEmail)
}

// Delete removes a course; its enrollment rows go with it through the
// ON DELETE CASCADE constraint. The deleted course is returned so callers
// can reference its name.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		DELETE FROM courses
		WHERE id = $1
		RETURNING id, name, code, professor_id
	`

	var course models.Course
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.ProfessorID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error deleting course: %w", err)
	}

	return &course, nil
}

func (r *CourseRepository) scanCourses(ctx context.Context, query string, args ...any) ([]*models.Course, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Code,
			&course.ProfessorID,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
