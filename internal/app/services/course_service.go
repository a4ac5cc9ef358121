package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/app/repositories"
	"github.com/ozank/classhub/internal/pkg/apperrors"
	"github.com/ozank/classhub/internal/pkg/spreadsheet"
)

// Attempts to find a free course code before giving up. Codes are 4 random
// bytes, so collisions are rare; the retry keeps the unique constraint from
// surfacing as a storage error.
const maxCodeAttempts = 3

// CourseService handles course listing, roster import and deletion
type CourseService interface {
	ListForProfessor(ctx context.Context, professorID int64) ([]*models.Course, error)
	ListForStudent(ctx context.Context, studentEmail string) ([]*models.Course, error)
	CreateFromRoster(ctx context.Context, name string, professorID int64, roster []spreadsheet.RosterRow) (*models.Course, int, error)
	Delete(ctx context.Context, id int64) (*models.Course, error)
}

type courseService struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// ListForProfessor returns all courses a professor created
func (s *courseService) ListForProfessor(ctx context.Context, professorID int64) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetByProfessor(ctx, professorID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

// ListForStudent returns all courses a student is enrolled in
func (s *courseService) ListForStudent(ctx context.Context, studentEmail string) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetByStudentEmail(ctx, studentEmail)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

// CreateFromRoster creates a course with a fresh random code and enrolls the
// roster's students. Roster emails without a registered user are skipped
// silently. Returns the course and the number of students enrolled.
func (s *courseService) CreateFromRoster(ctx context.Context, name string, professorID int64, roster []spreadsheet.RosterRow) (*models.Course, int, error) {
	professor, err := s.userRepo.GetByID(ctx, professorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, 0, apperrors.ErrProfessorNotFound
		}
		return nil, 0, fmt.Errorf("error checking professor: %w", err)
	}

	emails := make([]string, 0, len(roster))
	for _, row := range roster {
		emails = append(emails, row.Email)
	}

	var course *models.Course
	var enrolled int
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateCourseCode()
		if err != nil {
			return nil, 0, fmt.Errorf("error generating course code: %w", err)
		}

		course = &models.Course{
			Name:        name,
			Code:        code,
			ProfessorID: professor.ID,
		}

		enrolled, err = s.courseRepo.CreateWithRoster(ctx, course, emails)
		if err == nil {
			break
		}
		if errors.Is(err, repositories.ErrCourseCodeTaken) {
			s.logger.Warn().Str("code", code).Msg("Course code collision, retrying")
			course = nil
			continue
		}
		return nil, 0, apperrors.NewStorageError(err)
	}
	if course == nil {
		return nil, 0, apperrors.NewStorageError(errors.New("could not allocate a unique course code"))
	}

	if skipped := len(emails) - enrolled; skipped > 0 {
		s.logger.Info().
			Int64("courseID", course.ID).
			Int("enrolled", enrolled).
			Int("skipped", skipped).
			Msg("Roster import skipped unregistered students")
	}

	return course, enrolled, nil
}

// Delete removes a course and its enrollments
func (s *courseService) Delete(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return course, nil
}

// generateCourseCode renders 4 random bytes as 8 uppercase hex characters
func generateCourseCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", buf), nil
}
