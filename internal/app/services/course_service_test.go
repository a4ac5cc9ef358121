package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/app/repositories"
	"github.com/ozank/classhub/internal/pkg/apperrors"
	"github.com/ozank/classhub/internal/pkg/spreadsheet"
)

var courseCodePattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

func TestGenerateCourseCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateCourseCode()
		require.NoError(t, err)
		assert.Regexp(t, courseCodePattern, code)
		seen[code] = true
	}
	// 4 random bytes; 50 draws colliding would be astronomically unlikely.
	assert.Greater(t, len(seen), 1)
}

func TestCreateFromRoster(t *testing.T) {
	userRepo := &stubUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			require.Equal(t, int64(1), id)
			return &models.User{ID: 1, Email: "prof@example.edu", Role: string(models.RoleProfessor)}, nil
		},
	}

	var gotEmails []string
	courseRepo := &stubCourseRepo{
		createWithRosterFn: func(ctx context.Context, course *models.Course, studentEmails []string) (int, error) {
			course.ID = 42
			gotEmails = studentEmails
			return 1, nil
		},
	}
	svc := NewCourseService(courseRepo, userRepo, zerolog.Nop())

	roster := []spreadsheet.RosterRow{
		{Name: "Alice Adams", Email: "alice@example.edu"},
		{Name: "Ghost Student", Email: "ghost@example.edu"},
	}
	course, enrolled, err := svc.CreateFromRoster(context.Background(), "Algorithms", 1, roster)
	require.NoError(t, err)

	assert.Equal(t, int64(42), course.ID)
	assert.Equal(t, "Algorithms", course.Name)
	assert.Equal(t, int64(1), course.ProfessorID)
	assert.Regexp(t, courseCodePattern, course.Code)
	assert.Equal(t, []string{"alice@example.edu", "ghost@example.edu"}, gotEmails)
	assert.Equal(t, 1, enrolled)
}

func TestCreateFromRosterUnknownProfessor(t *testing.T) {
	svc := NewCourseService(&stubCourseRepo{}, &stubUserRepo{}, zerolog.Nop())

	_, _, err := svc.CreateFromRoster(context.Background(), "Algorithms", 99, nil)
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)
}

func TestCreateFromRosterRetriesOnCodeCollision(t *testing.T) {
	userRepo := &stubUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}

	attempts := 0
	var codes []string
	courseRepo := &stubCourseRepo{
		createWithRosterFn: func(ctx context.Context, course *models.Course, studentEmails []string) (int, error) {
			attempts++
			codes = append(codes, course.Code)
			if attempts < 3 {
				return 0, repositories.ErrCourseCodeTaken
			}
			course.ID = 5
			return 0, nil
		},
	}
	svc := NewCourseService(courseRepo, userRepo, zerolog.Nop())

	course, _, err := svc.CreateFromRoster(context.Background(), "Databases", 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, attempts)
	assert.Equal(t, int64(5), course.ID)
	assert.NotEqual(t, codes[0], codes[2])
}

func TestCreateFromRosterGivesUpAfterCollisions(t *testing.T) {
	userRepo := &stubUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
	courseRepo := &stubCourseRepo{
		createWithRosterFn: func(ctx context.Context, course *models.Course, studentEmails []string) (int, error) {
			return 0, repositories.ErrCourseCodeTaken
		},
	}
	svc := NewCourseService(courseRepo, userRepo, zerolog.Nop())

	_, _, err := svc.CreateFromRoster(context.Background(), "Databases", 1, nil)
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
}

func TestCreateFromRosterStorageError(t *testing.T) {
	userRepo := &stubUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
	courseRepo := &stubCourseRepo{
		createWithRosterFn: func(ctx context.Context, course *models.Course, studentEmails []string) (int, error) {
			return 0, errors.New("connection reset")
		},
	}
	svc := NewCourseService(courseRepo, userRepo, zerolog.Nop())

	_, _, err := svc.CreateFromRoster(context.Background(), "Databases", 1, nil)
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
}

func TestDeleteCourse(t *testing.T) {
	courseRepo := &stubCourseRepo{
		deleteFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id, Name: "Algorithms"}, nil
		},
	}
	svc := NewCourseService(courseRepo, &stubUserRepo{}, zerolog.Nop())

	course, err := svc.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", course.Name)
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc := NewCourseService(&stubCourseRepo{}, &stubUserRepo{}, zerolog.Nop())

	_, err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestListForProfessor(t *testing.T) {
	courseRepo := &stubCourseRepo{
		getByProfessorFn: func(ctx context.Context, professorID int64) ([]*models.Course, error) {
			return []*models.Course{{ID: 1, Name: "Algorithms", ProfessorID: professorID}}, nil
		},
	}
	svc := NewCourseService(courseRepo, &stubUserRepo{}, zerolog.Nop())

	courses, err := svc.ListForProfessor(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Algorithms", courses[0].Name)
}

func TestListForStudent(t *testing.T) {
	courseRepo := &stubCourseRepo{
		getByStudentFn: func(ctx context.Context, studentEmail string) ([]*models.Course, error) {
			assert.Equal(t, "stu@example.edu", studentEmail)
			return []*models.Course{{ID: 2, Name: "Databases"}}, nil
		},
	}
	svc := NewCourseService(courseRepo, &stubUserRepo{}, zerolog.Nop())

	courses, err := svc.ListForStudent(context.Background(), "stu@example.edu")
	require.NoError(t, err)
	require.Len(t, courses, 1)
}
