package services

import (
	"context"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/app/repositories"
)

// In-memory repository stubs. Each behavior a test needs is injected as a
// function; unset functions fall back to a not-found result.

type stubUserRepo struct {
	createFn            func(ctx context.Context, user *models.User) error
	getByEmailAndRoleFn func(ctx context.Context, email, role string) (*models.User, error)
	getByIDFn           func(ctx context.Context, id int64) (*models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	if s.getByEmailAndRoleFn != nil {
		return s.getByEmailAndRoleFn(ctx, email, role)
	}
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type stubCourseRepo struct {
	createWithRosterFn func(ctx context.Context, course *models.Course, studentEmails []string) (int, error)
	getByProfessorFn   func(ctx context.Context, professorID int64) ([]*models.Course, error)
	getByStudentFn     func(ctx context.Context, studentEmail string) ([]*models.Course, error)
	deleteFn           func(ctx context.Context, id int64) (*models.Course, error)
}

func (s *stubCourseRepo) CreateWithRoster(ctx context.Context, course *models.Course, studentEmails []string) (int, error) {
	if s.createWithRosterFn != nil {
		return s.createWithRosterFn(ctx, course, studentEmails)
	}
	return 0, nil
}

func (s *stubCourseRepo) GetByProfessor(ctx context.Context, professorID int64) ([]*models.Course, error) {
	if s.getByProfessorFn != nil {
		return s.getByProfessorFn(ctx, professorID)
	}
	return nil, nil
}

func (s *stubCourseRepo) GetByStudentEmail(ctx context.Context, studentEmail string) ([]*models.Course, error) {
	if s.getByStudentFn != nil {
		return s.getByStudentFn(ctx, studentEmail)
	}
	return nil, nil
}

func (s *stubCourseRepo) Delete(ctx context.Context, id int64) (*models.Course, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil, repositories.ErrCourseNotFound
}

type stubScoreRepo struct {
	replaceFn      func(ctx context.Context, courseID int64, scores []models.Score) error
	listByCourseFn func(ctx context.Context, courseID int64) ([]models.Score, error)
}

func (s *stubScoreRepo) Replace(ctx context.Context, courseID int64, scores []models.Score) error {
	if s.replaceFn != nil {
		return s.replaceFn(ctx, courseID, scores)
	}
	return nil
}

func (s *stubScoreRepo) ListByCourse(ctx context.Context, courseID int64) ([]models.Score, error) {
	if s.listByCourseFn != nil {
		return s.listByCourseFn(ctx, courseID)
	}
	return nil, nil
}
