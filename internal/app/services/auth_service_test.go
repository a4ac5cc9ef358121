package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/app/repositories"
	"github.com/ozank/classhub/internal/pkg/apperrors"
	"github.com/ozank/classhub/internal/pkg/auth"
)

func TestSignupHashesPassword(t *testing.T) {
	var created *models.User
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 7
			created = user
			return nil
		},
	}
	svc := NewAuthService(repo, zerolog.Nop())

	user, err := svc.Signup(context.Background(), "prof@example.edu", "plaintext", string(models.RoleProfessor))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "prof@example.edu", created.Email)
	assert.Equal(t, string(models.RoleProfessor), created.Role)
	assert.NotEqual(t, "plaintext", created.Password)
	assert.True(t, auth.CheckPassword(created.Password, "plaintext"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			return repositories.ErrEmailAlreadyExists
		},
	}
	svc := NewAuthService(repo, zerolog.Nop())

	_, err := svc.Signup(context.Background(), "taken@example.edu", "pw", string(models.RoleStudent))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("correct-pw")
	require.NoError(t, err)

	repo := &stubUserRepo{
		getByEmailAndRoleFn: func(ctx context.Context, email, role string) (*models.User, error) {
			assert.Equal(t, "stu@example.edu", email)
			assert.Equal(t, string(models.RoleStudent), role)
			return &models.User{ID: 3, Email: email, Password: hash, Role: role}, nil
		},
	}
	svc := NewAuthService(repo, zerolog.Nop())

	user, err := svc.Login(context.Background(), "stu@example.edu", "correct-pw", string(models.RoleStudent))
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

// Unknown user, wrong role and wrong password must all collapse into the
// same error.
func TestLoginMismatchesAreUniform(t *testing.T) {
	hash, err := auth.HashPassword("correct-pw")
	require.NoError(t, err)

	repo := &stubUserRepo{
		getByEmailAndRoleFn: func(ctx context.Context, email, role string) (*models.User, error) {
			if email == "stu@example.edu" && role == string(models.RoleStudent) {
				return &models.User{ID: 3, Email: email, Password: hash, Role: role}, nil
			}
			return nil, repositories.ErrUserNotFound
		},
	}
	svc := NewAuthService(repo, zerolog.Nop())

	_, err = svc.Login(context.Background(), "nobody@example.edu", "correct-pw", string(models.RoleStudent))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "stu@example.edu", "correct-pw", string(models.RoleProfessor))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "stu@example.edu", "wrong-pw", string(models.RoleStudent))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
