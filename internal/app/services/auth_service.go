package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/app/repositories"
	"github.com/ozank/classhub/internal/pkg/apperrors"
	"github.com/ozank/classhub/internal/pkg/auth"
)

// AuthService handles signup and login
type AuthService interface {
	Signup(ctx context.Context, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password, role string) (*models.User, error)
}

type authService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup registers a new user with a hashed password. The email must not be
// registered yet; the role is stored as the client sent it.
func (s *authService) Signup(ctx context.Context, email, password, role string) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", user.Role).Msg("User signed up")
	return user, nil
}

// Login authenticates a user by email, role and password. Every mismatch
// returns the same ErrInvalidCredentials so callers cannot probe which part
// was wrong.
func (s *authService) Login(ctx context.Context, email, password, role string) (*models.User, error) {
	user, err := s.userRepo.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return user, nil
}
