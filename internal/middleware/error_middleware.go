package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ozank/classhub/internal/app/models/dto"
	"github.com/ozank/classhub/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into HTTP responses at the
// request boundary. Auth and lookup failures use the message payload; import
// and storage failures use the error payload, keeping each endpoint's
// historical contract.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// One message for every mismatch so account existence never leaks.
		c.JSON(401, dto.MessageResponse{Message: "Invalid credentials"})

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(400, dto.MessageResponse{Message: "Email already registered."})

	case errors.Is(err, apperrors.ErrProfessorNotFound):
		c.JSON(400, dto.ErrorResponse{Error: "Professor not found"})

	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.MessageResponse{Message: "Course not found."})

	case errors.Is(err, apperrors.ErrScoresNotFound):
		c.JSON(404, dto.MessageResponse{Message: "No scores available for this course."})

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.MessageResponse{Message: err.Error()})

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.MessageResponse{Message: err.Error()})

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(400, dto.MessageResponse{Message: err.Error()})

	case errors.Is(err, apperrors.ErrStorageFailure):
		c.JSON(500, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(500, dto.ErrorResponse{Error: err.Error()})
	}
}
