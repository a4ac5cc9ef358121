// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ozank/classhub/internal/app/models/dto"
	"github.com/ozank/classhub/internal/app/services"
	"github.com/ozank/classhub/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Authenticate dispatches signup and login through one endpoint
// @Summary Sign up or log in
// @Description Creates an account (action=signup) or authenticates an existing one (action=login)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AuthRequest true "Credentials and action"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Success 201 {object} dto.SignupResponse "User created"
// @Failure 400 {object} dto.MessageResponse "Missing fields, duplicate email or unknown action"
// @Failure 401 {object} dto.MessageResponse "Invalid credentials"
// @Router /auth [post]
func (c *AuthController) Authenticate(ctx *gin.Context) {
	var req dto.AuthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid auth request payload")
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: "Invalid request, missing required fields.",
		})
		return
	}

	switch req.Action {
	case dto.ActionSignup:
		user, err := c.authService.Signup(ctx.Request.Context(), req.Email, req.Password, req.Role)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.SignupResponse{
			Message: "User successfully signed up!",
			UserID:  user.ID,
		})

	case dto.ActionLogin:
		user, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password, req.Role)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.LoginResponse{
			Message: "Login successful!",
			UserID:  user.ID,
			Email:   user.Email,
			Role:    user.Role,
		})

	default:
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid action!"})
	}
}
