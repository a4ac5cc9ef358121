package dto

// AuthRequest represents the single auth endpoint's payload. All four fields
// are required; action selects between signup and login.
type AuthRequest struct {
	Action   string `json:"action" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Auth actions
const (
	ActionSignup = "signup"
	ActionLogin  = "login"
)

// SignupResponse confirms a created account
type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginResponse carries the authenticated identity
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}
