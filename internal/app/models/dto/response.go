package dto

// MessageResponse represents a standard informational response
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error payload used by the import-style endpoints
// (course creation, score upload), matching their historical contract.
type ErrorResponse struct {
	Error string `json:"error"`
}
