package dto

// CourseResponse is one course in a listing. ProfessorID is only present in
// student listings; professors already know their own id.
type CourseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	ProfessorID int64  `json:"professor_id,omitempty"`
}

// CreateCourseResponse confirms a created course
type CreateCourseResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
