// Package models contains the database entities of the application.
package models

// RoleType represents a user role
type RoleType string

const (
	RoleProfessor RoleType = "professor"
	RoleStudent   RoleType = "student"
)

// User defines the user model based on the 'users' table. The role column is
// stored as free text; RoleProfessor/RoleStudent are the values the clients
// send.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role     string `json:"role" db:"role"`
}

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Code        string `json:"code" db:"code"` // 8 uppercase hex characters
	ProfessorID int64  `json:"professor_id" db:"professor_id"`
}

// Enrollment links a course to a student's email. (course_id, student_email)
// pairs are unique.
type Enrollment struct {
	ID           int64  `json:"id" db:"id"`
	CourseID     int64  `json:"course_id" db:"course_id"`
	StudentEmail string `json:"student_email" db:"student_email"`
}

// Score is one student's mark in a course, based on the 'scores' table.
// (course_id, student_name) pairs are unique; score rows reference courses by
// id only, with no foreign key, mirroring the legacy per-course score store.
type Score struct {
	ID          int64  `json:"id" db:"id"`
	CourseID    int64  `json:"course_id" db:"course_id"`
	StudentName string `json:"student_name" db:"student_name"`
	Marks       int    `json:"marks" db:"marks"`
}
