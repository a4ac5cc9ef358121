package repositories

import (
	"github.com/ozank/classhub/internal/db"
)

// Repositories is the container for all repository instances
type Repositories struct {
	UserRepository   *UserRepository
	CourseRepository *CourseRepository
	ScoreRepository  *ScoreRepository
}

// NewRepositories creates all repositories over one shared connection pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(database),
		CourseRepository: NewCourseRepository(database),
		ScoreRepository:  NewScoreRepository(database),
	}
}
