package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/db"
)

// IScoreRepository defines database operations for course scores
type IScoreRepository interface {
	Replace(ctx context.Context, courseID int64, scores []models.Score) error
	ListByCourse(ctx context.Context, courseID int64) ([]models.Score, error)
}

// ScoreRepository handles database operations for course scores
type ScoreRepository struct {
	db *db.PostgresDB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(database *db.PostgresDB) *ScoreRepository {
	return &ScoreRepository{db: database}
}

// Replace clears all prior scores for the course and inserts the new set in
// a single transaction, so an upload is full-replace and a mid-upload
// failure leaves the previous score set intact. Duplicate names within one
// upload collapse to the last mark through the upsert.
func (r *ScoreRepository) Replace(ctx context.Context, courseID int64, scores []models.Score) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM scores WHERE course_id = $1`, courseID); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}

		upsert := `
			INSERT INTO scores (course_id, student_name, marks)
			VALUES ($1, $2, $3)
			ON CONFLICT (course_id, student_name) DO UPDATE SET marks = EXCLUDED.marks
		`
		for _, score := range scores {
			if _, err := tx.Exec(ctx, upsert, courseID, score.StudentName, score.Marks); err != nil {
				return fmt.Errorf("error storing score for %s: %w", score.StudentName, err)
			}
		}

		return nil
	})
}

// ListByCourse retrieves all scores for a course in storage order
func (r *ScoreRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Score, error) {
	query := `
		SELECT id, course_id, student_name, marks
		FROM scores
		WHERE course_id = $1
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing scores: %w", err)
	}
	defer rows.Close()

	var scores []models.Score
	for rows.Next() {
		var score models.Score
		if err := rows.Scan(
			&score.ID,
			&score.CourseID,
			&score.StudentName,
			&score.Marks,
		); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}
