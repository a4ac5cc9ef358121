package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/app/repositories"
	"github.com/ozank/classhub/internal/pkg/apperrors"
	"github.com/ozank/classhub/internal/pkg/spreadsheet"
	"github.com/ozank/classhub/internal/pkg/stats"
)

// ScoreSet is a course's scores as parallel label/mark slices in storage
// order, with the class-wide statistics computed over the full set.
type ScoreSet struct {
	Labels     []string
	Scores     []int
	ClassAvg   []float64
	Statistics stats.Summary
}

// ScoreService handles score ingestion and statistics-augmented retrieval
type ScoreService interface {
	Upload(ctx context.Context, courseID int64, rows []spreadsheet.ScoreRow) (*ScoreSet, error)
	Query(ctx context.Context, courseID int64, studentEmail string) (*ScoreSet, error)
}

type scoreService struct {
	scoreRepo repositories.IScoreRepository
	logger    zerolog.Logger
}

// NewScoreService creates a new score service instance
func NewScoreService(scoreRepo repositories.IScoreRepository, logger zerolog.Logger) ScoreService {
	return &scoreService{
		scoreRepo: scoreRepo,
		logger:    logger,
	}
}

// Upload replaces the course's whole score set with the uploaded rows and
// returns the stored set as re-read from the database.
func (s *scoreService) Upload(ctx context.Context, courseID int64, rows []spreadsheet.ScoreRow) (*ScoreSet, error) {
	scores := make([]models.Score, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, models.Score{
			CourseID:    courseID,
			StudentName: row.Name,
			Marks:       row.Marks,
		})
	}

	if err := s.scoreRepo.Replace(ctx, courseID, scores); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	stored, err := s.scoreRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	s.logger.Info().Int64("courseID", courseID).Int("count", len(stored)).Msg("Scores uploaded")

	set := buildScoreSet(stored)
	return set, nil
}

// Query returns the course's scores with class statistics. With a
// studentEmail, rows whose name contains the email's local part are
// returned instead; when nothing matches, the full set is returned
// unfiltered rather than an empty result.
func (s *scoreService) Query(ctx context.Context, courseID int64, studentEmail string) (*ScoreSet, error) {
	stored, err := s.scoreRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if len(stored) == 0 {
		return nil, apperrors.ErrScoresNotFound
	}

	set := buildScoreSet(stored)

	if studentEmail != "" {
		labels, scores := filterByStudent(set.Labels, set.Scores, studentEmail)
		if len(labels) > 0 {
			set.Labels = labels
			set.Scores = scores
			set.ClassAvg = flatAverage(set.Statistics.Average, len(scores))
		}
	}

	return set, nil
}

func buildScoreSet(stored []models.Score) *ScoreSet {
	labels := make([]string, len(stored))
	scores := make([]int, len(stored))
	for i, score := range stored {
		labels[i] = score.StudentName
		scores[i] = score.Marks
	}

	summary := stats.Summarize(scores)
	return &ScoreSet{
		Labels:     labels,
		Scores:     scores,
		ClassAvg:   flatAverage(summary.Average, len(scores)),
		Statistics: summary,
	}
}

// filterByStudent matches stored names against the part of the email before
// "@", case-insensitively and as a substring. No foreign key ties score rows
// to identities, so this name heuristic is the only available link.
func filterByStudent(labels []string, scores []int, studentEmail string) ([]string, []int) {
	key := strings.ToLower(strings.Split(studentEmail, "@")[0])

	var matchedLabels []string
	var matchedScores []int
	for i, name := range labels {
		if strings.Contains(strings.ToLower(name), key) {
			matchedLabels = append(matchedLabels, name)
			matchedScores = append(matchedScores, scores[i])
		}
	}
	return matchedLabels, matchedScores
}

func flatAverage(avg float64, n int) []float64 {
	classAvg := make([]float64, n)
	for i := range classAvg {
		classAvg[i] = avg
	}
	return classAvg
}
