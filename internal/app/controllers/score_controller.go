package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ozank/classhub/internal/app/models/dto"
	"github.com/ozank/classhub/internal/app/services"
	"github.com/ozank/classhub/internal/middleware"
	"github.com/ozank/classhub/internal/pkg/spreadsheet"
)

// ScoreController handles score ingestion and retrieval
type ScoreController struct {
	scoreService services.ScoreService
	logger       zerolog.Logger
}

// NewScoreController creates a new ScoreController
func NewScoreController(scoreService services.ScoreService, logger zerolog.Logger) *ScoreController {
	return &ScoreController{
		scoreService: scoreService,
		logger:       logger,
	}
}

// UploadScores replaces a course's score set from a spreadsheet
// @Summary Upload scores
// @Description Replaces all scores for the course with the spreadsheet's Name/Marks rows and returns the stored set with statistics
// @Tags scores
// @Accept mpfd
// @Produce json
// @Param course_id path int true "Course id"
// @Param file formData file true "Scores spreadsheet (.xlsx or .xls)"
// @Success 200 {object} dto.UploadScoresResponse "Stored scores and statistics"
// @Failure 400 {object} dto.ErrorResponse "Missing file or bad spreadsheet"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /upload_scores/{course_id} [post]
func (c *ScoreController) UploadScores(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("course_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid course ID"})
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil || !spreadsheet.HasAllowedExtension(file.Filename) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing or invalid file"})
		return
	}

	f, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	defer f.Close()

	rows, err := spreadsheet.ParseScores(f)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrColumnMissing) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Excel must contain Name and Marks columns",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	set, err := c.scoreService.Upload(ctx.Request.Context(), courseID, rows)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadScoresResponse{
		Message:    fmt.Sprintf("Scores uploaded for course ID: %d", courseID),
		Labels:     set.Labels,
		Scores:     set.Scores,
		Statistics: set.Statistics,
	})
}

// GetScores retrieves a course's scores with class statistics
// @Summary Get scores
// @Description Returns the course's scores with class statistics. With student_email, only rows whose name contains the email's local part are returned; if nothing matches, the full set is returned.
// @Tags scores
// @Produce json
// @Param course_id path int true "Course id"
// @Param student_email query string false "Student email for filtering"
// @Success 200 {object} dto.ScoresResponse "Scores, class average line and statistics"
// @Failure 404 {object} dto.MessageResponse "No scores stored for this course"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /scores/{course_id} [get]
func (c *ScoreController) GetScores(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("course_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No scores available for this course."})
		return
	}

	set, err := c.scoreService.Query(ctx.Request.Context(), courseID, ctx.Query("student_email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ScoresResponse{
		Labels:     set.Labels,
		Scores:     set.Scores,
		ClassAvg:   set.ClassAvg,
		Statistics: set.Statistics,
	})
}
