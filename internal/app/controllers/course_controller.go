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

// CourseController handles course listing, creation and deletion
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses lists courses for a professor or a student
// @Summary List courses
// @Description Lists courses filtered by exactly one of professor_id or student_email
// @Tags courses
// @Produce json
// @Param professor_id query int false "Professor id"
// @Param student_email query string false "Student email"
// @Success 200 {array} dto.CourseResponse "Courses"
// @Failure 400 {object} dto.MessageResponse "Missing or invalid filter"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	professorIDStr := ctx.Query("professor_id")
	studentEmail := ctx.Query("student_email")

	switch {
	case professorIDStr != "":
		professorID, err := strconv.ParseInt(professorIDStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid professor_id"})
			return
		}

		courses, err := c.courseService.ListForProfessor(ctx.Request.Context(), professorID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		list := make([]dto.CourseResponse, 0, len(courses))
		for _, course := range courses {
			list = append(list, dto.CourseResponse{
				ID:   course.ID,
				Name: course.Name,
				Code: course.Code,
			})
		}
		ctx.JSON(http.StatusOK, list)

	case studentEmail != "":
		courses, err := c.courseService.ListForStudent(ctx.Request.Context(), studentEmail)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		list := make([]dto.CourseResponse, 0, len(courses))
		for _, course := range courses {
			list = append(list, dto.CourseResponse{
				ID:          course.ID,
				Name:        course.Name,
				Code:        course.Code,
				ProfessorID: course.ProfessorID,
			})
		}
		ctx.JSON(http.StatusOK, list)

	default:
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: "Missing professor_id or student_email for filtering",
		})
	}
}

// CreateCourse creates a course from an uploaded roster spreadsheet
// @Summary Create a course
// @Description Creates a course and enrolls the students listed in the roster spreadsheet (Name/Email columns). Roster emails without a registered account are skipped.
// @Tags courses
// @Accept mpfd
// @Produce json
// @Param name formData string true "Course name"
// @Param professor_id formData int true "Professor id"
// @Param file formData file true "Roster spreadsheet (.xlsx or .xls)"
// @Success 201 {object} dto.CreateCourseResponse "Course created"
// @Failure 400 {object} dto.ErrorResponse "Missing fields, unknown professor or bad spreadsheet"
// @Failure 500 {object} dto.ErrorResponse "Import failure"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	name := ctx.PostForm("name")
	professorIDStr := ctx.PostForm("professor_id")
	file, fileErr := ctx.FormFile("file")

	if name == "" || professorIDStr == "" || fileErr != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing course name, professor ID, or Excel file",
		})
		return
	}

	professorID, err := strconv.ParseInt(professorIDStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid professor ID"})
		return
	}

	if !spreadsheet.HasAllowedExtension(file.Filename) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "No Excel file uploaded or invalid file format",
		})
		return
	}

	f, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: fmt.Sprintf("Error processing Excel file: %s", err),
		})
		return
	}
	defer f.Close()

	roster, err := spreadsheet.ParseRoster(f)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrColumnMissing) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Excel file must contain 'Name' and 'Email' columns",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: fmt.Sprintf("Error processing Excel file: %s", err),
		})
		return
	}

	course, enrolled, err := c.courseService.CreateFromRoster(ctx.Request.Context(), name, professorID, roster)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("courseID", course.ID).
		Str("code", course.Code).
		Int("enrolled", enrolled).
		Msg("Course created from roster")

	ctx.JSON(http.StatusCreated, dto.CreateCourseResponse{
		Message: fmt.Sprintf("Course '%s' created with code '%s' and students enrolled.", course.Name, course.Code),
		ID:      course.ID,
	})
}

// DeleteCourse deletes a course and its enrollments
// @Summary Delete a course
// @Description Deletes a course by id; its enrollment rows are removed with it
// @Tags courses
// @Produce json
// @Param course_id path int true "Course id"
// @Success 200 {object} dto.MessageResponse "Course deleted"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{course_id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("course_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Course not found."})
		return
	}

	course, err := c.courseService.Delete(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Course '%s' deleted successfully.", course.Name),
	})
}
