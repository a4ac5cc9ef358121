package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ozank/classhub/internal/app/controllers"
	"github.com/ozank/classhub/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	scoreController *controllers.ScoreController,
) {
	api := router.Group("/api")

	// Auth
	api.POST("/auth", authController.Authenticate)

	// Courses
	api.GET("/courses", courseController.ListCourses)
	api.POST("/courses", courseController.CreateCourse)
	api.DELETE("/courses/:course_id", courseController.DeleteCourse)

	// Scores
	api.POST("/upload_scores/:course_id", scoreController.UploadScores)
	api.GET("/scores/:course_id", scoreController.GetScores)

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.MessageResponse{Message: "ok"})
	})
}
