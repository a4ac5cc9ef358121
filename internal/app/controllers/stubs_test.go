package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ozank/classhub/internal/app/models"
	"github.com/ozank/classhub/internal/app/services"
	"github.com/ozank/classhub/internal/pkg/spreadsheet"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Service stubs with injectable behavior per test.

type stubAuthService struct {
	signupFn func(ctx context.Context, email, password, role string) (*models.User, error)
	loginFn  func(ctx context.Context, email, password, role string) (*models.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, email, password, role string) (*models.User, error) {
	return s.signupFn(ctx, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password, role string) (*models.User, error) {
	return s.loginFn(ctx, email, password, role)
}

type stubCourseService struct {
	listForProfessorFn func(ctx context.Context, professorID int64) ([]*models.Course, error)
	listForStudentFn   func(ctx context.Context, studentEmail string) ([]*models.Course, error)
	createFromRosterFn func(ctx context.Context, name string, professorID int64, roster []spreadsheet.RosterRow) (*models.Course, int, error)
	deleteFn           func(ctx context.Context, id int64) (*models.Course, error)
}

func (s *stubCourseService) ListForProfessor(ctx context.Context, professorID int64) ([]*models.Course, error) {
	return s.listForProfessorFn(ctx, professorID)
}

func (s *stubCourseService) ListForStudent(ctx context.Context, studentEmail string) ([]*models.Course, error) {
	return s.listForStudentFn(ctx, studentEmail)
}

func (s *stubCourseService) CreateFromRoster(ctx context.Context, name string, professorID int64, roster []spreadsheet.RosterRow) (*models.Course, int, error) {
	return s.createFromRosterFn(ctx, name, professorID, roster)
}

func (s *stubCourseService) Delete(ctx context.Context, id int64) (*models.Course, error) {
	return s.deleteFn(ctx, id)
}

type stubScoreService struct {
	uploadFn func(ctx context.Context, courseID int64, rows []spreadsheet.ScoreRow) (*services.ScoreSet, error)
	queryFn  func(ctx context.Context, courseID int64, studentEmail string) (*services.ScoreSet, error)
}

func (s *stubScoreService) Upload(ctx context.Context, courseID int64, rows []spreadsheet.ScoreRow) (*services.ScoreSet, error) {
	return s.uploadFn(ctx, courseID, rows)
}

func (s *stubScoreService) Query(ctx context.Context, courseID int64, studentEmail string) (*services.ScoreSet, error) {
	return s.queryFn(ctx, courseID, studentEmail)
}

// perform runs a request against a router and records the response.
func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// workbookBytes builds an in-memory xlsx with the given rows.
func workbookBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// multipartUpload builds a multipart form body with the given fields and one
// file part named "file".
func multipartUpload(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}
