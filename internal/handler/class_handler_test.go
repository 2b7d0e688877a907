package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sorinslavic/graide-api/internal/config"
	"github.com/sorinslavic/graide-api/internal/handler"
	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
	"github.com/sorinslavic/graide-api/internal/router"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/utils"
)

// sheetStub stands in for the backing spreadsheet: rows are positional and a
// delete shifts every later row up by one.
type sheetStub struct {
	tables map[string][][]string
}

func newSheetStub() *sheetStub {
	return &sheetStub{tables: make(map[string][][]string)}
}

func (m *sheetStub) ReadAll(ctx context.Context, table string) ([][]string, error) {
	return m.tables[table], nil
}

func (m *sheetStub) Append(ctx context.Context, table string, rows [][]string) error {
	m.tables[table] = append(m.tables[table], rows...)
	return nil
}

func (m *sheetStub) UpdateRow(ctx context.Context, table string, rowIndex int, cells []string) error {
	rows := m.tables[table]
	if rowIndex < 1 || rowIndex > len(rows) {
		return fmt.Errorf("row index %d out of range", rowIndex)
	}
	rows[rowIndex-1] = cells
	return nil
}

func (m *sheetStub) DeleteRow(ctx context.Context, table string, rowIndex int) error {
	rows := m.tables[table]
	if rowIndex < 1 || rowIndex > len(rows) {
		return fmt.Errorf("row index %d out of range", rowIndex)
	}
	m.tables[table] = append(rows[:rowIndex-1], rows[rowIndex:]...)
	return nil
}

func setupGradingApp(t *testing.T) *fiber.App {
	t.Helper()

	store := newSheetStub()
	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)

	classRepo := repository.NewClassRepository(store)
	studentRepo := repository.NewStudentRepository(store)
	testRepo := repository.NewTestRepository(store)
	submissionRepo := repository.NewSubmissionRepository(store)
	detailRepo := repository.NewSubmissionDetailRepository(store)
	rubricRepo := repository.NewRubricRepository(store)

	classService := service.NewClassService(classRepo, validate, logger)
	studentService := service.NewStudentService(studentRepo, validate, logger)
	testService := service.NewTestService(testRepo, classRepo, validate, logger)
	submissionService := service.NewSubmissionService(submissionRepo, testRepo, studentRepo, classRepo, validate, logger)
	detailService := service.NewSubmissionDetailService(detailRepo, submissionRepo, validate, logger)
	rubricService := service.NewRubricService(rubricRepo, testRepo, validate, logger)

	app := fiber.New()
	router.Register(app, config.Config{AppName: "Test"}, router.Dependencies{
		ClassHandler:            handler.NewClassHandler(classService, logger),
		StudentHandler:          handler.NewStudentHandler(studentService, logger),
		TestHandler:             handler.NewTestHandler(testService, submissionService, rubricService, logger),
		SubmissionHandler:       handler.NewSubmissionHandler(submissionService, detailService, logger),
		SubmissionDetailHandler: handler.NewSubmissionDetailHandler(detailService, logger),
		RubricHandler:           handler.NewRubricHandler(rubricService, logger),
	})

	return app
}

func authedRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer test-token")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}

func TestClassHandlerCreateAndList(t *testing.T) {
	app := setupGradingApp(t)

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/classes", fiber.Map{
		"subject":     "Mathematics",
		"class_name":  "5a",
		"grade_level": 5,
		"school_year": "2025-2026",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Success bool         `json:"success"`
		Data    models.Class `json:"data"`
		Message string       `json:"message"`
	}
	decodeResponse(t, resp, &created)
	require.True(t, created.Success)
	require.Equal(t, "class created", created.Message)
	require.NotEmpty(t, created.Data.ID)
	require.Equal(t, "5A", created.Data.ClassName)

	listResp, err := app.Test(authedRequest(t, "GET", "/api/v1/classes?school_year=2025-2026", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var listed struct {
		Success bool           `json:"success"`
		Data    []models.Class `json:"data"`
	}
	decodeResponse(t, listResp, &listed)
	require.Len(t, listed.Data, 1)
}

func TestClassHandlerRequiresBearerToken(t *testing.T) {
	app := setupGradingApp(t)

	req := httptest.NewRequest("GET", "/api/v1/classes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/v1/classes", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestClassHandlerGetMissingReturnsNotFound(t *testing.T) {
	app := setupGradingApp(t)

	resp, err := app.Test(authedRequest(t, "GET", "/api/v1/classes/no-such-class", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var envelope utils.Envelope
	decodeResponse(t, resp, &envelope)
	require.False(t, envelope.Success)
	require.Equal(t, "class not found", envelope.Message)
}

func TestClassHandlerRejectsInvalidGradeLevel(t *testing.T) {
	app := setupGradingApp(t)

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/classes", fiber.Map{
		"subject":     "Mathematics",
		"class_name":  "12C",
		"grade_level": 12,
		"school_year": "2025-2026",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTestHandlerRejectsDeadlineBeforeGivenDate(t *testing.T) {
	app := setupGradingApp(t)

	class := createClass(t, app, "5A")

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/tests", fiber.Map{
		"name":           "Fractions homework",
		"type":           "homework",
		"class_ids":      []string{class.ID},
		"given_at":       "2026-03-10",
		"deadline":       "2026-03-01",
		"grading_system": "1-10",
		"max_score":      10,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var envelope utils.Envelope
	decodeResponse(t, resp, &envelope)
	require.False(t, envelope.Success)
}

func createClass(t *testing.T, app *fiber.App, name string) models.Class {
	t.Helper()

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/classes", fiber.Map{
		"subject":     "Mathematics",
		"class_name":  name,
		"grade_level": 5,
		"school_year": "2025-2026",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Class `json:"data"`
	}
	decodeResponse(t, resp, &created)
	return created.Data
}
