package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/utils"
)

func createStudent(t *testing.T, app *fiber.App, className, name string) models.Student {
	t.Helper()

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/students", fiber.Map{
		"class_name":  className,
		"school_year": "2025-2026",
		"name":        name,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Student `json:"data"`
	}
	decodeResponse(t, resp, &created)
	return created.Data
}

func createTest(t *testing.T, app *fiber.App, classID string) models.Test {
	t.Helper()

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/tests", fiber.Map{
		"name":           "Unit test fractions",
		"type":           "test",
		"class_ids":      []string{classID},
		"given_at":       "2026-03-05",
		"grading_system": "1-10",
		"max_score":      10,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Test `json:"data"`
	}
	decodeResponse(t, resp, &created)
	return created.Data
}

func TestSubmissionHandlerBulkCreateEnrolsClass(t *testing.T) {
	app := setupGradingApp(t)

	class := createClass(t, app, "5A")
	createStudent(t, app, "5A", "Ana Ionescu")
	createStudent(t, app, "5A", "Dan Popa")
	test := createTest(t, app, class.ID)

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/tests/"+test.ID+"/submissions/bulk", fiber.Map{
		"class_id": class.ID,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var bulk struct {
		Data service.BulkCreateResult `json:"data"`
	}
	decodeResponse(t, resp, &bulk)
	require.Len(t, bulk.Data.Created, 2)
	require.Zero(t, bulk.Data.Skipped)

	// A retry skips everything already enrolled.
	resp, err = app.Test(authedRequest(t, "POST", "/api/v1/tests/"+test.ID+"/submissions/bulk", fiber.Map{
		"class_id": class.ID,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	decodeResponse(t, resp, &bulk)
	require.Empty(t, bulk.Data.Created)
	require.Equal(t, 2, bulk.Data.Skipped)
}

func TestSubmissionHandlerGradingLifecycle(t *testing.T) {
	app := setupGradingApp(t)

	class := createClass(t, app, "5A")
	student := createStudent(t, app, "5A", "Ana Ionescu")
	test := createTest(t, app, class.ID)

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/submissions", fiber.Map{
		"test_id":    test.ID,
		"student_id": student.ID,
		"class_id":   class.ID,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Submission `json:"data"`
	}
	decodeResponse(t, resp, &created)
	submission := created.Data
	require.Equal(t, models.SubmissionStatusNew, submission.Status)

	// Finalizing straight from new is not a legal step.
	resp, err = app.Test(authedRequest(t, "POST", "/api/v1/submissions/"+submission.ID+"/finalize", fiber.Map{
		"grade": 9.5,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "POST", "/api/v1/submissions/"+submission.ID+"/start", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "POST", "/api/v1/submissions/"+submission.ID+"/finalize", fiber.Map{
		"grade": 9.5,
		"notes": "solid work",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var finalized struct {
		Data models.Submission `json:"data"`
	}
	decodeResponse(t, resp, &finalized)
	require.Equal(t, models.SubmissionStatusCorrected, finalized.Data.Status)
	require.NotNil(t, finalized.Data.Grade)
	require.Equal(t, 9.5, *finalized.Data.Grade)
	require.NotEmpty(t, finalized.Data.CorrectedAt)

	resp, err = app.Test(authedRequest(t, "POST", "/api/v1/submissions/"+submission.ID+"/reopen", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reopened struct {
		Data models.Submission `json:"data"`
	}
	decodeResponse(t, resp, &reopened)
	require.Equal(t, models.SubmissionStatusCorrecting, reopened.Data.Status)
	require.NotNil(t, reopened.Data.Grade)
}

func TestSubmissionHandlerRejectsDuplicatePair(t *testing.T) {
	app := setupGradingApp(t)

	class := createClass(t, app, "5A")
	student := createStudent(t, app, "5A", "Ana Ionescu")
	test := createTest(t, app, class.ID)

	payload := fiber.Map{
		"test_id":    test.ID,
		"student_id": student.ID,
		"class_id":   class.ID,
	}

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/submissions", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "POST", "/api/v1/submissions", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var envelope utils.Envelope
	decodeResponse(t, resp, &envelope)
	require.False(t, envelope.Success)
}

func TestSubmissionHandlerBulkRejectsUnassignedClass(t *testing.T) {
	app := setupGradingApp(t)

	assigned := createClass(t, app, "5A")
	other := createClass(t, app, "6B")
	test := createTest(t, app, assigned.ID)

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/tests/"+test.ID+"/submissions/bulk", fiber.Map{
		"class_id": other.ID,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmissionHandlerDetailsRoundTrip(t *testing.T) {
	app := setupGradingApp(t)

	class := createClass(t, app, "5A")
	student := createStudent(t, app, "5A", "Ana Ionescu")
	test := createTest(t, app, class.ID)

	resp, err := app.Test(authedRequest(t, "POST", "/api/v1/submissions", fiber.Map{
		"test_id":    test.ID,
		"student_id": student.ID,
		"class_id":   class.ID,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Submission `json:"data"`
	}
	decodeResponse(t, resp, &created)

	resp, err = app.Test(authedRequest(t, "POST", "/api/v1/submission-details", fiber.Map{
		"submission_id":   created.Data.ID,
		"question_num":    2,
		"mistake_type":    "calculation_error",
		"description":     "dropped a sign in step 2",
		"points_deducted": 0.5,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "GET", "/api/v1/submissions/"+created.Data.ID+"/details", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var details struct {
		Data []models.SubmissionDetail `json:"data"`
	}
	decodeResponse(t, resp, &details)
	require.Len(t, details.Data, 1)
	require.Equal(t, models.MistakeCalculationError, details.Data[0].MistakeType)
}
