package handler_test

import (
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sorinslavic/graide-api/internal/config"
	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/handler"
	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
	"github.com/sorinslavic/graide-api/internal/router"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/workspace"
)

func setupWorkspaceApp(t *testing.T) *fiber.App {
	t.Helper()

	wctx, err := workspace.NewContext(&workspace.MemoryCache{})
	require.NoError(t, err)

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)
	configRepo := repository.NewConfigRepository(newSheetStub())

	workspaceService := service.NewWorkspaceService(nil, nil, wctx, configRepo, validate, logger)

	app := fiber.New()
	router.Register(app, config.Config{AppName: "Test"}, router.Dependencies{
		WorkspaceHandler: handler.NewWorkspaceHandler(workspaceService, logger),
	})

	return app
}

func TestWorkspaceHandlerStatusBeforeInitialization(t *testing.T) {
	app := setupWorkspaceApp(t)

	resp, err := app.Test(authedRequest(t, "GET", "/api/v1/workspace/status", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status struct {
		Data dto.WorkspaceStatusResponse `json:"data"`
	}
	decodeResponse(t, resp, &status)
	require.False(t, status.Data.Initialized)
	require.Empty(t, status.Data.SpreadsheetID)
}

func TestWorkspaceHandlerConfigRoundTrip(t *testing.T) {
	app := setupWorkspaceApp(t)

	resp, err := app.Test(authedRequest(t, "GET", "/api/v1/workspace/config/school_year", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "PUT", "/api/v1/workspace/config", fiber.Map{
		"key":   "school_year",
		"value": "2025-2026",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "GET", "/api/v1/workspace/config/school_year", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entry struct {
		Data models.ConfigEntry `json:"data"`
	}
	decodeResponse(t, resp, &entry)
	require.Equal(t, "2025-2026", entry.Data.Value)

	resp, err = app.Test(authedRequest(t, "GET", "/api/v1/workspace/config", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var all struct {
		Data []models.ConfigEntry `json:"data"`
	}
	decodeResponse(t, resp, &all)
	require.Len(t, all.Data, 1)
}

func TestWorkspaceHandlerRejectsEmptyConfigKey(t *testing.T) {
	app := setupWorkspaceApp(t)

	resp, err := app.Test(authedRequest(t, "PUT", "/api/v1/workspace/config", fiber.Map{
		"key":   "",
		"value": "x",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
