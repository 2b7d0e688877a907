package utils_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/sorinslavic/graide-api/internal/utils"
)

func performRequest(t *testing.T, handler fiber.Handler) (int, utils.Envelope) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func TestSendSuccess(t *testing.T) {
	status, envelope := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "classes retrieved", []string{"5A"})
	})

	require.Equal(t, fiber.StatusOK, status)
	require.True(t, envelope.Success)
	require.Equal(t, "classes retrieved", envelope.Message)
	require.NotNil(t, envelope.Data)
}

func TestSendCreated(t *testing.T) {
	status, envelope := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendCreated(c, "class created", fiber.Map{"id": "c1"})
	})

	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, envelope.Success)
}

func TestSendSuccessDefaultsMessageAndStatus(t *testing.T) {
	status, envelope := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendSuccessWithStatus(c, 0, "", nil)
	})

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "success", envelope.Message)
}

func TestSendError(t *testing.T) {
	status, envelope := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, fiber.StatusConflict, "duplicate submission")
	})

	require.Equal(t, fiber.StatusConflict, status)
	require.False(t, envelope.Success)
	require.Equal(t, "duplicate submission", envelope.Message)
	require.Nil(t, envelope.Data)
}
