package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/middleware"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/utils"
	"github.com/sorinslavic/graide-api/pkg/googleapi"
)

// respondError maps service and upstream failures onto HTTP statuses.
func respondError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var validationErrors validator.ValidationErrors
	var authExpired *googleapi.AuthExpiredError
	var upstream *googleapi.StatusError

	switch {
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	case errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrTestNotFound),
		errors.Is(err, service.ErrSubmissionNotFound),
		errors.Is(err, service.ErrDetailNotFound),
		errors.Is(err, service.ErrRubricNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrDuplicateSubmission):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTestNotAssigned),
		errors.Is(err, service.ErrInvalidDeadline),
		errors.Is(err, googleapi.ErrInvalidShareLink):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, googleapi.ErrUnauthenticated), errors.As(err, &authExpired):
		return utils.SendError(c, fiber.StatusUnauthorized, "google access token missing or expired")
	case errors.As(err, &upstream):
		requestLogger(logger, c).Error().Err(err).Msg("google api request failed")
		return utils.SendError(c, fiber.StatusBadGateway, "google api request failed")
	default:
		requestLogger(logger, c).Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func idParam(c *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return "", errors.New("missing identifier")
	}
	return id, nil
}
