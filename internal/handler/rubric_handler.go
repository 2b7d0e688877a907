package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/utils"
)

// RubricHandler wires answer-key HTTP routes.
type RubricHandler struct {
	service service.RubricService
	logger  zerolog.Logger
}

// NewRubricHandler constructs the handler.
func NewRubricHandler(service service.RubricService, logger zerolog.Logger) *RubricHandler {
	return &RubricHandler{
		service: service,
		logger:  logger.With().Str("component", "rubric_handler").Logger(),
	}
}

// Register attaches rubric endpoints to the router group.
func (h *RubricHandler) Register(router fiber.Router) {
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *RubricHandler) get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	rubric, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "rubric retrieved", rubric)
}

func (h *RubricHandler) create(c *fiber.Ctx) error {
	var payload dto.RubricCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	rubric, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendCreated(c, "rubric created", rubric)
}

func (h *RubricHandler) update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.RubricUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	rubric, err := h.service.Update(c.UserContext(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "rubric updated", rubric)
}

func (h *RubricHandler) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "rubric deleted", fiber.Map{"id": id})
}
