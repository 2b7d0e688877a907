package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/utils"
)

// SubmissionDetailHandler wires mistake annotation HTTP routes.
type SubmissionDetailHandler struct {
	service service.SubmissionDetailService
	logger  zerolog.Logger
}

// NewSubmissionDetailHandler constructs the handler.
func NewSubmissionDetailHandler(service service.SubmissionDetailService, logger zerolog.Logger) *SubmissionDetailHandler {
	return &SubmissionDetailHandler{
		service: service,
		logger:  logger.With().Str("component", "submission_detail_handler").Logger(),
	}
}

// Register attaches detail endpoints to the router group.
func (h *SubmissionDetailHandler) Register(router fiber.Router) {
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *SubmissionDetailHandler) get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission detail retrieved", detail)
}

func (h *SubmissionDetailHandler) create(c *fiber.Ctx) error {
	var payload dto.SubmissionDetailCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	detail, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendCreated(c, "submission detail created", detail)
}

func (h *SubmissionDetailHandler) update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SubmissionDetailUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	detail, err := h.service.Update(c.UserContext(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission detail updated", detail)
}

func (h *SubmissionDetailHandler) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission detail deleted", fiber.Map{"id": id})
}
