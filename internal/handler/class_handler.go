package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/utils"
)

// ClassHandler wires class HTTP routes.
type ClassHandler struct {
	service service.ClassService
	logger  zerolog.Logger
}

// NewClassHandler constructs the handler.
func NewClassHandler(service service.ClassService, logger zerolog.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		logger:  logger.With().Str("component", "class_handler").Logger(),
	}
}

// Register attaches class endpoints to the router group.
func (h *ClassHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *ClassHandler) list(c *fiber.Ctx) error {
	classes, err := h.service.List(c.UserContext(), c.Query("school_year"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "classes retrieved", classes)
}

func (h *ClassHandler) get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	class, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "class retrieved", class)
}

func (h *ClassHandler) create(c *fiber.Ctx) error {
	var payload dto.ClassCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	class, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendCreated(c, "class created", class)
}

func (h *ClassHandler) update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ClassUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	class, err := h.service.Update(c.UserContext(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "class updated", class)
}

func (h *ClassHandler) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "class deleted", fiber.Map{"id": id})
}
