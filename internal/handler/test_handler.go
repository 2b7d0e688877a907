package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/utils"
)

// TestHandler wires assessment HTTP routes.
type TestHandler struct {
	service     service.TestService
	submissions service.SubmissionService
	rubrics     service.RubricService
	logger      zerolog.Logger
}

// NewTestHandler constructs the handler.
func NewTestHandler(service service.TestService, submissions service.SubmissionService, rubrics service.RubricService, logger zerolog.Logger) *TestHandler {
	return &TestHandler{
		service:     service,
		submissions: submissions,
		rubrics:     rubrics,
		logger:      logger.With().Str("component", "test_handler").Logger(),
	}
}

// Register attaches test endpoints to the router group.
func (h *TestHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
	router.Get("/:id/rubrics", h.listRubrics)
	router.Post("/:id/submissions/bulk", h.bulkCreateSubmissions)
}

func (h *TestHandler) list(c *fiber.Ctx) error {
	filter := repository.TestFilter{
		ClassID: c.Query("class_id"),
		Status:  models.TestStatus(c.Query("status")),
	}

	tests, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "tests retrieved", tests)
}

func (h *TestHandler) get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	test, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "test retrieved", test)
}

func (h *TestHandler) create(c *fiber.Ctx) error {
	var payload dto.TestCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	test, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendCreated(c, "test created", test)
}

func (h *TestHandler) update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.TestUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	test, err := h.service.Update(c.UserContext(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "test updated", test)
}

func (h *TestHandler) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "test deleted", fiber.Map{"id": id})
}

func (h *TestHandler) listRubrics(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	rubrics, err := h.rubrics.ListByTest(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "rubrics retrieved", rubrics)
}

func (h *TestHandler) bulkCreateSubmissions(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.BulkCreateSubmissionsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.ClassID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "class_id is required")
	}

	result, err := h.submissions.BulkCreate(c.UserContext(), id, payload.ClassID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendCreated(c, "submissions bulk created", result)
}
