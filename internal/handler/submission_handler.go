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

// SubmissionHandler wires grading workflow HTTP routes.
type SubmissionHandler struct {
	service service.SubmissionService
	details service.SubmissionDetailService
	logger  zerolog.Logger
}

// NewSubmissionHandler constructs the handler.
func NewSubmissionHandler(service service.SubmissionService, details service.SubmissionDetailService, logger zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
		details: details,
		logger:  logger.With().Str("component", "submission_handler").Logger(),
	}
}

// Register attaches submission endpoints to the router group.
func (h *SubmissionHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)

	router.Post("/:id/start", h.start)
	router.Post("/:id/finalize", h.finalize)
	router.Post("/:id/reopen", h.reopen)
	router.Post("/:id/absent", h.markAbsent)
	router.Post("/:id/present", h.markPresent)

	router.Get("/:id/details", h.listDetails)
}

func (h *SubmissionHandler) list(c *fiber.Ctx) error {
	filter := repository.SubmissionFilter{
		TestID:    c.Query("test_id"),
		StudentID: c.Query("student_id"),
		ClassID:   c.Query("class_id"),
		Status:    models.SubmissionStatus(c.Query("status")),
	}

	submissions, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submissions retrieved", submissions)
}

func (h *SubmissionHandler) get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	submission, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission retrieved", submission)
}

func (h *SubmissionHandler) create(c *fiber.Ctx) error {
	var payload dto.SubmissionCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	submission, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendCreated(c, "submission created", submission)
}

func (h *SubmissionHandler) update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SubmissionUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	submission, err := h.service.Update(c.UserContext(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission updated", submission)
}

func (h *SubmissionHandler) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission deleted", fiber.Map{"id": id})
}

func (h *SubmissionHandler) start(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	submission, err := h.service.Start(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "correction started", submission)
}

func (h *SubmissionHandler) finalize(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SubmissionFinalizeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	submission, err := h.service.Finalize(c.UserContext(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "correction finalized", submission)
}

func (h *SubmissionHandler) reopen(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	submission, err := h.service.Reopen(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "correction reopened", submission)
}

func (h *SubmissionHandler) markAbsent(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	submission, err := h.service.MarkAbsent(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission marked absent", submission)
}

func (h *SubmissionHandler) markPresent(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	submission, err := h.service.MarkPresent(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission marked present", submission)
}

func (h *SubmissionHandler) listDetails(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	details, err := h.details.ListBySubmission(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "submission details retrieved", details)
}
