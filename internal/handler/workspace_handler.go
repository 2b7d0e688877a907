package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/utils"
)

// WorkspaceHandler wires setup and settings HTTP routes.
type WorkspaceHandler struct {
	service service.WorkspaceService
	logger  zerolog.Logger
}

// NewWorkspaceHandler constructs the handler.
func NewWorkspaceHandler(service service.WorkspaceService, logger zerolog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		service: service,
		logger:  logger.With().Str("component", "workspace_handler").Logger(),
	}
}

// Register attaches workspace endpoints to the router group.
func (h *WorkspaceHandler) Register(router fiber.Router) {
	router.Get("/status", h.status)
	router.Post("/initialize", h.initialize)
	router.Post("/verify", h.verify)
	router.Post("/reconcile", h.reconcile)
	router.Post("/reset", h.reset)

	router.Get("/config", h.listConfig)
	router.Get("/config/:key", h.getConfig)
	router.Put("/config", h.setConfig)
}

func (h *WorkspaceHandler) status(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "workspace status", h.service.Status(c.UserContext()))
}

func (h *WorkspaceHandler) initialize(c *fiber.Ctx) error {
	var payload dto.WorkspaceInitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	status, err := h.service.Initialize(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "workspace initialized", status)
}

func (h *WorkspaceHandler) verify(c *fiber.Ctx) error {
	status, err := h.service.Verify(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "workspace verified", status)
}

func (h *WorkspaceHandler) reconcile(c *fiber.Ctx) error {
	result, err := h.service.Reconcile(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "schema reconciled", result)
}

func (h *WorkspaceHandler) reset(c *fiber.Ctx) error {
	if err := h.service.Reset(c.UserContext()); err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "workspace reset", nil)
}

func (h *WorkspaceHandler) listConfig(c *fiber.Ctx) error {
	entries, err := h.service.ListConfig(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "config retrieved", entries)
}

func (h *WorkspaceHandler) getConfig(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "missing config key")
	}

	value, ok, err := h.service.GetConfig(c.UserContext(), key)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if !ok {
		return utils.SendError(c, fiber.StatusNotFound, "config key not found")
	}

	return utils.SendSuccess(c, "config retrieved", fiber.Map{"key": key, "value": value})
}

func (h *WorkspaceHandler) setConfig(c *fiber.Ctx) error {
	var payload dto.ConfigSetRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.SetConfig(c.UserContext(), payload); err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "config saved", fiber.Map{"key": payload.Key, "value": payload.Value})
}
