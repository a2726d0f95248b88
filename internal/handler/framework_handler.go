package handler

import (
	"progee-api/internal/middleware"
	"progee-api/internal/model"
	"progee-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FrameworkHandler struct {
	frameworkService service.FrameworkService
}

func NewFrameworkHandler(frameworkService service.FrameworkService) *FrameworkHandler {
	return &FrameworkHandler{frameworkService: frameworkService}
}

// GetFrameworks returns a page of a language's frameworks
// GET /api/v1/languages/:id/frameworks
func (h *FrameworkHandler) GetFrameworks(c *fiber.Ctx) error {
	languageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language ID"})
	}

	state, err := parseStateFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	page, pageSize := parsePaging(c)

	frameworks, total, err := h.frameworkService.ListByLanguage(middleware.Actor(c), languageID, state, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pagedResponse(frameworks, page, pageSize, total))
}

// GetFramework returns a single framework by ID
// GET /api/v1/frameworks/:id
func (h *FrameworkHandler) GetFramework(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid framework ID"})
	}

	framework, err := h.frameworkService.Get(middleware.Actor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(framework)
}

// CreateFramework handles framework creation under a language
// POST /api/v1/languages/:id/frameworks
func (h *FrameworkHandler) CreateFramework(c *fiber.Ctx) error {
	languageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language ID"})
	}

	var req service.FrameworkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	framework, err := h.frameworkService.Create(middleware.Actor(c), languageID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(framework)
}

// UpdateFramework handles framework content update
// PUT /api/v1/frameworks/:id
func (h *FrameworkHandler) UpdateFramework(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid framework ID"})
	}

	var req service.FrameworkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	framework, err := h.frameworkService.Update(middleware.Actor(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(framework)
}

// SetFrameworkState handles explicit moderation
// PATCH /api/v1/frameworks/:id/state
func (h *FrameworkHandler) SetFrameworkState(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid framework ID"})
	}

	var req struct {
		State string `json:"state"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	state, err := model.ParseResourceState(req.State)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	framework, err := h.frameworkService.SetState(middleware.Actor(c), id, state)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(framework)
}

// DeleteFramework handles framework deletion
// DELETE /api/v1/frameworks/:id
func (h *FrameworkHandler) DeleteFramework(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid framework ID"})
	}

	if err := h.frameworkService.Delete(middleware.Actor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Framework deleted successfully"})
}
