package handler

import (
	"progee-api/internal/middleware"
	"progee-api/internal/model"
	"progee-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LanguageHandler struct {
	languageService service.LanguageService
}

func NewLanguageHandler(languageService service.LanguageService) *LanguageHandler {
	return &LanguageHandler{languageService: languageService}
}

// GetLanguages returns a page of languages
// GET /api/v1/languages
func (h *LanguageHandler) GetLanguages(c *fiber.Ctx) error {
	state, err := parseStateFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	page, pageSize := parsePaging(c)

	languages, total, err := h.languageService.List(middleware.Actor(c), state, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pagedResponse(languages, page, pageSize, total))
}

// GetLanguage returns a single language by ID
// GET /api/v1/languages/:id
func (h *LanguageHandler) GetLanguage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language ID"})
	}

	language, err := h.languageService.Get(middleware.Actor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(language)
}

// CreateLanguage handles language creation
// POST /api/v1/languages
func (h *LanguageHandler) CreateLanguage(c *fiber.Ctx) error {
	var req service.LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	language, err := h.languageService.Create(middleware.Actor(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(language)
}

// UpdateLanguage handles language content update
// PUT /api/v1/languages/:id
func (h *LanguageHandler) UpdateLanguage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language ID"})
	}

	var req service.LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	language, err := h.languageService.Update(middleware.Actor(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(language)
}

// SetLanguageState handles explicit moderation
// PATCH /api/v1/languages/:id/state
func (h *LanguageHandler) SetLanguageState(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language ID"})
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

	language, err := h.languageService.SetState(middleware.Actor(c), id, state)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(language)
}

// DeleteLanguage handles language deletion
// DELETE /api/v1/languages/:id
func (h *LanguageHandler) DeleteLanguage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language ID"})
	}

	if err := h.languageService.Delete(middleware.Actor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Language deleted successfully"})
}
