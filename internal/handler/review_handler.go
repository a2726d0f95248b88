package handler

import (
	"progee-api/internal/middleware"
	"progee-api/internal/model"
	"progee-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GetReviews returns a page of a language's reviews
// GET /api/v1/languages/:id/reviews
func (h *ReviewHandler) GetReviews(c *fiber.Ctx) error {
	languageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language ID"})
	}

	state, err := parseStateFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	page, pageSize := parsePaging(c)

	reviews, total, err := h.reviewService.ListByLanguage(middleware.Actor(c), languageID, state, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = reviews[i].ToResponse()
	}
	return c.JSON(pagedResponse(responses, page, pageSize, total))
}

// GetReview returns a single review by ID
// GET /api/v1/reviews/:id
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	review, err := h.reviewService.Get(middleware.Actor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review.ToResponse())
}

// CreateReview handles review creation under a language
// POST /api/v1/languages/:id/reviews
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	languageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language ID"})
	}

	var req service.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	review, err := h.reviewService.Create(middleware.Actor(c), languageID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(review.ToResponse())
}

// UpdateReview handles review content update
// PUT /api/v1/reviews/:id
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	var req service.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	review, err := h.reviewService.Update(middleware.Actor(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review.ToResponse())
}

// SetReviewState handles explicit moderation
// PATCH /api/v1/reviews/:id/state
func (h *ReviewHandler) SetReviewState(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
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

	review, err := h.reviewService.SetState(middleware.Actor(c), id, state)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review.ToResponse())
}

// DeleteReview handles review deletion
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	if err := h.reviewService.Delete(middleware.Actor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}

// VoteReview casts or flips the caller's vote
// POST /api/v1/reviews/:id/vote
func (h *ReviewHandler) VoteReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	var req struct {
		Up *bool `json:"up"`
	}
	if err := c.BodyParser(&req); err != nil || req.Up == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Body must contain an 'up' boolean"})
	}

	review, err := h.reviewService.Vote(middleware.Actor(c), id, *req.Up)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review.ToResponse())
}
