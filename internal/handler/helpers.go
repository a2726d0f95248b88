package handler

import (
	"errors"
	"strconv"

	"progee-api/internal/model"
	"progee-api/internal/policy"
	"progee-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// respondError maps the shared error taxonomy to HTTP statuses. A
// missing resource and a missing permission are distinct outcomes and
// must never be collapsed into each other.
func respondError(c *fiber.Ctx, err error) error {
	var dup *policy.DuplicateVoteError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Resource not found"})
	case errors.Is(err, policy.ErrNotEnoughPermission):
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &dup):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrLanguageNameExists),
		errors.Is(err, service.ErrFrameworkNameExists),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrRoleTitleExists),
		errors.Is(err, service.ErrDefaultRoleExists),
		errors.Is(err, service.ErrDefaultRoleDelete),
		errors.Is(err, service.ErrRoleInUse):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
}

// parsePaging reads page/page_size query params with sane bounds
func parsePaging(c *fiber.Ctx) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.Query("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// parseStateFilter reads the optional state query param. Absent means
// nil (no filter requested by the caller).
func parseStateFilter(c *fiber.Ctx) (*model.ResourceState, error) {
	raw := c.Query("state")
	if raw == "" {
		return nil, nil
	}
	state, err := model.ParseResourceState(raw)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func pagedResponse(data interface{}, page, pageSize int, total int64) fiber.Map {
	return fiber.Map{
		"data":        data,
		"page":        page,
		"page_size":   pageSize,
		"total_items": total,
	}
}
