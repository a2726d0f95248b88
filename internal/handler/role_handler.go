package handler

import (
	"strconv"

	"progee-api/internal/middleware"
	"progee-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// GetRoles returns all roles with their permissions
// GET /api/v1/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roleService.GetAll(middleware.Actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(roles)
}

// GetRole returns a single role by ID
// GET /api/v1/roles/:id
func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	role, err := h.roleService.GetByID(middleware.Actor(c), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(role)
}

// CreateRole handles role creation
// POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req service.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	role, err := h.roleService.Create(middleware.Actor(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(role)
}

// UpdateRole handles role update
// PUT /api/v1/roles/:id
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	var req service.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	role, err := h.roleService.Update(middleware.Actor(c), uint(id), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(role)
}

// DeleteRole handles role deletion
// DELETE /api/v1/roles/:id
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	if err := h.roleService.Delete(middleware.Actor(c), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Role deleted successfully"})
}
