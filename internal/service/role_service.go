package service

import (
	"errors"

	"progee-api/internal/model"
	"progee-api/internal/policy"
	"progee-api/internal/repository"
	"progee-api/pkg/validator"
)

var (
	ErrRoleTitleExists   = errors.New("role title already exists")
	ErrDefaultRoleExists = errors.New("a default role already exists")
	ErrDefaultRoleDelete = errors.New("the default role cannot be deleted")
	ErrRoleInUse         = errors.New("role is still assigned to users")
)

type RoleService interface {
	GetAll(actor policy.Actor) ([]model.Role, error)
	GetByID(actor policy.Actor, id uint) (*model.Role, error)
	Create(actor policy.Actor, req *RoleRequest) (*model.Role, error)
	Update(actor policy.Actor, id uint, req *RoleRequest) (*model.Role, error)
	Delete(actor policy.Actor, id uint) error
}

type RoleRequest struct {
	Title       string   `json:"title" validate:"required"`
	IsDefault   bool     `json:"is_default"`
	Permissions []string `json:"permissions"`
}

type roleService struct {
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
}

func NewRoleService(roleRepo repository.RoleRepository, permissionRepo repository.PermissionRepository) RoleService {
	return &roleService{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
	}
}

func (s *roleService) GetAll(actor policy.Actor) ([]model.Role, error) {
	if !policy.HasPermission(actor, model.PermRoleView) {
		return nil, policy.ErrNotEnoughPermission
	}
	return s.roleRepo.FindAll()
}

func (s *roleService) GetByID(actor policy.Actor, id uint) (*model.Role, error) {
	if !policy.HasPermission(actor, model.PermRoleView) {
		return nil, policy.ErrNotEnoughPermission
	}
	return s.roleRepo.FindByID(id)
}

func (s *roleService) Create(actor policy.Actor, req *RoleRequest) (*model.Role, error) {
	if !policy.HasPermission(actor, model.PermRoleCreate) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	existing, _ := s.roleRepo.FindByTitle(req.Title)
	if existing != nil {
		return nil, ErrRoleTitleExists
	}

	// At most one role may be the registration default; a second one is
	// rejected outright rather than silently demoting the current one.
	if req.IsDefault {
		taken, err := s.roleRepo.DefaultExists(0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDefaultRoleExists
		}
	}

	permissions, err := s.permissionRepo.FindByCodes(req.Permissions)
	if err != nil {
		return nil, err
	}

	role := &model.Role{
		Title:       req.Title,
		IsDefault:   req.IsDefault,
		Permissions: permissions,
	}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Update(actor policy.Actor, id uint, req *RoleRequest) (*model.Role, error) {
	if !policy.HasPermission(actor, model.PermRoleUpdate) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != role.Title {
		existing, _ := s.roleRepo.FindByTitle(req.Title)
		if existing != nil {
			return nil, ErrRoleTitleExists
		}
	}

	// Promoting this role is only allowed once the current default has
	// been demoted. Demoting is always allowed.
	if req.IsDefault && !role.IsDefault {
		taken, err := s.roleRepo.DefaultExists(id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDefaultRoleExists
		}
	}

	permissions, err := s.permissionRepo.FindByCodes(req.Permissions)
	if err != nil {
		return nil, err
	}

	role.Title = req.Title
	role.IsDefault = req.IsDefault
	if err := s.roleRepo.Update(role); err != nil {
		return nil, err
	}
	if err := s.roleRepo.ReplacePermissions(role, permissions); err != nil {
		return nil, err
	}

	return s.roleRepo.FindByID(id)
}

func (s *roleService) Delete(actor policy.Actor, id uint) error {
	if !policy.HasPermission(actor, model.PermRoleDelete) {
		return policy.ErrNotEnoughPermission
	}

	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return err
	}

	if role.IsDefault {
		return ErrDefaultRoleDelete
	}

	count, err := s.roleRepo.CountUsers(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRoleInUse
	}

	return s.roleRepo.Delete(id)
}
