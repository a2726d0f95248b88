package service

import (
	"errors"

	"progee-api/internal/model"
	"progee-api/internal/policy"
	"progee-api/internal/repository"
	"progee-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrEmailExists    = errors.New("email already exists")
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")
)

type UserService interface {
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
	UpdateUser(actor policy.Actor, userID uuid.UUID, req *UpdateUserRequest) (*model.User, error)
	DeleteUser(actor policy.Actor, userID uuid.UUID) error
	SetUserRole(actor policy.Actor, userID uuid.UUID, roleID uint) (*model.User, error)
}

type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

// UpdateUser edits a profile. The target user is the "author" of their
// own account, so the usual own/others permission pair applies.
func (s *userService) UpdateUser(actor policy.Actor, userID uuid.UUID, req *UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if !policy.HasPermissionOrIsAuthor(actor, model.PermUserUpdateOthers, model.PermUserUpdateOwn, &user.ID) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if req.Email != user.Email {
		existing, _ := s.userRepo.FindByEmail(req.Email)
		if existing != nil {
			return nil, ErrEmailExists
		}
	}
	if req.Username != user.Username {
		existing, _ := s.userRepo.FindByUsername(req.Username)
		if existing != nil {
			return nil, ErrUsernameExists
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Username = req.Username

	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.userRepo.FindByID(userID)
}

func (s *userService) DeleteUser(actor policy.Actor, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	if !policy.HasPermissionOrIsAuthor(actor, model.PermUserDeleteOthers, model.PermUserDeleteOwn, &user.ID) {
		return policy.ErrNotEnoughPermission
	}

	return s.userRepo.Delete(userID)
}

func (s *userService) SetUserRole(actor policy.Actor, userID uuid.UUID, roleID uint) (*model.User, error) {
	if !policy.HasPermission(actor, model.PermUserSetRole) {
		return nil, policy.ErrNotEnoughPermission
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.roleRepo.FindByID(roleID); err != nil {
		return nil, errors.New("role not found")
	}

	if err := s.userRepo.UpdateRole(user.ID, roleID); err != nil {
		return nil, err
	}

	return s.userRepo.FindByID(userID)
}
