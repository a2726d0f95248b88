package service

import (
	"errors"

	"progee-api/internal/model"
	"progee-api/internal/repository"
	"progee-api/pkg/jwt"
	"progee-api/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	Register(req *RegisterRequest) (*LoginResponse, error)
	Login(email, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
	ResetPassword(email, oldPassword, newPassword string) error
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token       string             `json:"token"`
	User        model.UserResponse `json:"user"`
	Role        *model.Role        `json:"role"`
	Permissions []string           `json:"permissions"` // Flat permission array for easy checking
}

type TokenValidationResponse struct {
	User        model.UserResponse `json:"user"`
	Role        *model.Role        `json:"role"`
	Permissions []string           `json:"permissions"`
}

type authService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// Register creates an account and assigns the system's default role
func (s *authService) Register(req *RegisterRequest) (*LoginResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrEmailExists
	}
	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUsernameExists
	}

	defaultRole, err := s.roleRepo.FindDefault()
	if err != nil {
		return nil, errors.New("no default role configured")
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		RoleID:   &defaultRole.ID,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	user.Role = defaultRole

	return s.loginResponse(user)
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return s.loginResponse(user)
}

func (s *authService) loginResponse(user *model.User) (*LoginResponse, error) {
	roleTitle := ""
	if user.Role != nil {
		roleTitle = user.Role.Title
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, roleTitle, user.PermissionCodes())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:       token,
		User:        user.ToResponse(),
		Role:        user.Role,
		Permissions: user.PermissionCodes(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return &TokenValidationResponse{
		User:        user.ToResponse(),
		Role:        user.Role,
		Permissions: user.PermissionCodes(),
	}, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.userRepo.Update(user)
}
