package model

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
)

// User represents a registered account in the system
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)" json:"name" validate:"required"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	RoleID   *uint  `gorm:"index" json:"role_id"`
	Role     *Role  `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasPermission checks if the user's role grants a specific permission.
// A user without a role holds no permissions.
func (u *User) HasPermission(code string) bool {
	if u.Role == nil {
		return false
	}
	return u.Role.HasPermission(code)
}

// PermissionCodes returns all permission codes granted through the user's role
func (u *User) PermissionCodes() []string {
	if u.Role == nil {
		return []string{}
	}
	return u.Role.PermissionCodes()
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	RoleID   *uint     `json:"role_id,omitempty"`
	Role     *Role     `json:"role,omitempty"`
	IsActive bool      `json:"is_active"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Username: u.Username,
		RoleID:   u.RoleID,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
