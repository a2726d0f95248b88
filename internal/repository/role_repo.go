package repository

import (
	"progee-api/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAll() ([]model.Role, error)
	FindByID(id uint) (*model.Role, error)
	FindByTitle(title string) (*model.Role, error)
	FindDefault() (*model.Role, error)
	DefaultExists(excludeID uint) (bool, error)
	Create(role *model.Role) error
	Update(role *model.Role) error
	ReplacePermissions(role *model.Role, permissions []model.Permission) error
	Delete(id uint) error
	CountUsers(roleID uint) (int64, error)
	SeedDefaults() error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Preload("Permissions").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByID(id uint) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").First(&role, id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindByTitle(title string) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").Where("title = ?", title).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindDefault returns the role assigned to newly registered users
func (r *roleRepo) FindDefault() (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").Where("is_default = ?", true).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// DefaultExists reports whether a default role other than excludeID is
// already present. Used to enforce the single-default invariant at save
// time.
func (r *roleRepo) DefaultExists(excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Role{}).
		Where("is_default = ? AND id <> ?", true, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *roleRepo) Create(role *model.Role) error {
	return r.db.Create(role).Error
}

func (r *roleRepo) Update(role *model.Role) error {
	return r.db.Save(role).Error
}

func (r *roleRepo) ReplacePermissions(role *model.Role, permissions []model.Permission) error {
	return r.db.Model(role).Association("Permissions").Replace(permissions)
}

func (r *roleRepo) Delete(id uint) error {
	return r.db.Delete(&model.Role{}, id).Error
}

// CountUsers returns how many users still reference the role
func (r *roleRepo) CountUsers(roleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}

func (r *roleRepo) SeedDefaults() error {
	for _, defaultRole := range model.DefaultRoles {
		var existingRole model.Role
		err := r.db.Where("title = ?", defaultRole.Title).First(&existingRole).Error
		if err == gorm.ErrRecordNotFound {
			// Role doesn't exist, create it
			if err := r.db.Create(&defaultRole).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
