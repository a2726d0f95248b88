package repository

import (
	"progee-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FrameworkRepository interface {
	FindByLanguage(languageID uuid.UUID, state *model.ResourceState, page, pageSize int) ([]model.Framework, int64, error)
	FindByID(id uuid.UUID) (*model.Framework, error)
	FindByName(languageID uuid.UUID, name string) (*model.Framework, error)
	Create(framework *model.Framework) error
	Update(framework *model.Framework) error
	Delete(id uuid.UUID) error
}

type frameworkRepo struct {
	db *gorm.DB
}

func NewFrameworkRepo(db *gorm.DB) FrameworkRepository {
	return &frameworkRepo{db}
}

func (r *frameworkRepo) FindByLanguage(languageID uuid.UUID, state *model.ResourceState, page, pageSize int) ([]model.Framework, int64, error) {
	var frameworks []model.Framework
	var total int64

	query := r.db.Model(&model.Framework{}).Where("language_id = ?", languageID)
	if state != nil {
		query = query.Where("state = ?", *state)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&frameworks).Error
	if err != nil {
		return nil, 0, err
	}
	return frameworks, total, nil
}

func (r *frameworkRepo) FindByID(id uuid.UUID) (*model.Framework, error) {
	var framework model.Framework
	if err := r.db.Preload("Author").Preload("Language").First(&framework, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &framework, nil
}

func (r *frameworkRepo) FindByName(languageID uuid.UUID, name string) (*model.Framework, error) {
	var framework model.Framework
	if err := r.db.Where("language_id = ? AND name = ?", languageID, name).First(&framework).Error; err != nil {
		return nil, err
	}
	return &framework, nil
}

func (r *frameworkRepo) Create(framework *model.Framework) error {
	return r.db.Create(framework).Error
}

func (r *frameworkRepo) Update(framework *model.Framework) error {
	return r.db.Save(framework).Error
}

func (r *frameworkRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Framework{}, "id = ?", id).Error
}
