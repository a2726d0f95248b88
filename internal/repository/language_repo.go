package repository

import (
	"progee-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LanguageRepository interface {
	FindAll(state *model.ResourceState, page, pageSize int) ([]model.Language, int64, error)
	FindByID(id uuid.UUID) (*model.Language, error)
	FindByName(name string) (*model.Language, error)
	Create(language *model.Language) error
	Update(language *model.Language) error
	Delete(id uuid.UUID) error
}

type languageRepo struct {
	db *gorm.DB
}

func NewLanguageRepo(db *gorm.DB) LanguageRepository {
	return &languageRepo{db}
}

func (r *languageRepo) FindAll(state *model.ResourceState, page, pageSize int) ([]model.Language, int64, error) {
	var languages []model.Language
	var total int64

	query := r.db.Model(&model.Language{})
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
		Find(&languages).Error
	if err != nil {
		return nil, 0, err
	}
	return languages, total, nil
}

func (r *languageRepo) FindByID(id uuid.UUID) (*model.Language, error) {
	var language model.Language
	if err := r.db.Preload("Author").First(&language, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *languageRepo) FindByName(name string) (*model.Language, error) {
	var language model.Language
	if err := r.db.Where("name = ?", name).First(&language).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *languageRepo) Create(language *model.Language) error {
	return r.db.Create(language).Error
}

func (r *languageRepo) Update(language *model.Language) error {
	return r.db.Save(language).Error
}

// Delete removes the language together with its frameworks and reviews
func (r *languageRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Framework{}, "language_id = ?", id).Error; err != nil {
			return err
		}
		var reviews []model.Review
		if err := tx.Where("language_id = ?", id).Find(&reviews).Error; err != nil {
			return err
		}
		for i := range reviews {
			if err := tx.Model(&reviews[i]).Association("UpVoters").Clear(); err != nil {
				return err
			}
			if err := tx.Model(&reviews[i]).Association("DownVoters").Clear(); err != nil {
				return err
			}
		}
		if err := tx.Delete(&model.Review{}, "language_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Language{}, "id = ?", id).Error
	})
}
