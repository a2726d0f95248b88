package repository

import (
	"progee-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	FindByLanguage(languageID uuid.UUID, state *model.ResourceState, page, pageSize int) ([]model.Review, int64, error)
	FindByID(id uuid.UUID) (*model.Review, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Review, error)
	Create(review *model.Review) error
	Update(review *model.Review) error
	ReplaceVotes(tx *gorm.DB, review *model.Review, upVotes, downVotes []uuid.UUID) error
	Delete(id uuid.UUID) error
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db}
}

func (r *reviewRepo) FindByLanguage(languageID uuid.UUID, state *model.ResourceState, page, pageSize int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.db.Model(&model.Review{}).Where("language_id = ?", languageID)
	if state != nil {
		query = query.Where("state = ?", *state)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").Preload("UpVoters").Preload("DownVoters").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepo) FindByID(id uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := r.db.Preload("Author").Preload("UpVoters").Preload("DownVoters").
		First(&review, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// lockForUpdate pins the selected row until the surrounding
// transaction commits
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// FindByIDForUpdate locks the review row for the duration of the
// surrounding transaction, so a concurrent vote or edit cannot observe
// stale vote membership (Pessimistic Locking).
func (r *reviewRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := lockForUpdate(tx).
		First(&review, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	if err := tx.Model(&review).Association("UpVoters").Find(&review.UpVoters); err != nil {
		return nil, err
	}
	if err := tx.Model(&review).Association("DownVoters").Find(&review.DownVoters); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepo) Update(review *model.Review) error {
	return r.db.Omit("UpVoters", "DownVoters").Save(review).Error
}

// ReplaceVotes swaps both vote sets inside the caller's transaction.
// Voter stubs carry only the primary key; the join rows are replaced,
// no user rows are written.
func (r *reviewRepo) ReplaceVotes(tx *gorm.DB, review *model.Review, upVotes, downVotes []uuid.UUID) error {
	if err := tx.Model(review).Association("UpVoters").Replace(voterStubs(upVotes)); err != nil {
		return err
	}
	return tx.Model(review).Association("DownVoters").Replace(voterStubs(downVotes))
}

func (r *reviewRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		review := model.Review{BaseModel: model.BaseModel{ID: id}}
		if err := tx.Model(&review).Association("UpVoters").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&review).Association("DownVoters").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Review{}, "id = ?", id).Error
	})
}

func voterStubs(ids []uuid.UUID) []model.User {
	stubs := make([]model.User, len(ids))
	for i, id := range ids {
		stubs[i] = model.User{BaseModel: model.BaseModel{ID: id}}
	}
	return stubs
}
