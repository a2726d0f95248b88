package service

import (
	"progee-api/internal/model"
	"progee-api/internal/policy"
	"progee-api/internal/repository"
	"progee-api/internal/ws"
	"progee-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	ListByLanguage(actor policy.Actor, languageID uuid.UUID, requestedState *model.ResourceState, page, pageSize int) ([]model.Review, int64, error)
	Get(actor policy.Actor, id uuid.UUID) (*model.Review, error)
	Create(actor policy.Actor, languageID uuid.UUID, req *ReviewRequest) (*model.Review, error)
	Update(actor policy.Actor, id uuid.UUID, req *ReviewRequest) (*model.Review, error)
	SetState(actor policy.Actor, id uuid.UUID, state model.ResourceState) (*model.Review, error)
	Delete(actor policy.Actor, id uuid.UUID) error
	Vote(actor policy.Actor, id uuid.UUID, isUpvote bool) (*model.Review, error)
}

type ReviewRequest struct {
	Body string `json:"body" validate:"required"`
}

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	languageRepo repository.LanguageRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewReviewService(reviewRepo repository.ReviewRepository, languageRepo repository.LanguageRepository, db *gorm.DB, hub *ws.Hub) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		languageRepo: languageRepo,
		db:           db,
		wsHub:        hub,
	}
}

func (s *reviewService) ListByLanguage(actor policy.Actor, languageID uuid.UUID, requestedState *model.ResourceState, page, pageSize int) ([]model.Review, int64, error) {
	if _, err := s.languageRepo.FindByID(languageID); err != nil {
		return nil, 0, err
	}

	effectiveState, err := policy.ResolveListState(actor, model.PermReviewViewByState, requestedState)
	if err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.FindByLanguage(languageID, effectiveState, page, pageSize)
}

func (s *reviewService) Get(actor policy.Actor, id uuid.UUID) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeDetailRead(actor, model.PermReviewViewByState, review.State); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Create(actor policy.Actor, languageID uuid.UUID, req *ReviewRequest) (*model.Review, error) {
	if !policy.HasPermission(actor, model.PermReviewCreate) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.languageRepo.FindByID(languageID); err != nil {
		return nil, err
	}

	authorID := actor.ID
	review := &model.Review{
		Body:       req.Body,
		LanguageID: languageID,
		State:      policy.ResolveState(actor, model.PermReviewSetState),
		AuthorID:   &authorID,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("resource_created", "review", review.ToResponse())

	return review, nil
}

func (s *reviewService) Update(actor policy.Actor, id uuid.UUID, req *ReviewRequest) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !policy.HasPermissionOrIsAuthor(actor, model.PermReviewUpdateOthers, model.PermReviewUpdateOwn, review.AuthorID) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	review.Body = req.Body
	review.State = policy.ResolveState(actor, model.PermReviewSetState)

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("resource_updated", "review", review.ToResponse())

	return review, nil
}

func (s *reviewService) SetState(actor policy.Actor, id uuid.UUID, state model.ResourceState) (*model.Review, error) {
	if err := policy.AuthorizeStateChange(actor, model.PermReviewSetState); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	review.State = state
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("state_changed", "review", review.ToResponse())

	return review, nil
}

func (s *reviewService) Delete(actor policy.Actor, id uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return err
	}

	if !policy.HasPermissionOrIsAuthor(actor, model.PermReviewDeleteOthers, model.PermReviewDeleteOwn, review.AuthorID) {
		return policy.ErrNotEnoughPermission
	}

	return s.reviewRepo.Delete(id)
}

// Vote casts or flips the actor's vote. The row lock, the duplicate
// check and the membership write all happen inside one transaction, so
// two concurrent identical votes cannot both pass the check.
func (s *reviewService) Vote(actor policy.Actor, id uuid.UUID, isUpvote bool) (*model.Review, error) {
	if !actor.Authenticated {
		return nil, policy.ErrNotEnoughPermission
	}

	var updated *model.Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		review, err := s.reviewRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return err
		}

		result, err := policy.CastVote(review.UpVoteIDs(), review.DownVoteIDs(), actor.ID, isUpvote)
		if err != nil {
			return err
		}

		if err := s.reviewRepo.ReplaceVotes(tx, review, result.UpVotes, result.DownVotes); err != nil {
			return err
		}

		review.UpVoters = voterModels(result.UpVotes)
		review.DownVoters = voterModels(result.DownVotes)
		updated = review
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish("vote_cast", "review", updated.ToResponse())

	return updated, nil
}

func voterModels(ids []uuid.UUID) []model.User {
	users := make([]model.User, len(ids))
	for i, voterID := range ids {
		users[i] = model.User{BaseModel: model.BaseModel{ID: voterID}}
	}
	return users
}
