package service

import (
	"errors"

	"progee-api/internal/model"
	"progee-api/internal/policy"
	"progee-api/internal/repository"
	"progee-api/internal/ws"
	"progee-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrLanguageNameExists = errors.New("language name already exists")
)

type LanguageService interface {
	List(actor policy.Actor, requestedState *model.ResourceState, page, pageSize int) ([]model.Language, int64, error)
	Get(actor policy.Actor, id uuid.UUID) (*model.Language, error)
	Create(actor policy.Actor, req *LanguageRequest) (*model.Language, error)
	Update(actor policy.Actor, id uuid.UUID, req *LanguageRequest) (*model.Language, error)
	SetState(actor policy.Actor, id uuid.UUID, state model.ResourceState) (*model.Language, error)
	Delete(actor policy.Actor, id uuid.UUID) error
}

type LanguageRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type languageService struct {
	languageRepo repository.LanguageRepository
	wsHub        *ws.Hub
}

func NewLanguageService(languageRepo repository.LanguageRepository, hub *ws.Hub) LanguageService {
	return &languageService{
		languageRepo: languageRepo,
		wsHub:        hub,
	}
}

func (s *languageService) List(actor policy.Actor, requestedState *model.ResourceState, page, pageSize int) ([]model.Language, int64, error) {
	effectiveState, err := policy.ResolveListState(actor, model.PermLanguageViewByState, requestedState)
	if err != nil {
		return nil, 0, err
	}
	return s.languageRepo.FindAll(effectiveState, page, pageSize)
}

func (s *languageService) Get(actor policy.Actor, id uuid.UUID) (*model.Language, error) {
	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeDetailRead(actor, model.PermLanguageViewByState, language.State); err != nil {
		return nil, err
	}
	return language, nil
}

func (s *languageService) Create(actor policy.Actor, req *LanguageRequest) (*model.Language, error) {
	if !policy.HasPermission(actor, model.PermLanguageCreate) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	existing, _ := s.languageRepo.FindByName(req.Name)
	if existing != nil {
		return nil, ErrLanguageNameExists
	}

	authorID := actor.ID
	language := &model.Language{
		Name:        req.Name,
		Description: req.Description,
		State:       policy.ResolveState(actor, model.PermLanguageSetState),
		AuthorID:    &authorID,
	}

	if err := s.languageRepo.Create(language); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("resource_created", "language", language)

	return language, nil
}

func (s *languageService) Update(actor policy.Actor, id uuid.UUID, req *LanguageRequest) (*model.Language, error) {
	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !policy.HasPermissionOrIsAuthor(actor, model.PermLanguageUpdateOthers, model.PermLanguageUpdateOwn, language.AuthorID) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if req.Name != language.Name {
		existing, _ := s.languageRepo.FindByName(req.Name)
		if existing != nil {
			return nil, ErrLanguageNameExists
		}
	}

	language.Name = req.Name
	language.Description = req.Description
	// Content edits go back through moderation unless the editor can
	// self-approve.
	language.State = policy.ResolveState(actor, model.PermLanguageSetState)

	if err := s.languageRepo.Update(language); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("resource_updated", "language", language)

	return language, nil
}

func (s *languageService) SetState(actor policy.Actor, id uuid.UUID, state model.ResourceState) (*model.Language, error) {
	if err := policy.AuthorizeStateChange(actor, model.PermLanguageSetState); err != nil {
		return nil, err
	}

	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	language.State = state
	if err := s.languageRepo.Update(language); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("state_changed", "language", language)

	return language, nil
}

func (s *languageService) Delete(actor policy.Actor, id uuid.UUID) error {
	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		return err
	}

	if !policy.HasPermissionOrIsAuthor(actor, model.PermLanguageDeleteOthers, model.PermLanguageDeleteOwn, language.AuthorID) {
		return policy.ErrNotEnoughPermission
	}

	return s.languageRepo.Delete(id)
}
