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
	ErrFrameworkNameExists = errors.New("framework name already exists for this language")
)

type FrameworkService interface {
	ListByLanguage(actor policy.Actor, languageID uuid.UUID, requestedState *model.ResourceState, page, pageSize int) ([]model.Framework, int64, error)
	Get(actor policy.Actor, id uuid.UUID) (*model.Framework, error)
	Create(actor policy.Actor, languageID uuid.UUID, req *FrameworkRequest) (*model.Framework, error)
	Update(actor policy.Actor, id uuid.UUID, req *FrameworkRequest) (*model.Framework, error)
	SetState(actor policy.Actor, id uuid.UUID, state model.ResourceState) (*model.Framework, error)
	Delete(actor policy.Actor, id uuid.UUID) error
}

type FrameworkRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type frameworkService struct {
	frameworkRepo repository.FrameworkRepository
	languageRepo  repository.LanguageRepository
	wsHub         *ws.Hub
}

func NewFrameworkService(frameworkRepo repository.FrameworkRepository, languageRepo repository.LanguageRepository, hub *ws.Hub) FrameworkService {
	return &frameworkService{
		frameworkRepo: frameworkRepo,
		languageRepo:  languageRepo,
		wsHub:         hub,
	}
}

func (s *frameworkService) ListByLanguage(actor policy.Actor, languageID uuid.UUID, requestedState *model.ResourceState, page, pageSize int) ([]model.Framework, int64, error) {
	// Parent must exist; a missing language is a not-found, never a
	// permission failure.
	if _, err := s.languageRepo.FindByID(languageID); err != nil {
		return nil, 0, err
	}

	effectiveState, err := policy.ResolveListState(actor, model.PermFrameworkViewByState, requestedState)
	if err != nil {
		return nil, 0, err
	}
	return s.frameworkRepo.FindByLanguage(languageID, effectiveState, page, pageSize)
}

func (s *frameworkService) Get(actor policy.Actor, id uuid.UUID) (*model.Framework, error) {
	framework, err := s.frameworkRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeDetailRead(actor, model.PermFrameworkViewByState, framework.State); err != nil {
		return nil, err
	}
	return framework, nil
}

func (s *frameworkService) Create(actor policy.Actor, languageID uuid.UUID, req *FrameworkRequest) (*model.Framework, error) {
	if !policy.HasPermission(actor, model.PermFrameworkCreate) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.languageRepo.FindByID(languageID); err != nil {
		return nil, err
	}

	existing, _ := s.frameworkRepo.FindByName(languageID, req.Name)
	if existing != nil {
		return nil, ErrFrameworkNameExists
	}

	authorID := actor.ID
	framework := &model.Framework{
		Name:        req.Name,
		Description: req.Description,
		LanguageID:  languageID,
		State:       policy.ResolveState(actor, model.PermFrameworkSetState),
		AuthorID:    &authorID,
	}

	if err := s.frameworkRepo.Create(framework); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("resource_created", "framework", framework)

	return framework, nil
}

func (s *frameworkService) Update(actor policy.Actor, id uuid.UUID, req *FrameworkRequest) (*model.Framework, error) {
	framework, err := s.frameworkRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !policy.HasPermissionOrIsAuthor(actor, model.PermFrameworkUpdateOthers, model.PermFrameworkUpdateOwn, framework.AuthorID) {
		return nil, policy.ErrNotEnoughPermission
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if req.Name != framework.Name {
		existing, _ := s.frameworkRepo.FindByName(framework.LanguageID, req.Name)
		if existing != nil {
			return nil, ErrFrameworkNameExists
		}
	}

	framework.Name = req.Name
	framework.Description = req.Description
	framework.State = policy.ResolveState(actor, model.PermFrameworkSetState)

	if err := s.frameworkRepo.Update(framework); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("resource_updated", "framework", framework)

	return framework, nil
}

func (s *frameworkService) SetState(actor policy.Actor, id uuid.UUID, state model.ResourceState) (*model.Framework, error) {
	if err := policy.AuthorizeStateChange(actor, model.PermFrameworkSetState); err != nil {
		return nil, err
	}

	framework, err := s.frameworkRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	framework.State = state
	if err := s.frameworkRepo.Update(framework); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("state_changed", "framework", framework)

	return framework, nil
}

func (s *frameworkService) Delete(actor policy.Actor, id uuid.UUID) error {
	framework, err := s.frameworkRepo.FindByID(id)
	if err != nil {
		return err
	}

	if !policy.HasPermissionOrIsAuthor(actor, model.PermFrameworkDeleteOthers, model.PermFrameworkDeleteOwn, framework.AuthorID) {
		return policy.ErrNotEnoughPermission
	}

	return s.frameworkRepo.Delete(id)
}
