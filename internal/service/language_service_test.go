package service

import (
	"testing"

	"progee-api/internal/model"
	"progee-api/internal/policy"
	"progee-api/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLanguageRepo struct {
	items map[uuid.UUID]*model.Language
}

func newFakeLanguageRepo() *fakeLanguageRepo {
	return &fakeLanguageRepo{items: make(map[uuid.UUID]*model.Language)}
}

func (r *fakeLanguageRepo) FindAll(state *model.ResourceState, page, pageSize int) ([]model.Language, int64, error) {
	var out []model.Language
	for _, l := range r.items {
		if state == nil || l.State == *state {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeLanguageRepo) FindByID(id uuid.UUID) (*model.Language, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *l
	return &copied, nil
}

func (r *fakeLanguageRepo) FindByName(name string) (*model.Language, error) {
	for _, l := range r.items {
		if l.Name == name {
			copied := *l
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLanguageRepo) Create(language *model.Language) error {
	if language.ID == uuid.Nil {
		language.ID = uuid.New()
	}
	copied := *language
	r.items[language.ID] = &copied
	return nil
}

func (r *fakeLanguageRepo) Update(language *model.Language) error {
	copied := *language
	r.items[language.ID] = &copied
	return nil
}

func (r *fakeLanguageRepo) Delete(id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func newTestLanguageService() (LanguageService, *fakeLanguageRepo) {
	repo := newFakeLanguageRepo()
	hub := ws.NewHub()
	go hub.Run()
	return NewLanguageService(repo, hub), repo
}

func seedLanguage(repo *fakeLanguageRepo, name string, state model.ResourceState, authorID *uuid.UUID) *model.Language {
	language := &model.Language{
		BaseModel: model.BaseModel{ID: uuid.New()},
		Name:      name,
		State:     state,
		AuthorID:  authorID,
	}
	repo.items[language.ID] = language
	return language
}

func TestCreateLanguage_UnprivilegedCreatorGetsWaiting(t *testing.T) {
	svc, _ := newTestLanguageService()
	creator := policy.NewActor(uuid.New(), []string{model.PermLanguageCreate})

	language, err := svc.Create(creator, &LanguageRequest{Name: "Go"})
	require.NoError(t, err)
	assert.Equal(t, model.StateWaiting, language.State)
	require.NotNil(t, language.AuthorID)
	assert.Equal(t, creator.ID, *language.AuthorID)
}

func TestCreateLanguage_ModeratorCreatorGetsApproved(t *testing.T) {
	svc, _ := newTestLanguageService()
	creator := policy.NewActor(uuid.New(), []string{model.PermLanguageCreate, model.PermLanguageSetState})

	language, err := svc.Create(creator, &LanguageRequest{Name: "Rust"})
	require.NoError(t, err)
	assert.Equal(t, model.StateApproved, language.State)
}

func TestCreateLanguage_AnonymousRejected(t *testing.T) {
	svc, _ := newTestLanguageService()

	_, err := svc.Create(policy.Anonymous(), &LanguageRequest{Name: "Go"})
	assert.ErrorIs(t, err, policy.ErrNotEnoughPermission)
}

func TestCreateLanguage_DuplicateNameRejected(t *testing.T) {
	svc, repo := newTestLanguageService()
	seedLanguage(repo, "Go", model.StateApproved, nil)
	creator := policy.NewActor(uuid.New(), []string{model.PermLanguageCreate})

	_, err := svc.Create(creator, &LanguageRequest{Name: "Go"})
	assert.ErrorIs(t, err, ErrLanguageNameExists)
}

func TestListLanguages_AnonymousSeesOnlyApproved(t *testing.T) {
	svc, repo := newTestLanguageService()
	seedLanguage(repo, "Zig", model.StateWaiting, nil)
	seedLanguage(repo, "Nim", model.StateWaiting, nil)
	seedLanguage(repo, "Go", model.StateApproved, nil)

	languages, total, err := svc.List(policy.Anonymous(), nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, languages, 1)
	assert.Equal(t, "Go", languages[0].Name)
}

func TestListLanguages_AnonymousExplicitFilterRejected(t *testing.T) {
	svc, _ := newTestLanguageService()
	waiting := model.StateWaiting

	_, _, err := svc.List(policy.Anonymous(), &waiting, 1, 20)
	assert.ErrorIs(t, err, policy.ErrNotEnoughPermission)
}

func TestListLanguages_ModeratorFiltersByState(t *testing.T) {
	svc, repo := newTestLanguageService()
	seedLanguage(repo, "Zig", model.StateWaiting, nil)
	seedLanguage(repo, "Go", model.StateApproved, nil)
	moderator := policy.NewActor(uuid.New(), []string{model.PermLanguageViewByState})
	waiting := model.StateWaiting

	languages, _, err := svc.List(moderator, &waiting, 1, 20)
	require.NoError(t, err)
	require.Len(t, languages, 1)
	assert.Equal(t, "Zig", languages[0].Name)
}

func TestGetLanguage_WaitingRefusedWithoutPermission(t *testing.T) {
	svc, repo := newTestLanguageService()
	language := seedLanguage(repo, "Zig", model.StateWaiting, nil)

	_, err := svc.Get(policy.Anonymous(), language.ID)
	assert.ErrorIs(t, err, policy.ErrNotEnoughPermission)

	moderator := policy.NewActor(uuid.New(), []string{model.PermLanguageViewByState})
	got, err := svc.Get(moderator, language.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zig", got.Name)
}

// A missing resource stays a not-found; it is never dressed up as a
// permission failure.
func TestGetLanguage_MissingIsNotFound(t *testing.T) {
	svc, _ := newTestLanguageService()

	_, err := svc.Get(policy.Anonymous(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateLanguage_AuthorEditRevertsApproval(t *testing.T) {
	svc, repo := newTestLanguageService()
	authorID := uuid.New()
	language := seedLanguage(repo, "Go", model.StateApproved, &authorID)
	author := policy.NewActor(authorID, []string{model.PermLanguageUpdateOwn})

	updated, err := svc.Update(author, language.ID, &LanguageRequest{Name: "Go", Description: "compiled"})
	require.NoError(t, err)
	assert.Equal(t, model.StateWaiting, updated.State)
}

func TestUpdateLanguage_ModeratorEditStaysApproved(t *testing.T) {
	svc, repo := newTestLanguageService()
	language := seedLanguage(repo, "Go", model.StateWaiting, nil)
	moderator := policy.NewActor(uuid.New(), []string{model.PermLanguageUpdateOthers, model.PermLanguageSetState})

	updated, err := svc.Update(moderator, language.ID, &LanguageRequest{Name: "Go"})
	require.NoError(t, err)
	assert.Equal(t, model.StateApproved, updated.State)
}

func TestUpdateLanguage_NonAuthorRejected(t *testing.T) {
	svc, repo := newTestLanguageService()
	authorID := uuid.New()
	language := seedLanguage(repo, "Go", model.StateApproved, &authorID)
	stranger := policy.NewActor(uuid.New(), []string{model.PermLanguageUpdateOwn})

	_, err := svc.Update(stranger, language.ID, &LanguageRequest{Name: "Go"})
	assert.ErrorIs(t, err, policy.ErrNotEnoughPermission)
}

// With the author gone the own-permission branch is dead; only the
// others permission can still edit.
func TestUpdateLanguage_OrphanedResource(t *testing.T) {
	svc, repo := newTestLanguageService()
	language := seedLanguage(repo, "Go", model.StateApproved, nil)

	owner := policy.NewActor(uuid.New(), []string{model.PermLanguageUpdateOwn})
	_, err := svc.Update(owner, language.ID, &LanguageRequest{Name: "Go"})
	assert.ErrorIs(t, err, policy.ErrNotEnoughPermission)

	moderator := policy.NewActor(uuid.New(), []string{model.PermLanguageUpdateOthers})
	_, err = svc.Update(moderator, language.ID, &LanguageRequest{Name: "Go"})
	assert.NoError(t, err)
}

func TestSetLanguageState_RequiresPermission(t *testing.T) {
	svc, repo := newTestLanguageService()
	authorID := uuid.New()
	language := seedLanguage(repo, "Go", model.StateWaiting, &authorID)

	// Authorship does not grant moderation rights
	author := policy.NewActor(authorID, []string{model.PermLanguageUpdateOwn})
	_, err := svc.SetState(author, language.ID, model.StateApproved)
	assert.ErrorIs(t, err, policy.ErrNotEnoughPermission)

	moderator := policy.NewActor(uuid.New(), []string{model.PermLanguageSetState})
	updated, err := svc.SetState(moderator, language.ID, model.StateDeclined)
	require.NoError(t, err)
	assert.Equal(t, model.StateDeclined, updated.State)
}

func TestDeleteLanguage_OwnAndOthersPair(t *testing.T) {
	svc, repo := newTestLanguageService()
	authorID := uuid.New()
	language := seedLanguage(repo, "Go", model.StateApproved, &authorID)

	stranger := policy.NewActor(uuid.New(), []string{model.PermLanguageDeleteOwn})
	assert.ErrorIs(t, svc.Delete(stranger, language.ID), policy.ErrNotEnoughPermission)

	author := policy.NewActor(authorID, []string{model.PermLanguageDeleteOwn})
	require.NoError(t, svc.Delete(author, language.ID))

	_, err := svc.Get(policy.Anonymous(), language.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
