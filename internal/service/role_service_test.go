package service

import (
	"testing"

	"progee-api/internal/model"
	"progee-api/internal/policy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRoleRepo struct {
	roles      map[uint]*model.Role
	nextID     uint
	usersByRID map[uint]int64
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		roles:      make(map[uint]*model.Role),
		nextID:     1,
		usersByRID: make(map[uint]int64),
	}
}

func (r *fakeRoleRepo) FindAll() ([]model.Role, error) {
	var out []model.Role
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *fakeRoleRepo) FindByID(id uint) (*model.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *role
	return &copied, nil
}

func (r *fakeRoleRepo) FindByTitle(title string) (*model.Role, error) {
	for _, role := range r.roles {
		if role.Title == title {
			copied := *role
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRoleRepo) FindDefault() (*model.Role, error) {
	for _, role := range r.roles {
		if role.IsDefault {
			copied := *role
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRoleRepo) DefaultExists(excludeID uint) (bool, error) {
	for _, role := range r.roles {
		if role.IsDefault && role.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRoleRepo) Create(role *model.Role) error {
	if role.ID == 0 {
		role.ID = r.nextID
		r.nextID++
	}
	copied := *role
	r.roles[role.ID] = &copied
	return nil
}

func (r *fakeRoleRepo) Update(role *model.Role) error {
	copied := *role
	r.roles[role.ID] = &copied
	return nil
}

func (r *fakeRoleRepo) ReplacePermissions(role *model.Role, permissions []model.Permission) error {
	stored, ok := r.roles[role.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Permissions = permissions
	return nil
}

func (r *fakeRoleRepo) Delete(id uint) error {
	delete(r.roles, id)
	return nil
}

func (r *fakeRoleRepo) CountUsers(roleID uint) (int64, error) {
	return r.usersByRID[roleID], nil
}

func (r *fakeRoleRepo) SeedDefaults() error { return nil }

type fakePermissionRepo struct{}

func (fakePermissionRepo) FindByCode(code string) (*model.Permission, error) {
	return &model.Permission{Code: code}, nil
}

func (fakePermissionRepo) FindByCodes(codes []string) ([]model.Permission, error) {
	perms := make([]model.Permission, len(codes))
	for i, code := range codes {
		perms[i] = model.Permission{Code: code}
	}
	return perms, nil
}

func (fakePermissionRepo) FindAll() ([]model.Permission, error) { return nil, nil }
func (fakePermissionRepo) SeedDefaults() error                  { return nil }

func roleAdmin() policy.Actor {
	return policy.NewActor(uuid.New(), []string{
		model.PermRoleView, model.PermRoleCreate, model.PermRoleUpdate, model.PermRoleDelete,
	})
}

func TestCreateRole_RequiresPermission(t *testing.T) {
	svc := NewRoleService(newFakeRoleRepo(), fakePermissionRepo{})

	_, err := svc.Create(policy.Anonymous(), &RoleRequest{Title: "EDITOR"})
	assert.ErrorIs(t, err, policy.ErrNotEnoughPermission)

	plain := policy.NewActor(uuid.New(), []string{model.PermRoleView})
	_, err = svc.Create(plain, &RoleRequest{Title: "EDITOR"})
	assert.ErrorIs(t, err, policy.ErrNotEnoughPermission)
}

func TestCreateRole_SecondDefaultRejected(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, fakePermissionRepo{})
	admin := roleAdmin()

	_, err := svc.Create(admin, &RoleRequest{Title: "USER", IsDefault: true})
	require.NoError(t, err)

	_, err = svc.Create(admin, &RoleRequest{Title: "GUEST", IsDefault: true})
	assert.ErrorIs(t, err, ErrDefaultRoleExists)
}

func TestUpdateRole_PromoteWhileDefaultExistsRejected(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, fakePermissionRepo{})
	admin := roleAdmin()

	def, err := svc.Create(admin, &RoleRequest{Title: "USER", IsDefault: true})
	require.NoError(t, err)
	other, err := svc.Create(admin, &RoleRequest{Title: "EDITOR"})
	require.NoError(t, err)

	_, err = svc.Update(admin, other.ID, &RoleRequest{Title: "EDITOR", IsDefault: true})
	assert.ErrorIs(t, err, ErrDefaultRoleExists)

	// Re-saving the existing default is not a second default
	_, err = svc.Update(admin, def.ID, &RoleRequest{Title: "USER", IsDefault: true})
	assert.NoError(t, err)
}

func TestUpdateRole_DemoteThenPromote(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, fakePermissionRepo{})
	admin := roleAdmin()

	def, err := svc.Create(admin, &RoleRequest{Title: "USER", IsDefault: true})
	require.NoError(t, err)
	other, err := svc.Create(admin, &RoleRequest{Title: "MEMBER"})
	require.NoError(t, err)

	_, err = svc.Update(admin, def.ID, &RoleRequest{Title: "USER", IsDefault: false})
	require.NoError(t, err)

	promoted, err := svc.Update(admin, other.ID, &RoleRequest{Title: "MEMBER", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)
}

func TestDeleteRole_DefaultRejected(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, fakePermissionRepo{})
	admin := roleAdmin()

	def, err := svc.Create(admin, &RoleRequest{Title: "USER", IsDefault: true})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(admin, def.ID), ErrDefaultRoleDelete)
}

func TestDeleteRole_InUseRejected(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, fakePermissionRepo{})
	admin := roleAdmin()

	role, err := svc.Create(admin, &RoleRequest{Title: "EDITOR"})
	require.NoError(t, err)
	repo.usersByRID[role.ID] = 3

	assert.ErrorIs(t, svc.Delete(admin, role.ID), ErrRoleInUse)
}

func TestDeleteRole_UnreferencedDeleted(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, fakePermissionRepo{})
	admin := roleAdmin()

	role, err := svc.Create(admin, &RoleRequest{Title: "EDITOR"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(admin, role.ID))
	_, err = repo.FindByID(role.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
