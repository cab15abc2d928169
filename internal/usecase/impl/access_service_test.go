package impl

import (
	"context"
	"testing"

	"bulletin/config"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/errors"
	"bulletin/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessService_RequireAdminOrOwner(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	resourceID := uuid.New()

	found := func(context.Context, uuid.UUID) (uuid.UUID, error) { return ownerID, nil }
	missing := func(context.Context, uuid.UUID) (uuid.UUID, error) { return uuid.Nil, domainerrors.ErrPostNotFound }

	tests := []struct {
		name     string
		identity *entity.ResolvedIdentity
		lookup   func(context.Context, uuid.UUID) (uuid.UUID, error)
		wantErr  error
	}{
		{name: "admin, not owner", identity: &entity.ResolvedIdentity{UserID: otherID, RoleName: entity.RoleAdmin}, lookup: found},
		{name: "admin, owner", identity: &entity.ResolvedIdentity{UserID: ownerID, RoleName: entity.RoleAdmin}, lookup: found},
		{name: "regular, owner", identity: &entity.ResolvedIdentity{UserID: ownerID, RoleName: entity.RoleRegular}, lookup: found},
		{
			name:     "regular, not owner",
			identity: &entity.ResolvedIdentity{UserID: otherID, RoleName: entity.RoleRegular},
			lookup:   found,
			wantErr:  domainerrors.ErrForbidden,
		},
		{
			name:     "admin, missing resource",
			identity: &entity.ResolvedIdentity{UserID: otherID, RoleName: entity.RoleAdmin},
			lookup:   missing,
			wantErr:  domainerrors.ErrNotFound,
		},
		{
			name:     "regular, missing resource",
			identity: &entity.ResolvedIdentity{UserID: ownerID, RoleName: entity.RoleRegular},
			lookup:   missing,
			wantErr:  domainerrors.ErrNotFound,
		},
		{name: "no identity", identity: nil, lookup: found, wantErr: domainerrors.ErrUnauthenticated},
	}

	access := NewAccessService(AccessServiceParams{Config: newTestConfig()})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := access.RequireAdminOrOwner(context.Background(), tt.identity, resourceID, tt.lookup)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAccessService_RequireAdminOrOwner_MissingStoredResource(t *testing.T) {
	store, _ := seededStore(t)
	access := NewAccessService(AccessServiceParams{Config: newTestConfig()})
	posts := NewPostService(PostServiceParams{PostRepo: memory.NewPostRepository(store), Logger: newDiscardLogger()})

	admin := &entity.ResolvedIdentity{UserID: uuid.New(), RoleName: entity.RoleAdmin}

	err := access.RequireAdminOrOwner(context.Background(), admin, uuid.New(), posts.PostAuthor)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound), "got %v", err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound), "got %v", err)
	assert.False(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAccessService_RequireAdmin(t *testing.T) {
	access := NewAccessService(AccessServiceParams{Config: newTestConfig()})

	assert.NoError(t, access.RequireAdmin(&entity.ResolvedIdentity{RoleName: entity.RoleAdmin}))
	assert.True(t, errors.Is(access.RequireAdmin(&entity.ResolvedIdentity{RoleName: entity.RoleRegular}), domainerrors.ErrForbidden))
	assert.True(t, errors.Is(access.RequireAdmin(&entity.ResolvedIdentity{RoleName: entity.RoleBanned}), domainerrors.ErrForbidden))
	assert.True(t, errors.Is(access.RequireAdmin(nil), domainerrors.ErrUnauthenticated))
}

func TestAccessService_PrivilegedRoleFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{PrivilegedRole: "moderator"}}
	access := NewAccessService(AccessServiceParams{Config: cfg})

	assert.NoError(t, access.RequireAdmin(&entity.ResolvedIdentity{RoleName: "moderator"}))
	assert.Error(t, access.RequireAdmin(&entity.ResolvedIdentity{RoleName: entity.RoleAdmin}))
}

func TestAccessService_RejectRoles(t *testing.T) {
	access := NewAccessService(AccessServiceParams{Config: newTestConfig()})

	assert.NoError(t, access.RejectRoles(&entity.ResolvedIdentity{RoleName: entity.RoleRegular}, entity.RoleBanned))
	assert.True(t, errors.Is(
		access.RejectRoles(&entity.ResolvedIdentity{RoleName: entity.RoleBanned}, entity.RoleBanned),
		domainerrors.ErrForbidden,
	))
	assert.True(t, errors.Is(access.RejectRoles(nil, entity.RoleBanned), domainerrors.ErrUnauthenticated))
}
