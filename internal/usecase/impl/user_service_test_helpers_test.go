package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bulletin/config"
	"bulletin/internal/domain/entity"
	"bulletin/internal/infra/persistence/memory"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{JWT: "test-jwt-secret", Encryption: "test-enc-secret"},
		Auth:      &config.AuthConfig{BcryptCost: 4},
	}
	cfg.ApplyDefaults()

	return cfg
}

// seededStore returns a memory store holding the default roles, keyed by name.
func seededStore(t *testing.T) (*memory.Store, map[entity.RoleName]*entity.Role) {
	t.Helper()

	store := memory.NewStore()
	roleRepo := memory.NewRoleRepository(store)
	roles := map[entity.RoleName]*entity.Role{}
	for _, role := range entity.DefaultRoles() {
		require.NoError(t, roleRepo.Create(context.Background(), role))
		roles[role.Name] = role
	}

	return store, roles
}

func identityFor(user *entity.User, role entity.RoleName) *entity.ResolvedIdentity {
	return &entity.ResolvedIdentity{UserID: user.ID, Email: user.Email, RoleName: role}
}
