package impl

import (
	"context"
	"testing"
	"time"

	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/domain/service"
	"bulletin/internal/errors"
	"bulletin/internal/infra/auth"
	"bulletin/internal/infra/persistence/memory"
	mockRepo "bulletin/internal/mocks/repository"
	mockSvc "bulletin/internal/mocks/service"
	"bulletin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	store        *memory.Store
	roles        map[entity.RoleName]*entity.Role
	hasher       service.CredentialHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	store, roles := seededStore(t)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokenService := mockSvc.NewMockTokenService(t)
	cfg := newTestConfig()

	svc := NewUserService(UserServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		UserRepo:     memory.NewUserRepository(store),
		Hasher:       hasher,
		TokenService: tokenService,
		Access:       NewAccessService(AccessServiceParams{Config: cfg}),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		store:        store,
		roles:        roles,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_SignUp_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Email:    " A@Example.com ",
		Password: "secret1",
		Username: "alice",
		Country:  "NZ",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "a@example.com", user.Email)
	assert.Equal(t, fx.roles[entity.RoleRegular].ID, user.RoleID)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, fx.hasher.Check("secret1", user.PasswordHash))
}

func TestUserService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = fx.service.SignUp(ctx, usecase.SignUpInput{Email: "a@example.com", Password: "another"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCredential))

	all, err := memory.NewUserRepository(fx.store).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserService_SignUp_RequiresSeededRole(t *testing.T) {
	store := memory.NewStore()
	cfg := newTestConfig()
	svc := NewUserService(UserServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		UserRepo:     memory.NewUserRepository(store),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: mockSvc.NewMockTokenService(t),
		Access:       NewAccessService(AccessServiceParams{Config: cfg}),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	_, err := svc.SignUp(context.Background(), usecase.SignUpInput{Email: "a@example.com", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))
}

func TestUserService_SignUp_HashFailure(t *testing.T) {
	store, _ := seededStore(t)
	hasher := mockSvc.NewMockCredentialHasher(t)
	cfg := newTestConfig()
	svc := NewUserService(UserServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		UserRepo:     memory.NewUserRepository(store),
		Hasher:       hasher,
		TokenService: mockSvc.NewMockTokenService(t),
		Access:       NewAccessService(AccessServiceParams{Config: cfg}),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	hashErr := errors.New("entropy exhausted")
	hasher.EXPECT().Hash("secret1").Return("", hashErr).Once()

	_, err := svc.SignUp(context.Background(), usecase.SignUpInput{Email: "a@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, hashErr))

	all, err := memory.NewUserRepository(store).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserService_SignIn(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user, err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	expiresAt := time.Now().Add(time.Hour)
	fx.tokenService.EXPECT().
		Issue(user.Claim()).
		Return(&service.IssuedToken{Token: "signed-token", ExpiresAt: expiresAt}, nil).
		Once()

	out, err := fx.service.SignIn(ctx, usecase.SignInInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, user.ID, out.User.ID)

	tests := []struct {
		name  string
		input usecase.SignInInput
	}{
		{name: "wrong password", input: usecase.SignInInput{Email: "a@example.com", Password: "secret2"}},
		{name: "unknown email", input: usecase.SignInInput{Email: "nobody@example.com", Password: "secret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.SignIn(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrVerificationFailure))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "Invalid user details provided.", appErr.Message())
		})
	}
}

func TestUserService_SignIn_StoreFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cfg := newTestConfig()
	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Access:   NewAccessService(AccessServiceParams{Config: cfg}),
		Config:   cfg,
		Logger:   newDiscardLogger(),
	})

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find user")
	userRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(nil, dbErr)

	_, err := svc.SignIn(context.Background(), usecase.SignInInput{Email: "a@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrVerificationFailure))
	assert.True(t, errors.Is(err, dbErr))
}

func TestUserService_RefreshToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		VerifyAndRefresh(ctx, "old-token").
		Return(&service.RefreshedToken{IssuedToken: service.IssuedToken{Token: "new-token"}}, nil)
	fx.tokenService.EXPECT().
		VerifyAndRefresh(ctx, "revoked-token").
		Return(nil, domainerrors.ErrRevokedIdentity)

	out, err := fx.service.RefreshToken(ctx, "old-token")
	require.NoError(t, err)
	assert.Equal(t, "new-token", out.Token)

	_, err = fx.service.RefreshToken(ctx, "revoked-token")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	assert.True(t, errors.Is(err, domainerrors.ErrRevokedIdentity))

	_, err = fx.service.RefreshToken(ctx, "")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_UpdateUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user, err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	other, err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "b@example.com", Password: "secret1"})
	require.NoError(t, err)

	self := identityFor(user, entity.RoleRegular)
	admin := identityFor(other, entity.RoleAdmin)

	t.Run("password is re-hashed", func(t *testing.T) {
		newPassword := "secret2"
		updated, err := fx.service.UpdateUser(ctx, self, user.ID, usecase.UpdateUserInput{Password: &newPassword})
		require.NoError(t, err)
		assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)
		assert.True(t, fx.hasher.Check(newPassword, updated.PasswordHash))
	})

	t.Run("regular user cannot change role", func(t *testing.T) {
		role := entity.RoleAdmin
		_, err := fx.service.UpdateUser(ctx, self, user.ID, usecase.UpdateUserInput{RoleName: &role})
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin can change role", func(t *testing.T) {
		role := entity.RoleBanned
		updated, err := fx.service.UpdateUser(ctx, admin, user.ID, usecase.UpdateUserInput{RoleName: &role})
		require.NoError(t, err)
		assert.Equal(t, fx.roles[entity.RoleBanned].ID, updated.RoleID)
	})

	t.Run("email already taken", func(t *testing.T) {
		email := "B@example.com"
		_, err := fx.service.UpdateUser(ctx, self, user.ID, usecase.UpdateUserInput{Email: &email})
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCredential))
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "ghost"
		_, err := fx.service.UpdateUser(ctx, admin, uuid.New(), usecase.UpdateUserInput{Username: &name})
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestUserService_DeleteAndOwner(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user, err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	owner, err := fx.service.UserOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, owner)

	require.NoError(t, fx.service.DeleteUser(ctx, user.ID))

	_, err = fx.service.GetUser(ctx, user.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = fx.service.UserOwner(ctx, user.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	err = fx.service.DeleteUser(ctx, user.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = memory.NewUserRepository(fx.store).FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
