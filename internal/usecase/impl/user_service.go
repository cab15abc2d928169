// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"bulletin/config"
	deliverycontext "bulletin/internal/delivery/context"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/domain/service"
	"bulletin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingPassword is hashed once and checked against when the email is
// unknown, so a failed sign-in costs the same either way.
const timingPassword = "bulletin-sign-in-timing"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.CredentialHasher
	tokenService service.TokenService
	access       usecase.AccessUsecase
	defaultRole  entity.RoleName
	logger       *slog.Logger

	timingHashOnce sync.Once
	timingHash     string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.CredentialHasher
	TokenService service.TokenService
	Access       usecase.AccessUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	defaultRole := entity.RoleRegular
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.DefaultRole != "" {
		defaultRole = entity.RoleName(params.Config.Auth.DefaultRole)
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		access:       params.Access,
		defaultRole:  defaultRole,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account with the default role. The email check and
// the insert run in one transaction so two racing sign-ups cannot both pass.
func (srv *userService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting sign-up", slog.String("email", email))

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrDuplicateCredential
		}

		role, err := repoFactory.RoleRepo().FindByName(ctx, srv.defaultRole)
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrRoleNotFound.WrapMessage("default role is not seeded")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find default role")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

			return err
		}

		user := &entity.User{
			Email:        email,
			PasswordHash: hash,
			Username:     input.Username,
			Country:      input.Country,
			RoleID:       role.ID,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		created = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", created.ID))

	return created, nil
}

// SignIn verifies the credentials and issues a token. Unknown email and wrong
// password produce the same ErrVerificationFailure.
func (srv *userService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Sign-in lookup failed", slog.String("email", email), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to find user by email")
		}

		srv.hasher.Check(input.Password, srv.timingHashValue())
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrVerificationFailure
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrVerificationFailure
	}

	issued, err := srv.tokenService.Issue(user.Claim())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		TokenOutput: usecase.TokenOutput{Token: issued.Token, ExpiresAt: issued.ExpiresAt},
		User:        user,
	}, nil
}

// RefreshToken exchanges a valid token for a new one with a fresh expiry.
func (srv *userService) RefreshToken(ctx context.Context, token string) (*usecase.TokenOutput, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.NewUnauthenticatedError(nil)
	}

	refreshed, err := srv.tokenService.VerifyAndRefresh(ctx, token)
	if err != nil {
		srv.log(ctx).Info("Token refresh rejected", slog.Any("error", err))

		return nil, domainerrors.NewUnauthenticatedError(err)
	}

	return &usecase.TokenOutput{Token: refreshed.Token, ExpiresAt: refreshed.ExpiresAt}, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of input. A new password is hashed;
// a new email or password invalidates every token issued before the change.
func (srv *userService) UpdateUser(ctx context.Context, actor *entity.ResolvedIdentity, userID uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if input.RoleName != nil && !srv.access.IsPrivileged(actor) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only privileged users can change roles")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		if input.Email != nil {
			email := normalizeEmail(*input.Email)
			if email != user.Email {
				exists, err := userRepo.ExistsByEmail(ctx, email)
				if err != nil {
					return errors.Wrap(err, "failed to check email")
				}
				if exists {
					return domainerrors.ErrDuplicateCredential
				}
				user.Email = email
			}
		}
		if input.Password != nil {
			hash, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}
		if input.Username != nil {
			user.Username = *input.Username
		}
		if input.Country != nil {
			user.Country = *input.Country
		}
		if input.RoleName != nil {
			role, err := repoFactory.RoleRepo().FindByName(ctx, *input.RoleName)
			if errors.Is(err, repository.ErrRoleNotFound) {
				return domainerrors.ErrRoleNotFound
			}
			if err != nil {
				return errors.Wrap(err, "failed to find role")
			}
			user.RoleID = role.ID
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return mapUserLookupError(err)
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Update user failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update user transaction")
	}

	actorID := uuid.Nil
	if actor != nil {
		actorID = actor.UserID
	}
	srv.log(ctx).Info("User updated", slog.Any("userID", userID), slog.Any("actorID", actorID))

	return updated, nil
}

func (srv *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return mapUserLookupError(err)
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", userID))

	return nil
}

// UserOwner returns userID itself once the user is known to exist.
func (srv *userService) UserOwner(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return uuid.Nil, mapUserLookupError(err)
	}

	return user.ID, nil
}

func (srv *userService) timingHashValue() string {
	srv.timingHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingPassword)
		if err == nil {
			srv.timingHash = hash
		}
	})

	return srv.timingHash
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
