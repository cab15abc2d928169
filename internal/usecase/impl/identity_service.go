package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bulletin/internal/delivery/context"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/domain/service"
	"bulletin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type identityService struct {
	tokenService service.TokenService
	roleRepo     repository.RoleRepository
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TokenService service.TokenService
	RoleRepo     repository.RoleRepository
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		tokenService: params.TokenService,
		roleRepo:     params.RoleRepo,
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve verifies the token against the current user record and reads the
// user's role from storage on every call. Roles are never taken from the token.
func (srv *identityService) Resolve(ctx context.Context, rawToken string) (*entity.ResolvedIdentity, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, domainerrors.NewUnauthenticatedError(nil)
	}

	refreshed, err := srv.tokenService.VerifyAndRefresh(ctx, rawToken)
	if err != nil {
		srv.logRejection(ctx, err)

		return nil, domainerrors.NewUnauthenticatedError(err)
	}

	user := refreshed.User
	role, err := srv.roleRepo.FindByID(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			srv.log(ctx).Warn("User references a missing role", slog.Any("userID", user.ID), slog.Any("roleID", user.RoleID))

			return nil, domainerrors.ErrForbidden.WrapMessage("role not found")
		}

		srv.log(ctx).Error("Role lookup failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.NewUnauthenticatedError(
			errors.Wrapf(domainerrors.ErrIdentityLookupFailed, "find role %s: %v", user.RoleID, err),
		)
	}

	return &entity.ResolvedIdentity{
		UserID:         user.ID,
		Email:          user.Email,
		RoleName:       role.Name,
		Token:          refreshed.Token,
		TokenExpiresAt: refreshed.ExpiresAt,
	}, nil
}

func (srv *identityService) logRejection(ctx context.Context, err error) {
	attrs := []any{slog.Any("error", err)}

	var tokenErr *domainerrors.TokenError
	if errors.As(err, &tokenErr) {
		attrs = append(attrs, slog.String("reason", string(tokenErr.Reason)))
	}

	if domainerrors.IsRetryable(err) {
		srv.log(ctx).Error("Identity lookup unavailable", attrs...)

		return
	}

	srv.log(ctx).Info("Token rejected", attrs...)
}
