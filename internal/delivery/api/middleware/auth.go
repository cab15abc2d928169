package middleware

import (
	deliverycontext "bulletin/internal/delivery/context"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware resolves the caller from the session token and mounts the
// authorization gates in front of handlers.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
	access   usecase.AccessUsecase
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Identity usecase.IdentityUsecase
	Access   usecase.AccessUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{identity: params.Identity, access: params.Access}
}

// Authenticate reads the token from the jwt header, resolves it into an
// identity and hands the refreshed token back in the jwt response header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawToken := c.Request().Header.Get(deliverycontext.HeaderToken)

		identity, err := m.identity.Resolve(c.Request().Context(), rawToken)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)
		c.Response().Header().Set(deliverycontext.HeaderToken, identity.Token)

		return next(c)
	}
}

// RequireAdmin lets only the privileged role through.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := m.access.RequireAdmin(deliverycontext.GetIdentity(c)); err != nil {
			return err
		}

		return next(c)
	}
}

// RequireAdminOrOwner lets through the privileged role or the owner of the
// resource whose id is in the param path parameter.
func (m *AuthMiddleware) RequireAdminOrOwner(param string, lookup usecase.OwnerLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return domainerrors.NewUnauthenticatedError(nil)
			}

			resourceID, err := uuid.Parse(c.Param(param))
			if err != nil {
				return domainerrors.ErrValidationFailed.WrapMessage("invalid " + param)
			}

			if err := m.access.RequireAdminOrOwner(c.Request().Context(), identity, resourceID, lookup); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// RejectRoles denies callers holding any of roles.
func (m *AuthMiddleware) RejectRoles(roles ...entity.RoleName) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.access.RejectRoles(deliverycontext.GetIdentity(c), roles...); err != nil {
				return err
			}

			return next(c)
		}
	}
}
