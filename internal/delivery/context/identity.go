package context

import (
	"context"

	"bulletin/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for the resolved caller identity.
	KeyIdentity ContextKey = "identity"

	// HeaderToken carries the session token on requests and the refreshed
	// token on responses.
	HeaderToken = "jwt"
)

// SetIdentity stores the resolved identity on both the echo context and the
// request's context.Context, so handlers and services see the same caller.
func SetIdentity(c echo.Context, identity *entity.ResolvedIdentity) {
	c.Set(string(KeyIdentity), identity)

	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
}

// GetIdentity returns the identity set by the authentication middleware, or nil.
func GetIdentity(c echo.Context) *entity.ResolvedIdentity {
	identity, _ := c.Get(string(KeyIdentity)).(*entity.ResolvedIdentity)

	return identity
}

// WithIdentity returns a new context carrying identity.
func WithIdentity(ctx context.Context, identity *entity.ResolvedIdentity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext returns the identity carried by ctx, or nil.
func IdentityFromContext(ctx context.Context) *entity.ResolvedIdentity {
	identity, _ := ctx.Value(KeyIdentity).(*entity.ResolvedIdentity)

	return identity
}
