package handler

import (
	"log/slog"

	"bulletin/internal/delivery/api/response"
	deliverycontext "bulletin/internal/delivery/context"
	"bulletin/internal/domain/entity"
	"bulletin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SignUp registers a new account with the default role.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Country:  req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newUserResponse(user))
}

// SignIn exchanges credentials for a session token.
func (h *UserHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(deliverycontext.HeaderToken, output.Token)

	return response.OK(c, &SignInResponse{
		TokenResponse: TokenResponse{JWT: output.Token, ExpiresAt: output.ExpiresAt},
		User:          newUserResponse(output.User),
	})
}

// RefreshToken verifies the submitted token and returns a fresh one.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), req.JWT)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(deliverycontext.HeaderToken, output.Token)

	return response.OK(c, &TokenResponse{JWT: output.Token, ExpiresAt: output.ExpiresAt})
}

// ProtectedExample is an admin-only route used to check the gates end to end.
func (h *UserHandler) ProtectedExample(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	return response.OK(c, map[string]any{
		"message": "You have access to this protected route",
		"userID":  identity.UserID,
		"role":    identity.RoleName,
	})
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserResponses(users))
}

// GetUser returns a single user.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuidParam(c, "userID")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserResponse(user))
}

// UpdateUser applies a partial update to a user. Changing the caller's own
// email or password revokes their token, so no refreshed token is returned.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := uuidParam(c, "userID")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Country:  req.Country,
	}
	if req.Role != nil {
		role := entity.RoleName(*req.Role)
		input.RoleName = &role
	}

	actor := deliverycontext.GetIdentity(c)
	user, err := h.userUC.UpdateUser(c.Request().Context(), actor, userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if actor != nil && actor.UserID == userID && (req.Email != nil || req.Password != nil) {
		c.Response().Header().Del(deliverycontext.HeaderToken)
	}

	return response.OK(c, newUserResponse(user))
}

// DeleteUser removes a user along with their posts.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := uuidParam(c, "userID")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
