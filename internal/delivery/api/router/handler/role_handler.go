package handler

import (
	"bulletin/internal/delivery/api/response"
	"bulletin/internal/domain/entity"
	"bulletin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RoleHandlerParams holds dependencies for RoleHandler, injected by Fx.
type RoleHandlerParams struct {
	fx.In

	RoleUC usecase.RoleUsecase
}

// RoleHandler serves the role endpoints.
type RoleHandler struct {
	roleUC usecase.RoleUsecase
}

// NewRoleHandler is the constructor for RoleHandler.
func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{roleUC: params.RoleUC}
}

func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.roleUC.ListRoles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newRoleResponses(roles))
}

// ListUsersWithRole returns every user currently holding :roleName.
func (h *RoleHandler) ListUsersWithRole(c echo.Context) error {
	users, err := h.roleUC.ListUsersWithRole(c.Request().Context(), entity.RoleName(c.Param("roleName")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserResponses(users))
}
