// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bulletin/internal/delivery/api/middleware"
	"bulletin/internal/delivery/api/router/handler"
	"bulletin/internal/domain/entity"
	"bulletin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	RoleHandler    *handler.RoleHandler
	AuthMiddleware *middleware.AuthMiddleware
	SignInThrottle *middleware.SignInThrottle
	UserUC         usecase.UserUsecase
	PostUC         usecase.PostUsecase
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	roleHandler    *handler.RoleHandler
	auth           *middleware.AuthMiddleware
	signInThrottle *middleware.SignInThrottle
	userOwner      usecase.OwnerLookup
	postAuthor     usecase.OwnerLookup
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		roleHandler:    params.RoleHandler,
		auth:           params.AuthMiddleware,
		signInThrottle: params.SignInThrottle,
		userOwner:      params.UserUC.UserOwner,
		postAuthor:     params.PostUC.PostAuthor,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Gates always run after Authenticate, in the order they are listed.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/users")
	{
		users.POST("/sign-up", r.userHandler.SignUp)
		users.POST("/sign-in", r.userHandler.SignIn, r.signInThrottle.Handle)
		users.POST("/token-refresh", r.userHandler.RefreshToken)

		users.GET("/protected-example", r.userHandler.ProtectedExample, r.auth.Authenticate, r.auth.RequireAdmin)
		users.GET("", r.userHandler.ListUsers, r.auth.Authenticate, r.auth.RequireAdmin)
		users.GET("/:userID", r.userHandler.GetUser, r.auth.Authenticate)
		users.PUT("/:userID", r.userHandler.UpdateUser,
			r.auth.Authenticate,
			r.auth.RequireAdminOrOwner("userID", r.userOwner),
		)
		users.DELETE("/:userID", r.userHandler.DeleteUser,
			r.auth.Authenticate,
			r.auth.RequireAdminOrOwner("userID", r.userOwner),
		)
	}

	roles := e.Group("/roles", r.auth.Authenticate)
	{
		roles.GET("", r.roleHandler.ListRoles)
		roles.GET("/:roleName/users", r.roleHandler.ListUsersWithRole, r.auth.RequireAdmin)
	}

	posts := e.Group("/posts")
	{
		posts.GET("", r.postHandler.ListPosts)
		posts.GET("/author/:authorID", r.postHandler.ListPostsByAuthor)
		posts.GET("/:postID", r.postHandler.GetPost)

		posts.POST("", r.postHandler.CreatePost,
			r.auth.Authenticate,
			r.auth.RejectRoles(entity.RoleBanned),
		)
		posts.PUT("/:postID", r.postHandler.UpdatePost,
			r.auth.Authenticate,
			r.auth.RejectRoles(entity.RoleBanned),
			r.auth.RequireAdminOrOwner("postID", r.postAuthor),
		)
		posts.DELETE("/:postID", r.postHandler.DeletePost,
			r.auth.Authenticate,
			r.auth.RejectRoles(entity.RoleBanned),
			r.auth.RequireAdminOrOwner("postID", r.postAuthor),
		)
	}
}
