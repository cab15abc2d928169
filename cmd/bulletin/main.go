package main

import (
	"context"
	"log/slog"
	"os"

	"bulletin/config"
	"bulletin/internal/delivery"
	"bulletin/internal/delivery/api"
	"bulletin/internal/delivery/api/middleware"
	"bulletin/internal/delivery/api/router/handler"
	"bulletin/internal/infra/auth"
	logs "bulletin/internal/infra/log"
	"bulletin/internal/infra/persistence"
	"bulletin/internal/usecase"
	"bulletin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedMemoryRoles,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewPayloadCipher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccessService,
			impl.NewIdentityService,
			impl.NewUserService,
			impl.NewRoleService,
			impl.NewPostService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewSignInThrottle,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPostHandler,
			handler.NewRoleHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedMemoryRoles creates the default roles when running on the in-memory
// store, which starts empty on every boot. PostgreSQL is seeded by cmd/seed.
func seedMemoryRoles(lc fx.Lifecycle, cfg *config.Config, roles usecase.RoleUsecase) {
	if cfg.Storage.Driver != config.StorageDriverMemory {
		return
	}

	lc.Append(fx.Hook{
		OnStart: roles.EnsureDefaultRoles,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
