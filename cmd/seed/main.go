// Command seed creates the default roles in PostgreSQL. The schema must
// already exist. It is safe to run repeatedly.
package main

import (
	"context"
	"log/slog"

	"bulletin/config"
	logs "bulletin/internal/infra/log"
	"bulletin/internal/infra/persistence/postgres"
	"bulletin/internal/usecase"
	"bulletin/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewRoleRepository,
			postgres.NewUserRepository,
			impl.NewRoleService,
		),
		fx.Invoke(seed),
	).Run()
}

type seedParams struct {
	fx.In

	Lc         fx.Lifecycle
	Shutdowner fx.Shutdowner
	Roles      usecase.RoleUsecase
	Logger     *slog.Logger
}

// seed runs after the connection hook has pinged the database.
func seed(params seedParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Roles.EnsureDefaultRoles(ctx); err != nil {
				return errors.Wrap(err, "failed to seed roles")
			}
			params.Logger.Info("Database seeded")

			return params.Shutdowner.Shutdown()
		},
	})
}
