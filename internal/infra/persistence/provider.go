// Package persistence selects the storage driver and exposes its repositories to the fx graph.
package persistence

import (
	"log/slog"

	"bulletin/config"
	"bulletin/internal/domain/repository"
	"bulletin/internal/infra/persistence/memory"
	"bulletin/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of stores the use cases depend on.
type Repositories struct {
	fx.Out

	UserRepo  repository.UserRepository
	RoleRepo  repository.RoleRepository
	PostRepo  repository.PostRepository
	TxManager repository.TransactionManager
}

// NewRepositories builds the repositories for the configured storage driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	logger := params.Logger

	switch driver {
	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")

		store := memory.NewStore()

		return Repositories{
			UserRepo:  memory.NewUserRepository(store),
			RoleRepo:  memory.NewRoleRepository(store),
			PostRepo:  memory.NewPostRepository(store),
			TxManager: memory.NewTransactionManager(store),
		}, nil

	case config.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using PostgreSQL storage")

		return Repositories{
			UserRepo:  postgres.NewUserRepository(db),
			RoleRepo:  postgres.NewRoleRepository(db),
			PostRepo:  postgres.NewPostRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
