// Package persistence selects and wires the store behind the repositories.
package persistence

import (
	"log/slog"

	"perks/config"
	"perks/internal/domain/repository"
	"perks/internal/infra/metrics"
	"perks/internal/infra/persistence/memory"
	"perks/internal/infra/persistence/migration"
	"perks/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the dependencies of the repository provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// Repositories are the repository implementations handed to Fx.
type Repositories struct {
	fx.Out

	Store        repository.RedemptionStore
	Redemptions  repository.RedemptionRepository
	Vendors      repository.VendorRepository
	Entitlements repository.EntitlementRepository
	Analytics    repository.AnalyticsRepository
	TxManager    repository.TransactionManager
}

// NewRepositories builds every repository on the configured driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := config.PersistenceDriverPostgres
	if params.Config.Persistence != nil && params.Config.Persistence.Driver != "" {
		driver = params.Config.Persistence.Driver
	}

	switch driver {
	case config.PersistenceDriverMemory:
		params.Logger.Warn("Using in-memory persistence; data is lost on restart")

		return FromMemory(memory.NewStore()), nil
	case config.PersistenceDriverPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres config is required for the postgres persistence driver")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
			Metrics:   params.Metrics,
		})
		if err != nil {
			return Repositories{}, err
		}

		if params.Config.Persistence != nil && params.Config.Persistence.AutoMigrate {
			if err := migrate(db); err != nil {
				return Repositories{}, err
			}
			params.Logger.Info("Database migrations applied")
		}

		return FromGorm(db), nil
	default:
		return Repositories{}, errors.Errorf("unknown persistence driver %q", driver)
	}
}

// FromGorm builds the repositories on a GORM connection.
func FromGorm(db *gorm.DB) Repositories {
	return Repositories{
		Store:        postgres.NewRedemptionStore(db),
		Redemptions:  postgres.NewRedemptionRepository(db),
		Vendors:      postgres.NewVendorRepository(db),
		Entitlements: postgres.NewEntitlementRepository(db),
		Analytics:    postgres.NewAnalyticsRepository(db),
		TxManager:    postgres.NewTransactionManager(db),
	}
}

// FromMemory builds the repositories on a single in-memory store.
func FromMemory(store *memory.Store) Repositories {
	return Repositories{
		Store:        store,
		Redemptions:  store,
		Vendors:      store,
		Entitlements: store,
		Analytics:    store,
		TxManager:    store,
	}
}

func migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	return migration.Up(sqlDB)
}
