package components

import (
	"admin-dashboard/internal/infra/db"
	"admin-dashboard/internal/infra/readstore"
	"admin-dashboard/internal/infra/repository"
	"admin-dashboard/internal/monitor"
	"admin-dashboard/internal/pkg/config"
	"admin-dashboard/internal/usecase/commands"
	"admin-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewStatsReadStore,
		NewCustomerReadStore,
		NewOrderReadStore,
		NewCustomerRepository,
		NewOrderRepository,
		// Interface bindings for the read and write sides
		func(s *readstore.StatsReadStore) queries.StatsReadStore { return s },
		func(s *readstore.StatsReadStore) monitor.CounterSource { return s },
		func(r *readstore.CustomerReadStore) queries.CustomerReadStore { return r },
		func(r *readstore.OrderReadStore) queries.OrderReadStore { return r },
		func(r *repository.CustomerRepository) commands.CustomerRepository { return r },
		func(r *repository.OrderRepository) commands.OrderRepository { return r },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewStatsReadStore(dbtx db.DBTX, cfg config.Config) *readstore.StatsReadStore {
	return readstore.NewStatsReadStore(dbtx, cfg.DB.QueryTimeout, cfg.Monitor.ReportTimeZone)
}

func NewCustomerReadStore(dbtx db.DBTX, cfg config.Config) *readstore.CustomerReadStore {
	return readstore.NewCustomerReadStore(dbtx, cfg.DB.QueryTimeout)
}

func NewOrderReadStore(dbtx db.DBTX, cfg config.Config) *readstore.OrderReadStore {
	return readstore.NewOrderReadStore(dbtx, cfg.DB.QueryTimeout)
}

func NewCustomerRepository(dbtx db.DBTX, cfg config.Config) *repository.CustomerRepository {
	return repository.NewCustomerRepository(dbtx, cfg.DB.QueryTimeout)
}

func NewOrderRepository(dbtx db.DBTX, cfg config.Config) *repository.OrderRepository {
	return repository.NewOrderRepository(dbtx, cfg.DB.QueryTimeout)
}
