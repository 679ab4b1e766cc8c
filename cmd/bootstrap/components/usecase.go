package components

import (
	"admin-dashboard/internal/domain/customer"
	"admin-dashboard/internal/pkg/clock"
	"admin-dashboard/internal/pkg/config"
	"admin-dashboard/internal/usecase/commands"
	"admin-dashboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewClassifier,
		NewDashboardQueries,
		queries.NewCustomerQueries,
		queries.NewOrderQueries,
		commands.NewCustomerCommands,
		commands.NewOrderCommands,
	),
)

func NewClassifier(clk clock.Clock, cfg config.Config) *customer.Classifier {
	return customer.NewClassifier(clk, cfg.Monitor.StalenessWindow())
}

func NewDashboardQueries(stats queries.StatsReadStore, clk clock.Clock, cfg config.Config) (queries.DashboardQueries, error) {
	return queries.NewDashboardQueries(stats, clk, cfg.Monitor)
}
