package components

import (
	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/handler/api"
	"admin-dashboard/internal/ws"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDashboardHandler,
		api.NewCustomerHandler,
		api.NewOrderHandler,
		ws.NewHandler,
	),
	fx.Invoke(handler.NewRouter),
)
