package components

import (
	"context"
	"log/slog"

	"admin-dashboard/internal/monitor"
	"admin-dashboard/internal/pkg/config"
	"admin-dashboard/internal/ws"

	"go.uber.org/fx"
)

var MonitorModule = fx.Module("monitor",
	fx.Provide(
		ws.NewHub,
		NewPoller,
		NewKeepAlive,
	),
	fx.Invoke(StartMonitor),
)

func NewPoller(source monitor.CounterSource, hub *ws.Hub, cfg config.Config, logger *slog.Logger) *monitor.Poller {
	return monitor.NewPoller(source, hub, cfg.Monitor.PollInterval(), logger)
}

func NewKeepAlive(cfg config.Config, logger *slog.Logger) *monitor.KeepAlive {
	return monitor.NewKeepAlive(cfg.KeepAlive, logger)
}

// StartMonitor runs the hub, the change-detection poller and the optional
// keep-alive loop for the lifetime of the application.
func StartMonitor(lc fx.Lifecycle, hub *ws.Hub, poller *monitor.Poller, keepAlive *monitor.KeepAlive, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			go poller.Run(ctx)
			if keepAlive.Enabled() {
				go keepAlive.Run(ctx)
			}
			logger.Info("monitor started",
				"poll_interval", cfg.Monitor.PollInterval(),
				"staleness_window", cfg.Monitor.StalenessWindow(),
				"keep_alive", keepAlive.Enabled(),
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
