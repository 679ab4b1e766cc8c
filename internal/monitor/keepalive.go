package monitor

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"admin-dashboard/internal/pkg/config"
)

// KeepAlive periodically pings an external URL so hosting platforms that
// idle out inactive instances keep this one warm. Inert when no URL is
// configured.
type KeepAlive struct {
	url      string
	interval time.Duration
	client   *http.Client
	logger   *slog.Logger
}

func NewKeepAlive(cfg config.KeepAliveConfig, logger *slog.Logger) *KeepAlive {
	return &KeepAlive{
		url:      cfg.SelfPingURL,
		interval: cfg.PingInterval(),
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func (k *KeepAlive) Enabled() bool {
	return k.url != ""
}

func (k *KeepAlive) Run(ctx context.Context) {
	if !k.Enabled() {
		return
	}

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.ping(ctx)
		}
	}
}

func (k *KeepAlive) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		k.logger.Error("self ping request build failed", "error", err)
		return
	}
	resp, err := k.client.Do(req)
	if err != nil {
		k.logger.Error("self ping failed", "error", err)
		return
	}
	resp.Body.Close()
	k.logger.Info("self ping completed", "status", resp.StatusCode)
}
