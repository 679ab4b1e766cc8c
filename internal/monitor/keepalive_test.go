//go:build unit

package monitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"admin-dashboard/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestKeepAlivePingsConfiguredURL(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	k := NewKeepAlive(config.KeepAliveConfig{
		SelfPingURL:        srv.URL,
		PingIntervalMillis: 20,
	}, discardLogger())
	assert.True(t, k.Enabled())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	k.Run(ctx)

	assert.GreaterOrEqual(t, hits.Load(), int64(2))
}

func TestKeepAliveDisabledWithoutURL(t *testing.T) {
	k := NewKeepAlive(config.KeepAliveConfig{PingIntervalMillis: 20}, discardLogger())
	assert.False(t, k.Enabled())

	done := make(chan struct{})
	go func() {
		k.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled keep-alive must return immediately")
	}
}
