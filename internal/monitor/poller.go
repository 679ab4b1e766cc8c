package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"admin-dashboard/internal/ws"
)

// EventNotification is the event name viewers subscribe to.
const EventNotification = "notification"

// CounterSource supplies the two monotonic counters the poller samples.
type CounterSource interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
}

// Publisher fans a notification out to all connected viewers.
type Publisher interface {
	Publish(event ws.Event)
}

// baseline is the last successfully recorded sample. The established flag
// distinguishes "no baseline yet" from a legitimate zero count, so the
// first tick after startup never reports pre-existing rows as new.
type baseline struct {
	customers   int64
	orders      int64
	established bool
}

// Poller samples the customer and order counts on a fixed interval and
// publishes a notification for each observed increase. The baseline is
// owned exclusively by the Run goroutine.
type Poller struct {
	source   CounterSource
	pub      Publisher
	interval time.Duration
	logger   *slog.Logger
	baseline baseline
}

func NewPoller(source CounterSource, pub Publisher, interval time.Duration, logger *slog.Logger) *Poller {
	return &Poller{
		source:   source,
		pub:      pub,
		interval: interval,
		logger:   logger,
	}
}

// Run samples until ctx is canceled. Ticks are serialized in this
// goroutine; a deadline that passes while a sample is still in flight is
// dropped, never queued, so sampling is at most once per interval.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
			// Drop the deadline that may have fired during a slow tick.
			select {
			case <-ticker.C:
			default:
			}
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	customers, err := p.source.CountCustomers(ctx)
	if err != nil {
		// Baseline untouched: the next tick compares against the
		// last-known-good sample.
		p.logger.Error("poll tick failed", "counter", "customers", "error", err)
		return
	}
	orders, err := p.source.CountOrders(ctx)
	if err != nil {
		p.logger.Error("poll tick failed", "counter", "orders", "error", err)
		return
	}

	if p.baseline.established {
		if diff := customers - p.baseline.customers; diff > 0 {
			p.pub.Publish(ws.Event{
				Name:    EventNotification,
				Message: fmt.Sprintf("New customer registered (+%d)", diff),
			})
		}
		if diff := orders - p.baseline.orders; diff > 0 {
			p.pub.Publish(ws.Event{
				Name:    EventNotification,
				Message: fmt.Sprintf("New order received (+%d)", diff),
			})
		}
	}

	// Decreases land here too: the baseline moves silently, deletions are
	// never reported as negative notifications.
	p.baseline = baseline{customers: customers, orders: orders, established: true}
}
