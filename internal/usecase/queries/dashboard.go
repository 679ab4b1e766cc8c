package queries

import (
	"context"
	"time"

	"admin-dashboard/internal/pkg/clock"
	"admin-dashboard/internal/pkg/config"
	"admin-dashboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DailyWindowDays is the span of the trailing order-count series, today
// included.
const DailyWindowDays = 7

// StatsReadStore is the aggregate read surface of the external store.
type StatsReadStore interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountOnlineCustomers(ctx context.Context, window time.Duration) (int64, error)
	CountPendingOrders(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
	OrderCountsByDay(ctx context.Context, since time.Time) ([]DayCount, error)
}

type DashboardQueries interface {
	Snapshot(ctx context.Context) (*DashboardSnapshot, error)
}

type dashboardQueriesImpl struct {
	stats    StatsReadStore
	window   time.Duration
	clock    clock.Clock
	location *time.Location
}

func NewDashboardQueries(stats StatsReadStore, clk clock.Clock, cfg config.MonitorConfig) (DashboardQueries, error) {
	loc, err := time.LoadLocation(cfg.ReportTimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid report timezone")
	}
	return &dashboardQueriesImpl{
		stats:    stats,
		window:   cfg.StalenessWindow(),
		clock:    clk,
		location: loc,
	}, nil
}

// Snapshot composes the aggregate queries into one view. Any underlying
// failure fails the whole snapshot; no partial result is returned.
func (q *dashboardQueriesImpl) Snapshot(ctx context.Context) (*DashboardSnapshot, error) {
	totalCustomers, err := q.stats.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := q.stats.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	onlineCustomers, err := q.stats.CountOnlineCustomers(ctx, q.window)
	if err != nil {
		return nil, err
	}
	pendingOrders, err := q.stats.CountPendingOrders(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := q.stats.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now().In(q.location)
	windowStart := startOfDay(now).AddDate(0, 0, -(DailyWindowDays - 1))
	counts, err := q.stats.OrderCountsByDay(ctx, windowStart)
	if err != nil {
		return nil, err
	}

	return &DashboardSnapshot{
		TotalCustomers:  totalCustomers,
		TotalOrders:     totalOrders,
		OnlineCustomers: onlineCustomers,
		PendingOrders:   pendingOrders,
		Revenue:         revenue,
		DailyOrders:     buildDailySeries(now, counts),
	}, nil
}

// buildDailySeries maps raw per-day counts onto the trailing window, oldest
// day first, with zero-order days explicitly present.
func buildDailySeries(now time.Time, counts []DayCount) []DayBucket {
	byDay := make(map[string]int64, len(counts))
	for _, dc := range counts {
		byDay[dc.Day.Format("2006-01-02")] = dc.Count
	}

	start := startOfDay(now).AddDate(0, 0, -(DailyWindowDays - 1))
	buckets := make([]DayBucket, 0, DailyWindowDays)
	for i := 0; i < DailyWindowDays; i++ {
		day := start.AddDate(0, 0, i)
		buckets = append(buckets, DayBucket{
			Day:     day,
			Weekday: day.Weekday().String(),
			Count:   byDay[day.Format("2006-01-02")],
		})
	}
	return buckets
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
