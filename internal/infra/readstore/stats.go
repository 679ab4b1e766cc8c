package readstore

import (
	"context"
	"time"

	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/infra/db"
	"admin-dashboard/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

const (
	countCustomersSQL = `SELECT COUNT(*) FROM customers`

	countOrdersSQL = `SELECT COUNT(*) FROM orders`

	countOnlineCustomersSQL = `
		SELECT COUNT(*) FROM customers
		WHERE last_activity >= now() - make_interval(secs => $1)`

	countPendingOrdersSQL = `SELECT COUNT(*) FROM orders WHERE status = 'CREATED'`

	// COALESCE keeps the zero default when no PAID orders exist; the text
	// cast preserves numeric precision across the wire.
	revenueSQL = `SELECT COALESCE(SUM(amount), 0)::text FROM orders WHERE status = 'PAID'`

	orderCountsByDaySQL = `
		SELECT (created_at AT TIME ZONE $1)::date AS day, COUNT(*)
		FROM orders
		WHERE created_at >= $2
		GROUP BY day
		ORDER BY day`
)

// StatsReadStore serves the aggregate queries behind the dashboard snapshot
// and the change-detection poller. Every query is bounded by the configured
// store timeout so a stalled store surfaces as STORE_UNAVAILABLE instead of
// hanging the caller.
type StatsReadStore struct {
	db       db.DBTX
	timeout  time.Duration
	timeZone string
}

func NewStatsReadStore(dbtx db.DBTX, timeout time.Duration, timeZone string) *StatsReadStore {
	return &StatsReadStore{db: dbtx, timeout: timeout, timeZone: timeZone}
}

func (r *StatsReadStore) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, countCustomersSQL, "failed to count customers")
}

func (r *StatsReadStore) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, countOrdersSQL, "failed to count orders")
}

func (r *StatsReadStore) CountPendingOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, countPendingOrdersSQL, "failed to count pending orders")
}

func (r *StatsReadStore) CountOnlineCustomers(ctx context.Context, window time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.db.QueryRow(ctx, countOnlineCustomersSQL, window.Seconds()).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count online customers", err)
	}
	return count, nil
}

func (r *StatsReadStore) Revenue(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var raw string
	if err := r.db.QueryRow(ctx, revenueSQL).Scan(&raw); err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum paid order amounts", err)
	}
	revenue, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("revenue sum is not numeric", err, infra.KindInvalidAggregate)
	}
	return revenue, nil
}

// OrderCountsByDay groups order creations by calendar day in the reporting
// timezone. Days with no orders are absent from the result; the caller
// zero-fills its window.
func (r *StatsReadStore) OrderCountsByDay(ctx context.Context, since time.Time) ([]queries.DayCount, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, orderCountsByDaySQL, r.timeZone, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count orders by day", err)
	}
	defer rows.Close()

	var counts []queries.DayCount
	for rows.Next() {
		var dc queries.DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan daily order count", err, infra.KindInvalidAggregate)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read daily order counts", err)
	}
	return counts, nil
}

func (r *StatsReadStore) count(ctx context.Context, sql, errMsg string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr(errMsg, err)
	}
	return count, nil
}
