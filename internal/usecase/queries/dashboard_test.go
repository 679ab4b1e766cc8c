//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"admin-dashboard/internal/pkg/clock"
	"admin-dashboard/internal/pkg/config"
	"admin-dashboard/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsReadStore struct {
	mock.Mock
}

func (m *MockStatsReadStore) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsReadStore) CountOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsReadStore) CountOnlineCustomers(ctx context.Context, window time.Duration) (int64, error) {
	args := m.Called(ctx, window)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsReadStore) CountPendingOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsReadStore) Revenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStatsReadStore) OrderCountsByDay(ctx context.Context, since time.Time) ([]queries.DayCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.DayCount), args.Error(1)
}

func newDashboardQueries(t *testing.T, stats *MockStatsReadStore, now time.Time) queries.DashboardQueries {
	t.Helper()
	cfg := config.NewTestConfig()
	q, err := queries.NewDashboardQueries(stats, clock.NewMockClock(now), cfg.Monitor)
	require.NoError(t, err)
	return q
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSnapshot(t *testing.T) {
	// Monday afternoon; window covers Tue 2025-03-04 .. Mon 2025-03-10.
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	stats := new(MockStatsReadStore)
	stats.On("CountCustomers", mock.Anything).Return(int64(42), nil)
	stats.On("CountOrders", mock.Anything).Return(int64(17), nil)
	stats.On("CountOnlineCustomers", mock.Anything, 5*time.Minute).Return(int64(3), nil)
	stats.On("CountPendingOrders", mock.Anything).Return(int64(6), nil)
	stats.On("Revenue", mock.Anything).Return(decimal.RequireFromString("1234.505"), nil)
	stats.On("OrderCountsByDay", mock.Anything, day(2025, 3, 4)).Return([]queries.DayCount{
		{Day: day(2025, 3, 8), Count: 2},
		{Day: day(2025, 3, 10), Count: 5},
	}, nil)

	q := newDashboardQueries(t, stats, now)
	snapshot, err := q.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), snapshot.TotalCustomers)
	assert.Equal(t, int64(17), snapshot.TotalOrders)
	assert.Equal(t, int64(3), snapshot.OnlineCustomers)
	assert.Equal(t, int64(6), snapshot.PendingOrders)
	assert.True(t, decimal.RequireFromString("1234.505").Equal(snapshot.Revenue))

	expected := []queries.DayBucket{
		{Day: day(2025, 3, 4), Weekday: "Tuesday", Count: 0},
		{Day: day(2025, 3, 5), Weekday: "Wednesday", Count: 0},
		{Day: day(2025, 3, 6), Weekday: "Thursday", Count: 0},
		{Day: day(2025, 3, 7), Weekday: "Friday", Count: 0},
		{Day: day(2025, 3, 8), Weekday: "Saturday", Count: 2},
		{Day: day(2025, 3, 9), Weekday: "Sunday", Count: 0},
		{Day: day(2025, 3, 10), Weekday: "Monday", Count: 5},
	}
	if diff := cmp.Diff(expected, snapshot.DailyOrders); diff != "" {
		t.Errorf("daily series mismatch (-want +got):\n%s", diff)
	}

	var sum int64
	for _, b := range snapshot.DailyOrders {
		sum += b.Count
	}
	assert.Equal(t, int64(7), sum, "series must sum to the orders inside the window")
}

func TestSnapshotRevenueZeroDefault(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	stats := new(MockStatsReadStore)
	stats.On("CountCustomers", mock.Anything).Return(int64(0), nil)
	stats.On("CountOrders", mock.Anything).Return(int64(0), nil)
	stats.On("CountOnlineCustomers", mock.Anything, mock.Anything).Return(int64(0), nil)
	stats.On("CountPendingOrders", mock.Anything).Return(int64(0), nil)
	stats.On("Revenue", mock.Anything).Return(decimal.Zero, nil)
	stats.On("OrderCountsByDay", mock.Anything, mock.Anything).Return([]queries.DayCount(nil), nil)

	q := newDashboardQueries(t, stats, now)
	snapshot, err := q.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snapshot.Revenue.Equal(decimal.Zero), "revenue defaults to zero, never absent")
	assert.Len(t, snapshot.DailyOrders, 7, "zero-order days are still present")
	for _, b := range snapshot.DailyOrders {
		assert.Zero(t, b.Count)
	}
}

func TestSnapshotFailsWholeOnPartialFailure(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	stats := new(MockStatsReadStore)
	stats.On("CountCustomers", mock.Anything).Return(int64(42), nil)
	stats.On("CountOrders", mock.Anything).Return(int64(0), assert.AnError)

	q := newDashboardQueries(t, stats, now)
	snapshot, err := q.Snapshot(context.Background())

	assert.Error(t, err)
	assert.Nil(t, snapshot, "no partially-populated snapshot may be returned")
	stats.AssertNotCalled(t, "Revenue", mock.Anything)
}
