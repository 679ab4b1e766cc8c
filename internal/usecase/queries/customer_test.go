//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"admin-dashboard/internal/domain/customer"
	"admin-dashboard/internal/pkg/clock"
	"admin-dashboard/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerReadStore struct {
	mock.Mock
}

func (m *MockCustomerReadStore) Search(ctx context.Context, search string) ([]*queries.CustomerView, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.CustomerView), args.Error(1)
}

func (m *MockCustomerReadStore) Recent(ctx context.Context, limit int32) ([]*queries.CustomerView, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.CustomerView), args.Error(1)
}

func TestCustomerListDerivesOnlineFlag(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	classifier := customer.NewClassifier(clock.NewMockClock(now), 5*time.Minute)

	recent := now.Add(-2 * time.Minute)
	stale := now.Add(-10 * time.Minute)
	boundary := now.Add(-5 * time.Minute)
	rows := []*queries.CustomerView{
		{ChatID: "chat-1", LastActivity: &recent},
		{ChatID: "chat-2", LastActivity: &stale},
		{ChatID: "chat-3", LastActivity: nil},
		{ChatID: "chat-4", LastActivity: &boundary},
	}
	repo := new(MockCustomerReadStore)
	repo.On("Search", mock.Anything, "chat").Return(rows, nil)

	got, err := queries.NewCustomerQueries(repo, classifier).List(context.Background(), "chat")
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.True(t, got[0].Online)
	assert.False(t, got[1].Online)
	assert.False(t, got[2].Online, "no recorded activity is offline")
	assert.True(t, got[3].Online, "age equal to the window still counts as online")
}

func TestCustomerRecentClassifies(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	classifier := customer.NewClassifier(clock.NewMockClock(now), 5*time.Minute)

	active := now.Add(-time.Minute)
	rows := []*queries.CustomerView{
		{ChatID: "chat-1", LastActivity: &active},
		{ChatID: "chat-2", LastActivity: nil},
	}
	repo := new(MockCustomerReadStore)
	repo.On("Recent", mock.Anything, int32(queries.RecentLimit)).Return(rows, nil)

	got, err := queries.NewCustomerQueries(repo, classifier).Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].Online)
	assert.False(t, got[1].Online)
	repo.AssertExpectations(t)
}

func TestCustomerListPassesStoreFailureThrough(t *testing.T) {
	classifier := customer.NewClassifier(clock.NewMockClock(time.Now()), 5*time.Minute)
	repo := new(MockCustomerReadStore)
	repo.On("Search", mock.Anything, "").Return(nil, assert.AnError)

	got, err := queries.NewCustomerQueries(repo, classifier).List(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, got)
}
