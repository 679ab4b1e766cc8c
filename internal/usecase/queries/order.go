package queries

import (
	"context"
)

type OrderReadStore interface {
	Search(ctx context.Context, search string) ([]*OrderView, error)
	Recent(ctx context.Context, limit int32) ([]*OrderView, error)
}

type OrderQueries interface {
	List(ctx context.Context, search string) ([]*OrderView, error)
	Recent(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) List(ctx context.Context, search string) ([]*OrderView, error) {
	return q.repo.Search(ctx, search)
}

func (q *orderQueriesImpl) Recent(ctx context.Context) ([]*OrderView, error) {
	return q.repo.Recent(ctx, RecentLimit)
}
