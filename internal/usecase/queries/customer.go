package queries

import (
	"context"

	"admin-dashboard/internal/domain/customer"
)

type CustomerReadStore interface {
	Search(ctx context.Context, search string) ([]*CustomerView, error)
	Recent(ctx context.Context, limit int32) ([]*CustomerView, error)
}

type CustomerQueries interface {
	List(ctx context.Context, search string) ([]*CustomerView, error)
	Recent(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	repo       CustomerReadStore
	classifier *customer.Classifier
}

func NewCustomerQueries(repo CustomerReadStore, classifier *customer.Classifier) CustomerQueries {
	return &customerQueriesImpl{repo: repo, classifier: classifier}
}

func (q *customerQueriesImpl) List(ctx context.Context, search string) ([]*CustomerView, error) {
	rows, err := q.repo.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	q.classify(rows)
	return rows, nil
}

func (q *customerQueriesImpl) Recent(ctx context.Context) ([]*CustomerView, error) {
	rows, err := q.repo.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	q.classify(rows)
	return rows, nil
}

func (q *customerQueriesImpl) classify(rows []*CustomerView) {
	for _, row := range rows {
		row.Online = q.classifier.IsOnline(row.LastActivity)
	}
}
