package readstore

import (
	"context"
	"time"

	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/infra/db"
	"admin-dashboard/internal/pkg/pgconv"
	"admin-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	listOrdersSQL = `
		SELECT id, reference, customer_id, amount::text, status, created_at
		FROM orders
		ORDER BY created_at DESC`

	searchOrdersSQL = `
		SELECT id, reference, customer_id, amount::text, status, created_at
		FROM orders
		WHERE reference ILIKE $1 OR customer_id ILIKE $1
		ORDER BY created_at DESC`

	recentOrdersSQL = `
		SELECT id, reference, customer_id, amount::text, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1`
)

type OrderReadStore struct {
	db      db.DBTX
	timeout time.Duration
}

func NewOrderReadStore(dbtx db.DBTX, timeout time.Duration) *OrderReadStore {
	return &OrderReadStore{db: dbtx, timeout: timeout}
}

func (r *OrderReadStore) Search(ctx context.Context, search string) ([]*queries.OrderView, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows pgx.Rows
	var err error
	if search == "" {
		rows, err = r.db.Query(ctx, listOrdersSQL)
	} else {
		rows, err = r.db.Query(ctx, searchOrdersSQL, "%"+search+"%")
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search orders", err)
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func (r *OrderReadStore) Recent(ctx context.Context, limit int32) ([]*queries.OrderView, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, recentOrdersSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent orders", err)
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func scanOrderRows(rows pgx.Rows) ([]*queries.OrderView, error) {
	var result []*queries.OrderView
	for rows.Next() {
		var (
			id         int64
			reference  pgtype.Text
			customerID pgtype.Text
			rawAmount  string
			status     string
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &reference, &customerID, &rawAmount, &status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("order amount is not numeric", err, infra.KindInvalidAggregate)
		}
		result = append(result, &queries.OrderView{
			ID:         id,
			Reference:  pgconv.StringFromPgtype(reference),
			CustomerID: pgconv.StringFromPgtype(customerID),
			Amount:     amount,
			Status:     status,
			CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	return result, nil
}
