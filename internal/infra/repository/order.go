package repository

import (
	"context"
	"time"

	"admin-dashboard/internal/domain/order"
	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/infra/db"

	"github.com/shopspring/decimal"
)

const (
	updateOrderSQL = `
		UPDATE orders SET amount = $1::numeric, status = $2
		WHERE id = $3`

	deleteOrderSQL = `DELETE FROM orders WHERE id = $1`
)

type OrderRepository struct {
	db      db.DBTX
	timeout time.Duration
}

func NewOrderRepository(dbtx db.DBTX, timeout time.Duration) *OrderRepository {
	return &OrderRepository{db: dbtx, timeout: timeout}
}

func (r *OrderRepository) Update(ctx context.Context, id int64, amount decimal.Decimal, status order.Status) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, updateOrderSQL, amount.String(), status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, deleteOrderSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
