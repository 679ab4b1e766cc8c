package commands

import (
	"context"

	"admin-dashboard/internal/domain/order"

	"github.com/shopspring/decimal"
)

type CustomerRepository interface {
	Update(ctx context.Context, chatID string, input UpdateCustomerInput) error
	Delete(ctx context.Context, chatID string) error
}

type OrderRepository interface {
	Update(ctx context.Context, id int64, amount decimal.Decimal, status order.Status) error
	Delete(ctx context.Context, id int64) error
}
