package commands

import (
	"context"

	"admin-dashboard/internal/domain/order"
	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errs.New("order not found")

type UpdateOrderInput struct {
	Amount decimal.Decimal
	Status string
}

type OrderCommands interface {
	Update(ctx context.Context, id int64, input UpdateOrderInput) error
	Delete(ctx context.Context, id int64) error
}

type orderCommandsImpl struct {
	repo OrderRepository
}

func NewOrderCommands(repo OrderRepository) OrderCommands {
	return &orderCommandsImpl{repo: repo}
}

func (c *orderCommandsImpl) Update(ctx context.Context, id int64, input UpdateOrderInput) error {
	status, err := order.ParseStatus(input.Status)
	if err != nil {
		return err
	}
	if err := order.ValidateAmount(input.Amount); err != nil {
		return err
	}
	if err := c.repo.Update(ctx, id, input.Amount, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (c *orderCommandsImpl) Delete(ctx context.Context, id int64) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}
