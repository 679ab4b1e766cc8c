package commands

import (
	"context"

	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/pkg/errs"
)

var ErrCustomerNotFound = errs.New("customer not found")

type UpdateCustomerInput struct {
	Name     string
	Phone    string
	Language string
}

type CustomerCommands interface {
	Update(ctx context.Context, chatID string, input UpdateCustomerInput) error
	Delete(ctx context.Context, chatID string) error
}

type customerCommandsImpl struct {
	repo CustomerRepository
}

func NewCustomerCommands(repo CustomerRepository) CustomerCommands {
	return &customerCommandsImpl{repo: repo}
}

func (c *customerCommandsImpl) Update(ctx context.Context, chatID string, input UpdateCustomerInput) error {
	if err := c.repo.Update(ctx, chatID, input); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

func (c *customerCommandsImpl) Delete(ctx context.Context, chatID string) error {
	if err := c.repo.Delete(ctx, chatID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}
