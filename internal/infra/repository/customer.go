package repository

import (
	"context"
	"time"

	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/infra/db"
	"admin-dashboard/internal/usecase/commands"
)

const (
	updateCustomerSQL = `
		UPDATE customers SET name = $1, phone = $2, language = $3
		WHERE chat_id = $4`

	deleteCustomerSQL = `DELETE FROM customers WHERE chat_id = $1`
)

type CustomerRepository struct {
	db      db.DBTX
	timeout time.Duration
}

func NewCustomerRepository(dbtx db.DBTX, timeout time.Duration) *CustomerRepository {
	return &CustomerRepository{db: dbtx, timeout: timeout}
}

func (r *CustomerRepository) Update(ctx context.Context, chatID string, input commands.UpdateCustomerInput) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, updateCustomerSQL, input.Name, input.Phone, input.Language, chatID)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, chatID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, deleteCustomerSQL, chatID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
