//go:build unit

package commands_test

import (
	"context"
	"testing"

	"admin-dashboard/internal/domain/order"
	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Update(ctx context.Context, id int64, amount decimal.Decimal, status order.Status) error {
	args := m.Called(ctx, id, amount, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestOrderUpdate(t *testing.T) {
	repo := new(MockOrderRepository)
	amount := decimal.RequireFromString("49.90")
	repo.On("Update", mock.Anything, int64(7), amount, order.StatusPaid).Return(nil)

	err := commands.NewOrderCommands(repo).Update(context.Background(), 7, commands.UpdateOrderInput{
		Amount: amount,
		Status: "PAID",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOrderUpdateRejectsBeforeTouchingStore(t *testing.T) {
	tests := []struct {
		name    string
		input   commands.UpdateOrderInput
		wantErr error
	}{
		{
			name:    "unknown status",
			input:   commands.UpdateOrderInput{Amount: decimal.NewFromInt(10), Status: "SHIPPED"},
			wantErr: order.ErrInvalidStatus,
		},
		{
			name:    "lowercase status",
			input:   commands.UpdateOrderInput{Amount: decimal.NewFromInt(10), Status: "paid"},
			wantErr: order.ErrInvalidStatus,
		},
		{
			name:    "negative amount",
			input:   commands.UpdateOrderInput{Amount: decimal.NewFromInt(-1), Status: "PAID"},
			wantErr: order.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockOrderRepository)

			err := commands.NewOrderCommands(repo).Update(context.Background(), 7, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderUpdateZeroAmountAllowed(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Update", mock.Anything, int64(3), decimal.Zero, order.StatusCanceled).Return(nil)

	err := commands.NewOrderCommands(repo).Update(context.Background(), 3, commands.UpdateOrderInput{
		Amount: decimal.Zero,
		Status: "CANCELED",
	})

	assert.NoError(t, err)
}

func TestOrderDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Delete", mock.Anything, int64(9)).Return(nil)

		assert.NoError(t, commands.NewOrderCommands(repo).Delete(context.Background(), 9))
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Delete", mock.Anything, int64(9)).
			Return(infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		err := commands.NewOrderCommands(repo).Delete(context.Background(), 9)

		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}
