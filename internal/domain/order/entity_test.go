//go:build unit

package order_test

import (
	"testing"

	"admin-dashboard/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  order.Status
		errIs error
	}{
		{name: "created", raw: "CREATED", want: order.StatusCreated},
		{name: "paid", raw: "PAID", want: order.StatusPaid},
		{name: "canceled", raw: "CANCELED", want: order.StatusCanceled},
		{name: "unknown value", raw: "SHIPPED", errIs: order.ErrInvalidStatus},
		{name: "lowercase rejected", raw: "paid", errIs: order.ErrInvalidStatus},
		{name: "empty", raw: "", errIs: order.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseStatus(tt.raw)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, order.ValidateAmount(decimal.NewFromInt(0)))
	assert.NoError(t, order.ValidateAmount(decimal.RequireFromString("19.99")))
	assert.ErrorIs(t, order.ValidateAmount(decimal.NewFromInt(-1)), order.ErrNegativeAmount)
}
