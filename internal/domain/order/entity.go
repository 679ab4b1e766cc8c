package order

import (
	"time"

	"admin-dashboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus  = errs.New("invalid order status")
	ErrNegativeAmount = errs.New("order amount must not be negative")
)

type Status string

const (
	StatusCreated  Status = "CREATED"
	StatusPaid     Status = "PAID"
	StatusCanceled Status = "CANCELED"
)

// ParseStatus validates a raw status value. Transitions between statuses are
// deliberately unconstrained; only membership in the enum is enforced.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusCreated, StatusPaid, StatusCanceled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

type Order struct {
	ID         int64
	Reference  string
	CustomerID string
	Amount     decimal.Decimal
	Status     Status
	CreatedAt  time.Time
}

// ValidateAmount rejects negative amounts; zero is a legitimate value.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
