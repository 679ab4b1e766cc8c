package request

import "github.com/shopspring/decimal"

type UpdateOrderRequest struct {
	// Amount may legitimately be zero, so no "required" binding here; the
	// command layer rejects negatives.
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status" binding:"required"`
}
