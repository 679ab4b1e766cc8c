package response

import (
	"time"

	"admin-dashboard/internal/usecase/queries"
)

type OrderResponse struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	CustomerID string    `json:"customer_id"`
	Amount     string    `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:         v.ID,
		Reference:  v.Reference,
		CustomerID: v.CustomerID,
		Amount:     v.Amount.StringFixed(2),
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
	}
}

func FromOrderList(items []*queries.OrderView) []OrderResponse {
	result := make([]OrderResponse, len(items))
	for i, item := range items {
		result[i] = FromOrderView(item)
	}
	return result
}
