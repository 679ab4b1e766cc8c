package response

import (
	"time"

	"admin-dashboard/internal/usecase/queries"
)

type CustomerResponse struct {
	ChatID       string     `json:"chat_id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Language     string     `json:"language"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	Online       bool       `json:"online"`
}

func FromCustomerView(v *queries.CustomerView) CustomerResponse {
	return CustomerResponse{
		ChatID:       v.ChatID,
		Name:         v.Name,
		Phone:        v.Phone,
		Language:     v.Language,
		RegisteredAt: v.RegisteredAt,
		LastActivity: v.LastActivity,
		Online:       v.Online,
	}
}

func FromCustomerList(items []*queries.CustomerView) []CustomerResponse {
	result := make([]CustomerResponse, len(items))
	for i, item := range items {
		result[i] = FromCustomerView(item)
	}
	return result
}
