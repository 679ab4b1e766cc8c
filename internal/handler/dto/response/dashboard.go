package response

import (
	"admin-dashboard/internal/usecase/queries"
)

type DailyOrdersPoint struct {
	Day     string `json:"day"`
	Weekday string `json:"weekday"`
	Count   int64  `json:"count"`
}

type DashboardResponse struct {
	TotalCustomers  int64              `json:"total_customers"`
	TotalOrders     int64              `json:"total_orders"`
	OnlineCustomers int64              `json:"online_customers"`
	PendingOrders   int64              `json:"pending_orders"`
	Revenue         string             `json:"revenue"`
	DailyOrders     []DailyOrdersPoint `json:"daily_orders"`
}

func FromDashboardSnapshot(s *queries.DashboardSnapshot) DashboardResponse {
	daily := make([]DailyOrdersPoint, len(s.DailyOrders))
	for i, b := range s.DailyOrders {
		daily[i] = DailyOrdersPoint{
			Day:     b.Day.Format("2006-01-02"),
			Weekday: b.Weekday,
			Count:   b.Count,
		}
	}
	return DashboardResponse{
		TotalCustomers:  s.TotalCustomers,
		TotalOrders:     s.TotalOrders,
		OnlineCustomers: s.OnlineCustomers,
		PendingOrders:   s.PendingOrders,
		// Two-place rounding is display-only; stored precision is untouched.
		Revenue:     s.Revenue.StringFixed(2),
		DailyOrders: daily,
	}
}
