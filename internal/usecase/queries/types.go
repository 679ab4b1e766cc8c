package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentLimit caps the "recent" listings on the dashboard page.
const RecentLimit = 10

// DayCount is one raw per-day aggregation row from the store.
type DayCount struct {
	Day   time.Time
	Count int64
}

// DayBucket is one zero-filled slot of the trailing daily series.
type DayBucket struct {
	Day     time.Time `json:"day"`
	Weekday string    `json:"weekday"`
	Count   int64     `json:"count"`
}

// DashboardSnapshot is a point-in-time view over the store, built fresh per
// request. Either every field is populated or the whole snapshot fails.
type DashboardSnapshot struct {
	TotalCustomers  int64
	TotalOrders     int64
	OnlineCustomers int64
	PendingOrders   int64
	Revenue         decimal.Decimal
	DailyOrders     []DayBucket
}

type CustomerView struct {
	ChatID       string
	Name         string
	Phone        string
	Language     string
	RegisteredAt time.Time
	LastActivity *time.Time
	Online       bool
}

type OrderView struct {
	ID         int64
	Reference  string
	CustomerID string
	Amount     decimal.Decimal
	Status     string
	CreatedAt  time.Time
}
