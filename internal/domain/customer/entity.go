package customer

import (
	"time"

	"admin-dashboard/internal/pkg/clock"
)

// DefaultStalenessWindow is the maximum age of a customer's last activity
// for the customer to still count as online.
const DefaultStalenessWindow = 5 * time.Minute

// Customer is a row owned by the external store. The dashboard only reads
// it; last activity is written by the customer-facing channel.
type Customer struct {
	ChatID       string
	Name         string
	Phone        string
	Language     string
	RegisteredAt time.Time
	LastActivity *time.Time
}

// Classifier derives online/offline from a last-activity timestamp.
type Classifier struct {
	clock  clock.Clock
	window time.Duration
}

func NewClassifier(clk clock.Clock, window time.Duration) *Classifier {
	if window <= 0 {
		window = DefaultStalenessWindow
	}
	return &Classifier{clock: clk, window: window}
}

func (c *Classifier) Window() time.Duration {
	return c.window
}

// IsOnline reports whether lastActivity falls within the staleness window.
// A customer that never interacted (nil) is offline. Age exactly equal to
// the window still counts as online.
func (c *Classifier) IsOnline(lastActivity *time.Time) bool {
	if lastActivity == nil {
		return false
	}
	return c.clock.Now().Sub(*lastActivity) <= c.window
}
