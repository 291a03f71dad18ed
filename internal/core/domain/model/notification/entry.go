// Package notification defines the immutable entries of the notification log.
package notification

import (
	"fmt"
	"time"
)

// Entry is one line of the notification log. Seq is the append position,
// starting at 1, and defines the log order.
type Entry struct {
	Seq  uint64
	At   time.Time
	Text string
}

// String renders the entry with the bell prefix shown to customers.
func (e Entry) String() string {
	return fmt.Sprintf("🔔 %s %s", e.At.Format(time.TimeOnly), e.Text)
}

// OrderUpdateFailed is the text appended when a tick could not advance an order.
func OrderUpdateFailed(orderID fmt.Stringer, reason any) string {
	return fmt.Sprintf("Order #%s update failed: %v", orderID, reason)
}
