package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen            TicketStatus = "Open"
	StatusInProgress      TicketStatus = "In Progress"
	StatusPendingCustomer TicketStatus = "Pending Customer"
	StatusResolved        TicketStatus = "Resolved"
	StatusClosed          TicketStatus = "Closed"
)

var ticketStatuses = []TicketStatus{
	StatusOpen,
	StatusInProgress,
	StatusPendingCustomer,
	StatusResolved,
	StatusClosed,
}

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:            true,
	StatusInProgress:      true,
	StatusPendingCustomer: true,
	StatusResolved:        true,
	StatusClosed:          true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// IsTerminal reports whether the ticket no longer expects work.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusResolved || ts == StatusClosed
}

// AllStatuses returns the statuses in workflow order.
func AllStatuses() []TicketStatus {
	out := make([]TicketStatus, len(ticketStatuses))
	copy(out, ticketStatuses)
	return out
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
