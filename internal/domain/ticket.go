package domain

import "time"

// TicketType distinguishes visitor and subscriber tickets
type TicketType string

const (
	TicketTypeVisitor    TicketType = "visitor"
	TicketTypeSubscriber TicketType = "subscriber"
)

// IsValid checks if the type is a known TicketType
func (t TicketType) IsValid() bool {
	switch t {
	case TicketTypeVisitor, TicketTypeSubscriber:
		return true
	}
	return false
}

// String returns the string representation of TicketType
func (t TicketType) String() string {
	return string(t)
}

// Ticket represents a parking ticket. A ticket is open while CheckoutAt is
// nil and closed exactly once at checkout.
type Ticket struct {
	ID         string     `json:"id"`
	Type       TicketType `json:"type"`
	ZoneID     string     `json:"zoneId"`
	GateID     string     `json:"gateId"`
	CheckinAt  time.Time  `json:"checkinAt"`
	CheckoutAt *time.Time `json:"checkoutAt"`
}

// IsOpen reports whether the ticket has not been checked out yet
func (t *Ticket) IsOpen() bool {
	return t.CheckoutAt == nil
}

// Close marks the ticket as checked out. Closing twice is an error.
func (t *Ticket) Close(at time.Time) error {
	if t.CheckoutAt != nil {
		return Validation("Ticket already checked out")
	}
	t.CheckoutAt = &at
	return nil
}
