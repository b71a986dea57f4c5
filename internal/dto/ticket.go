package dto

import (
	"time"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
)

// CheckinRequest opens a ticket at a gate. Validation runs in the service so
// error messages stay uniform across transports.
type CheckinRequest struct {
	GateID         string `json:"gateId"`
	ZoneID         string `json:"zoneId"`
	Type           string `json:"type"`
	SubscriptionID string `json:"subscriptionId"`
}

// CheckinResponse returns the new ticket and the zone's post-checkin state
type CheckinResponse struct {
	Ticket    TicketPayload `json:"ticket"`
	ZoneState ZonePayload   `json:"zoneState"`
}

// CheckoutRequest closes a ticket. ForceConvertToVisitor marks a subscriber
// ticket as visitor-billed; it does not change the rate, which always comes
// from the zone's category.
type CheckoutRequest struct {
	TicketID              string `json:"ticketId"`
	ForceConvertToVisitor bool   `json:"forceConvertToVisitor"`
}

// BreakdownSegment is one contiguous pricing regime in a checkout bill
type BreakdownSegment struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Hours    float64   `json:"hours"`
	RateMode string    `json:"rateMode"`
	Rate     float64   `json:"rate"`
	Amount   float64   `json:"amount"`
}

// CheckoutResponse is the full bill plus the zone's post-checkout state
type CheckoutResponse struct {
	TicketID      string             `json:"ticketId"`
	CheckinAt     time.Time          `json:"checkinAt"`
	CheckoutAt    time.Time          `json:"checkoutAt"`
	DurationHours float64            `json:"durationHours"`
	BillingType   string             `json:"billingType"`
	Breakdown     []BreakdownSegment `json:"breakdown"`
	Amount        float64            `json:"amount"`
	ZoneState     ZonePayload        `json:"zoneState"`
}

// TicketPayload is the wire shape of a ticket
type TicketPayload struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	ZoneID     string     `json:"zoneId"`
	GateID     string     `json:"gateId"`
	CheckinAt  time.Time  `json:"checkinAt"`
	CheckoutAt *time.Time `json:"checkoutAt"`
}

// NewTicketPayload copies a ticket into its wire shape
func NewTicketPayload(t *domain.Ticket) TicketPayload {
	return TicketPayload{
		ID:         t.ID,
		Type:       t.Type.String(),
		ZoneID:     t.ZoneID,
		GateID:     t.GateID,
		CheckinAt:  t.CheckinAt,
		CheckoutAt: t.CheckoutAt,
	}
}
