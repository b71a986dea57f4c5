package domain

import "time"

// Car describes a vehicle registered on a subscription
type Car struct {
	Plate string `json:"plate"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
	Color string `json:"color,omitempty"`
}

// CheckinRecord links an open subscriber ticket back to its subscription
type CheckinRecord struct {
	TicketID  string    `json:"ticketId"`
	ZoneID    string    `json:"zoneId"`
	CheckinAt time.Time `json:"checkinAt"`
}

// Subscription entitles a named user to park in zones of its categories.
// Category is the legacy scalar field; Categories is canonical after Normalize.
type Subscription struct {
	ID              string          `json:"id"`
	UserName        string          `json:"userName"`
	Active          bool            `json:"active"`
	Category        string          `json:"category,omitempty"`
	Categories      []string        `json:"categories"`
	Cars            []Car           `json:"cars"`
	StartsAt        time.Time       `json:"startsAt"`
	ExpiresAt       time.Time       `json:"expiresAt"`
	CurrentCheckins []CheckinRecord `json:"currentCheckins"`
}

// Normalize folds the legacy scalar category into the Categories set. Business
// logic only ever consults Categories.
func (s *Subscription) Normalize() {
	if len(s.Categories) == 0 && s.Category != "" {
		s.Categories = []string{s.Category}
	}
}

// Clone returns a deep copy that is safe to hold after the store lock is
// released; the slice fields of the original keep being rewritten in place by
// check-in and checkout.
func (s *Subscription) Clone() *Subscription {
	copied := *s
	copied.Categories = append([]string(nil), s.Categories...)
	copied.Cars = append([]Car(nil), s.Cars...)
	copied.CurrentCheckins = append([]CheckinRecord(nil), s.CurrentCheckins...)
	return &copied
}

// PermitsCategory reports whether the subscription is valid for a category
func (s *Subscription) PermitsCategory(categoryID string) bool {
	for _, id := range s.Categories {
		if id == categoryID {
			return true
		}
	}
	return false
}

// AddCheckin appends a check-in record for an open subscriber ticket
func (s *Subscription) AddCheckin(ticketID, zoneID string, at time.Time) {
	s.CurrentCheckins = append(s.CurrentCheckins, CheckinRecord{
		TicketID:  ticketID,
		ZoneID:    zoneID,
		CheckinAt: at,
	})
}

// RemoveCheckin removes the record matching the ticket id, if present
func (s *Subscription) RemoveCheckin(ticketID string) bool {
	for i, rec := range s.CurrentCheckins {
		if rec.TicketID == ticketID {
			s.CurrentCheckins = append(s.CurrentCheckins[:i], s.CurrentCheckins[i+1:]...)
			return true
		}
	}
	return false
}
