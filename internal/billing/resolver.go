package billing

import (
	"time"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
)

// Special pricing reasons
const (
	ReasonVacation = "vacation"
	ReasonRush     = "rush"
)

// Special is the result of resolving a timestamp against the pricing rules
type Special struct {
	Special bool   `json:"special"`
	Reason  string `json:"reason,omitempty"`
}

// Resolver decides whether special pricing applies at a given instant.
// Vacations take priority over rush hours; within each list the first match
// wins. All comparisons happen in UTC.
type Resolver struct {
	vacations []*domain.Vacation
	rushHours []*domain.RushHour
}

// NewResolver builds a resolver over a snapshot of the pricing rules
func NewResolver(vacations []*domain.Vacation, rushHours []*domain.RushHour) *Resolver {
	return &Resolver{
		vacations: vacations,
		rushHours: rushHours,
	}
}

// Resolve reports whether special pricing applies at t and why
func (r *Resolver) Resolve(t time.Time) Special {
	for _, v := range r.vacations {
		if v.Contains(t) {
			return Special{Special: true, Reason: ReasonVacation}
		}
	}
	for _, rh := range r.rushHours {
		if rh.Matches(t) {
			return Special{Special: true, Reason: ReasonRush}
		}
	}
	return Special{}
}
