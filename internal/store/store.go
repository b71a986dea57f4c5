// Package store holds the process-lifetime dataset behind a single mutex.
// Every mutating entry point runs inside Update, giving the same
// at-most-one-concurrent-mutation guarantee a single-threaded event loop
// would; reads run inside View against a consistent snapshot.
package store

import (
	"sync"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
)

// Data is the full in-memory dataset
type Data struct {
	Users         []*domain.User         `json:"users"`
	Categories    []*domain.Category     `json:"categories"`
	Zones         []*domain.Zone         `json:"zones"`
	Gates         []*domain.Gate         `json:"gates"`
	Subscriptions []*domain.Subscription `json:"subscriptions"`
	Tickets       []*domain.Ticket       `json:"tickets"`
	RushHours     []*domain.RushHour     `json:"rushHours"`
	Vacations     []*domain.Vacation     `json:"vacations"`
}

// Store guards the dataset with one RW mutex
type Store struct {
	mu   sync.RWMutex
	data *Data
}

// New creates an empty store
func New() *Store {
	return &Store{data: &Data{}}
}

// View runs fn with shared (read) access to the dataset. fn must not mutate
// anything it reaches and must not retain pointers past its return.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{data: s.data})
}

// Update runs fn with exclusive access to the dataset. Callers follow
// validate-then-commit: all checks first, mutations last, so a returned
// error never leaves state half-updated.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{data: s.data})
}

// Tx is a handle to the dataset, valid only inside a View/Update closure
type Tx struct {
	data *Data
}

// Users returns all users
func (tx *Tx) Users() []*domain.User { return tx.data.Users }

// Categories returns all categories
func (tx *Tx) Categories() []*domain.Category { return tx.data.Categories }

// Zones returns all zones
func (tx *Tx) Zones() []*domain.Zone { return tx.data.Zones }

// Gates returns all gates
func (tx *Tx) Gates() []*domain.Gate { return tx.data.Gates }

// Subscriptions returns all subscriptions
func (tx *Tx) Subscriptions() []*domain.Subscription { return tx.data.Subscriptions }

// Tickets returns all tickets
func (tx *Tx) Tickets() []*domain.Ticket { return tx.data.Tickets }

// RushHours returns all rush-hour windows
func (tx *Tx) RushHours() []*domain.RushHour { return tx.data.RushHours }

// Vacations returns all vacations
func (tx *Tx) Vacations() []*domain.Vacation { return tx.data.Vacations }

// UserByID looks up a user; nil if absent
func (tx *Tx) UserByID(id string) *domain.User {
	for _, u := range tx.data.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByUsername looks up a user by username; nil if absent
func (tx *Tx) UserByUsername(username string) *domain.User {
	for _, u := range tx.data.Users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// CategoryByID looks up a category; nil if absent
func (tx *Tx) CategoryByID(id string) *domain.Category {
	for _, c := range tx.data.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ZoneByID looks up a zone; nil if absent
func (tx *Tx) ZoneByID(id string) *domain.Zone {
	for _, z := range tx.data.Zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// GateByID looks up a gate; nil if absent
func (tx *Tx) GateByID(id string) *domain.Gate {
	for _, g := range tx.data.Gates {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// SubscriptionByID looks up a subscription; nil if absent
func (tx *Tx) SubscriptionByID(id string) *domain.Subscription {
	for _, s := range tx.data.Subscriptions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// TicketByID looks up a ticket; nil if absent
func (tx *Tx) TicketByID(id string) *domain.Ticket {
	for _, t := range tx.data.Tickets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// SubscriptionHoldingTicket finds the subscription whose current check-ins
// reference the ticket; nil if none does
func (tx *Tx) SubscriptionHoldingTicket(ticketID string) *domain.Subscription {
	for _, s := range tx.data.Subscriptions {
		for _, rec := range s.CurrentCheckins {
			if rec.TicketID == ticketID {
				return s
			}
		}
	}
	return nil
}

// GatesForZone returns the gates that reference the zone; broadcast fan-out
// is scoped to these
func (tx *Tx) GatesForZone(zoneID string) []*domain.Gate {
	var gates []*domain.Gate
	for _, g := range tx.data.Gates {
		if g.HasZone(zoneID) {
			gates = append(gates, g)
		}
	}
	return gates
}

// AddUser appends a user
func (tx *Tx) AddUser(u *domain.User) { tx.data.Users = append(tx.data.Users, u) }

// AddCategory appends a category
func (tx *Tx) AddCategory(c *domain.Category) { tx.data.Categories = append(tx.data.Categories, c) }

// RemoveCategory deletes a category by id; false if absent
func (tx *Tx) RemoveCategory(id string) bool {
	for i, c := range tx.data.Categories {
		if c.ID == id {
			tx.data.Categories = append(tx.data.Categories[:i], tx.data.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// AddZone appends a zone
func (tx *Tx) AddZone(z *domain.Zone) { tx.data.Zones = append(tx.data.Zones, z) }

// RemoveZone deletes a zone by id; false if absent
func (tx *Tx) RemoveZone(id string) bool {
	for i, z := range tx.data.Zones {
		if z.ID == id {
			tx.data.Zones = append(tx.data.Zones[:i], tx.data.Zones[i+1:]...)
			return true
		}
	}
	return false
}

// AddGate appends a gate
func (tx *Tx) AddGate(g *domain.Gate) { tx.data.Gates = append(tx.data.Gates, g) }

// RemoveGate deletes a gate by id and scrubs it from every zone's gate list
func (tx *Tx) RemoveGate(id string) bool {
	for i, g := range tx.data.Gates {
		if g.ID == id {
			tx.data.Gates = append(tx.data.Gates[:i], tx.data.Gates[i+1:]...)
			for _, z := range tx.data.Zones {
				z.GateIDs = removeString(z.GateIDs, id)
			}
			return true
		}
	}
	return false
}

// AddSubscription appends a subscription, normalizing its categories
func (tx *Tx) AddSubscription(s *domain.Subscription) {
	s.Normalize()
	tx.data.Subscriptions = append(tx.data.Subscriptions, s)
}

// AddTicket appends a ticket
func (tx *Tx) AddTicket(t *domain.Ticket) { tx.data.Tickets = append(tx.data.Tickets, t) }

// AddRushHour appends a rush-hour window
func (tx *Tx) AddRushHour(r *domain.RushHour) { tx.data.RushHours = append(tx.data.RushHours, r) }

// RemoveRushHour deletes a rush-hour window by id; false if absent
func (tx *Tx) RemoveRushHour(id string) bool {
	for i, r := range tx.data.RushHours {
		if r.ID == id {
			tx.data.RushHours = append(tx.data.RushHours[:i], tx.data.RushHours[i+1:]...)
			return true
		}
	}
	return false
}

// RushHourByID looks up a rush-hour window; nil if absent
func (tx *Tx) RushHourByID(id string) *domain.RushHour {
	for _, r := range tx.data.RushHours {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// AddVacation appends a vacation
func (tx *Tx) AddVacation(v *domain.Vacation) { tx.data.Vacations = append(tx.data.Vacations, v) }

// RemoveVacation deletes a vacation by id; false if absent
func (tx *Tx) RemoveVacation(id string) bool {
	for i, v := range tx.data.Vacations {
		if v.ID == id {
			tx.data.Vacations = append(tx.data.Vacations[:i], tx.data.Vacations[i+1:]...)
			return true
		}
	}
	return false
}

// VacationByID looks up a vacation; nil if absent
func (tx *Tx) VacationByID(id string) *domain.Vacation {
	for _, v := range tx.data.Vacations {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
