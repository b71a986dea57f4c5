package domain

import "math"

// reservedShare is the fraction of subscribers currently outside whose slots
// are soft-reserved against visitor check-ins.
const reservedShare = 0.15

// ZoneState is the derived availability of a zone. It is recomputed on every
// read and never stored.
type ZoneState struct {
	Reserved                int     `json:"reserved"`
	Occupied                int     `json:"occupied"`
	Free                    int     `json:"free"`
	AvailableForVisitors    int     `json:"availableForVisitors"`
	AvailableForSubscribers int     `json:"availableForSubscribers"`
	RateNormal              float64 `json:"rateNormal"`
	RateSpecial             float64 `json:"rateSpecial"`
}

// ReservedForCategory estimates how many slots to hold back for subscribers
// of the category who are currently outside: ceil(15% of active
// subscriptions minus their open check-ins), never negative. The caller caps
// the result by the zone's total slots.
func ReservedForCategory(categoryID string, subscriptions []*Subscription) int {
	subs := 0
	checkedIn := 0
	for _, s := range subscriptions {
		if !s.Active || !s.PermitsCategory(categoryID) {
			continue
		}
		subs++
		checkedIn += len(s.CurrentCheckins)
	}
	outside := subs - checkedIn
	if outside < 0 {
		outside = 0
	}
	return int(math.Ceil(float64(outside) * reservedShare))
}

// ComputeZoneState derives the availability split for a zone. Pure and
// side-effect-free; safe to call on every read and broadcast.
//
// Reserved slots are a soft allocation: they reduce availableForVisitors but
// stay counted inside free, so subscribers compete only with total occupancy.
func ComputeZoneState(zone *Zone, category *Category, subscriptions []*Subscription, tickets []*Ticket) ZoneState {
	reservedRaw := ReservedForCategory(zone.CategoryID, subscriptions)

	occupied := zone.Occupied
	total := zone.TotalSlots
	free := total - occupied
	if free < 0 {
		free = 0
	}

	// Open subscriber tickets already parked in this zone consume part of
	// the reservation.
	reservedOccupied := 0
	for _, t := range tickets {
		if t.ZoneID == zone.ID && t.IsOpen() && t.Type == TicketTypeSubscriber {
			reservedOccupied++
		}
	}

	reservedFree := reservedRaw - reservedOccupied
	if reservedFree < 0 {
		reservedFree = 0
	}

	availableForVisitors := free - reservedFree
	if availableForVisitors < 0 {
		availableForVisitors = 0
	}

	reserved := reservedRaw
	if reserved > total {
		reserved = total
	}

	state := ZoneState{
		Reserved:                reserved,
		Occupied:                occupied,
		Free:                    free,
		AvailableForVisitors:    availableForVisitors,
		AvailableForSubscribers: free,
	}
	if category != nil {
		state.RateNormal = category.RateNormal
		state.RateSpecial = category.RateSpecial
	}
	return state
}
