package dto

import "github.com/Abdelrhman012/parking-reservations-system/internal/domain"

// ZonePayload is the zone representation served to gates and broadcast on
// every occupancy change: static fields plus the derived availability split.
type ZonePayload struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	CategoryID              string   `json:"categoryId"`
	GateIDs                 []string `json:"gateIds"`
	TotalSlots              int      `json:"totalSlots"`
	Occupied                int      `json:"occupied"`
	Free                    int      `json:"free"`
	Reserved                int      `json:"reserved"`
	AvailableForVisitors    int      `json:"availableForVisitors"`
	AvailableForSubscribers int      `json:"availableForSubscribers"`
	RateNormal              float64  `json:"rateNormal"`
	RateSpecial             float64  `json:"rateSpecial"`
	Open                    bool     `json:"open"`
}

// NewZonePayload combines a zone's static fields with its derived state. The
// gate list is copied out: payloads outlive the store lock (broadcast
// listeners hold them) while admin mutations rewrite the zone's slice in
// place.
func NewZonePayload(zone *domain.Zone, state domain.ZoneState) ZonePayload {
	gateIDs := make([]string, len(zone.GateIDs))
	copy(gateIDs, zone.GateIDs)
	return ZonePayload{
		ID:                      zone.ID,
		Name:                    zone.Name,
		CategoryID:              zone.CategoryID,
		GateIDs:                 gateIDs,
		TotalSlots:              zone.TotalSlots,
		Occupied:                state.Occupied,
		Free:                    state.Free,
		Reserved:                state.Reserved,
		AvailableForVisitors:    state.AvailableForVisitors,
		AvailableForSubscribers: state.AvailableForSubscribers,
		RateNormal:              state.RateNormal,
		RateSpecial:             state.RateSpecial,
		Open:                    zone.Open,
	}
}

// ParkingStateRow is one zone's line in the admin parking-state report
type ParkingStateRow struct {
	ZoneID                  string `json:"zoneId"`
	Name                    string `json:"name"`
	CategoryID              string `json:"categoryId"`
	TotalSlots              int    `json:"totalSlots"`
	Occupied                int    `json:"occupied"`
	Free                    int    `json:"free"`
	Reserved                int    `json:"reserved"`
	AvailableForVisitors    int    `json:"availableForVisitors"`
	AvailableForSubscribers int    `json:"availableForSubscribers"`
	SubscriberCount         int    `json:"subscriberCount"`
	Open                    bool   `json:"open"`
}
