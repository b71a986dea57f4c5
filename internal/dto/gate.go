package dto

import "github.com/Abdelrhman012/parking-reservations-system/internal/domain"

// GatePayload is the wire shape of a gate
type GatePayload struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ZoneIDs  []string `json:"zoneIds"`
	Location string   `json:"location,omitempty"`
}

// NewGatePayload copies a gate into its wire shape; the zone list is copied
// out so the payload stays valid after the store lock is released
func NewGatePayload(g *domain.Gate) GatePayload {
	zoneIDs := make([]string, len(g.ZoneIDs))
	copy(zoneIDs, g.ZoneIDs)
	return GatePayload{
		ID:       g.ID,
		Name:     g.Name,
		ZoneIDs:  zoneIDs,
		Location: g.Location,
	}
}
