package domain

// Gate is an entry/exit point; zones reference gates, and broadcasts fan out
// per gate.
type Gate struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location,omitempty"`
	ZoneIDs  []string `json:"zoneIds"`
}

// Clone returns a deep copy that is safe to hold after the store lock is
// released
func (g *Gate) Clone() *Gate {
	copied := *g
	copied.ZoneIDs = append([]string(nil), g.ZoneIDs...)
	return &copied
}

// HasZone reports whether the gate serves the given zone
func (g *Gate) HasZone(zoneID string) bool {
	for _, id := range g.ZoneIDs {
		if id == zoneID {
			return true
		}
	}
	return false
}
