package domain

// Zone is a parking area. Occupied is mutated only by the ticket lifecycle
// (check-in +1, checkout -1 floored at 0); admin updates never touch it.
type Zone struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CategoryID string   `json:"categoryId"`
	GateIDs    []string `json:"gateIds"`
	TotalSlots int      `json:"totalSlots"`
	Occupied   int      `json:"occupied"`
	Open       bool     `json:"open"`
}

// IncrementOccupied records one more parked car
func (z *Zone) IncrementOccupied() {
	z.Occupied++
}

// DecrementOccupied records one car leaving, floored at zero
func (z *Zone) DecrementOccupied() {
	if z.Occupied > 0 {
		z.Occupied--
	}
}
