package dto

// CreateCategoryRequest adds a rate category
type CreateCategoryRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	RateNormal  *float64 `json:"rateNormal"`
	RateSpecial *float64 `json:"rateSpecial"`
}

// UpdateCategoryRequest patches a category; nil fields stay untouched
type UpdateCategoryRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	RateNormal  *float64 `json:"rateNormal"`
	RateSpecial *float64 `json:"rateSpecial"`
}

// CreateZoneRequest adds a zone; occupancy always starts at zero
type CreateZoneRequest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CategoryID string   `json:"categoryId"`
	GateIDs    []string `json:"gateIds"`
	TotalSlots int      `json:"totalSlots"`
	Open       *bool    `json:"open"`
}

// UpdateZoneRequest patches a zone. Occupied is deliberately absent: only the
// ticket lifecycle may move it.
type UpdateZoneRequest struct {
	Name       *string   `json:"name"`
	CategoryID *string   `json:"categoryId"`
	GateIDs    *[]string `json:"gateIds"`
	TotalSlots *int      `json:"totalSlots"`
	Open       *bool     `json:"open"`
}

// SetZoneOpenRequest toggles a zone open or closed
type SetZoneOpenRequest struct {
	Open bool `json:"open"`
}

// SetZoneOpenResponse confirms the new open flag
type SetZoneOpenResponse struct {
	ZoneID string `json:"zoneId"`
	Open   bool   `json:"open"`
}

// CreateGateRequest adds a gate
type CreateGateRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	ZoneIDs  []string `json:"zoneIds"`
}

// UpdateGateRequest patches a gate; nil fields stay untouched
type UpdateGateRequest struct {
	Name     *string   `json:"name"`
	Location *string   `json:"location"`
	ZoneIDs  *[]string `json:"zoneIds"`
}

// CreateRushHourRequest adds a weekly special-rate window
type CreateRushHourRequest struct {
	WeekDay int    `json:"weekDay"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// UpdateRushHourRequest patches a rush-hour window; nil fields stay untouched
type UpdateRushHourRequest struct {
	WeekDay *int    `json:"weekDay"`
	From    *string `json:"from"`
	To      *string `json:"to"`
}

// CreateVacationRequest adds a special-rate date range
type CreateVacationRequest struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// UpdateVacationRequest patches a vacation; nil fields stay untouched
type UpdateVacationRequest struct {
	Name *string `json:"name"`
	From *string `json:"from"`
	To   *string `json:"to"`
}

// CreateUserRequest adds an operator account
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// OKResponse acknowledges a deletion
type OKResponse struct {
	OK bool `json:"ok"`
}
