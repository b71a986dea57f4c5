package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/events"
	"github.com/Abdelrhman012/parking-reservations-system/internal/metrics"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/logger"
)

// adminService implements the AdminService interface
type adminService struct {
	store  *store.Store
	broker *events.Broker
	nowFn  func() time.Time
	idFn   func(prefix string) string
}

// NewAdminService creates a new AdminService
func NewAdminService(st *store.Store, broker *events.Broker) AdminService {
	return &adminService{
		store:  st,
		broker: broker,
		nowFn:  time.Now,
		idFn:   newPrefixedID,
	}
}

func newPrefixedID(prefix string) string {
	short := strings.Split(uuid.NewString(), "-")[0]
	if prefix == "" {
		return short
	}
	return prefix + "_" + short
}

// publishAdmin pushes an admin-update to every listener
func (s *adminService) publishAdmin(ctx context.Context, actor *dto.UserPayload, action, targetType, targetID string, details interface{}) {
	update := events.AdminUpdate{
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		Timestamp:  s.nowFn().UTC(),
	}
	if actor != nil {
		update.AdminID = actor.ID
	}
	s.broker.PublishAdminUpdate(update)
	metrics.RecordBroadcast(ctx, events.TypeAdminUpdate)
	logger.Info("admin update published",
		zap.String("action", action),
		zap.String("target_type", targetType),
		zap.String("target_id", targetID),
	)
}

// publishZone pushes a fresh zone payload to listeners watching its gates
func (s *adminService) publishZone(ctx context.Context, payload dto.ZonePayload, gateIDs []string) {
	s.broker.PublishZoneUpdate(gateIDs, payload)
	metrics.RecordBroadcast(ctx, events.TypeZoneUpdate)
}

// ParkingStateReport summarizes every zone's live state
func (s *adminService) ParkingStateReport(ctx context.Context) ([]dto.ParkingStateRow, error) {
	report := []dto.ParkingStateRow{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, z := range tx.Zones() {
			state := domain.ComputeZoneState(z, tx.CategoryByID(z.CategoryID), tx.Subscriptions(), tx.Tickets())
			subscriberCount := 0
			for _, sub := range tx.Subscriptions() {
				if sub.Active && sub.PermitsCategory(z.CategoryID) {
					subscriberCount++
				}
			}
			report = append(report, dto.ParkingStateRow{
				ZoneID:                  z.ID,
				Name:                    z.Name,
				CategoryID:              z.CategoryID,
				TotalSlots:              z.TotalSlots,
				Occupied:                state.Occupied,
				Free:                    state.Free,
				Reserved:                state.Reserved,
				AvailableForVisitors:    state.AvailableForVisitors,
				AvailableForSubscribers: state.AvailableForSubscribers,
				SubscriberCount:         subscriberCount,
				Open:                    z.Open,
			})
		}
		return nil
	})
	return report, err
}

// ListCategories lists all rate categories
func (s *adminService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, c := range tx.Categories() {
			copied := *c
			categories = append(categories, &copied)
		}
		return nil
	})
	return categories, err
}

// CreateCategory adds a rate category
func (s *adminService) CreateCategory(ctx context.Context, actor *dto.UserPayload, req *dto.CreateCategoryRequest) (*domain.Category, error) {
	if req.ID == "" || req.Name == "" || req.RateNormal == nil || req.RateSpecial == nil {
		return nil, domain.Validation("Missing fields")
	}
	if *req.RateNormal < 0 || *req.RateSpecial < 0 {
		return nil, domain.Validation("Rates must be non-negative")
	}

	category := &domain.Category{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		RateNormal:  *req.RateNormal,
		RateSpecial: *req.RateSpecial,
	}
	err := s.store.Update(func(tx *store.Tx) error {
		if tx.CategoryByID(req.ID) != nil {
			return domain.Conflict("Category exists")
		}
		copied := *category
		tx.AddCategory(&copied)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "category-created", "category", category.ID, category)
	return category, nil
}

// UpdateCategory patches a category and re-broadcasts affected zones, since a
// rate change alters every derived zone payload in the category.
func (s *adminService) UpdateCategory(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateCategoryRequest) (*domain.Category, error) {
	if (req.RateNormal != nil && *req.RateNormal < 0) || (req.RateSpecial != nil && *req.RateSpecial < 0) {
		return nil, domain.Validation("Rates must be non-negative")
	}

	var category domain.Category
	type zoneBroadcast struct {
		payload dto.ZonePayload
		gateIDs []string
	}
	var broadcasts []zoneBroadcast

	err := s.store.Update(func(tx *store.Tx) error {
		found := tx.CategoryByID(id)
		if found == nil {
			return domain.NotFound("Category not found")
		}
		if req.RateNormal != nil {
			found.RateNormal = *req.RateNormal
		}
		if req.RateSpecial != nil {
			found.RateSpecial = *req.RateSpecial
		}
		if req.Name != "" {
			found.Name = req.Name
		}
		if req.Description != "" {
			found.Description = req.Description
		}
		category = *found

		for _, z := range tx.Zones() {
			if z.CategoryID == id {
				broadcasts = append(broadcasts, zoneBroadcast{
					payload: zonePayloadLocked(tx, z),
					gateIDs: gateIDsForZoneLocked(tx, z.ID),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "category-rates-changed", "category", id, map[string]float64{
		"rateNormal":  category.RateNormal,
		"rateSpecial": category.RateSpecial,
	})
	for _, b := range broadcasts {
		s.publishZone(ctx, b.payload, b.gateIDs)
	}
	return &category, nil
}

// DeleteCategory removes a category
func (s *adminService) DeleteCategory(ctx context.Context, actor *dto.UserPayload, id string) error {
	err := s.store.Update(func(tx *store.Tx) error {
		if !tx.RemoveCategory(id) {
			return domain.NotFound("Category not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publishAdmin(ctx, actor, "category-removed", "category", id, nil)
	return nil
}

// ListZones lists all zones with derived state
func (s *adminService) ListZones(ctx context.Context) ([]dto.ZonePayload, error) {
	zones := []dto.ZonePayload{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, z := range tx.Zones() {
			zones = append(zones, zonePayloadLocked(tx, z))
		}
		return nil
	})
	return zones, err
}

// CreateZone adds a zone with zero occupancy
func (s *adminService) CreateZone(ctx context.Context, actor *dto.UserPayload, req *dto.CreateZoneRequest) (*dto.ZonePayload, error) {
	if req.ID == "" || req.Name == "" || req.CategoryID == "" {
		return nil, domain.Validation("Missing fields")
	}
	if req.TotalSlots < 0 {
		return nil, domain.Validation("totalSlots must be non-negative")
	}

	open := true
	if req.Open != nil {
		open = *req.Open
	}
	gateIDs := req.GateIDs
	if gateIDs == nil {
		gateIDs = []string{}
	}
	zone := &domain.Zone{
		ID:         req.ID,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		GateIDs:    gateIDs,
		TotalSlots: req.TotalSlots,
		Occupied:   0,
		Open:       open,
	}

	var payload dto.ZonePayload
	var broadcastGates []string
	err := s.store.Update(func(tx *store.Tx) error {
		if tx.ZoneByID(req.ID) != nil {
			return domain.Conflict("Zone exists")
		}
		tx.AddZone(zone)
		payload = zonePayloadLocked(tx, zone)
		broadcastGates = gateIDsForZoneLocked(tx, zone.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "zone-created", "zone", zone.ID, payload)
	s.publishZone(ctx, payload, broadcastGates)
	return &payload, nil
}

// UpdateZone patches a zone; occupancy is never patchable
func (s *adminService) UpdateZone(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateZoneRequest) (*dto.ZonePayload, error) {
	if req.TotalSlots != nil && *req.TotalSlots < 0 {
		return nil, domain.Validation("totalSlots must be non-negative")
	}

	var payload dto.ZonePayload
	var broadcastGates []string
	err := s.store.Update(func(tx *store.Tx) error {
		zone := tx.ZoneByID(id)
		if zone == nil {
			return domain.NotFound("Zone not found")
		}
		if req.Name != nil {
			zone.Name = *req.Name
		}
		if req.CategoryID != nil {
			zone.CategoryID = *req.CategoryID
		}
		if req.GateIDs != nil {
			zone.GateIDs = *req.GateIDs
		}
		if req.TotalSlots != nil {
			zone.TotalSlots = *req.TotalSlots
		}
		if req.Open != nil {
			zone.Open = *req.Open
		}
		payload = zonePayloadLocked(tx, zone)
		broadcastGates = gateIDsForZoneLocked(tx, zone.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "zone-updated", "zone", id, req)
	s.publishZone(ctx, payload, broadcastGates)
	return &payload, nil
}

// SetZoneOpen opens or closes a zone
func (s *adminService) SetZoneOpen(ctx context.Context, actor *dto.UserPayload, id string, open bool) (*dto.SetZoneOpenResponse, error) {
	var payload dto.ZonePayload
	var broadcastGates []string
	err := s.store.Update(func(tx *store.Tx) error {
		zone := tx.ZoneByID(id)
		if zone == nil {
			return domain.NotFound("Zone not found")
		}
		zone.Open = open
		payload = zonePayloadLocked(tx, zone)
		broadcastGates = gateIDsForZoneLocked(tx, zone.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := "zone-closed"
	if open {
		action = "zone-opened"
	}
	s.publishAdmin(ctx, actor, action, "zone", id, map[string]bool{"open": open})
	s.publishZone(ctx, payload, broadcastGates)
	return &dto.SetZoneOpenResponse{ZoneID: id, Open: open}, nil
}

// DeleteZone removes a zone
func (s *adminService) DeleteZone(ctx context.Context, actor *dto.UserPayload, id string) error {
	err := s.store.Update(func(tx *store.Tx) error {
		if !tx.RemoveZone(id) {
			return domain.NotFound("Zone not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publishAdmin(ctx, actor, "zone-removed", "zone", id, nil)
	return nil
}

// ListGates lists all gates
func (s *adminService) ListGates(ctx context.Context) ([]*domain.Gate, error) {
	gates := []*domain.Gate{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, g := range tx.Gates() {
			gates = append(gates, g.Clone())
		}
		return nil
	})
	return gates, err
}

// CreateGate adds a gate
func (s *adminService) CreateGate(ctx context.Context, actor *dto.UserPayload, req *dto.CreateGateRequest) (*domain.Gate, error) {
	if req.ID == "" || req.Name == "" {
		return nil, domain.Validation("Missing fields")
	}

	zoneIDs := req.ZoneIDs
	if zoneIDs == nil {
		zoneIDs = []string{}
	}
	gate := &domain.Gate{
		ID:       req.ID,
		Name:     req.Name,
		Location: req.Location,
		ZoneIDs:  zoneIDs,
	}
	err := s.store.Update(func(tx *store.Tx) error {
		if tx.GateByID(req.ID) != nil {
			return domain.Conflict("Gate exists")
		}
		// the store keeps its own copy so the returned gate stays private
		tx.AddGate(gate.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "gate-created", "gate", gate.ID, gate)
	return gate, nil
}

// UpdateGate patches a gate
func (s *adminService) UpdateGate(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateGateRequest) (*domain.Gate, error) {
	var gate *domain.Gate
	err := s.store.Update(func(tx *store.Tx) error {
		found := tx.GateByID(id)
		if found == nil {
			return domain.NotFound("Gate not found")
		}
		if req.Name != nil {
			found.Name = *req.Name
		}
		if req.Location != nil {
			found.Location = *req.Location
		}
		if req.ZoneIDs != nil {
			found.ZoneIDs = append([]string(nil), *req.ZoneIDs...)
		}
		gate = found.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "gate-updated", "gate", id, gate)
	return gate, nil
}

// DeleteGate removes a gate and scrubs it from zones
func (s *adminService) DeleteGate(ctx context.Context, actor *dto.UserPayload, id string) error {
	err := s.store.Update(func(tx *store.Tx) error {
		if !tx.RemoveGate(id) {
			return domain.NotFound("Gate not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publishAdmin(ctx, actor, "gate-removed", "gate", id, nil)
	return nil
}

// ListRushHours lists all rush-hour windows
func (s *adminService) ListRushHours(ctx context.Context) ([]*domain.RushHour, error) {
	rushHours := []*domain.RushHour{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, r := range tx.RushHours() {
			copied := *r
			rushHours = append(rushHours, &copied)
		}
		return nil
	})
	return rushHours, err
}

// CreateRushHour adds a rush-hour window
func (s *adminService) CreateRushHour(ctx context.Context, actor *dto.UserPayload, req *dto.CreateRushHourRequest) (*domain.RushHour, error) {
	if req.WeekDay < 0 || req.WeekDay > 6 {
		return nil, domain.Validation("weekDay must be between 0 and 6")
	}
	if !validHHMM(req.From) || !validHHMM(req.To) {
		return nil, domain.Validation("from/to must be HH:MM")
	}

	rush := &domain.RushHour{
		ID:      s.idFn("rush"),
		WeekDay: req.WeekDay,
		From:    req.From,
		To:      req.To,
	}
	err := s.store.Update(func(tx *store.Tx) error {
		copied := *rush
		tx.AddRushHour(&copied)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "rush-updated", "rush", rush.ID, rush)
	return rush, nil
}

// UpdateRushHour patches a rush-hour window
func (s *adminService) UpdateRushHour(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateRushHourRequest) (*domain.RushHour, error) {
	if req.WeekDay != nil && (*req.WeekDay < 0 || *req.WeekDay > 6) {
		return nil, domain.Validation("weekDay must be between 0 and 6")
	}
	if (req.From != nil && !validHHMM(*req.From)) || (req.To != nil && !validHHMM(*req.To)) {
		return nil, domain.Validation("from/to must be HH:MM")
	}

	var rush domain.RushHour
	err := s.store.Update(func(tx *store.Tx) error {
		found := tx.RushHourByID(id)
		if found == nil {
			return domain.NotFound("Not found")
		}
		if req.WeekDay != nil {
			found.WeekDay = *req.WeekDay
		}
		if req.From != nil {
			found.From = *req.From
		}
		if req.To != nil {
			found.To = *req.To
		}
		rush = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "rush-updated", "rush", id, rush)
	return &rush, nil
}

// DeleteRushHour removes a rush-hour window
func (s *adminService) DeleteRushHour(ctx context.Context, actor *dto.UserPayload, id string) error {
	err := s.store.Update(func(tx *store.Tx) error {
		if !tx.RemoveRushHour(id) {
			return domain.NotFound("Not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publishAdmin(ctx, actor, "rush-removed", "rush", id, nil)
	return nil
}

// ListVacations lists all vacations
func (s *adminService) ListVacations(ctx context.Context) ([]*domain.Vacation, error) {
	vacations := []*domain.Vacation{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, v := range tx.Vacations() {
			copied := *v
			vacations = append(vacations, &copied)
		}
		return nil
	})
	return vacations, err
}

// CreateVacation adds a vacation
func (s *adminService) CreateVacation(ctx context.Context, actor *dto.UserPayload, req *dto.CreateVacationRequest) (*domain.Vacation, error) {
	if !validDate(req.From) || !validDate(req.To) {
		return nil, domain.Validation("from/to must be YYYY-MM-DD")
	}

	vacation := &domain.Vacation{
		ID:   s.idFn("vac"),
		Name: req.Name,
		From: req.From,
		To:   req.To,
	}
	err := s.store.Update(func(tx *store.Tx) error {
		copied := *vacation
		tx.AddVacation(&copied)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "vacation-added", "vacation", vacation.ID, vacation)
	return vacation, nil
}

// UpdateVacation patches a vacation
func (s *adminService) UpdateVacation(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateVacationRequest) (*domain.Vacation, error) {
	if (req.From != nil && !validDate(*req.From)) || (req.To != nil && !validDate(*req.To)) {
		return nil, domain.Validation("from/to must be YYYY-MM-DD")
	}

	var vacation domain.Vacation
	err := s.store.Update(func(tx *store.Tx) error {
		found := tx.VacationByID(id)
		if found == nil {
			return domain.NotFound("Not found")
		}
		if req.Name != nil {
			found.Name = *req.Name
		}
		if req.From != nil {
			found.From = *req.From
		}
		if req.To != nil {
			found.To = *req.To
		}
		vacation = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishAdmin(ctx, actor, "vacation-updated", "vacation", id, vacation)
	return &vacation, nil
}

// DeleteVacation removes a vacation
func (s *adminService) DeleteVacation(ctx context.Context, actor *dto.UserPayload, id string) error {
	err := s.store.Update(func(tx *store.Tx) error {
		if !tx.RemoveVacation(id) {
			return domain.NotFound("Not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publishAdmin(ctx, actor, "vacation-removed", "vacation", id, nil)
	return nil
}

// ListSubscriptions lists all subscriptions
func (s *adminService) ListSubscriptions(ctx context.Context) ([]*domain.Subscription, error) {
	subscriptions := []*domain.Subscription{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, sub := range tx.Subscriptions() {
			subscriptions = append(subscriptions, sub.Clone())
		}
		return nil
	})
	return subscriptions, err
}

// ListUsers lists operator accounts without passwords
func (s *adminService) ListUsers(ctx context.Context) ([]dto.UserPayload, error) {
	users := []dto.UserPayload{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, u := range tx.Users() {
			users = append(users, dto.UserPayload{
				ID:       u.ID,
				Username: u.Username,
				Name:     u.Name,
				Role:     string(u.Role),
			})
		}
		return nil
	})
	return users, err
}

// CreateUser adds an operator account
func (s *adminService) CreateUser(ctx context.Context, actor *dto.UserPayload, req *dto.CreateUserRequest) (*dto.UserPayload, error) {
	if req.Username == "" || req.Name == "" || req.Role == "" || req.Password == "" {
		return nil, domain.Validation("Missing fields")
	}
	role := domain.Role(req.Role)
	if role != domain.RoleAdmin && role != domain.RoleEmployee {
		return nil, domain.Validation("Invalid role")
	}

	user := &domain.User{
		ID:       s.idFn(""),
		Username: req.Username,
		Name:     req.Name,
		Role:     role,
		Password: req.Password,
	}
	err := s.store.Update(func(tx *store.Tx) error {
		if tx.UserByUsername(req.Username) != nil {
			return domain.Conflict("Username exists")
		}
		tx.AddUser(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.UserPayload{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     string(user.Role),
	}, nil
}

// ListTickets lists tickets, optionally filtered by status
// (checkedin or checkedout)
func (s *adminService) ListTickets(ctx context.Context, status string) ([]dto.TicketPayload, error) {
	tickets := []dto.TicketPayload{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, t := range tx.Tickets() {
			if status == "checkedin" && !t.IsOpen() {
				continue
			}
			if status == "checkedout" && t.IsOpen() {
				continue
			}
			tickets = append(tickets, dto.NewTicketPayload(t))
		}
		return nil
	})
	return tickets, err
}

func validHHMM(s string) bool {
	if _, err := time.Parse("15:04", s); err != nil {
		return false
	}
	return true
}

func validDate(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return false
	}
	return true
}
