package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrhman012/parking-reservations-system/internal/billing"
	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/events"
	"github.com/Abdelrhman012/parking-reservations-system/internal/metrics"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/logger"
)

// ticketService implements the TicketService interface
type ticketService struct {
	store  *store.Store
	broker *events.Broker
	nowFn  func() time.Time
	idFn   func() string
}

// NewTicketService creates a new TicketService
func NewTicketService(st *store.Store, broker *events.Broker) TicketService {
	return &ticketService{
		store:  st,
		broker: broker,
		nowFn:  time.Now,
		idFn:   newTicketID,
	}
}

func newTicketID() string {
	return "t_" + strings.Split(uuid.NewString(), "-")[0]
}

// Checkin opens a ticket and claims a slot in the zone. Validation and the
// occupancy mutation happen inside one store transaction, so concurrent
// check-ins against the last slot cannot both succeed.
func (s *ticketService) Checkin(ctx context.Context, req *dto.CheckinRequest) (*dto.CheckinResponse, error) {
	if req.GateID == "" || req.ZoneID == "" || req.Type == "" {
		return nil, domain.Validation("Missing required fields")
	}

	now := s.nowFn().UTC()
	var resp *dto.CheckinResponse
	var gateIDs []string

	err := s.store.Update(func(tx *store.Tx) error {
		zone := tx.ZoneByID(req.ZoneID)
		if zone == nil {
			return domain.NotFound("Zone not found")
		}
		state := domain.ComputeZoneState(zone, tx.CategoryByID(zone.CategoryID), tx.Subscriptions(), tx.Tickets())
		if !zone.Open {
			return domain.Conflict("Zone is closed")
		}

		var sub *domain.Subscription
		switch domain.TicketType(req.Type) {
		case domain.TicketTypeVisitor:
			if state.AvailableForVisitors <= 0 {
				return domain.Conflict("No available slots for visitors")
			}
		case domain.TicketTypeSubscriber:
			sub = tx.SubscriptionByID(req.SubscriptionID)
			if sub == nil || !sub.Active {
				return domain.Validation("Invalid subscription")
			}
			if !sub.PermitsCategory(zone.CategoryID) {
				return domain.Forbidden("Subscription not valid for this category")
			}
			if state.Free <= 0 {
				return domain.Conflict("No free slots for subscribers")
			}
		default:
			return domain.Validation("Invalid type")
		}

		ticket := &domain.Ticket{
			ID:        s.idFn(),
			Type:      domain.TicketType(req.Type),
			ZoneID:    req.ZoneID,
			GateID:    req.GateID,
			CheckinAt: now,
		}
		tx.AddTicket(ticket)
		zone.IncrementOccupied()
		if sub != nil {
			sub.AddCheckin(ticket.ID, zone.ID, now)
		}

		resp = &dto.CheckinResponse{
			Ticket:    dto.NewTicketPayload(ticket),
			ZoneState: zonePayloadLocked(tx, zone),
		}
		gateIDs = gateIDsForZoneLocked(tx, zone.ID)
		return nil
	})
	if err != nil {
		metrics.RecordCheckinFailure(ctx, req.ZoneID, string(domain.KindOf(err)))
		return nil, err
	}

	s.broker.PublishZoneUpdate(gateIDs, resp.ZoneState)
	metrics.RecordBroadcast(ctx, events.TypeZoneUpdate)
	metrics.RecordCheckin(ctx, req.ZoneID, req.Type)
	logger.Info("ticket checked in",
		zap.String("ticket_id", resp.Ticket.ID),
		zap.String("zone_id", req.ZoneID),
		zap.String("type", req.Type),
	)
	return resp, nil
}

// Checkout closes a ticket, bills the stay, and releases the slot. The rate
// always derives from the zone's category; forceConvertToVisitor only changes
// the reported billing type.
func (s *ticketService) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if req.TicketID == "" {
		return nil, domain.Validation("Missing ticketId")
	}

	now := s.nowFn().UTC()
	var resp *dto.CheckoutResponse
	var gateIDs []string

	err := s.store.Update(func(tx *store.Tx) error {
		ticket := tx.TicketByID(req.TicketID)
		if ticket == nil {
			return domain.NotFound("Ticket not found")
		}
		if !ticket.IsOpen() {
			return domain.Validation("Ticket already checked out")
		}
		zone := tx.ZoneByID(ticket.ZoneID)
		if zone == nil {
			return domain.NotFound("Zone not found")
		}

		billingType := ticket.Type
		if ticket.Type == domain.TicketTypeSubscriber && req.ForceConvertToVisitor {
			billingType = domain.TicketTypeVisitor
		}

		var rateNormal, rateSpecial float64
		if category := tx.CategoryByID(zone.CategoryID); category != nil {
			rateNormal = category.RateNormal
			rateSpecial = category.RateSpecial
		}
		resolver := billing.NewResolver(tx.Vacations(), tx.RushHours())
		bill := billing.ComputeBill(ticket.CheckinAt, now, rateNormal, rateSpecial, resolver)

		if err := ticket.Close(now); err != nil {
			return err
		}
		zone.DecrementOccupied()
		if ticket.Type == domain.TicketTypeSubscriber {
			if sub := tx.SubscriptionHoldingTicket(ticket.ID); sub != nil {
				sub.RemoveCheckin(ticket.ID)
			}
		}

		breakdown := make([]dto.BreakdownSegment, len(bill.Breakdown))
		for i, seg := range bill.Breakdown {
			breakdown[i] = dto.BreakdownSegment{
				From:     seg.From,
				To:       seg.To,
				Hours:    seg.Hours,
				RateMode: seg.Mode,
				Rate:     seg.Rate,
				Amount:   seg.Amount,
			}
		}
		resp = &dto.CheckoutResponse{
			TicketID:      ticket.ID,
			CheckinAt:     ticket.CheckinAt,
			CheckoutAt:    now,
			DurationHours: billing.Round4(now.Sub(ticket.CheckinAt).Hours()),
			BillingType:   billingType.String(),
			Breakdown:     breakdown,
			Amount:        bill.TotalAmount,
			ZoneState:     zonePayloadLocked(tx, zone),
		}
		gateIDs = gateIDsForZoneLocked(tx, zone.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broker.PublishZoneUpdate(gateIDs, resp.ZoneState)
	metrics.RecordBroadcast(ctx, events.TypeZoneUpdate)
	metrics.RecordCheckout(ctx, resp.ZoneState.ID, resp.BillingType, resp.DurationHours, resp.Amount)
	logger.Info("ticket checked out",
		zap.String("ticket_id", resp.TicketID),
		zap.String("zone_id", resp.ZoneState.ID),
		zap.Float64("amount", resp.Amount),
	)
	return resp, nil
}

// GetTicket retrieves a ticket by ID
func (s *ticketService) GetTicket(ctx context.Context, id string) (*dto.TicketPayload, error) {
	var payload *dto.TicketPayload
	err := s.store.View(func(tx *store.Tx) error {
		ticket := tx.TicketByID(id)
		if ticket == nil {
			return domain.NotFound("Ticket not found")
		}
		p := dto.NewTicketPayload(ticket)
		payload = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}
