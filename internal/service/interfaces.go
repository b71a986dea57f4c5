package service

import (
	"context"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
)

// AuthService defines the interface for operator authentication
type AuthService interface {
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// VerifyToken parses an access token and returns the user it names
	VerifyToken(ctx context.Context, token string) (*dto.UserPayload, error)
}

// MasterService defines the interface for the public read-only endpoints
type MasterService interface {
	// ListGates lists all gates
	ListGates(ctx context.Context) ([]dto.GatePayload, error)
	// ListZones lists zones with derived state, optionally filtered by gate
	ListZones(ctx context.Context, gateID string) ([]dto.ZonePayload, error)
	// ListCategories lists all rate categories
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

// SubscriptionService defines the interface for subscription lookups
type SubscriptionService interface {
	// GetSubscription retrieves a subscription by ID
	GetSubscription(ctx context.Context, id string) (*domain.Subscription, error)
}

// TicketService defines the interface for the ticket lifecycle
type TicketService interface {
	// Checkin opens a ticket and claims a slot in the zone
	Checkin(ctx context.Context, req *dto.CheckinRequest) (*dto.CheckinResponse, error)
	// Checkout closes a ticket, bills the stay, and releases the slot
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	// GetTicket retrieves a ticket by ID
	GetTicket(ctx context.Context, id string) (*dto.TicketPayload, error)
}

// AdminService defines the interface for configuration management
type AdminService interface {
	// ParkingStateReport summarizes every zone's live state
	ParkingStateReport(ctx context.Context) ([]dto.ParkingStateRow, error)

	// ListCategories lists all rate categories
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	// CreateCategory adds a rate category
	CreateCategory(ctx context.Context, actor *dto.UserPayload, req *dto.CreateCategoryRequest) (*domain.Category, error)
	// UpdateCategory patches a category and re-broadcasts affected zones
	UpdateCategory(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateCategoryRequest) (*domain.Category, error)
	// DeleteCategory removes a category
	DeleteCategory(ctx context.Context, actor *dto.UserPayload, id string) error

	// ListZones lists all zones with derived state
	ListZones(ctx context.Context) ([]dto.ZonePayload, error)
	// CreateZone adds a zone with zero occupancy
	CreateZone(ctx context.Context, actor *dto.UserPayload, req *dto.CreateZoneRequest) (*dto.ZonePayload, error)
	// UpdateZone patches a zone; occupancy is never patchable
	UpdateZone(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateZoneRequest) (*dto.ZonePayload, error)
	// SetZoneOpen opens or closes a zone
	SetZoneOpen(ctx context.Context, actor *dto.UserPayload, id string, open bool) (*dto.SetZoneOpenResponse, error)
	// DeleteZone removes a zone
	DeleteZone(ctx context.Context, actor *dto.UserPayload, id string) error

	// ListGates lists all gates
	ListGates(ctx context.Context) ([]*domain.Gate, error)
	// CreateGate adds a gate
	CreateGate(ctx context.Context, actor *dto.UserPayload, req *dto.CreateGateRequest) (*domain.Gate, error)
	// UpdateGate patches a gate
	UpdateGate(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateGateRequest) (*domain.Gate, error)
	// DeleteGate removes a gate and scrubs it from zones
	DeleteGate(ctx context.Context, actor *dto.UserPayload, id string) error

	// ListRushHours lists all rush-hour windows
	ListRushHours(ctx context.Context) ([]*domain.RushHour, error)
	// CreateRushHour adds a rush-hour window
	CreateRushHour(ctx context.Context, actor *dto.UserPayload, req *dto.CreateRushHourRequest) (*domain.RushHour, error)
	// UpdateRushHour patches a rush-hour window
	UpdateRushHour(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateRushHourRequest) (*domain.RushHour, error)
	// DeleteRushHour removes a rush-hour window
	DeleteRushHour(ctx context.Context, actor *dto.UserPayload, id string) error

	// ListVacations lists all vacations
	ListVacations(ctx context.Context) ([]*domain.Vacation, error)
	// CreateVacation adds a vacation
	CreateVacation(ctx context.Context, actor *dto.UserPayload, req *dto.CreateVacationRequest) (*domain.Vacation, error)
	// UpdateVacation patches a vacation
	UpdateVacation(ctx context.Context, actor *dto.UserPayload, id string, req *dto.UpdateVacationRequest) (*domain.Vacation, error)
	// DeleteVacation removes a vacation
	DeleteVacation(ctx context.Context, actor *dto.UserPayload, id string) error

	// ListSubscriptions lists all subscriptions
	ListSubscriptions(ctx context.Context) ([]*domain.Subscription, error)

	// ListUsers lists operator accounts without passwords
	ListUsers(ctx context.Context) ([]dto.UserPayload, error)
	// CreateUser adds an operator account
	CreateUser(ctx context.Context, actor *dto.UserPayload, req *dto.CreateUserRequest) (*dto.UserPayload, error)

	// ListTickets lists tickets, optionally filtered by status
	ListTickets(ctx context.Context, status string) ([]dto.TicketPayload, error)
}
