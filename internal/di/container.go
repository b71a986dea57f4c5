package di

import (
	"time"

	"github.com/Abdelrhman012/parking-reservations-system/internal/events"
	"github.com/Abdelrhman012/parking-reservations-system/internal/handler"
	"github.com/Abdelrhman012/parking-reservations-system/internal/service"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
)

// ContainerConfig holds the dependencies and settings the container needs
type ContainerConfig struct {
	Store       *store.Store
	Broker      *events.Broker
	JWTSecret   string
	JWTTTL      time.Duration
	JWTIssuer   string
	ServiceName string
	Version     string
}

// Container wires services and handlers together
type Container struct {
	AuthService         service.AuthService
	MasterService       service.MasterService
	SubscriptionService service.SubscriptionService
	TicketService       service.TicketService
	AdminService        service.AdminService

	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	MasterHandler       *handler.MasterHandler
	SubscriptionHandler *handler.SubscriptionHandler
	TicketHandler       *handler.TicketHandler
	AdminHandler        *handler.AdminHandler
}

// NewContainer builds the full dependency graph
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{}

	c.AuthService = service.NewAuthService(cfg.Store, cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	c.MasterService = service.NewMasterService(cfg.Store)
	c.SubscriptionService = service.NewSubscriptionService(cfg.Store)
	c.TicketService = service.NewTicketService(cfg.Store, cfg.Broker)
	c.AdminService = service.NewAdminService(cfg.Store, cfg.Broker)

	c.HealthHandler = handler.NewHealthHandler(cfg.ServiceName, cfg.Version)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.MasterHandler = handler.NewMasterHandler(c.MasterService)
	c.SubscriptionHandler = handler.NewSubscriptionHandler(c.SubscriptionService)
	c.TicketHandler = handler.NewTicketHandler(c.TicketService)
	c.AdminHandler = handler.NewAdminHandler(c.AdminService)

	return c
}
