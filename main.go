package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abdelrhman012/parking-reservations-system/internal/di"
	"github.com/Abdelrhman012/parking-reservations-system/internal/events"
	"github.com/Abdelrhman012/parking-reservations-system/internal/metrics"
	"github.com/Abdelrhman012/parking-reservations-system/internal/middleware"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/config"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/logger"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting parking reservations service...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	if err := metrics.Init(); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize metrics: %v", err))
	}

	// Load the seed dataset
	st, err := store.Open(cfg.Seed.File)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Failed to load seed data: %v", err))
	}
	appLog.Info(fmt.Sprintf("Seed data loaded from %s", cfg.Seed.File))

	// Broadcast broker; the debug listener mirrors every update into the log
	// so gate screens can be simulated without a push transport.
	broker := events.NewBroker()
	broker.Subscribe(nil, func(msg events.Message) {
		if payload, err := json.Marshal(msg.Payload); err == nil {
			appLog.Debug(fmt.Sprintf("broadcast %s: %s", msg.Type, payload))
		}
	})

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		Store:       st,
		Broker:      broker,
		JWTSecret:   cfg.JWT.Secret,
		JWTTTL:      cfg.JWT.AccessTokenTTL,
		JWTIssuer:   cfg.JWT.Issuer,
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Authenticate(container.AuthService))

	router.GET("/health", container.HealthHandler.Health)

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", container.AuthHandler.Login)

		master := v1.Group("/master")
		{
			master.GET("/gates", container.MasterHandler.ListGates)
			master.GET("/zones", container.MasterHandler.ListZones)
			master.GET("/categories", container.MasterHandler.ListCategories)
		}

		v1.GET("/subscriptions/:id", container.SubscriptionHandler.Get)

		tickets := v1.Group("/tickets")
		{
			tickets.POST("/checkin", container.TicketHandler.Checkin)
			tickets.POST("/checkout", container.TicketHandler.Checkout)
			tickets.GET("/:id", container.TicketHandler.Get)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.GET("/reports/parking-state", container.AdminHandler.ParkingStateReport)

			admin.GET("/categories", container.AdminHandler.ListCategories)
			admin.POST("/categories", container.AdminHandler.CreateCategory)
			admin.PUT("/categories/:id", container.AdminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", container.AdminHandler.DeleteCategory)

			admin.GET("/zones", container.AdminHandler.ListZones)
			admin.POST("/zones", container.AdminHandler.CreateZone)
			admin.PUT("/zones/:id", container.AdminHandler.UpdateZone)
			admin.PUT("/zones/:id/open", container.AdminHandler.SetZoneOpen)
			admin.DELETE("/zones/:id", container.AdminHandler.DeleteZone)

			admin.GET("/gates", container.AdminHandler.ListGates)
			admin.POST("/gates", container.AdminHandler.CreateGate)
			admin.PUT("/gates/:id", container.AdminHandler.UpdateGate)
			admin.DELETE("/gates/:id", container.AdminHandler.DeleteGate)

			admin.GET("/rush-hours", container.AdminHandler.ListRushHours)
			admin.POST("/rush-hours", container.AdminHandler.CreateRushHour)
			admin.PUT("/rush-hours/:id", container.AdminHandler.UpdateRushHour)
			admin.DELETE("/rush-hours/:id", container.AdminHandler.DeleteRushHour)

			admin.GET("/vacations", container.AdminHandler.ListVacations)
			admin.POST("/vacations", container.AdminHandler.CreateVacation)
			admin.PUT("/vacations/:id", container.AdminHandler.UpdateVacation)
			admin.DELETE("/vacations/:id", container.AdminHandler.DeleteVacation)

			admin.GET("/subscriptions", container.AdminHandler.ListSubscriptions)
			admin.GET("/users", container.AdminHandler.ListUsers)
			admin.POST("/users", container.AdminHandler.CreateUser)
			admin.GET("/tickets", container.AdminHandler.ListTickets)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Parking reservations service listening on %s", cfg.Server.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	}
	appLog.Info("Server exited")
}
