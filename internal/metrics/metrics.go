package metrics

import (
	"context"
	"sync"

	"github.com/Abdelrhman012/parking-reservations-system/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

var (
	// Ticket lifecycle counters
	CheckinsTotal   *telemetry.Counter
	CheckoutsTotal  *telemetry.Counter
	CheckinFailures *telemetry.Counter

	// Broadcast counters
	BroadcastsTotal *telemetry.Counter

	// Histograms
	StayDuration    *telemetry.Histogram
	BillAmount      *telemetry.Histogram
	RequestDuration *telemetry.Histogram

	// Gauges
	OpenTickets *telemetry.UpDownCounter

	initOnce sync.Once
	initErr  error
)

// Init initializes all parking metrics
func Init() error {
	initOnce.Do(func() {
		initErr = initMetrics()
	})
	return initErr
}

func initMetrics() error {
	var err error

	CheckinsTotal, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "parking_checkins_total",
		Description: "Total number of tickets opened",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	CheckoutsTotal, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "parking_checkouts_total",
		Description: "Total number of tickets closed",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	CheckinFailures, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "parking_checkin_failures_total",
		Description: "Total number of rejected check-in attempts by reason",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	BroadcastsTotal, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "parking_broadcasts_total",
		Description: "Total number of zone and admin updates published",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	StayDuration, err = telemetry.NewHistogramWithBuckets(telemetry.MetricOpts{
		Name:        "parking_stay_duration_hours",
		Description: "Parked duration per checked-out ticket",
		Unit:        "h",
	}, []float64{0.25, 0.5, 1, 2, 4, 8, 12, 24, 48})
	if err != nil {
		return err
	}

	BillAmount, err = telemetry.NewHistogramWithBuckets(telemetry.MetricOpts{
		Name:        "parking_bill_amount",
		Description: "Billed amount per checked-out ticket",
		Unit:        "1",
	}, []float64{1, 5, 10, 25, 50, 100, 250, 500})
	if err != nil {
		return err
	}

	RequestDuration, err = telemetry.NewHistogramWithBuckets(telemetry.MetricOpts{
		Name:        "parking_request_duration_seconds",
		Description: "HTTP request duration in seconds",
		Unit:        "s",
	}, []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5})
	if err != nil {
		return err
	}

	OpenTickets, err = telemetry.NewUpDownCounter(telemetry.MetricOpts{
		Name:        "parking_open_tickets",
		Description: "Current number of open tickets",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	return nil
}

// RecordCheckin records a successful check-in
func RecordCheckin(ctx context.Context, zoneID, ticketType string) {
	if CheckinsTotal != nil {
		CheckinsTotal.Inc(ctx,
			attribute.String("zone_id", zoneID),
			attribute.String("ticket_type", ticketType),
		)
	}
	if OpenTickets != nil {
		OpenTickets.Inc(ctx)
	}
}

// RecordCheckinFailure records a rejected check-in attempt
func RecordCheckinFailure(ctx context.Context, zoneID, reason string) {
	if CheckinFailures != nil {
		CheckinFailures.Inc(ctx,
			attribute.String("zone_id", zoneID),
			attribute.String("reason", reason),
		)
	}
}

// RecordCheckout records a successful checkout with its bill
func RecordCheckout(ctx context.Context, zoneID, billingType string, durationHours, amount float64) {
	if CheckoutsTotal != nil {
		CheckoutsTotal.Inc(ctx,
			attribute.String("zone_id", zoneID),
			attribute.String("billing_type", billingType),
		)
	}
	if StayDuration != nil {
		StayDuration.Record(ctx, durationHours,
			attribute.String("zone_id", zoneID),
		)
	}
	if BillAmount != nil {
		BillAmount.Record(ctx, amount,
			attribute.String("zone_id", zoneID),
		)
	}
	if OpenTickets != nil {
		OpenTickets.Dec(ctx)
	}
}

// RecordBroadcast records a published update
func RecordBroadcast(ctx context.Context, messageType string) {
	if BroadcastsTotal != nil {
		BroadcastsTotal.Inc(ctx,
			attribute.String("message_type", messageType),
		)
	}
}

// RecordRequestDuration records HTTP request duration
func RecordRequestDuration(ctx context.Context, operation string, durationSeconds float64) {
	if RequestDuration != nil {
		RequestDuration.Record(ctx, durationSeconds,
			attribute.String("operation", operation),
		)
	}
}
