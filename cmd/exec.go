package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"event-ticketing/config"
	"event-ticketing/internal/status"
	"event-ticketing/models"
)

// Start seeds a demo venue and walks the purchase and refund flows end to
// end. Every scenario is checked; a deviation fails the run.
func Start() error {
	cfg := config.LoadConfig()
	setupLogger(cfg)

	slog.Info("Starting ticketing demo", "environment", cfg.Environment)

	organizer := models.NewEventOrganizer(1, "John Doe", "john@example.com")
	hall := models.NewHall(1, models.HallLarge, 1000)
	event := organizer.CreateEvent(1, "Concert", time.Now().AddDate(0, 1, 0), hall)

	vip := event.AddZoneWithPercentage("VIP", 0.2, decimal.NewFromFloat(150.0))
	regular := event.AddZoneWithPercentage("Regular", 0.8, decimal.NewFromFloat(50.0))
	slog.Info("Event ready", "event", event.Name(), "vip_capacity", vip.Capacity(), "regular_capacity", regular.Capacity())

	buyer := models.NewBuyer(2, "Jane Doe", "jane@example.com")

	if err := runPurchaseFlow(buyer, event); err != nil {
		return err
	}
	if err := runRefundFlow(buyer); err != nil {
		return err
	}
	if err := runRejectedPaths(buyer, event, vip); err != nil {
		return err
	}
	if err := runCancelFlow(regular); err != nil {
		return err
	}
	if err := runFailedPaymentFlow(regular); err != nil {
		return err
	}

	if cfg.EnableMetrics {
		logMetricsSummary()
	}

	slog.Info("Demo finished", "event_tickets_left", len(event.AvailableTickets()))
	return nil
}

func runPurchaseFlow(buyer *models.Buyer, event *models.Event) error {
	order, err := buyer.PurchaseTickets(event, "VIP", 2)
	if err != nil {
		return fmt.Errorf("vip purchase: %w", err)
	}
	if order.Status() != models.OrderCompleted || len(order.Tickets()) != 2 {
		return fmt.Errorf("vip purchase: order %s not completed as expected", order.ID())
	}
	slog.Info("Purchase flow done", "order_id", order.ID(), "total", order.TotalPrice(), "ref_code", order.Payment().RefCode())
	return nil
}

func runRefundFlow(buyer *models.Buyer) error {
	ticket := buyer.Tickets()[0]
	request, err := buyer.RequestRefund(ticket.ID())
	if err != nil {
		return fmt.Errorf("refund: %w", err)
	}
	if request.Status() != models.RefundApproved || ticket.Status() != models.TicketRefunded {
		return fmt.Errorf("refund: request %s not approved as expected", request.ID())
	}
	slog.Info("Refund flow done", "refund_id", request.ID(), "amount", request.RefundAmount())
	return nil
}

// runRejectedPaths exercises the decline branches: an unknown zone, an
// oversell, and a refund of an already refunded ticket. Each failure is
// the expected outcome here.
func runRejectedPaths(buyer *models.Buyer, event *models.Event, vip *models.Zone) error {
	if _, err := buyer.PurchaseTickets(event, "Balcony", 1); !errors.Is(err, status.ErrZoneNotFound) {
		return fmt.Errorf("unknown zone: expected zone lookup to fail, got %v", err)
	}
	if _, err := buyer.PurchaseTickets(event, "VIP", vip.Available()+1); !errors.Is(err, status.ErrInsufficientInventory) {
		return fmt.Errorf("oversell: expected inventory check to fail, got %v", err)
	}
	refunded := buyer.Tickets()[0]
	if _, err := buyer.RequestRefund(refunded.ID()); !errors.Is(err, status.ErrInvalidTransition) {
		return fmt.Errorf("double refund: expected refund to fail, got %v", err)
	}
	slog.Info("Rejected paths behaved as documented")
	return nil
}

// runCancelFlow drives the low-level order API directly: purchase two
// tickets onto a pending order, then cancel and release them.
func runCancelFlow(zone *models.Zone) error {
	shopper := models.NewBuyer(3, "Sam Lee", "sam@example.com")
	order := models.NewOrder(shopper)
	for _, ticket := range zone.AvailableTickets(2) {
		if err := ticket.Purchase(shopper); err != nil {
			return fmt.Errorf("cancel flow: %w", err)
		}
		order.AddTicket(ticket)
	}

	if err := order.Cancel(); err != nil {
		return fmt.Errorf("cancel flow: %w", err)
	}
	for _, ticket := range order.Tickets() {
		if ticket.Status() != models.TicketAvailable {
			return fmt.Errorf("cancel flow: ticket %d not released", ticket.ID())
		}
	}
	slog.Info("Cancel flow done", "order_id", order.ID(), "released", len(order.Tickets()))
	return nil
}

// runFailedPaymentFlow shows the documented gap: a failed payment leaves
// the order PENDING with its tickets still SOLD.
func runFailedPaymentFlow(zone *models.Zone) error {
	shopper := models.NewBuyer(4, "Alex Kim", "alex@example.com")
	order := models.NewOrder(shopper)
	for _, ticket := range zone.AvailableTickets(1) {
		if err := ticket.Purchase(shopper); err != nil {
			return fmt.Errorf("failed payment flow: %w", err)
		}
		order.AddTicket(ticket)
	}

	if err := order.Complete(false); !errors.Is(err, status.ErrFailedPayment) {
		return fmt.Errorf("failed payment flow: expected payment failure, got %v", err)
	}
	if order.Status() != models.OrderPending {
		return fmt.Errorf("failed payment flow: order %s should stay pending", order.ID())
	}
	slog.Warn("Order left pending with sold tickets after failed payment",
		"order_id", order.ID(), "tickets", len(order.Tickets()))
	return nil
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// logMetricsSummary dumps the counter state gathered over the run. There
// is no exposition endpoint; the registry is read in-process.
func logMetricsSummary() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		slog.Error("Failed to gather metrics", "error", err)
		return
	}

	for _, family := range families {
		// Skip the runtime collectors registered by default.
		if strings.HasPrefix(family.GetName(), "go_") || strings.HasPrefix(family.GetName(), "process_") {
			continue
		}
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			slog.Info("Metric", "name", family.GetName(), "labels", strings.Join(labels, ","), "value", metric.GetCounter().GetValue())
		}
	}
}
