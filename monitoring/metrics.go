package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Total tickets sold per zone type",
		},
		[]string{"zone_type"},
	)

	ticketsRefunded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_refunded_total",
			Help: "Total tickets refunded per zone type",
		},
		[]string{"zone_type"},
	)

	orders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total orders by final status",
		},
		[]string{"status"},
	)

	payments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Total payments by outcome",
		},
		[]string{"status"},
	)

	refundRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refund_requests_total",
			Help: "Total refund requests by decision",
		},
		[]string{"status"},
	)
)

// Track ticket sales
func TrackTicketSold(zoneType string) {
	ticketsSold.WithLabelValues(zoneType).Inc()
}

// Track ticket refunds
func TrackTicketRefunded(zoneType string) {
	ticketsRefunded.WithLabelValues(zoneType).Inc()
}

// Track order outcomes
func TrackOrder(status string) {
	orders.WithLabelValues(status).Inc()
}

// Track payment outcomes
func TrackPayment(status string) {
	payments.WithLabelValues(status).Inc()
}

// Track refund decisions
func TrackRefundRequest(status string) {
	refundRequests.WithLabelValues(status).Inc()
}
