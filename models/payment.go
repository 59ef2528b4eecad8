package models

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"event-ticketing/internal/status"
	"event-ticketing/monitoring"
	"event-ticketing/utils"
)

// Payment records the amount and outcome for one order. The amount is
// fixed at construction and the outcome is terminal either way.
type Payment struct {
	id      string
	refCode string
	order   *Order
	amount  decimal.Decimal
	status  PaymentStatus
}

func NewPayment(order *Order, amount decimal.Decimal) *Payment {
	refCode, _ := utils.GenerateCode(4)
	return &Payment{
		id:      uuid.NewString(),
		refCode: refCode,
		order:   order,
		amount:  amount,
		status:  PaymentPending,
	}
}

func (p *Payment) ID() string              { return p.id }
func (p *Payment) RefCode() string         { return p.refCode }
func (p *Payment) Order() *Order           { return p.order }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Status() PaymentStatus   { return p.status }

// Process settles the payment with the caller-supplied outcome. There is
// no gateway behind this and no retry.
func (p *Payment) Process(success bool) error {
	if p.status != PaymentPending {
		slog.Error("Payment already settled", "payment_id", p.id, "status", p.status)
		return fmt.Errorf("payment %s: %w", p.id, status.ErrInvalidTransition)
	}

	if !success {
		p.status = PaymentFailed
		monitoring.TrackPayment(string(PaymentFailed))
		slog.Error("Payment failed", "payment_id", p.id, "ref_code", p.refCode, "amount", p.amount)
		return status.ErrFailedPayment
	}

	p.status = PaymentCompleted
	monitoring.TrackPayment(string(PaymentCompleted))
	slog.Info("Payment completed", "payment_id", p.id, "ref_code", p.refCode, "amount", p.amount)
	return nil
}
