package models

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"event-ticketing/internal/status"
	"event-ticketing/monitoring"
)

// RefundRequest records the refund decision for one ticket/buyer pair. The
// refund amount is the zone price at the time the request is made, and the
// decision is final once taken.
type RefundRequest struct {
	id           string
	ticket       *Ticket
	buyer        *Buyer
	refundAmount decimal.Decimal
	status       RefundStatus
}

func NewRefundRequest(ticket *Ticket, buyer *Buyer) *RefundRequest {
	return &RefundRequest{
		id:           uuid.NewString(),
		ticket:       ticket,
		buyer:        buyer,
		refundAmount: ticket.zone.price,
		status:       RefundPending,
	}
}

func (r *RefundRequest) ID() string                    { return r.id }
func (r *RefundRequest) Ticket() *Ticket               { return r.ticket }
func (r *RefundRequest) Buyer() *Buyer                 { return r.buyer }
func (r *RefundRequest) RefundAmount() decimal.Decimal { return r.refundAmount }
func (r *RefundRequest) Status() RefundStatus          { return r.status }

// Approve refunds the ticket and records the decision. The ticket refund
// re-validates the SOLD status; a ticket that cannot be refunded leaves
// the request PENDING and the ticket untouched.
func (r *RefundRequest) Approve() error {
	if r.status != RefundPending {
		slog.Error("Refund request already decided", "refund_id", r.id, "status", r.status)
		return fmt.Errorf("refund request %s: %w", r.id, status.ErrInvalidTransition)
	}

	if err := r.ticket.Refund(); err != nil {
		return err
	}
	r.status = RefundApproved

	monitoring.TrackRefundRequest(string(RefundApproved))
	slog.Info("Refund request approved", "refund_id", r.id, "ticket_id", r.ticket.id, "amount", r.refundAmount)
	return nil
}

// Reject closes the request without touching the ticket.
func (r *RefundRequest) Reject() error {
	if r.status != RefundPending {
		slog.Error("Refund request already decided", "refund_id", r.id, "status", r.status)
		return fmt.Errorf("refund request %s: %w", r.id, status.ErrInvalidTransition)
	}

	r.status = RefundRejected

	monitoring.TrackRefundRequest(string(RefundRejected))
	slog.Info("Refund request rejected", "refund_id", r.id, "ticket_id", r.ticket.id)
	return nil
}
