package models

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"event-ticketing/internal/status"
	"event-ticketing/monitoring"
)

// Order groups the tickets of one purchase. It starts PENDING and ends
// either COMPLETED or CANCELED; neither end state is ever revived.
type Order struct {
	id         string
	buyer      *Buyer
	tickets    []*Ticket
	totalPrice decimal.Decimal
	payment    *Payment
	status     OrderStatus
}

func NewOrder(buyer *Buyer) *Order {
	return &Order{
		id:         uuid.NewString(),
		buyer:      buyer,
		totalPrice: decimal.Zero,
		status:     OrderPending,
	}
}

func (o *Order) ID() string                  { return o.id }
func (o *Order) Buyer() *Buyer               { return o.buyer }
func (o *Order) Tickets() []*Ticket          { return o.tickets }
func (o *Order) TotalPrice() decimal.Decimal { return o.totalPrice }
func (o *Order) Payment() *Payment           { return o.payment }
func (o *Order) Status() OrderStatus         { return o.status }

// AddTicket appends the ticket and folds its zone price into the total at
// add-time. A later price change would not be reflected.
func (o *Order) AddTicket(t *Ticket) {
	o.tickets = append(o.tickets, t)
	o.totalPrice = o.totalPrice.Add(t.zone.price)
}

// Complete settles the order total with the caller-supplied payment
// outcome. On failure the order stays PENDING and its tickets keep their
// SOLD status; nothing is reverted.
func (o *Order) Complete(success bool) error {
	if o.status != OrderPending {
		slog.Error("Order cannot be completed", "order_id", o.id, "status", o.status)
		return fmt.Errorf("order %s: %w", o.id, status.ErrInvalidTransition)
	}

	o.payment = NewPayment(o, o.totalPrice)
	if err := o.payment.Process(success); err != nil {
		slog.Error("Payment for order failed", "order_id", o.id, "payment_id", o.payment.ID())
		return err
	}

	o.status = OrderCompleted
	o.buyer.orders = append(o.buyer.orders, o)

	monitoring.TrackOrder(string(OrderCompleted))
	slog.Info("Order completed", "order_id", o.id, "buyer", o.buyer.Name(), "tickets", len(o.tickets), "total", o.totalPrice)
	return nil
}

// Cancel releases every ticket on the order back to AVAILABLE and clears
// their buyer reference. Only a PENDING order can be canceled; this is the
// single path that moves a ticket backwards.
func (o *Order) Cancel() error {
	if o.status != OrderPending {
		slog.Error("Order cannot be canceled", "order_id", o.id, "status", o.status)
		return fmt.Errorf("order %s: %w", o.id, status.ErrInvalidTransition)
	}

	for _, t := range o.tickets {
		t.status = TicketAvailable
		t.buyer = nil
	}
	o.status = OrderCanceled

	monitoring.TrackOrder(string(OrderCanceled))
	slog.Info("Order canceled", "order_id", o.id, "released", len(o.tickets))
	return nil
}
