package models

import (
	"fmt"
	"log/slog"
	"time"

	"event-ticketing/internal/status"
)

const (
	RoleOrganizer = "Organizer"
	RoleBuyer     = "Buyer"
)

// User carries the identity shared by organizers and buyers.
type User struct {
	id    int
	name  string
	email string
	role  string
}

func NewUser(id int, name, email, role string) User {
	return User{id: id, name: name, email: email, role: role}
}

func (u *User) ID() int       { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Role() string  { return u.role }

// EventOrganizer creates events and keeps track of them.
type EventOrganizer struct {
	User
	events []*Event
}

func NewEventOrganizer(id int, name, email string) *EventOrganizer {
	return &EventOrganizer{User: NewUser(id, name, email, RoleOrganizer)}
}

func (o *EventOrganizer) Events() []*Event { return o.events }

// CreateEvent builds an event in the given hall and records it on the
// organizer.
func (o *EventOrganizer) CreateEvent(id int, name string, date time.Time, hall *Hall) *Event {
	event := NewEvent(id, name, date, o, hall)
	o.events = append(o.events, event)
	slog.Info("Event created", "event", name, "organizer", o.name)
	return event
}

// Buyer purchases tickets and requests refunds. The ticket list only grows
// through successful purchases; the order list only through completed
// orders.
type Buyer struct {
	User
	tickets []*Ticket
	orders  []*Order
}

func NewBuyer(id int, name, email string) *Buyer {
	return &Buyer{User: NewUser(id, name, email, RoleBuyer)}
}

func (b *Buyer) Tickets() []*Ticket { return b.tickets }
func (b *Buyer) Orders() []*Order   { return b.orders }

// PurchaseTickets buys quantity tickets from one zone of the event in a
// single order. Inventory is checked before any ticket is touched. A
// ticket purchase failing mid-order aborts the order without rolling back
// tickets already sold to it, and a payment failure leaves those tickets
// SOLD on a PENDING order.
func (b *Buyer) PurchaseTickets(event *Event, zoneType string, quantity int) (*Order, error) {
	zone := event.Zone(zoneType)
	if zone == nil {
		slog.Error("Zone not found in event", "zone", zoneType, "event", event.Name())
		return nil, fmt.Errorf("zone %q: %w", zoneType, status.ErrZoneNotFound)
	}

	available := zone.AvailableTickets(quantity)
	if len(available) < quantity {
		slog.Error("Not enough tickets available", "zone", zoneType, "requested", quantity, "available", len(available))
		return nil, fmt.Errorf("zone %q: %w", zoneType, status.ErrInsufficientInventory)
	}

	order := NewOrder(b)
	for _, ticket := range available {
		if err := ticket.Purchase(b); err != nil {
			slog.Error("Failed to purchase ticket", "ticket_id", ticket.ID(), "order_id", order.ID(), "error", err)
			return nil, err
		}
		order.AddTicket(ticket)
	}

	if err := order.Complete(true); err != nil {
		slog.Error("Failed to complete order", "order_id", order.ID(), "error", err)
		return nil, err
	}
	return order, nil
}

// RequestRefund refunds one of the buyer's own tickets. The request is
// approved immediately; there is no review step.
func (b *Buyer) RequestRefund(ticketID int) (*RefundRequest, error) {
	var ticket *Ticket
	for _, t := range b.tickets {
		if t.id == ticketID {
			ticket = t
			break
		}
	}
	if ticket == nil {
		slog.Error("Ticket not found for buyer", "ticket_id", ticketID, "buyer", b.name)
		return nil, fmt.Errorf("ticket %d: %w", ticketID, status.ErrTicketNotFound)
	}
	if ticket.status != TicketSold {
		slog.Error("Ticket is not eligible for refund", "ticket_id", ticketID, "status", ticket.status)
		return nil, fmt.Errorf("ticket %d: %w", ticketID, status.ErrInvalidTransition)
	}

	request := NewRefundRequest(ticket, b)
	if err := request.Approve(); err != nil {
		slog.Error("Refund approval failed", "ticket_id", ticketID, "refund_id", request.ID(), "error", err)
		return nil, err
	}
	return request, nil
}
