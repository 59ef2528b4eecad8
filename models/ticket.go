package models

import (
	"fmt"
	"log/slog"

	"event-ticketing/internal/status"
	"event-ticketing/monitoring"
)

// Ticket is the unit of inventory. Tickets are allocated in bulk when their
// zone is constructed and never destroyed; only the status moves.
type Ticket struct {
	id      int
	zone    *Zone
	buyer   *Buyer
	status TicketStatus
}

func newTicket(id int, zone *Zone) *Ticket {
	return &Ticket{id: id, zone: zone, status: TicketAvailable}
}

func (t *Ticket) ID() int              { return t.id }
func (t *Ticket) Zone() *Zone          { return t.zone }
func (t *Ticket) Buyer() *Buyer        { return t.buyer }
func (t *Ticket) Status() TicketStatus { return t.status }

// Purchase moves the ticket to SOLD and records it on the buyer. Only an
// AVAILABLE ticket is purchasable; anything else declines without mutation.
func (t *Ticket) Purchase(buyer *Buyer) error {
	if t.status != TicketAvailable {
		slog.Error("Ticket is not available for purchase", "ticket_id", t.id, "zone", t.zone.zoneType, "status", t.status)
		return fmt.Errorf("ticket %d: %w", t.id, status.ErrInvalidTransition)
	}

	t.buyer = buyer
	t.status = TicketSold
	buyer.tickets = append(buyer.tickets, t)

	monitoring.TrackTicketSold(t.zone.zoneType)
	slog.Info("Ticket purchased", "ticket_id", t.id, "zone", t.zone.zoneType, "buyer", buyer.Name())
	return nil
}

// Refund moves a SOLD ticket to REFUNDED. REFUNDED is terminal.
func (t *Ticket) Refund() error {
	if t.status != TicketSold || t.buyer == nil {
		slog.Error("Ticket cannot be refunded", "ticket_id", t.id, "status", t.status)
		return fmt.Errorf("ticket %d: %w", t.id, status.ErrInvalidTransition)
	}

	t.status = TicketRefunded

	monitoring.TrackTicketRefunded(t.zone.zoneType)
	slog.Info("Ticket refunded", "ticket_id", t.id, "zone", t.zone.zoneType)
	return nil
}
