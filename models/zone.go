package models

import (
	"github.com/shopspring/decimal"
)

// Zone is a fixed-size pool of tickets at one price tier. The full ticket
// set is allocated at construction and its length never changes; only
// ticket statuses move afterwards.
type Zone struct {
	zoneType string
	capacity int
	price    decimal.Decimal
	tickets  []*Ticket
}

func NewZone(zoneType string, capacity int, price decimal.Decimal) *Zone {
	z := &Zone{
		zoneType: zoneType,
		capacity: capacity,
		price:    price,
		tickets:  make([]*Ticket, 0, capacity),
	}
	for i := 1; i <= capacity; i++ {
		z.tickets = append(z.tickets, newTicket(i, z))
	}
	return z
}

func (z *Zone) Type() string           { return z.zoneType }
func (z *Zone) Capacity() int          { return z.capacity }
func (z *Zone) Price() decimal.Decimal { return z.price }
func (z *Zone) Tickets() []*Ticket     { return z.tickets }

// AvailableTickets returns up to quantity tickets still AVAILABLE, in
// ticket-id order. No hold is placed on them; fewer than quantity may come
// back and the caller has to check.
func (z *Zone) AvailableTickets(quantity int) []*Ticket {
	available := make([]*Ticket, 0, quantity)
	for _, t := range z.tickets {
		if len(available) == quantity {
			break
		}
		if t.status == TicketAvailable {
			available = append(available, t)
		}
	}
	return available
}

// Available counts tickets still open for sale.
func (z *Zone) Available() int {
	n := 0
	for _, t := range z.tickets {
		if t.status == TicketAvailable {
			n++
		}
	}
	return n
}
