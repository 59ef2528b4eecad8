package models

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

// Event is a named occurrence at a date, tied to one organizer and one
// hall. Its zones are keyed by type label.
type Event struct {
	id        int
	name      string
	date      time.Time
	organizer *EventOrganizer
	hall      *Hall
	zones     map[string]*Zone
}

func NewEvent(id int, name string, date time.Time, organizer *EventOrganizer, hall *Hall) *Event {
	return &Event{
		id:        id,
		name:      name,
		date:      date,
		organizer: organizer,
		hall:      hall,
		zones:     make(map[string]*Zone),
	}
}

func (e *Event) ID() int                    { return e.id }
func (e *Event) Name() string               { return e.name }
func (e *Event) Date() time.Time            { return e.date }
func (e *Event) Organizer() *EventOrganizer { return e.organizer }
func (e *Event) Hall() *Hall                { return e.hall }
func (e *Event) Zones() map[string]*Zone    { return e.zones }

// Zone returns the zone registered under the type label, or nil.
func (e *Event) Zone(zoneType string) *Zone {
	return e.zones[zoneType]
}

// AddZone registers the zone under its type label. A zone of the same type
// is silently replaced.
func (e *Event) AddZone(z *Zone) {
	e.zones[z.zoneType] = z
	slog.Info("Zone added to event", "event", e.name, "zone", z.zoneType, "capacity", z.capacity)
}

// AddZoneWithPercentage builds a zone sized as a share of the hall
// capacity (floored) and registers it. The cumulative share across zones
// is not checked against the hall.
func (e *Event) AddZoneWithPercentage(zoneType string, percentage float64, price decimal.Decimal) *Zone {
	capacity := int(float64(e.hall.capacity) * percentage)
	z := NewZone(zoneType, capacity, price)
	e.AddZone(z)
	return z
}

// AvailableTickets collects every ticket still open for sale across all
// zones of the event.
func (e *Event) AvailableTickets() []*Ticket {
	var available []*Ticket
	for _, z := range e.zones {
		for _, t := range z.tickets {
			if t.status == TicketAvailable {
				available = append(available, t)
			}
		}
	}
	return available
}
