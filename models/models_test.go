package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-ticketing/internal/status"
)

func newTestEvent() (*EventOrganizer, *Event) {
	organizer := NewEventOrganizer(1, "John Doe", "john@example.com")
	hall := NewHall(1, HallLarge, 1000)
	event := organizer.CreateEvent(1, "Concert", time.Now().AddDate(0, 1, 0), hall)
	return organizer, event
}

func TestZone_TicketCountMatchesCapacity(t *testing.T) {
	zone := NewZone("Regular", 5, decimal.NewFromFloat(50.0))

	require.Len(t, zone.Tickets(), 5)
	assert.Equal(t, 5, zone.Capacity())

	// Selling tickets must not change the pool size.
	buyer := NewBuyer(2, "Jane Doe", "jane@example.com")
	require.NoError(t, zone.Tickets()[0].Purchase(buyer))
	assert.Len(t, zone.Tickets(), 5)
	assert.Equal(t, 4, zone.Available())
}

func TestZone_TicketIDsStartAtOne(t *testing.T) {
	zone := NewZone("VIP", 3, decimal.NewFromFloat(150.0))

	for i, ticket := range zone.Tickets() {
		assert.Equal(t, i+1, ticket.ID())
		assert.Equal(t, TicketAvailable, ticket.Status())
		assert.Same(t, zone, ticket.Zone())
		assert.Nil(t, ticket.Buyer())
	}
}

func TestZone_AvailableTickets_LimitAndOrder(t *testing.T) {
	zone := NewZone("Regular", 4, decimal.NewFromFloat(50.0))
	buyer := NewBuyer(2, "Jane Doe", "jane@example.com")

	// Sell ticket 1 so the scan has to skip it.
	require.NoError(t, zone.Tickets()[0].Purchase(buyer))

	got := zone.AvailableTickets(2)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID())
	assert.Equal(t, 3, got[1].ID())
	for _, ticket := range got {
		assert.Equal(t, TicketAvailable, ticket.Status())
	}
}

func TestZone_AvailableTickets_MayReturnFewer(t *testing.T) {
	zone := NewZone("VIP", 2, decimal.NewFromFloat(150.0))

	got := zone.AvailableTickets(5)
	assert.Len(t, got, 2)

	assert.Empty(t, zone.AvailableTickets(0))
}

func TestTicket_PurchaseTransitions(t *testing.T) {
	zone := NewZone("VIP", 1, decimal.NewFromFloat(150.0))
	buyer := NewBuyer(2, "Jane Doe", "jane@example.com")
	ticket := zone.Tickets()[0]

	require.NoError(t, ticket.Purchase(buyer))
	assert.Equal(t, TicketSold, ticket.Status())
	assert.Same(t, buyer, ticket.Buyer())
	require.Len(t, buyer.Tickets(), 1)

	// A sold ticket is not purchasable again.
	other := NewBuyer(3, "Sam Lee", "sam@example.com")
	err := ticket.Purchase(other)
	assert.ErrorIs(t, err, status.ErrInvalidTransition)
	assert.Same(t, buyer, ticket.Buyer())
	assert.Empty(t, other.Tickets())
}

func TestTicket_RefundRequiresSold(t *testing.T) {
	zone := NewZone("VIP", 1, decimal.NewFromFloat(150.0))
	ticket := zone.Tickets()[0]

	err := ticket.Refund()
	assert.ErrorIs(t, err, status.ErrInvalidTransition)
	assert.Equal(t, TicketAvailable, ticket.Status())

	buyer := NewBuyer(2, "Jane Doe", "jane@example.com")
	require.NoError(t, ticket.Purchase(buyer))
	require.NoError(t, ticket.Refund())
	assert.Equal(t, TicketRefunded, ticket.Status())

	// REFUNDED is terminal.
	assert.ErrorIs(t, ticket.Refund(), status.ErrInvalidTransition)
}

func TestEventOrganizer_CreateEvent(t *testing.T) {
	organizer, event := newTestEvent()

	assert.Equal(t, "Concert", event.Name())
	assert.Same(t, organizer, event.Organizer())
	require.Len(t, organizer.Events(), 1)
	assert.Same(t, event, organizer.Events()[0])
	assert.Equal(t, RoleOrganizer, organizer.Role())
}

func TestEvent_AddZoneWithPercentage(t *testing.T) {
	_, event := newTestEvent()

	zone := event.AddZoneWithPercentage("VIP", 0.2, decimal.NewFromFloat(150.0))

	require.NotNil(t, zone)
	assert.Equal(t, 200, zone.Capacity())
	assert.Len(t, zone.Tickets(), 200)
	assert.True(t, zone.Price().Equal(decimal.NewFromFloat(150.0)))
	assert.Same(t, zone, event.Zone("VIP"))
}

func TestEvent_AddZoneWithPercentage_FloorsCapacity(t *testing.T) {
	organizer := NewEventOrganizer(1, "John Doe", "john@example.com")
	hall := NewHall(2, HallSmall, 101)
	event := organizer.CreateEvent(2, "Recital", time.Now(), hall)

	zone := event.AddZoneWithPercentage("Regular", 0.5, decimal.NewFromFloat(20.0))
	assert.Equal(t, 50, zone.Capacity())
}

func TestEvent_AddZone_OverwritesSameType(t *testing.T) {
	_, event := newTestEvent()

	first := NewZone("VIP", 10, decimal.NewFromFloat(150.0))
	second := NewZone("VIP", 20, decimal.NewFromFloat(175.0))
	event.AddZone(first)
	event.AddZone(second)

	assert.Same(t, second, event.Zone("VIP"))
	assert.Len(t, event.Zones(), 1)
}

func TestEvent_AvailableTickets_AcrossZones(t *testing.T) {
	_, event := newTestEvent()
	event.AddZone(NewZone("VIP", 2, decimal.NewFromFloat(150.0)))
	event.AddZone(NewZone("Regular", 3, decimal.NewFromFloat(50.0)))

	assert.Len(t, event.AvailableTickets(), 5)

	buyer := NewBuyer(2, "Jane Doe", "jane@example.com")
	_, err := buyer.PurchaseTickets(event, "Regular", 2)
	require.NoError(t, err)

	assert.Len(t, event.AvailableTickets(), 3)
}

func TestEvent_Zone_UnknownType(t *testing.T) {
	_, event := newTestEvent()
	assert.Nil(t, event.Zone("Balcony"))
}

func TestHall_Labels(t *testing.T) {
	hall := NewHall(3, HallMedium, 500)

	assert.Equal(t, 3, hall.ID())
	assert.Equal(t, HallMedium, hall.Size())
	assert.Equal(t, 500, hall.Capacity())
}
