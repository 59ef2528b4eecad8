package models

type HallSize string

const (
	HallSmall  HallSize = "Small"
	HallMedium HallSize = "Medium"
	HallLarge  HallSize = "Large"
)

// Hall is a physical capacity container. Zone capacities are derived from
// it but never checked against it.
type Hall struct {
	id       int
	size     HallSize
	capacity int
}

func NewHall(id int, size HallSize, capacity int) *Hall {
	return &Hall{id: id, size: size, capacity: capacity}
}

func (h *Hall) ID() int         { return h.id }
func (h *Hall) Size() HallSize  { return h.size }
func (h *Hall) Capacity() int   { return h.capacity }
