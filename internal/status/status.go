package status

import "errors"

var (
	ErrZoneNotFound          = errors.New("zone: zone not found")
	ErrTicketNotFound        = errors.New("ticket: ticket not found")
	ErrInsufficientInventory = errors.New("zone: not enough tickets available")
	ErrInvalidTransition     = errors.New("status: invalid state transition")
	ErrFailedPayment         = errors.New("payment: payment failed")
)
