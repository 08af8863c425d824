package schedule

import (
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "Paid"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Domain Actions
// ===============================

// Confirm moves a booking from pending to Paid. It is the only transition a
// booking can make; anything else is rejected.
func Confirm(b *models.Booking) error {
	if Status(b.Status) != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	b.Status = string(StatusPaid)
	return nil
}
