package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/domain/schedule"
	"github.com/nubarber/booking-api/internal/email"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/metrics"
	"github.com/nubarber/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ConfirmBookingInput struct {
	ShopID    uint
	BookingID uint
	SessionID string
}

// ======================================================
// USE CASE
// ======================================================

// ConfirmBooking is the checkout success callback. Payment redirects can be
// replayed (refresh, back button), so confirmation is idempotent: a booking
// already marked Paid is returned as-is with no second email.
type ConfirmBooking struct {
	repo   schedule.Repository
	mailer email.Sender
	audit  AuditSink
	log    zerolog.Logger
}

func NewConfirmBooking(
	repo schedule.Repository,
	mailer email.Sender,
	auditSink AuditSink,
	log zerolog.Logger,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:   repo,
		mailer: mailer,
		audit:  auditSink,
		log:    log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	in ConfirmBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.ShopID, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// Replayed redirect: nothing left to do.
	if schedule.Status(b.Status) == schedule.StatusPaid {
		return b, nil
	}

	if err := schedule.Confirm(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		Action:   "booking_paid",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"session_id": in.SessionID},
	})
	metrics.IncBookingConfirmed()

	uc.sendConfirmation(b)

	return b, nil
}

func (uc *ConfirmBooking) sendConfirmation(b *models.Booking) {
	err := uc.mailer.SendBookingConfirmation(email.Confirmation{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		ServiceName:   b.ServiceName,
		StaffName:     b.StaffName,
		BookingTime:   b.BookingTime,
	})
	if err != nil {
		uc.log.Error().Err(err).Uint("booking_id", b.ID).Msg("confirmation email failed")
		metrics.IncConfirmationEmail("error")
		return
	}
	metrics.IncConfirmationEmail("ok")
}
