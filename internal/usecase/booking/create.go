package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/domain/schedule"
	"github.com/nubarber/booking-api/internal/email"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/metrics"
	"github.com/nubarber/booking-api/internal/models"
	"github.com/nubarber/booking-api/internal/payments"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	Shop *models.Shop

	StaffID   uint
	ServiceID uint

	CustomerName  string
	CustomerEmail string

	Date string
	Time string

	// Origin is the scheme+host the customer came from; checkout redirects
	// back to it.
	Origin string
}

type CreateBookingOutput struct {
	Booking     *models.Booking
	CheckoutURL string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     schedule.Repository
	checkout CheckoutStarter
	mailer   email.Sender
	audit    AuditSink
	log      zerolog.Logger
}

func NewCreateBooking(
	repo schedule.Repository,
	checkout CheckoutStarter,
	mailer email.Sender,
	auditSink AuditSink,
	log zerolog.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		checkout: checkout,
		mailer:   mailer,
		audit:    auditSink,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingOutput, error) {

	shop := in.Shop

	// --------------------------------------------------
	// 1. Service
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, shop.ID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 2. Staff member (with weekly availability)
	// --------------------------------------------------
	staff, err := uc.repo.GetStaffMember(ctx, shop.ID, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	// --------------------------------------------------
	// 3. Date / time
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		time.UTC,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 4. Requested time must be a generated slot
	// --------------------------------------------------
	timeOff, err := uc.repo.ListTimeOffForStaff(ctx, shop.ID, staff.ID)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateSlots(staff.Availability, timeOff, start, service.DurationMin)
	if !containsSlot(slots, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 5. Pending booking record
	// --------------------------------------------------
	b := &models.Booking{
		ShopID:        shop.ID,
		StaffID:       staff.ID,
		StaffName:     staff.Name,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		BookingTime:   start,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Price:         service.Price,
		Status:        string(schedule.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	// --------------------------------------------------
	// 6. Payment path
	// --------------------------------------------------
	if shop.StripeConnected && shop.StripeAccountID != "" {
		url, err := uc.checkout.CreateBookingCheckout(ctx, payments.CheckoutParams{
			BookingID:          b.ID,
			ShopSlug:           shop.Slug,
			ConnectedAccountID: shop.StripeAccountID,
			ServiceName:        service.Name,
			StaffName:          staff.Name,
			CustomerEmail:      in.CustomerEmail,
			Price:              service.Price,
			Origin:             in.Origin,
		})
		if err != nil {
			// Compensate: the pending record must not survive a failed
			// checkout. If the delete also fails the record is orphaned
			// and only the log knows.
			if delErr := uc.repo.DeleteBooking(ctx, b.ID); delErr != nil {
				uc.log.Error().
					Err(delErr).
					Uint("booking_id", b.ID).
					Msg("orphaned pending booking: compensating delete failed")
			}
			metrics.IncCheckoutFailed()
			return nil, httperr.ErrBusiness("checkout_failed")
		}

		metrics.IncBookingCreated("stripe")
		return &CreateBookingOutput{Booking: b, CheckoutURL: url}, nil
	}

	// --------------------------------------------------
	// 7. No payment processor: confirm by email right away,
	//    the record stays pending
	// --------------------------------------------------
	uc.sendConfirmation(b)

	metrics.IncBookingCreated("none")
	return &CreateBookingOutput{Booking: b}, nil
}

func (uc *CreateBooking) sendConfirmation(b *models.Booking) {
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

func containsSlot(slots []string, hm string) bool {
	for _, s := range slots {
		if s == hm {
			return true
		}
	}
	return false
}
