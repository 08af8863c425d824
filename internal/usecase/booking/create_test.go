package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/models"
)

func weekdaysNineToFive() []models.WeeklyAvailability {
	days := []string{
		"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday",
	}
	out := make([]models.WeeklyAvailability, 0, len(days))
	for _, d := range days {
		working := d != "Saturday" && d != "Sunday"
		entry := models.WeeklyAvailability{Day: d, IsWorking: working}
		if working {
			entry.StartTime = "09:00"
			entry.EndTime = "17:00"
		}
		out = append(out, entry)
	}
	return out
}

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.services = []models.Service{
		{ID: 1, ShopID: 10, Name: "Haircut", DurationMin: 30, Price: 25, Active: true},
	}
	repo.staff = []models.StaffMember{
		{ID: 2, ShopID: 10, Name: "Alex", Availability: weekdaysNineToFive()},
	}
	return repo
}

func baseInput(shop *models.Shop) CreateBookingInput {
	return CreateBookingInput{
		Shop:          shop,
		StaffID:       2,
		ServiceID:     1,
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Date:          "2026-03-02", // a Monday
		Time:          "10:00",
		Origin:        "https://nubarber.example",
	}
}

func TestCreateBooking_WithoutStripe_SendsEmailAndStaysPending(t *testing.T) {
	repo := seededRepo()
	checkout := &fakeCheckout{url: "https://checkout.example/s"}
	mailer := &fakeMailer{}
	sink := &fakeAudit{}

	uc := NewCreateBooking(repo, checkout, mailer, sink, zerolog.Nop())

	shop := &models.Shop{ID: 10, Slug: "fade-factory"}
	out, err := uc.Execute(context.Background(), baseInput(shop))
	require.NoError(t, err)

	assert.Empty(t, out.CheckoutURL)
	assert.Zero(t, checkout.calls)

	b := out.Booking
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "Haircut", b.ServiceName)
	assert.Equal(t, "Alex", b.StaffName)
	assert.Equal(t, 25.0, b.Price)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), b.BookingTime)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jamie@example.com", mailer.sent[0].CustomerEmail)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "booking_created", sink.events[0].Action)
}

func TestCreateBooking_EmailFailureDoesNotFailBooking(t *testing.T) {
	repo := seededRepo()
	mailer := &fakeMailer{err: errors.New("smtp down")}

	uc := NewCreateBooking(repo, &fakeCheckout{}, mailer, &fakeAudit{}, zerolog.Nop())

	out, err := uc.Execute(context.Background(), baseInput(&models.Shop{ID: 10, Slug: "fade-factory"}))
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Booking.Status)
}

func TestCreateBooking_WithStripe_ReturnsCheckoutURL(t *testing.T) {
	repo := seededRepo()
	checkout := &fakeCheckout{url: "https://checkout.example/s"}
	mailer := &fakeMailer{}

	uc := NewCreateBooking(repo, checkout, mailer, &fakeAudit{}, zerolog.Nop())

	shop := &models.Shop{
		ID:              10,
		Slug:            "fade-factory",
		StripeConnected: true,
		StripeAccountID: "acct_123",
	}
	out, err := uc.Execute(context.Background(), baseInput(shop))
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.example/s", out.CheckoutURL)
	assert.Equal(t, uint(1), checkout.params.BookingID)
	assert.Equal(t, "acct_123", checkout.params.ConnectedAccountID)
	assert.Equal(t, "fade-factory", checkout.params.ShopSlug)

	// No email before payment.
	assert.Empty(t, mailer.sent)
	assert.Equal(t, "pending", out.Booking.Status)
}

func TestCreateBooking_CheckoutFailureDeletesPendingBooking(t *testing.T) {
	repo := seededRepo()
	checkout := &fakeCheckout{err: errors.New("stripe down")}

	uc := NewCreateBooking(repo, checkout, &fakeMailer{}, &fakeAudit{}, zerolog.Nop())

	shop := &models.Shop{
		ID:              10,
		Slug:            "fade-factory",
		StripeConnected: true,
		StripeAccountID: "acct_123",
	}
	_, err := uc.Execute(context.Background(), baseInput(shop))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "checkout_failed"))

	assert.Empty(t, repo.bookings)
	assert.Equal(t, []uint{1}, repo.deleted)
}

func TestCreateBooking_CheckoutAndDeleteBothFail(t *testing.T) {
	repo := seededRepo()
	repo.deleteErr = errors.New("db down")
	checkout := &fakeCheckout{err: errors.New("stripe down")}

	uc := NewCreateBooking(repo, checkout, &fakeMailer{}, &fakeAudit{}, zerolog.Nop())

	shop := &models.Shop{
		ID:              10,
		Slug:            "fade-factory",
		StripeConnected: true,
		StripeAccountID: "acct_123",
	}
	_, err := uc.Execute(context.Background(), baseInput(shop))

	// The caller still sees the checkout failure; the orphan is a log line.
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "checkout_failed"))
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBooking_SlotNotOffered(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateBooking(repo, &fakeCheckout{}, &fakeMailer{}, &fakeAudit{}, zerolog.Nop())

	in := baseInput(&models.Shop{ID: 10, Slug: "fade-factory"})
	in.Time = "10:15" // off the 30-minute grid

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
	assert.Empty(t, repo.bookings)
}

func TestCreateBooking_TimeOffDayRejected(t *testing.T) {
	repo := seededRepo()
	repo.timeOff = []models.TimeOffEntry{
		{ShopID: 10, StaffID: 2, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
	}

	uc := NewCreateBooking(repo, &fakeCheckout{}, &fakeMailer{}, &fakeAudit{}, zerolog.Nop())

	_, err := uc.Execute(context.Background(), baseInput(&models.Shop{ID: 10, Slug: "fade-factory"}))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateBooking_UnknownService(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateBooking(repo, &fakeCheckout{}, &fakeMailer{}, &fakeAudit{}, zerolog.Nop())

	in := baseInput(&models.Shop{ID: 10, Slug: "fade-factory"})
	in.ServiceID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateBooking_UnknownStaff(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateBooking(repo, &fakeCheckout{}, &fakeMailer{}, &fakeAudit{}, zerolog.Nop())

	in := baseInput(&models.Shop{ID: 10, Slug: "fade-factory"})
	in.StaffID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}

func TestCreateBooking_MalformedDate(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateBooking(repo, &fakeCheckout{}, &fakeMailer{}, &fakeAudit{}, zerolog.Nop())

	in := baseInput(&models.Shop{ID: 10, Slug: "fade-factory"})
	in.Date = "03/02/2026"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}
