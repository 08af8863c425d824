package booking

import (
	"context"
	"errors"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/email"
	"github.com/nubarber/booking-api/internal/models"
	"github.com/nubarber/booking-api/internal/payments"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory schedule.Repository for use case tests.
type fakeRepo struct {
	services []models.Service
	staff    []models.StaffMember
	timeOff  []models.TimeOffEntry
	bookings map[uint]*models.Booking

	nextID    uint
	createErr error
	deleteErr error
	updateErr error

	deleted []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: map[uint]*models.Booking{},
		nextID:   1,
	}
}

func (r *fakeRepo) GetService(_ context.Context, shopID, serviceID uint) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == serviceID && r.services[i].ShopID == shopID {
			return &r.services[i], nil
		}
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetStaffMember(_ context.Context, shopID, staffID uint) (*models.StaffMember, error) {
	for i := range r.staff {
		if r.staff[i].ID == staffID && r.staff[i].ShopID == shopID {
			return &r.staff[i], nil
		}
	}
	return nil, errNotFound
}

func (r *fakeRepo) ListStaff(_ context.Context, shopID uint) ([]models.StaffMember, error) {
	var out []models.StaffMember
	for _, m := range r.staff {
		if m.ShopID == shopID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListTimeOffForStaff(_ context.Context, shopID, staffID uint) ([]models.TimeOffEntry, error) {
	var out []models.TimeOffEntry
	for _, e := range r.timeOff {
		if e.ShopID == shopID && e.StaffID == staffID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = r.nextID
	r.nextID++
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, shopID, bookingID uint) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok || b.ShopID != shopID {
		return nil, errNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) DeleteBooking(_ context.Context, bookingID uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.bookings, bookingID)
	r.deleted = append(r.deleted, bookingID)
	return nil
}

func (r *fakeRepo) ListBookings(_ context.Context, shopID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ShopID == shopID {
			out = append(out, *b)
		}
	}
	return out, nil
}

// fakeCheckout records the last params and returns a canned URL or error.
type fakeCheckout struct {
	url    string
	err    error
	calls  int
	params payments.CheckoutParams
}

func (f *fakeCheckout) CreateBookingCheckout(_ context.Context, p payments.CheckoutParams) (string, error) {
	f.calls++
	f.params = p
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

// fakeMailer records sent confirmations.
type fakeMailer struct {
	sent []email.Confirmation
	err  error
}

func (f *fakeMailer) SendBookingConfirmation(c email.Confirmation) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, c)
	return nil
}

// fakeAudit records dispatched events synchronously.
type fakeAudit struct {
	events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}
