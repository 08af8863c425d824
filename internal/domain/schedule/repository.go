package schedule

import (
	"context"

	"github.com/nubarber/booking-api/internal/models"
)

// Repository is the tenant-data access needed by the booking use cases. An
// implementation is bound to one regional database; shop records themselves
// live on the default database and are resolved by the caller.
type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		shopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Staff --------
	GetStaffMember(
		ctx context.Context,
		shopID uint,
		staffID uint,
	) (*models.StaffMember, error)

	ListStaff(
		ctx context.Context,
		shopID uint,
	) ([]models.StaffMember, error)

	// -------- Time off --------
	ListTimeOffForStaff(
		ctx context.Context,
		shopID uint,
		staffID uint,
	) ([]models.TimeOffEntry, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		shopID uint,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		bookingID uint,
	) error

	ListBookings(
		ctx context.Context,
		shopID uint,
	) ([]models.Booking, error)
}
