package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/nubarber/booking-api/internal/domain/schedule"
	"github.com/nubarber/booking-api/internal/models"
)

// BookingGormRepository serves one regional database handle.
type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	shopID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", serviceID, shopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *BookingGormRepository) GetStaffMember(
	ctx context.Context,
	shopID uint,
	staffID uint,
) (*models.StaffMember, error) {

	var member models.StaffMember
	if err := r.db.WithContext(ctx).
		Preload("Availability").
		Where("id = ? AND shop_id = ?", staffID, shopID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *BookingGormRepository) ListStaff(
	ctx context.Context,
	shopID uint,
) ([]models.StaffMember, error) {

	var staff []models.StaffMember
	if err := r.db.WithContext(ctx).
		Preload("Availability").
		Where("shop_id = ?", shopID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// --------------------------------------------------
// Time off
// --------------------------------------------------

func (r *BookingGormRepository) ListTimeOffForStaff(
	ctx context.Context,
	shopID uint,
	staffID uint,
) ([]models.TimeOffEntry, error) {

	var entries []models.TimeOffEntry
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND staff_id = ?", shopID, staffID).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	shopID uint,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", bookingID, shopID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, bookingID).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	shopID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
