package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nubarber/booking-api/internal/db"
	"github.com/nubarber/booking-api/internal/dto"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/httpresp"
	"github.com/nubarber/booking-api/internal/infra/repository"
	"github.com/nubarber/booking-api/internal/models"
	"github.com/nubarber/booking-api/internal/usecase/booking"
)

// ScheduleHandler serves the owner dashboard: per-day booking lists and the
// calendar heatmap.
type ScheduleHandler struct {
	registry *db.Registry
}

func NewScheduleHandler(registry *db.Registry) *ScheduleHandler {
	return &ScheduleHandler{registry: registry}
}

// Day returns the shop's bookings for one date, ordered by start time, plus
// any time off falling on that date.
func (h *ScheduleHandler) Day(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	tdb := h.registry.For(shop.Region).WithContext(c.Request.Context())

	var bookings []models.Booking
	if err := tdb.
		Where("shop_id = ? AND booking_time >= ? AND booking_time < ?",
			shop.ID, date, date.AddDate(0, 0, 1)).
		Order("booking_time ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	var timeOff []models.TimeOffEntry
	if err := tdb.
		Where("shop_id = ? AND date >= ? AND date < ?",
			shop.ID, date, date.AddDate(0, 0, 1)).
		Find(&timeOff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_off", "Could not list time off.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			BookingTime:  b.BookingTime,
			Status:       b.Status,
			CustomerName: b.CustomerName,
			ServiceName:  b.ServiceName,
			StaffName:    b.StaffName,
			Price:        b.Price,
		})
	}

	httpresp.OK(c, gin.H{
		"date":     dateStr,
		"bookings": out,
		"time_off": timeOff,
	})
}

// Density returns the heatmap for every day that has bookings.
func (h *ScheduleHandler) Density(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	repo := repository.NewBookingGormRepository(h.registry.For(shop.Region))
	uc := booking.NewGetDensity(repo)

	load, err := uc.Execute(c.Request.Context(), shop.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_density", "Could not compute booking density.")
		return
	}

	httpresp.OK(c, load)
}
