package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/cache"
	"github.com/nubarber/booking-api/internal/config"
	"github.com/nubarber/booking-api/internal/db"
	"github.com/nubarber/booking-api/internal/domain/schedule"
	"github.com/nubarber/booking-api/internal/email"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/httpresp"
	"github.com/nubarber/booking-api/internal/infra/repository"
	"github.com/nubarber/booking-api/internal/models"
	"github.com/nubarber/booking-api/internal/payments"
	"github.com/nubarber/booking-api/internal/usecase/booking"
)

// PublicHandler serves the customer-facing booking page: shop profile,
// availability lookup and the booking lifecycle. No authentication; every
// route is scoped by the shop slug.
type PublicHandler struct {
	registry *db.Registry
	config   *config.Config
	cache    *cache.ProfileCache
	payments *payments.Client
	mailer   email.Sender
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewPublicHandler(
	registry *db.Registry,
	cfg *config.Config,
	profileCache *cache.ProfileCache,
	payClient *payments.Client,
	mailer email.Sender,
	auditDispatcher *audit.Dispatcher,
	log zerolog.Logger,
) *PublicHandler {
	return &PublicHandler{
		registry: registry,
		config:   cfg,
		cache:    profileCache,
		payments: payClient,
		mailer:   mailer,
		audit:    auditDispatcher,
		log:      log,
	}
}

// --------- DTOs ---------

type PublicProfileResponse struct {
	Shop     *models.Shop         `json:"shop"`
	Services []models.Service     `json:"services"`
	Staff    []models.StaffMember `json:"staff"`
}

type PublicCreateBookingRequest struct {
	StaffID   uint `json:"staff_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

// --------- Profile ---------

// Profile returns everything the booking page needs in one payload. The
// payload is cached per slug; owner mutations invalidate it.
func (h *PublicHandler) Profile(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	var cached PublicProfileResponse
	if h.cache.Get(ctx, slug, &cached) {
		httpresp.OK(c, cached)
		return
	}

	shop, ok := shopBySlug(c, h.registry.Default(), slug)
	if !ok {
		return
	}

	tdb := h.registry.For(shop.Region).WithContext(ctx)

	var services []models.Service
	if err := tdb.Where("shop_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	var staff []models.StaffMember
	if err := tdb.Preload("Availability").
		Where("shop_id = ?", shop.ID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not load staff.")
		return
	}

	resp := PublicProfileResponse{
		Shop:     shop,
		Services: services,
		Staff:    staff,
	}

	h.cache.Set(ctx, slug, resp)
	httpresp.OK(c, resp)
}

// --------- Availability ---------

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	staffIDStr := c.Query("staff_id")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || staffIDStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date, staff and service are required.")
		return
	}

	staffID, err := strconv.ParseUint(staffIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}
	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	shop, ok := shopBySlug(c, h.registry.Default(), slug)
	if !ok {
		return
	}

	repo := repository.NewBookingGormRepository(h.registry.For(shop.Region))
	uc := booking.NewGetAvailability(repo)

	slots, err := uc.Execute(c.Request.Context(), schedule.AvailabilityInput{
		ShopID:    shop.ID,
		StaffID:   uint(staffID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"date": dateStr, "slots": slots})
}

// --------- Density ---------

// Density exposes the load heatmap so the booking page can steer customers
// toward quiet days.
func (h *PublicHandler) Density(c *gin.Context) {
	slug := c.Param("slug")

	shop, ok := shopBySlug(c, h.registry.Default(), slug)
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

// --------- Booking ---------

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	shop, ok := shopBySlug(c, h.registry.Default(), slug)
	if !ok {
		return
	}

	repo := repository.NewBookingGormRepository(h.registry.For(shop.Region))
	uc := booking.NewCreateBooking(repo, h.payments, h.mailer, h.audit, h.log)

	out, err := uc.Execute(c.Request.Context(), booking.CreateBookingInput{
		Shop:          shop,
		StaffID:       req.StaffID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		Time:          req.Time,
		Origin:        requestOrigin(c, h.config),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	resp := gin.H{"booking": out.Booking}
	if out.CheckoutURL != "" {
		resp["checkout_url"] = out.CheckoutURL
	}
	httpresp.Created(c, resp)
}

// ConfirmBooking is the checkout success redirect. It is a GET because the
// customer's browser lands here straight from the payment page.
func (h *PublicHandler) ConfirmBooking(c *gin.Context) {
	slug := c.Param("slug")
	sessionID := c.Query("session_id")
	bookingIDStr := c.Query("booking_id")

	if sessionID == "" || bookingIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Session and booking ids are required.")
		return
	}

	bookingID, err := strconv.ParseUint(bookingIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	shop, ok := shopBySlug(c, h.registry.Default(), slug)
	if !ok {
		return
	}

	repo := repository.NewBookingGormRepository(h.registry.For(shop.Region))
	uc := booking.NewConfirmBooking(repo, h.mailer, h.audit, h.log)

	b, err := uc.Execute(c.Request.Context(), booking.ConfirmBookingInput{
		ShopID:    shop.ID,
		BookingID: uint(bookingID),
		SessionID: sessionID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}
