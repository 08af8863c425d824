package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/db"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/httpresp"
	"github.com/nubarber/booking-api/internal/models"
)

const defaultTimeOffReason = "Personal Time Off"

type TimeOffHandler struct {
	registry *db.Registry
	audit    *audit.Dispatcher
}

func NewTimeOffHandler(registry *db.Registry, auditDispatcher *audit.Dispatcher) *TimeOffHandler {
	return &TimeOffHandler{registry: registry, audit: auditDispatcher}
}

// --------- Requests ---------

type TimeOffRequest struct {
	StaffID uint   `json:"staff_id" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason  string `json:"reason"`
}

// --------- Handlers ---------

func (h *TimeOffHandler) List(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	var entries []models.TimeOffEntry
	if err := h.registry.For(shop.Region).WithContext(c.Request.Context()).
		Where("shop_id = ?", shop.ID).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_off", "Could not list time off.")
		return
	}

	httpresp.List(c, entries)
}

// Create blocks one staff member's whole day.
func (h *TimeOffHandler) Create(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	var req TimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	tdb := h.registry.For(shop.Region).WithContext(c.Request.Context())

	var member models.StaffMember
	if err := tdb.Where("id = ? AND shop_id = ?", req.StaffID, shop.ID).
		First(&member).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = defaultTimeOffReason
	}

	entry := models.TimeOffEntry{
		ShopID:    shop.ID,
		StaffID:   member.ID,
		StaffName: member.Name,
		Date:      date,
		Reason:    reason,
	}

	if err := tdb.Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_off", "Could not create time off.")
		return
	}

	userID, _ := userIDFromContext(c)
	h.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &userID,
		Action:   "time_off_created",
		Entity:   "time_off",
		EntityID: &entry.ID,
	})

	httpresp.Created(c, entry)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.registry.For(shop.Region).WithContext(c.Request.Context()).
		Where("id = ? AND shop_id = ?", entryID, shop.ID).
		Delete(&models.TimeOffEntry{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_time_off", "Could not delete time off.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "time_off_not_found", "Time off entry not found.")
		return
	}

	userID, _ := userIDFromContext(c)
	h.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &userID,
		Action:   "time_off_deleted",
		Entity:   "time_off",
		EntityID: &entryID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
