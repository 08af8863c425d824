package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/cache"
	"github.com/nubarber/booking-api/internal/db"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/httpresp"
	"github.com/nubarber/booking-api/internal/models"
	"github.com/nubarber/booking-api/internal/storage"
)

// weekDays is the fixed weekday order of a staff schedule.
var weekDays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday",
	"Thursday", "Friday", "Saturday",
}

type StaffHandler struct {
	registry *db.Registry
	avatars  *storage.AvatarStore
	cache    *cache.ProfileCache
	audit    *audit.Dispatcher
}

func NewStaffHandler(
	registry *db.Registry,
	avatars *storage.AvatarStore,
	profileCache *cache.ProfileCache,
	auditDispatcher *audit.Dispatcher,
) *StaffHandler {
	return &StaffHandler{
		registry: registry,
		avatars:  avatars,
		cache:    profileCache,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type StaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Title string `json:"title"`
}

type AvailabilityDayRequest struct {
	Day       string `json:"day" binding:"required"`
	IsWorking bool   `json:"is_working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	var staff []models.StaffMember
	if err := h.registry.For(shop.Region).WithContext(c.Request.Context()).
		Preload("Availability").
		Where("shop_id = ?", shop.ID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	httpresp.List(c, staff)
}

// Create adds a staff member with the default weekly schedule: weekdays
// 09:00-17:00, weekends off.
func (h *StaffHandler) Create(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	member := models.StaffMember{
		ShopID:       shop.ID,
		Name:         req.Name,
		Title:        req.Title,
		Availability: defaultAvailability(),
	}

	if err := h.registry.For(shop.Region).WithContext(c.Request.Context()).
		Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff member.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)
	h.dispatch(c, shop.ID, "staff_created", member.ID)

	httpresp.Created(c, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	tdb := h.registry.For(shop.Region).WithContext(c.Request.Context())

	var member models.StaffMember
	if err := tdb.Where("id = ? AND shop_id = ?", staffID, shop.ID).
		First(&member).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	member.Name = req.Name
	member.Title = req.Title

	if err := tdb.Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Could not update staff member.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)
	h.dispatch(c, shop.ID, "staff_updated", member.ID)

	httpresp.OK(c, member)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tdb := h.registry.For(shop.Region).WithContext(c.Request.Context())

	res := tdb.Where("id = ? AND shop_id = ?", staffID, shop.ID).
		Delete(&models.StaffMember{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Could not delete staff member.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)
	h.dispatch(c, shop.ID, "staff_deleted", staffID)

	httpresp.OK(c, gin.H{"deleted": true})
}

// PutAvailability replaces the whole weekly schedule in one transaction.
// Partial edits are not supported; the frontend always sends all seven days.
func (h *StaffHandler) PutAvailability(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req []AvailabilityDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, day := range req {
		if !validWeekday(day.Day) {
			httperr.BadRequest(c, "invalid_day", "Unknown weekday: "+day.Day)
			return
		}
	}

	tdb := h.registry.For(shop.Region).WithContext(c.Request.Context())

	var member models.StaffMember
	if err := tdb.Where("id = ? AND shop_id = ?", staffID, shop.ID).
		First(&member).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	err := tdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", member.ID).
			Delete(&models.WeeklyAvailability{}).Error; err != nil {
			return err
		}
		for _, day := range req {
			entry := models.WeeklyAvailability{
				StaffID:   member.ID,
				Day:       day.Day,
				IsWorking: day.IsWorking,
				StartTime: day.StartTime,
				EndTime:   day.EndTime,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Could not save schedule.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)
	h.dispatch(c, shop.ID, "availability_updated", member.ID)

	httpresp.OK(c, gin.H{"updated": true})
}

// UploadAvatar accepts a multipart "avatar" file, stores it and saves the
// resulting URL on the staff member.
func (h *StaffHandler) UploadAvatar(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.avatars.Configured() {
		httperr.BadRequest(c, "storage_not_configured", "Avatar storage is not configured.")
		return
	}

	tdb := h.registry.For(shop.Region).WithContext(c.Request.Context())

	var member models.StaffMember
	if err := tdb.Where("id = ? AND shop_id = ?", staffID, shop.ID).
		First(&member).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar", "Avatar file is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar", "Could not read avatar file.")
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), file)
	if err != nil {
		httperr.BadGateway(c, "avatar_upload_failed", "Could not store avatar.")
		return
	}

	member.AvatarURL = url
	if err := tdb.Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Could not save avatar URL.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)
	h.dispatch(c, shop.ID, "avatar_uploaded", member.ID)

	httpresp.OK(c, gin.H{"avatar_url": url})
}

// --------- Internals ---------

func defaultAvailability() []models.WeeklyAvailability {
	days := make([]models.WeeklyAvailability, 0, len(weekDays))
	for _, day := range weekDays {
		working := day != "Saturday" && day != "Sunday"
		entry := models.WeeklyAvailability{
			Day:       day,
			IsWorking: working,
		}
		if working {
			entry.StartTime = "09:00"
			entry.EndTime = "17:00"
		}
		days = append(days, entry)
	}
	return days
}

func validWeekday(day string) bool {
	for _, d := range weekDays {
		if d == day {
			return true
		}
	}
	return false
}

func (h *StaffHandler) dispatch(c *gin.Context, shopID uint, action string, entityID uint) {
	userID, _ := userIDFromContext(c)
	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   action,
		Entity:   "staff",
		EntityID: &entityID,
	})
}
