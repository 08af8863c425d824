package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/cache"
	"github.com/nubarber/booking-api/internal/db"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/httpresp"
	"github.com/nubarber/booking-api/internal/models"
)

type ServiceHandler struct {
	registry *db.Registry
	cache    *cache.ProfileCache
	audit    *audit.Dispatcher
}

func NewServiceHandler(registry *db.Registry, profileCache *cache.ProfileCache, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{
		registry: registry,
		cache:    profileCache,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Active      *bool   `json:"active"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	var services []models.Service
	if err := h.registry.For(shop.Region).WithContext(c.Request.Context()).
		Where("shop_id = ?", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		ShopID:      shop.ID,
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      req.Active == nil || *req.Active,
	}

	if err := h.registry.For(shop.Region).WithContext(c.Request.Context()).
		Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)
	h.dispatch(c, shop.ID, "service_created", svc.ID)

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	tdb := h.registry.For(shop.Region).WithContext(c.Request.Context())

	var svc models.Service
	if err := tdb.Where("id = ? AND shop_id = ?", serviceID, shop.ID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	svc.Name = req.Name
	svc.DurationMin = req.DurationMin
	svc.Price = req.Price
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := tdb.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)
	h.dispatch(c, shop.ID, "service_updated", svc.ID)

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	shop, ok := shopFromContext(c, h.registry.Default())
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tdb := h.registry.For(shop.Region).WithContext(c.Request.Context())

	res := tdb.Where("id = ? AND shop_id = ?", serviceID, shop.ID).
		Delete(&models.Service{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)
	h.dispatch(c, shop.ID, "service_deleted", serviceID)

	httpresp.OK(c, gin.H{"deleted": true})
}

func (h *ServiceHandler) dispatch(c *gin.Context, shopID uint, action string, entityID uint) {
	userID, _ := userIDFromContext(c)
	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   action,
		Entity:   "service",
		EntityID: &entityID,
	})
}
