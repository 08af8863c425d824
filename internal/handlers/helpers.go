package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nubarber/booking-api/internal/config"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/middleware"
	"github.com/nubarber/booking-api/internal/models"
)

// --------------------------------------------------
// Auth context
// --------------------------------------------------

func userIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// shopFromContext loads the authenticated owner's shop from the default
// database.
func shopFromContext(c *gin.Context, db *gorm.DB) (*models.Shop, bool) {
	v, exists := c.Get(middleware.ContextShopID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "shop_not_in_context"})
		return nil, false
	}
	shopID, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_shop_id_type"})
		return nil, false
	}

	var shop models.Shop
	if err := db.WithContext(c.Request.Context()).First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return nil, false
	}
	return &shop, true
}

// shopBySlug resolves a public booking-page shop.
func shopBySlug(c *gin.Context, db *gorm.DB, slug string) (*models.Shop, bool) {
	var shop models.Shop
	if err := db.WithContext(c.Request.Context()).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return nil, false
	}
	return &shop, true
}

// --------------------------------------------------
// Params
// --------------------------------------------------

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, time.UTC)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}

// requestOrigin is the base URL payment redirects return to. The Origin
// header wins; headless clients fall back to the configured public URL.
func requestOrigin(c *gin.Context, cfg *config.Config) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	return cfg.PublicBaseURL
}

// writeBusinessError maps a domain rule violation to its HTTP shape, and
// anything else to a 500.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch code {
	case "service_not_found", "staff_not_found", "booking_not_found":
		httperr.NotFound(c, code, "Resource not found.")
	case "checkout_failed", "stripe_not_connected":
		httperr.BadGateway(c, code, "Payment provider error.")
	default:
		httperr.BadRequest(c, code, "Request violates a booking rule.")
	}
}
