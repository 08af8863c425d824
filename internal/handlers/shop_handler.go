package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/cache"
	"github.com/nubarber/booking-api/internal/config"
	"github.com/nubarber/booking-api/internal/gmb"
	"github.com/nubarber/booking-api/internal/httperr"
	"github.com/nubarber/booking-api/internal/httpresp"
	"github.com/nubarber/booking-api/internal/models"
	"github.com/nubarber/booking-api/internal/payments"
)

// ShopHandler owns shop settings plus the Stripe Connect and Google Business
// Profile flows. Everything here writes the default database; tenant data is
// untouched.
type ShopHandler struct {
	db       *gorm.DB
	config   *config.Config
	payments *payments.Client
	gmb      *gmb.Connector
	cache    *cache.ProfileCache
	audit    *audit.Dispatcher
}

func NewShopHandler(
	db *gorm.DB,
	cfg *config.Config,
	payClient *payments.Client,
	gmbConn *gmb.Connector,
	profileCache *cache.ProfileCache,
	auditDispatcher *audit.Dispatcher,
) *ShopHandler {
	return &ShopHandler{
		db:       db,
		config:   cfg,
		payments: payClient,
		gmb:      gmbConn,
		cache:    profileCache,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type UpdateShopRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Headline    *string `json:"headline"`
	Description *string `json:"description"`
}

// --------- Settings ---------

func (h *ShopHandler) GetShop(c *gin.Context) {
	shop, ok := shopFromContext(c, h.db)
	if !ok {
		return
	}
	httpresp.OK(c, shop)
}

func (h *ShopHandler) UpdateShop(c *gin.Context) {
	shop, ok := shopFromContext(c, h.db)
	if !ok {
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Headline != nil {
		shop.Headline = *req.Headline
	}
	if req.Description != nil {
		shop.Description = *req.Description
	}

	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Could not save shop settings.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)

	userID, _ := userIDFromContext(c)
	h.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &userID,
		Action:   "shop_updated",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	httpresp.OK(c, shop)
}

// --------- Stripe Connect ---------

// ConnectStripe provisions an express account on first call and always
// returns a fresh onboarding link.
func (h *ShopHandler) ConnectStripe(c *gin.Context) {
	shop, ok := shopFromContext(c, h.db)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if shop.StripeAccountID == "" {
		accountID, err := h.payments.CreateConnectAccount(ctx)
		if err != nil {
			httperr.BadGateway(c, "stripe_account_failed", "Could not create payment account.")
			return
		}
		shop.StripeAccountID = accountID
		if err := h.db.Save(shop).Error; err != nil {
			httperr.Internal(c, "failed_to_update_shop", "Could not save payment account.")
			return
		}
	}

	url, err := h.payments.CreateOnboardingLink(ctx, shop.StripeAccountID, requestOrigin(c, h.config))
	if err != nil {
		httperr.BadGateway(c, "stripe_onboarding_failed", "Could not create onboarding link.")
		return
	}

	httpresp.OK(c, gin.H{"onboarding_url": url})
}

// CompleteStripe marks onboarding as finished after the owner returns from
// the hosted flow.
func (h *ShopHandler) CompleteStripe(c *gin.Context) {
	shop, ok := shopFromContext(c, h.db)
	if !ok {
		return
	}

	if shop.StripeAccountID == "" {
		httperr.BadRequest(c, "stripe_not_started", "Start onboarding first.")
		return
	}

	shop.StripeConnected = true
	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Could not save connection state.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.Slug)

	userID, _ := userIDFromContext(c)
	h.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &userID,
		Action:   "stripe_connected",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	httpresp.OK(c, gin.H{"stripe_connected": true})
}

// --------- Google Business Profile ---------

func (h *ShopHandler) ConnectGMB(c *gin.Context) {
	shop, ok := shopFromContext(c, h.db)
	if !ok {
		return
	}

	if !h.gmb.Configured() {
		httperr.BadRequest(c, "gmb_not_configured", "Google integration is not configured.")
		return
	}

	// The shop id rides through the consent flow as OAuth state.
	state := strconv.FormatUint(uint64(shop.ID), 10)
	httpresp.OK(c, gin.H{"auth_url": h.gmb.AuthURL(state)})
}

// GMBCallback is Google's redirect target; state carries the shop id handed
// out by ConnectGMB.
func (h *ShopHandler) GMBCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		httperr.BadRequest(c, "missing_params", "Code and state are required.")
		return
	}

	shopID, err := strconv.ParseUint(state, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_state", "Invalid state parameter.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, uint(shopID)).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	token, err := h.gmb.Exchange(c.Request.Context(), code)
	if err != nil {
		httperr.BadGateway(c, "gmb_exchange_failed", "Could not exchange authorization code.")
		return
	}

	if token.RefreshToken != "" {
		shop.GMBRefreshToken = token.RefreshToken
	}
	shop.GMBConnected = true

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Could not save connection state.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		Action:   "gmb_connected",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	c.Redirect(http.StatusFound, h.config.PublicBaseURL+"/dashboard/settings?gmb_connected=true")
}
