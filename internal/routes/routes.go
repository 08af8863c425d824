package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/nubarber/booking-api/internal/audit"
	"github.com/nubarber/booking-api/internal/cache"
	"github.com/nubarber/booking-api/internal/config"
	"github.com/nubarber/booking-api/internal/db"
	"github.com/nubarber/booking-api/internal/email"
	"github.com/nubarber/booking-api/internal/gmb"
	"github.com/nubarber/booking-api/internal/handlers"
	"github.com/nubarber/booking-api/internal/middleware"
	"github.com/nubarber/booking-api/internal/payments"
	"github.com/nubarber/booking-api/internal/storage"
)

func RegisterRoutes(r *gin.Engine, registry *db.Registry, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	profileCache := cache.NewProfileCache(rdb, cfg.ProfileCacheTTL, log)

	payClient := payments.New(cfg.StripeSecretKey, log)
	mailer := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	gmbConn := gmb.New(cfg.GMBClientID, cfg.GMBClientSecret, cfg.GMBRedirectURI)
	avatars := storage.NewAvatarStore(
		cfg.S3Region,
		cfg.S3Bucket,
		cfg.S3AccessKeyID,
		cfg.S3SecretAccessKey,
		cfg.S3PublicBaseURL,
	)

	auditLogger := audit.New(registry.Default())
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registry.Default(), cfg)
	meHandler := handlers.NewMeHandler(registry.Default())
	shopHandler := handlers.NewShopHandler(
		registry.Default(),
		cfg,
		payClient,
		gmbConn,
		profileCache,
		auditDispatcher,
	)

	serviceHandler := handlers.NewServiceHandler(registry, profileCache, auditDispatcher)
	staffHandler := handlers.NewStaffHandler(registry, avatars, profileCache, auditDispatcher)
	timeOffHandler := handlers.NewTimeOffHandler(registry, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(registry)

	publicHandler := handlers.NewPublicHandler(
		registry,
		cfg,
		profileCache,
		payClient,
		mailer,
		auditDispatcher,
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(registry.Default())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING PAGE
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.Profile)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.GET("/:slug/density", publicHandler.Density)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/:slug/bookings/confirm", publicHandler.ConfirmBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Google's redirect target carries no JWT; state identifies the shop.
		api.GET("/gmb/callback", shopHandler.GMBCallback)

		// ------------------------------
		// OWNER DASHBOARD
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/shop", shopHandler.GetShop)
			secured.PATCH("/me/shop", shopHandler.UpdateShop)

			secured.POST("/me/shop/stripe/connect", shopHandler.ConnectStripe)
			secured.POST("/me/shop/stripe/complete", shopHandler.CompleteStripe)
			secured.GET("/me/shop/gmb/connect", shopHandler.ConnectGMB)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)
			secured.PATCH("/me/staff/:id", staffHandler.Update)
			secured.DELETE("/me/staff/:id", staffHandler.Delete)
			secured.PUT("/me/staff/:id/availability", staffHandler.PutAvailability)
			secured.POST("/me/staff/:id/avatar", staffHandler.UploadAvatar)

			secured.GET("/me/time-off", timeOffHandler.List)
			secured.POST("/me/time-off", timeOffHandler.Create)
			secured.DELETE("/me/time-off/:id", timeOffHandler.Delete)

			// ------------------------------
			// SCHEDULE
			// ------------------------------
			secured.GET("/me/schedule", scheduleHandler.Day)
			secured.GET("/me/schedule/density", scheduleHandler.Density)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
