package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nubarber/booking-api/internal/config"
	"github.com/nubarber/booking-api/internal/models"
)

// Registry holds one gorm handle per storage region. Shops, owner users and
// audit logs always live on the default handle; a shop's tenant data
// (services, staff, time off, bookings) lives on the handle its region key
// selects. Handles are opened once at startup and resolved by key afterwards.
type Registry struct {
	defaultDB *gorm.DB
	regions   map[string]*gorm.DB
}

func NewRegistry(cfg *config.Config, logger zerolog.Logger) *Registry {
	defaultDB := open(cfg.DBUrl, logger)

	if err := defaultDB.AutoMigrate(
		&models.Shop{},
		&models.User{},
		&models.AuditLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate core models")
	}
	migrateTenant(defaultDB, logger)

	regions := make(map[string]*gorm.DB, len(cfg.RegionDBUrls))
	for region, url := range cfg.RegionDBUrls {
		handle := open(url, logger)
		migrateTenant(handle, logger)
		regions[region] = handle
		logger.Info().Str("region", region).Msg("regional database attached")
	}

	return &Registry{
		defaultDB: defaultDB,
		regions:   regions,
	}
}

// Default returns the handle holding shops, users and audit logs. It also
// backs tenant data for shops whose region has no dedicated database.
func (r *Registry) Default() *gorm.DB {
	return r.defaultDB
}

// For resolves the tenant-data handle for a region key, falling back to the
// default handle for unknown regions.
func (r *Registry) For(region string) *gorm.DB {
	if db, ok := r.regions[region]; ok {
		return db
	}
	return r.defaultDB
}

func open(url string, logger zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db
}

func migrateTenant(db *gorm.DB, logger zerolog.Logger) {
	if err := db.AutoMigrate(
		&models.Service{},
		&models.StaffMember{},
		&models.WeeklyAvailability{},
		&models.TimeOffEntry{},
		&models.Booking{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate tenant models")
	}
}
