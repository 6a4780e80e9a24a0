package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/traineme-api/internal/config"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

// Pending/Confirmed bookings of one trainer may not share any instant.
// Backstop for the locked check in the booking repository.
const bookingExclusion = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
	) THEN
		ALTER TABLE bookings
			ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				trainer_profile_id WITH =,
				tstzrange(starts_at, ends_at, '[)') WITH &&
			)
			WHERE (status IN ('Pending', 'Confirmed'));
	END IF;
END $$;`

const bookingRange = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'bookings_valid_range'
	) THEN
		ALTER TABLE bookings
			ADD CONSTRAINT bookings_valid_range CHECK (starts_at < ends_at);
	END IF;
END $$;`

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.TrainerProfile{},
		&models.Availability{},
		&models.Booking{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range []string{bookingRange, bookingExclusion} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply constraints: %w", err)
		}
	}

	return nil
}
