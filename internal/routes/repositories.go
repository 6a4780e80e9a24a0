package routes

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/domain/availability"
	"github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/domain/review"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/domain/user"
	"github.com/BruksfildServices01/traineme-api/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/traineme-api/internal/infra/repository"
)

// Repositories is the persistence side of the application, one port per
// aggregate.
type Repositories struct {
	Users    user.Repository
	Trainers trainer.Repository
	Slots    availability.Repository
	Bookings booking.Repository
	Reviews  review.Repository
	Audit    audit.Repository
}

// GormRepositories binds every port to postgres. Each call is bounded by
// timeout.
func GormRepositories(db *gorm.DB, timeout time.Duration) Repositories {
	return Repositories{
		Users:    infraRepo.NewUserGormRepository(db, timeout),
		Trainers: infraRepo.NewTrainerGormRepository(db, timeout),
		Slots:    infraRepo.NewAvailabilityGormRepository(db, timeout),
		Bookings: infraRepo.NewBookingGormRepository(db, timeout),
		Reviews:  infraRepo.NewReviewGormRepository(db, timeout),
		Audit:    infraRepo.NewAuditGormRepository(db, timeout),
	}
}

func MemoryRepositories(s *memory.Store) Repositories {
	return Repositories{
		Users:    s,
		Trainers: s,
		Slots:    s,
		Bookings: s,
		Reviews:  s,
		Audit:    s,
	}
}
