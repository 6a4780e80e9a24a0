package booking

import (
	"context"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type ListFilter struct {
	Status *Status
	Page   dto.PageRequest
}

type Repository interface {
	// CreateBooking inserts b unless a Pending/Confirmed booking of the same
	// trainer overlaps [b.StartsAt, b.EndsAt); then domain.ErrOverlap.
	// Check and insert are atomic per trainer.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// GetBooking loads the booking with its trainer profile.
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// UpdateBookingStatus persists b only if the stored status still equals
	// from; otherwise domain.ErrStale.
	UpdateBookingStatus(
		ctx context.Context,
		b *models.Booking,
		from Status,
	) error

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
		f ListFilter,
	) ([]models.Booking, int64, error)

	ListBookingsForTrainer(
		ctx context.Context,
		trainerID uint,
		f ListFilter,
	) ([]models.Booking, int64, error)
}
