package review

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/auth"
	store "github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	domain "github.com/BruksfildServices01/traineme-api/internal/domain/review"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type CreateInput struct {
	BookingID uint
	Rating    float64
	Comment   string
}

type CreateReview struct {
	repo     domain.Repository
	bookings booking.Repository
	audit    *audit.Dispatcher
}

func NewCreateReview(
	repo domain.Repository,
	bookings booking.Repository,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:     repo,
		bookings: bookings,
		audit:    audit,
	}
}

// Execute records the booker's review of a completed session and folds
// the rating into the trainer's aggregate.
func (uc *CreateReview) Execute(
	ctx context.Context,
	actor auth.Identity,
	in CreateInput,
) (*models.Review, error) {

	b, err := uc.bookings.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, store.OrNotFound(err, booking.ErrBookingNotFound)
	}
	if b.UserID != actor.UserID {
		return nil, domain.ErrNotBooker
	}
	if booking.Status(b.Status) != booking.StatusCompleted {
		return nil, domain.ErrNotCompleted
	}
	if !domain.ValidRating(in.Rating) {
		return nil, domain.ErrInvalidRating
	}

	r := &models.Review{
		BookingID:        b.ID,
		UserID:           actor.UserID,
		TrainerProfileID: b.TrainerProfileID,
		Rating:           in.Rating,
		Comment:          strings.TrimSpace(in.Comment),
	}

	if err := uc.repo.CreateReview(ctx, r); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, domain.ErrReviewExists
		}
		return nil, store.OrNotFound(err, trainer.ErrTrainerNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionReviewCreated,
		Entity:   audit.EntityReview,
		EntityID: &r.ID,
		Metadata: map[string]any{"bookingId": b.ID, "rating": r.Rating},
	})

	return r, nil
}
