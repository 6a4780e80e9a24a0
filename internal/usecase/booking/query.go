package booking

import (
	"context"

	"github.com/BruksfildServices01/traineme-api/internal/auth"
	store "github.com/BruksfildServices01/traineme-api/internal/domain"
	domain "github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute returns the booking to its booker or trainer only.
func (uc *GetBooking) Execute(
	ctx context.Context,
	actor auth.Identity,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, store.OrNotFound(err, domain.ErrBookingNotFound)
	}

	if domain.ActorFor(b, b.TrainerProfile.UserID, actor.UserID) == domain.ActorNone {
		return nil, domain.ErrNotParticipant
	}
	return b, nil
}

type ListInput struct {
	Status string
	Page   dto.PageRequest
}

func (in ListInput) filter() (domain.ListFilter, error) {
	f := domain.ListFilter{Page: in.Page}
	if in.Status == "" {
		return f, nil
	}
	s, err := domain.ParseStatus(in.Status)
	if err != nil {
		return f, domain.ErrInvalidStatus
	}
	f.Status = &s
	return f, nil
}

type ListBookings struct {
	repo     domain.Repository
	trainers trainer.Repository
}

func NewListBookings(
	repo domain.Repository,
	trainers trainer.Repository,
) *ListBookings {
	return &ListBookings{
		repo:     repo,
		trainers: trainers,
	}
}

// Mine lists the sessions the caller booked.
func (uc *ListBookings) Mine(
	ctx context.Context,
	actor auth.Identity,
	in ListInput,
) (dto.Page[models.Booking], error) {

	f, err := in.filter()
	if err != nil {
		return dto.Page[models.Booking]{}, err
	}

	items, total, err := uc.repo.ListBookingsForUser(ctx, actor.UserID, f)
	if err != nil {
		return dto.Page[models.Booking]{}, err
	}
	return dto.NewPage(items, in.Page, total), nil
}

// Trainer lists the sessions booked with the caller's trainer profile.
func (uc *ListBookings) Trainer(
	ctx context.Context,
	actor auth.Identity,
	in ListInput,
) (dto.Page[models.Booking], error) {

	f, err := in.filter()
	if err != nil {
		return dto.Page[models.Booking]{}, err
	}

	p, err := uc.trainers.GetTrainerProfileByUserID(ctx, actor.UserID)
	if err != nil {
		return dto.Page[models.Booking]{}, store.OrNotFound(err, trainer.ErrProfileNotFound)
	}

	items, total, err := uc.repo.ListBookingsForTrainer(ctx, p.ID, f)
	if err != nil {
		return dto.Page[models.Booking]{}, err
	}
	return dto.NewPage(items, in.Page, total), nil
}
