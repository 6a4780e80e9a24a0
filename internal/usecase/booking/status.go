package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/auth"
	store "github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/availability"
	domain "github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/models"
	"github.com/BruksfildServices01/traineme-api/internal/timezone"
	trainerusecase "github.com/BruksfildServices01/traineme-api/internal/usecase/trainer"
)

var statusActions = map[domain.Status]string{
	domain.StatusConfirmed: audit.ActionBookingConfirmed,
	domain.StatusCompleted: audit.ActionBookingCompleted,
	domain.StatusCancelled: audit.ActionBookingCancelled,
}

type UpdateStatus struct {
	repo     domain.Repository
	trainers trainer.Repository
	slots    availability.Repository
	clock    timezone.Clock
	audit    *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	trainers trainer.Repository,
	slots availability.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		trainers: trainers,
		slots:    slots,
		clock:    clock,
		audit:    audit,
	}
}

// Execute is the trainer's side of the lifecycle. Confirming requires a
// profile that passes the completion gate.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor auth.Identity,
	bookingID uint,
	status string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, store.OrNotFound(err, domain.ErrBookingNotFound)
	}

	if domain.ActorFor(b, b.TrainerProfile.UserID, actor.UserID) != domain.ActorTrainer {
		return nil, domain.ErrNotTrainer
	}

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, domain.ErrInvalidStatus
	}

	from := domain.Status(b.Status)
	if !domain.CanTransition(from, to, domain.ActorTrainer) {
		return nil, httperr.ErrInvalidTransition
	}

	if to == domain.StatusConfirmed {
		if err := uc.checkCompletion(ctx, b.TrainerProfileID); err != nil {
			return nil, err
		}
	}

	return transition(ctx, uc.repo, uc.audit, b, to, domain.ActorTrainer, actor.UserID, uc.clock)
}

func (uc *UpdateStatus) checkCompletion(ctx context.Context, trainerID uint) error {
	p, err := uc.trainers.GetTrainerProfile(ctx, trainerID)
	if err != nil {
		return store.OrNotFound(err, trainer.ErrTrainerNotFound)
	}

	report, err := trainerusecase.Evaluate(ctx, uc.slots, p)
	if err != nil {
		return err
	}
	if report.CanAccept {
		return nil
	}

	return trainer.ErrProfileIncomplete.WithDetails(map[string]any{
		"incomplete_sections": report.Incomplete,
		"score":               report.Score,
	})
}

type CancelBooking struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

// Execute lets either participant cancel a Pending or Confirmed booking.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor auth.Identity,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, store.OrNotFound(err, domain.ErrBookingNotFound)
	}

	who := domain.ActorFor(b, b.TrainerProfile.UserID, actor.UserID)
	if who == domain.ActorNone {
		return nil, domain.ErrNotParticipant
	}

	return transition(ctx, uc.repo, uc.audit, b, domain.StatusCancelled, who, actor.UserID, uc.clock)
}

// transition applies and persists one edge. Persisting is conditional on
// the status read, so a concurrent change surfaces as invalid_transition.
func transition(
	ctx context.Context,
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	b *models.Booking,
	to domain.Status,
	who domain.Actor,
	actorID uint,
	clock timezone.Clock,
) (*models.Booking, error) {

	from := domain.Status(b.Status)
	if err := domain.Transition(b, to, who, actorID, clock.Now()); err != nil {
		return nil, err
	}

	if err := repo.UpdateBookingStatus(ctx, b, from); err != nil {
		if errors.Is(err, store.ErrStale) {
			return nil, httperr.ErrInvalidTransition
		}
		return nil, store.OrNotFound(err, domain.ErrBookingNotFound)
	}

	dispatcher.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   statusActions[to],
		Entity:   audit.EntityBooking,
		EntityID: &b.ID,
		Metadata: map[string]any{"from": from, "to": to},
	})

	return b, nil
}
