package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/auth"
	store "github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/availability"
	domain "github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/models"
	"github.com/BruksfildServices01/traineme-api/internal/timezone"
)

type CreateInput struct {
	TrainerID uint
	Date      string
	StartTime string
	EndTime   string
	Notes     string
}

type CreateBooking struct {
	repo     domain.Repository
	trainers trainer.Repository
	slots    availability.Repository
	clock    timezone.Clock
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	trainers trainer.Repository,
	slots availability.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		trainers: trainers,
		slots:    slots,
		clock:    clock,
		audit:    audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor auth.Identity,
	in CreateInput,
) (*models.Booking, error) {

	if actor.Role != models.RoleUser {
		return nil, domain.ErrBookerRole
	}

	// --------------------------------------------------
	// Payload
	// --------------------------------------------------
	date, err := uc.clock.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	w, err := availability.ParseWindow(in.StartTime, in.EndTime)
	if err != nil {
		return nil, availability.ErrInvalidTime
	}
	if !w.Valid() {
		return nil, availability.ErrInvalidRange
	}

	// --------------------------------------------------
	// Trainer
	// --------------------------------------------------
	p, err := uc.trainers.GetTrainerProfile(ctx, in.TrainerID)
	if err != nil {
		return nil, store.OrNotFound(err, trainer.ErrTrainerNotFound)
	}

	// --------------------------------------------------
	// Time
	// --------------------------------------------------
	start, end := w.On(date, uc.clock.Location())
	if start.Before(uc.clock.Now()) {
		return nil, domain.ErrSessionInPast
	}

	slots, err := uc.slots.ListSlots(ctx, p.ID, true)
	if err != nil {
		return nil, err
	}
	if !availability.Covers(slots, availability.DayOf(date), w) {
		return nil, domain.ErrOutsideAvailability
	}

	// --------------------------------------------------
	// Persist (overlap check is atomic in the store)
	// --------------------------------------------------
	b := &models.Booking{
		UserID:           actor.UserID,
		TrainerProfileID: p.ID,
		SessionDate:      date,
		StartTime:        w.Start.String(),
		EndTime:          w.End.String(),
		StartsAt:         start,
		EndsAt:           end,
		Price:            p.HourlyRate,
		Status:           string(domain.InitialStatus()),
		Notes:            strings.TrimSpace(in.Notes),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if errors.Is(err, store.ErrOverlap) {
			return nil, domain.ErrOverlap
		}
		return nil, err
	}
	b.TrainerProfile = *p

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   audit.EntityBooking,
		EntityID: &b.ID,
		Metadata: map[string]any{
			"trainerId": b.TrainerProfileID,
			"date":      b.SessionDateString(),
			"start":     b.StartTime,
			"end":       b.EndTime,
		},
	})

	return b, nil
}
