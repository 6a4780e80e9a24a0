package availability

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/auth"
	store "github.com/BruksfildServices01/traineme-api/internal/domain"
	domain "github.com/BruksfildServices01/traineme-api/internal/domain/availability"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type AddSlotInput struct {
	Day       string
	StartTime string
	EndTime   string
}

type AddSlot struct {
	repo     domain.Repository
	trainers trainer.Repository
	audit    *audit.Dispatcher
}

func NewAddSlot(
	repo domain.Repository,
	trainers trainer.Repository,
	audit *audit.Dispatcher,
) *AddSlot {
	return &AddSlot{
		repo:     repo,
		trainers: trainers,
		audit:    audit,
	}
}

func (uc *AddSlot) Execute(
	ctx context.Context,
	actor auth.Identity,
	in AddSlotInput,
) (*models.Availability, error) {

	day, err := domain.ParseDay(in.Day)
	if err != nil {
		return nil, domain.ErrInvalidDay
	}
	w, err := domain.ParseWindow(in.StartTime, in.EndTime)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}
	if !w.Valid() {
		return nil, domain.ErrInvalidRange
	}

	p, err := ownProfile(ctx, uc.trainers, actor)
	if err != nil {
		return nil, err
	}

	slot := &models.Availability{
		TrainerProfileID: p.ID,
		Day:              string(day),
		StartTime:        w.Start.String(),
		EndTime:          w.End.String(),
		IsActive:         true,
	}

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		if errors.Is(err, store.ErrOverlap) {
			return nil, domain.ErrSlotOverlap
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionSlotCreated,
		Entity:   audit.EntitySlot,
		EntityID: &slot.ID,
		Metadata: map[string]any{"day": slot.Day, "start": slot.StartTime, "end": slot.EndTime},
	})

	return slot, nil
}

type ListSlots struct {
	repo     domain.Repository
	trainers trainer.Repository
}

func NewListSlots(
	repo domain.Repository,
	trainers trainer.Repository,
) *ListSlots {
	return &ListSlots{
		repo:     repo,
		trainers: trainers,
	}
}

// ForTrainer lists a trainer's active windows, as the public sees them.
func (uc *ListSlots) ForTrainer(ctx context.Context, trainerID uint) ([]models.Availability, error) {
	if _, err := uc.trainers.GetTrainerProfile(ctx, trainerID); err != nil {
		return nil, store.OrNotFound(err, trainer.ErrTrainerNotFound)
	}
	return uc.repo.ListSlots(ctx, trainerID, true)
}

// Mine lists every window of the caller's profile, inactive ones included.
func (uc *ListSlots) Mine(ctx context.Context, actor auth.Identity) ([]models.Availability, error) {
	p, err := ownProfile(ctx, uc.trainers, actor)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListSlots(ctx, p.ID, false)
}

type ToggleSlot struct {
	repo     domain.Repository
	trainers trainer.Repository
	audit    *audit.Dispatcher
}

func NewToggleSlot(
	repo domain.Repository,
	trainers trainer.Repository,
	audit *audit.Dispatcher,
) *ToggleSlot {
	return &ToggleSlot{
		repo:     repo,
		trainers: trainers,
		audit:    audit,
	}
}

func (uc *ToggleSlot) Execute(
	ctx context.Context,
	actor auth.Identity,
	slotID uint,
) (*models.Availability, error) {

	slot, err := ownedSlot(ctx, uc.repo, uc.trainers, actor, slotID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SetSlotActive(ctx, slot, !slot.IsActive); err != nil {
		if errors.Is(err, store.ErrOverlap) {
			return nil, domain.ErrSlotOverlap
		}
		return nil, store.OrNotFound(err, domain.ErrSlotNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionSlotToggled,
		Entity:   audit.EntitySlot,
		EntityID: &slot.ID,
		Metadata: map[string]any{"isActive": slot.IsActive},
	})

	return slot, nil
}

type DeleteSlot struct {
	repo     domain.Repository
	trainers trainer.Repository
	audit    *audit.Dispatcher
}

func NewDeleteSlot(
	repo domain.Repository,
	trainers trainer.Repository,
	audit *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		repo:     repo,
		trainers: trainers,
		audit:    audit,
	}
}

func (uc *DeleteSlot) Execute(
	ctx context.Context,
	actor auth.Identity,
	slotID uint,
) error {

	slot, err := ownedSlot(ctx, uc.repo, uc.trainers, actor, slotID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteSlot(ctx, slot.ID); err != nil {
		return store.OrNotFound(err, domain.ErrSlotNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionSlotDeleted,
		Entity:   audit.EntitySlot,
		EntityID: &slot.ID,
	})
	return nil
}

func ownProfile(
	ctx context.Context,
	trainers trainer.Repository,
	actor auth.Identity,
) (*models.TrainerProfile, error) {
	if actor.Role != models.RoleTrainer {
		return nil, trainer.ErrTrainerRole
	}
	p, err := trainers.GetTrainerProfileByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, store.OrNotFound(err, trainer.ErrProfileNotFound)
	}
	return p, nil
}

func ownedSlot(
	ctx context.Context,
	repo domain.Repository,
	trainers trainer.Repository,
	actor auth.Identity,
	slotID uint,
) (*models.Availability, error) {
	slot, err := repo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, store.OrNotFound(err, domain.ErrSlotNotFound)
	}

	p, err := trainers.GetTrainerProfileByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, trainer.ErrNotOwner
		}
		return nil, err
	}
	if slot.TrainerProfileID != p.ID {
		return nil, trainer.ErrNotOwner
	}
	return slot, nil
}
