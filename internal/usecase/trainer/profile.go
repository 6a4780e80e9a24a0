package trainer

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/auth"
	store "github.com/BruksfildServices01/traineme-api/internal/domain"
	domain "github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

// ProfileInput carries the client-writable profile fields. Nil leaves a
// field unchanged. Rating, review count and verification are not here.
type ProfileInput struct {
	Bio            *string
	Specialty      *string
	Experience     *int
	ExperienceText *string
	Certifications *string
	Location       *string
	HourlyRate     *float64
	IsOnline       *bool
	ProfileImage   *string
	BannerImage    *string
}

func (in ProfileInput) apply(p *models.TrainerProfile) error {
	if in.Experience != nil && *in.Experience < 0 {
		return domain.ErrInvalidExp
	}
	if in.HourlyRate != nil && *in.HourlyRate < 0 {
		return domain.ErrInvalidPrice
	}

	setString(&p.Bio, in.Bio)
	setString(&p.Specialty, in.Specialty)
	setString(&p.ExperienceText, in.ExperienceText)
	setString(&p.Certifications, in.Certifications)
	setString(&p.Location, in.Location)
	setString(&p.ProfileImage, in.ProfileImage)
	setString(&p.BannerImage, in.BannerImage)

	if in.Experience != nil {
		p.Experience = *in.Experience
	}
	if in.HourlyRate != nil {
		p.HourlyRate = *in.HourlyRate
	}
	if in.IsOnline != nil {
		p.IsOnline = *in.IsOnline
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

type CreateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateProfile {
	return &CreateProfile{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateProfile) Execute(
	ctx context.Context,
	actor auth.Identity,
	in ProfileInput,
) (*models.TrainerProfile, error) {

	if actor.Role != models.RoleTrainer {
		return nil, domain.ErrTrainerRole
	}

	p := &models.TrainerProfile{UserID: actor.UserID}
	if err := in.apply(p); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateTrainerProfile(ctx, p); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, domain.ErrProfileExists
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionTrainerCreated,
		Entity:   audit.EntityTrainer,
		EntityID: &p.ID,
	})

	created, err := uc.repo.GetTrainerProfile(ctx, p.ID)
	if err != nil {
		return nil, store.OrNotFound(err, domain.ErrTrainerNotFound)
	}
	return created, nil
}

type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	actor auth.Identity,
	trainerID uint,
	in ProfileInput,
) (*models.TrainerProfile, error) {

	p, err := ownedProfile(ctx, uc.repo, actor, trainerID)
	if err != nil {
		return nil, err
	}

	if err := in.apply(p); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateTrainerProfile(ctx, p); err != nil {
		return nil, store.OrNotFound(err, domain.ErrTrainerNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionTrainerUpdated,
		Entity:   audit.EntityTrainer,
		EntityID: &p.ID,
	})

	return p, nil
}

type DeleteProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteProfile {
	return &DeleteProfile{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the profile with its availability and cancels its
// open bookings.
func (uc *DeleteProfile) Execute(
	ctx context.Context,
	actor auth.Identity,
	trainerID uint,
) error {

	p, err := ownedProfile(ctx, uc.repo, actor, trainerID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteTrainerProfile(ctx, p.ID); err != nil {
		return store.OrNotFound(err, domain.ErrTrainerNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionTrainerDeleted,
		Entity:   audit.EntityTrainer,
		EntityID: &p.ID,
	})
	return nil
}

func ownedProfile(
	ctx context.Context,
	repo domain.Repository,
	actor auth.Identity,
	trainerID uint,
) (*models.TrainerProfile, error) {
	p, err := repo.GetTrainerProfile(ctx, trainerID)
	if err != nil {
		return nil, store.OrNotFound(err, domain.ErrTrainerNotFound)
	}
	if p.UserID != actor.UserID {
		return nil, domain.ErrNotOwner
	}
	return p, nil
}
