package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/auth"
	store "github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/domain/user"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/media"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

const (
	KindProfile = "profile"
	KindBanner  = "banner"
)

var (
	ErrInvalidKind = httperr.Validation("invalid_image_kind", "Image kind must be profile or banner.")
	ErrUnavailable = httperr.Unavailable("media_unavailable", "Image uploads are not configured.")
)

type UploadImage struct {
	storage  media.Storage
	users    user.Repository
	trainers trainer.Repository
	audit    *audit.Dispatcher
}

// NewUploadImage builds the use case. A nil storage disables uploads.
func NewUploadImage(
	storage media.Storage,
	users user.Repository,
	trainers trainer.Repository,
	audit *audit.Dispatcher,
) *UploadImage {
	return &UploadImage{
		storage:  storage,
		users:    users,
		trainers: trainers,
		audit:    audit,
	}
}

// Execute stores the picture and points the caller's profile image (or
// their trainer banner) at it. It returns the public URL.
func (uc *UploadImage) Execute(
	ctx context.Context,
	actor auth.Identity,
	kind string,
	file io.Reader,
) (string, error) {

	if kind != KindProfile && kind != KindBanner {
		return "", ErrInvalidKind
	}
	if uc.storage == nil {
		return "", ErrUnavailable
	}

	u, err := uc.users.GetUserByID(ctx, actor.UserID)
	if err != nil {
		return "", store.OrNotFound(err, user.ErrUserNotFound)
	}

	var profile *models.TrainerProfile
	if kind == KindBanner {
		profile, err = uc.trainers.GetTrainerProfileByUserID(ctx, actor.UserID)
		if err != nil {
			return "", store.OrNotFound(err, trainer.ErrProfileNotFound)
		}
	}

	body, err := media.Normalize(file, media.MaxEdge)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%d/%s.webp", kind, actor.UserID, uuid.NewString())
	url, err := uc.storage.Put(ctx, key, body, media.ContentType)
	if err != nil {
		return "", err
	}

	if profile != nil {
		profile.BannerImage = url
		if err := uc.trainers.UpdateTrainerProfile(ctx, profile); err != nil {
			return "", store.OrNotFound(err, trainer.ErrProfileNotFound)
		}
	} else {
		u.ProfileImage = url
		if err := uc.users.UpdateUser(ctx, u); err != nil {
			return "", store.OrNotFound(err, user.ErrUserNotFound)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionImageUploaded,
		Entity:   audit.EntityUser,
		EntityID: &actor.UserID,
		Metadata: map[string]any{"kind": kind, "key": key},
	})

	return url, nil
}
