package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/user"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var errMissingName = httperr.Validation("missing_name", "First and last name are required.")

type GetProfile struct {
	users user.Repository
}

func NewGetProfile(users user.Repository) *GetProfile {
	return &GetProfile{users: users}
}

func (uc *GetProfile) Execute(ctx context.Context, userID uint) (*models.User, error) {
	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.OrNotFound(err, user.ErrUserNotFound)
	}
	return u, nil
}

// UpdateProfileInput holds the client-writable fields. Nil means unchanged.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	ProfileImage *string
}

type UpdateProfile struct {
	users user.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(
	users user.Repository,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		users: users,
		audit: audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	userID uint,
	in UpdateProfileInput,
) (*models.User, error) {

	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.OrNotFound(err, user.ErrUserNotFound)
	}

	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if u.FirstName == "" || u.LastName == "" {
		return nil, errMissingName
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.ProfileImage != nil {
		u.ProfileImage = strings.TrimSpace(*in.ProfileImage)
	}

	if err := uc.users.UpdateUser(ctx, u); err != nil {
		return nil, domain.OrNotFound(err, user.ErrUserNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserUpdated,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
	})

	return u, nil
}

type DeleteAccount struct {
	users user.Repository
	audit *audit.Dispatcher
}

func NewDeleteAccount(
	users user.Repository,
	audit *audit.Dispatcher,
) *DeleteAccount {
	return &DeleteAccount{
		users: users,
		audit: audit,
	}
}

// Execute soft-deletes the account together with its trainer side and
// cancels every open booking the user takes part in.
func (uc *DeleteAccount) Execute(ctx context.Context, userID uint) error {
	if err := uc.users.DeleteUser(ctx, userID); err != nil {
		return domain.OrNotFound(err, user.ErrUserNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionUserDeleted,
		Entity:   audit.EntityUser,
		EntityID: &userID,
	})
	return nil
}
