package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/traineme-api/internal/models"
)

// ParseRole maps any casing of "user"/"trainer" to the canonical role.
func ParseRole(s string) (models.Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(models.RoleUser):
		return models.RoleUser, nil
	case string(models.RoleTrainer):
		return models.RoleTrainer, nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Repository interface {
	// CreateUser returns domain.ErrDuplicate when the normalized email is
	// already registered.
	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	UpdateUser(
		ctx context.Context,
		u *models.User,
	) error

	// DeleteUser soft-deletes the user and their trainer profile, removes
	// availability and cancels every open booking they take part in.
	DeleteUser(
		ctx context.Context,
		id uint,
	) error
}
