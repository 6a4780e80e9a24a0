package trainer

import (
	"context"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type SearchFilter struct {
	Specialty string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

type Repository interface {
	// CreateTrainerProfile returns domain.ErrDuplicate when the user
	// already owns a profile.
	CreateTrainerProfile(
		ctx context.Context,
		p *models.TrainerProfile,
	) error

	// GetTrainerProfile preloads the owning user.
	GetTrainerProfile(
		ctx context.Context,
		id uint,
	) (*models.TrainerProfile, error)

	GetTrainerProfileByUserID(
		ctx context.Context,
		userID uint,
	) (*models.TrainerProfile, error)

	UpdateTrainerProfile(
		ctx context.Context,
		p *models.TrainerProfile,
	) error

	// DeleteTrainerProfile removes the profile and its availability and
	// cancels its open bookings.
	DeleteTrainerProfile(
		ctx context.Context,
		id uint,
	) error

	SearchTrainerProfiles(
		ctx context.Context,
		f SearchFilter,
		page dto.PageRequest,
	) ([]models.TrainerProfile, int64, error)
}
