package availability

import (
	"context"

	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type Repository interface {
	ListSlots(
		ctx context.Context,
		trainerID uint,
		activeOnly bool,
	) ([]models.Availability, error)

	GetSlot(
		ctx context.Context,
		slotID uint,
	) (*models.Availability, error)

	// CreateSlot inserts the slot unless it overlaps an active slot of the
	// same trainer and day, in which case domain.ErrOverlap is returned.
	// The check and the insert are atomic.
	CreateSlot(
		ctx context.Context,
		slot *models.Availability,
	) error

	// SetSlotActive applies the same overlap rule when activating.
	SetSlotActive(
		ctx context.Context,
		slot *models.Availability,
		active bool,
	) error

	DeleteSlot(
		ctx context.Context,
		slotID uint,
	) error
}
