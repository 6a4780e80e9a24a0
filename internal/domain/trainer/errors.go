package trainer

import "github.com/BruksfildServices01/traineme-api/internal/httperr"

var (
	ErrTrainerNotFound   = httperr.NotFound("trainer_not_found", "Trainer not found.")
	ErrProfileNotFound   = httperr.NotFound("trainer_profile_not_found", "You have no trainer profile.")
	ErrProfileExists     = httperr.Duplicate("trainer_profile_exists", "You already have a trainer profile.")
	ErrTrainerRole       = httperr.Forbidden("trainer_role_required", "Only trainers can manage a trainer profile.")
	ErrNotOwner          = httperr.Forbidden("not_profile_owner", "You can only change your own trainer profile.")
	ErrInvalidPrice      = httperr.Validation("invalid_price", "Prices must not be negative.")
	ErrInvalidPriceSpan  = httperr.Validation("invalid_price_range", "minPrice must not exceed maxPrice.")
	ErrInvalidExp        = httperr.Validation("invalid_experience", "Experience must not be negative.")
	ErrProfileIncomplete = httperr.Conflict(
		"profile_incomplete",
		"Complete at least 70% of your profile before confirming bookings.",
	)
)
