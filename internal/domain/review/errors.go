package review

import "github.com/BruksfildServices01/traineme-api/internal/httperr"

var (
	ErrReviewExists  = httperr.Duplicate("review_exists", "This booking has already been reviewed.")
	ErrInvalidRating = httperr.Validation("invalid_rating", "Rating must be between 1 and 5 in steps of 0.5.")
	ErrNotBooker     = httperr.Forbidden("not_booker", "Only the client of this booking can review it.")
	ErrNotCompleted  = httperr.Conflict("booking_not_completed", "Only completed sessions can be reviewed.")
)
