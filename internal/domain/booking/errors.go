package booking

import "github.com/BruksfildServices01/traineme-api/internal/httperr"

var (
	ErrBookingNotFound     = httperr.NotFound("booking_not_found", "Booking not found.")
	ErrBookerRole          = httperr.Forbidden("user_role_required", "Only clients can book sessions.")
	ErrNotTrainer          = httperr.Forbidden("not_booking_trainer", "Only the booked trainer can change this booking.")
	ErrNotParticipant      = httperr.Forbidden("not_booking_participant", "You are not part of this booking.")
	ErrInvalidDate         = httperr.Validation("invalid_date", "Date must use the YYYY-MM-DD format.")
	ErrInvalidStatus       = httperr.Validation("invalid_status", "Status must be Pending, Confirmed, Completed or Cancelled.")
	ErrSessionInPast       = httperr.Validation("session_in_past", "Sessions cannot be booked in the past.")
	ErrOutsideAvailability = httperr.Conflict("outside_availability", "The trainer is not available at this time.")
	ErrOverlap             = httperr.Conflict("booking_overlap", "The trainer already has a session at this time.")
)
