package availability

import "github.com/BruksfildServices01/traineme-api/internal/httperr"

var (
	ErrSlotNotFound = httperr.NotFound("availability_not_found", "Availability window not found.")
	ErrSlotOverlap  = httperr.Conflict("availability_overlap", "This window overlaps another active window on the same day.")
	ErrInvalidRange = httperr.Validation("invalid_range", "Start time must be before end time.")
	ErrInvalidDay   = httperr.Validation("invalid_day", "Day must be one of Mon, Tue, Wed, Thu, Fri, Sat, Sun.")
	ErrInvalidTime  = httperr.Validation("invalid_time", "Times must use the 24h HH:MM format.")
)
