package booking

import (
	"time"

	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

// ActorFor resolves how userID relates to b. trainerUserID is the user
// owning b's trainer profile.
func ActorFor(b *models.Booking, trainerUserID, userID uint) Actor {
	switch userID {
	case trainerUserID:
		return ActorTrainer
	case b.UserID:
		return ActorBooker
	default:
		return ActorNone
	}
}

// Transition moves b to status `to` on behalf of actor and stamps the
// matching timestamp. It does not persist anything.
func Transition(b *models.Booking, to Status, actor Actor, actorID uint, now time.Time) error {
	from := Status(b.Status)
	if !CanTransition(from, to, actor) {
		return httperr.ErrInvalidTransition
	}

	b.Status = string(to)
	switch to {
	case StatusConfirmed:
		b.ConfirmedAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	case StatusCancelled:
		b.CancelledAt = &now
		b.CancelledBy = &actorID
	}
	return nil
}
