package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var _ booking.Repository = (*Store)(nil)

func (s *Store) CreateBooking(ctx context.Context, b *models.Booking) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	for _, existing := range s.bookings {
		if existing.TrainerProfileID != b.TrainerProfileID {
			continue
		}
		if !booking.Status(existing.Status).Blocking() {
			continue
		}
		if existing.StartsAt.Before(b.EndsAt) && b.StartsAt.Before(existing.EndsAt) {
			return domain.ErrOverlap
		}
	}

	now := s.now()
	b.ID = s.id()
	b.CreatedAt = now
	b.UpdatedAt = now
	s.bookings[b.ID] = stripBooking(*b)
	return nil
}

func (s *Store) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b = s.withRelations(b)
	return &b, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, b *models.Booking, from booking.Status) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	stored, ok := s.bookings[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Status != string(from) {
		return domain.ErrStale
	}

	stored.Status = b.Status
	stored.ConfirmedAt = b.ConfirmedAt
	stored.CompletedAt = b.CompletedAt
	stored.CancelledAt = b.CancelledAt
	stored.CancelledBy = b.CancelledBy
	stored.UpdatedAt = s.now()
	s.bookings[b.ID] = stored
	b.UpdatedAt = stored.UpdatedAt
	return nil
}

func (s *Store) ListBookingsForUser(ctx context.Context, userID uint, f booking.ListFilter) ([]models.Booking, int64, error) {
	return s.listBookings(ctx, f, func(b models.Booking) bool { return b.UserID == userID })
}

func (s *Store) ListBookingsForTrainer(ctx context.Context, trainerID uint, f booking.ListFilter) ([]models.Booking, int64, error) {
	return s.listBookings(ctx, f, func(b models.Booking) bool { return b.TrainerProfileID == trainerID })
}

func (s *Store) listBookings(
	ctx context.Context,
	f booking.ListFilter,
	match func(models.Booking) bool,
) ([]models.Booking, int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if !match(b) {
			continue
		}
		if f.Status != nil && b.Status != string(*f.Status) {
			continue
		}
		out = append(out, s.withRelations(b))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].StartsAt.After(out[j].StartsAt)
		}
		return out[i].ID > out[j].ID
	})

	return paginate(out, f.Page), int64(len(out)), nil
}

func (s *Store) withRelations(b models.Booking) models.Booking {
	b.User = s.users[b.UserID]
	b.TrainerProfile = s.withUser(s.trainers[b.TrainerProfileID])
	return b
}

func stripBooking(b models.Booking) models.Booking {
	b.User = models.User{}
	b.TrainerProfile = models.TrainerProfile{}
	return b
}
