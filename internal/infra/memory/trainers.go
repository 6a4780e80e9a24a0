package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var _ trainer.Repository = (*Store)(nil)

func (s *Store) CreateTrainerProfile(ctx context.Context, p *models.TrainerProfile) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	for _, existing := range s.trainers {
		if !existing.DeletedAt.Valid && existing.UserID == p.UserID {
			return domain.ErrDuplicate
		}
	}

	now := s.now()
	p.ID = s.id()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.trainers[p.ID] = stripTrainer(*p)
	return nil
}

func (s *Store) GetTrainerProfile(ctx context.Context, id uint) (*models.TrainerProfile, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	p, ok := s.activeTrainer(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = s.withUser(p)
	return &p, nil
}

func (s *Store) GetTrainerProfileByUserID(ctx context.Context, userID uint) (*models.TrainerProfile, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, p := range s.trainers {
		if !p.DeletedAt.Valid && p.UserID == userID {
			p = s.withUser(p)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) UpdateTrainerProfile(ctx context.Context, p *models.TrainerProfile) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	stored, ok := s.activeTrainer(p.ID)
	if !ok {
		return domain.ErrNotFound
	}
	p.CreatedAt = stored.CreatedAt
	p.UpdatedAt = s.now()
	// rating aggregates are owned by CreateReview
	p.Rating = stored.Rating
	p.ReviewCount = stored.ReviewCount
	s.trainers[p.ID] = stripTrainer(*p)
	return nil
}

func (s *Store) DeleteTrainerProfile(ctx context.Context, id uint) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	p, ok := s.activeTrainer(id)
	if !ok {
		return domain.ErrNotFound
	}
	s.deleteTrainer(p, p.UserID)
	return nil
}

func (s *Store) SearchTrainerProfiles(
	ctx context.Context,
	f trainer.SearchFilter,
	page dto.PageRequest,
) ([]models.TrainerProfile, int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	specialty := strings.ToLower(strings.TrimSpace(f.Specialty))
	var out []models.TrainerProfile
	for _, p := range s.trainers {
		if p.DeletedAt.Valid {
			continue
		}
		if specialty != "" && !strings.Contains(strings.ToLower(p.Specialty), specialty) {
			continue
		}
		if f.MinPrice != nil && p.HourlyRate < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.HourlyRate > *f.MaxPrice {
			continue
		}
		if f.MinRating != nil && p.Rating < *f.MinRating {
			continue
		}
		out = append(out, s.withUser(p))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID < out[j].ID
	})

	return paginate(out, page), int64(len(out)), nil
}

func (s *Store) activeTrainer(id uint) (models.TrainerProfile, bool) {
	p, ok := s.trainers[id]
	if !ok || p.DeletedAt.Valid {
		return models.TrainerProfile{}, false
	}
	return p, true
}

func (s *Store) withUser(p models.TrainerProfile) models.TrainerProfile {
	p.User = s.users[p.UserID]
	return p
}

// deleteTrainer must be called with the lock held.
func (s *Store) deleteTrainer(p models.TrainerProfile, actorID uint) {
	now := s.now()
	p.DeletedAt = deletedAt(now)
	s.trainers[p.ID] = p

	for sid, slot := range s.slots {
		if slot.TrainerProfileID == p.ID {
			delete(s.slots, sid)
		}
	}
	for bid, b := range s.bookings {
		if b.TrainerProfileID == p.ID {
			s.bookings[bid] = cancelOpen(b, actorID, now)
		}
	}
}

func cancelOpen(b models.Booking, actorID uint, now time.Time) models.Booking {
	if !booking.Status(b.Status).Blocking() {
		return b
	}
	b.Status = string(booking.StatusCancelled)
	b.CancelledAt = &now
	b.CancelledBy = &actorID
	b.UpdatedAt = now
	return b
}

func stripTrainer(p models.TrainerProfile) models.TrainerProfile {
	p.User = models.User{}
	p.Availability = nil
	return p
}
