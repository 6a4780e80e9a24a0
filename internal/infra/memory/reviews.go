package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/review"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var _ review.Repository = (*Store)(nil)

func (s *Store) CreateReview(ctx context.Context, r *models.Review) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	for _, existing := range s.reviews {
		if existing.BookingID == r.BookingID {
			return domain.ErrDuplicate
		}
	}
	p, ok := s.activeTrainer(r.TrainerProfileID)
	if !ok {
		return domain.ErrNotFound
	}

	r.ID = s.id()
	r.CreatedAt = s.now()
	s.reviews[r.ID] = *r

	sum, count := 0.0, 0
	for _, existing := range s.reviews {
		if existing.TrainerProfileID == p.ID {
			sum += existing.Rating
			count++
		}
	}
	p.Rating, p.ReviewCount = review.Average(sum, count), count
	p.UpdatedAt = s.now()
	s.trainers[p.ID] = p
	return nil
}

func (s *Store) ListReviewsForTrainer(
	ctx context.Context,
	trainerID uint,
	page dto.PageRequest,
) ([]models.Review, int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	var out []models.Review
	for _, r := range s.reviews {
		if r.TrainerProfileID == trainerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, page), int64(len(out)), nil
}
