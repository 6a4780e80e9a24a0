package review

import (
	"context"
	"math"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// ValidRating accepts 1..5 in half steps.
func ValidRating(r float64) bool {
	if r < MinRating || r > MaxRating {
		return false
	}
	return r*2 == math.Trunc(r*2)
}

// Average is the trainer rating shown publicly: the mean of every stored
// rating, rounded to two decimals only at the end.
func Average(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return math.Round(sum/float64(count)*100) / 100
}

type Repository interface {
	// CreateReview inserts r and recomputes the trainer's rating and
	// review count from the stored reviews atomically. A second review of the same booking yields
	// domain.ErrDuplicate.
	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	ListReviewsForTrainer(
		ctx context.Context,
		trainerID uint,
		page dto.PageRequest,
	) ([]models.Review, int64, error)
}
