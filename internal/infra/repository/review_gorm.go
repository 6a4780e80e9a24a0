package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/review"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type ReviewGormRepository struct {
	base
}

func NewReviewGormRepository(db *gorm.DB, timeout time.Duration) *ReviewGormRepository {
	return &ReviewGormRepository{base{db: db, timeout: timeout}}
}

var _ review.Repository = (*ReviewGormRepository)(nil)

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		p, err := lockTrainer(tx, rv.TrainerProfileID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Review{}).
			Where("booking_id = ?", rv.BookingID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicate
		}

		if err := tx.Create(rv).Error; err != nil {
			return err
		}

		var agg struct {
			RatingSum   float64
			RatingCount int
		}
		if err := tx.Model(&models.Review{}).
			Select("COALESCE(SUM(rating), 0) AS rating_sum, COUNT(*) AS rating_count").
			Where("trainer_profile_id = ?", p.ID).
			Scan(&agg).Error; err != nil {
			return err
		}

		return tx.Model(p).Updates(map[string]any{
			"rating":       review.Average(agg.RatingSum, agg.RatingCount),
			"review_count": agg.RatingCount,
		}).Error
	})
	return translate(err)
}

func (r *ReviewGormRepository) ListReviewsForTrainer(
	ctx context.Context,
	trainerID uint,
	page dto.PageRequest,
) ([]models.Review, int64, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Model(&models.Review{}).Where("trainer_profile_id = ?", trainerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var reviews []models.Review
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&reviews).Error; err != nil {
		return nil, 0, translate(err)
	}
	return reviews, total, nil
}
