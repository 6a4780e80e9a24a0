package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type TrainerGormRepository struct {
	base
}

func NewTrainerGormRepository(db *gorm.DB, timeout time.Duration) *TrainerGormRepository {
	return &TrainerGormRepository{base{db: db, timeout: timeout}}
}

var _ trainer.Repository = (*TrainerGormRepository)(nil)

func (r *TrainerGormRepository) CreateTrainerProfile(
	ctx context.Context,
	p *models.TrainerProfile,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return translate(db.Omit("User", "Availability").Create(p).Error)
}

func (r *TrainerGormRepository) GetTrainerProfile(
	ctx context.Context,
	id uint,
) (*models.TrainerProfile, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var p models.TrainerProfile
	if err := db.Preload("User").First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *TrainerGormRepository) GetTrainerProfileByUserID(
	ctx context.Context,
	userID uint,
) (*models.TrainerProfile, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var p models.TrainerProfile
	if err := db.Preload("User").
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *TrainerGormRepository) UpdateTrainerProfile(
	ctx context.Context,
	p *models.TrainerProfile,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Model(p).
		Omit("User", "Availability").
		Select(
			"bio", "specialty", "experience", "experience_text",
			"certifications", "location", "hourly_rate", "is_online",
			"profile_image", "banner_image",
		).
		Updates(p)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TrainerGormRepository) DeleteTrainerProfile(
	ctx context.Context,
	id uint,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		p, err := lockTrainer(tx, id)
		if err != nil {
			return err
		}
		return removeTrainer(tx, p, p.UserID)
	})
	return translate(err)
}

func (r *TrainerGormRepository) SearchTrainerProfiles(
	ctx context.Context,
	f trainer.SearchFilter,
	page dto.PageRequest,
) ([]models.TrainerProfile, int64, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Model(&models.TrainerProfile{})

	if s := strings.TrimSpace(f.Specialty); s != "" {
		q = q.Where("LOWER(specialty) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("hourly_rate >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("hourly_rate <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var profiles []models.TrainerProfile
	if err := q.
		Preload("User").
		Order("rating DESC, id ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&profiles).Error; err != nil {
		return nil, 0, translate(err)
	}

	return profiles, total, nil
}
