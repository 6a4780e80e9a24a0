package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/domain/user"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type UserGormRepository struct {
	base
}

func NewUserGormRepository(db *gorm.DB, timeout time.Duration) *UserGormRepository {
	return &UserGormRepository{base{db: db, timeout: timeout}}
}

var _ user.Repository = (*UserGormRepository)(nil)

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return translate(db.Create(u).Error)
}

func (r *UserGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var u models.User
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var u models.User
	if err := db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Model(u).
		Select("first_name", "last_name", "phone", "profile_image").
		Updates(u)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, id).Error; err != nil {
			return err
		}

		var profile models.TrainerProfile
		err := tx.Where("user_id = ?", id).First(&profile).Error
		switch {
		case err == nil:
			if err := removeTrainer(tx, &profile, id); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := cancelOpenBookings(tx.Where("user_id = ?", id), id); err != nil {
			return err
		}

		return tx.Delete(&u).Error
	})
	return translate(err)
}

// removeTrainer soft-deletes the profile, drops its availability and
// cancels its open bookings on behalf of actorID.
func removeTrainer(tx *gorm.DB, p *models.TrainerProfile, actorID uint) error {
	if err := tx.
		Where("trainer_profile_id = ?", p.ID).
		Delete(&models.Availability{}).Error; err != nil {
		return err
	}
	if err := cancelOpenBookings(tx.Where("trainer_profile_id = ?", p.ID), actorID); err != nil {
		return err
	}
	return tx.Delete(p).Error
}

func cancelOpenBookings(scope *gorm.DB, actorID uint) error {
	now := time.Now().UTC()
	return scope.
		Model(&models.Booking{}).
		Where("status IN ?", booking.BlockingStatuses()).
		Updates(map[string]any{
			"status":       string(booking.StatusCancelled),
			"cancelled_at": now,
			"cancelled_by": actorID,
		}).Error
}
