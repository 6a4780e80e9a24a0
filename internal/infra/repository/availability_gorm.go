package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/availability"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

const slotOrder = "array_position(ARRAY['Mon','Tue','Wed','Thu','Fri','Sat','Sun']::text[], day::text), start_time, id"

type AvailabilityGormRepository struct {
	base
}

func NewAvailabilityGormRepository(db *gorm.DB, timeout time.Duration) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{base{db: db, timeout: timeout}}
}

var _ availability.Repository = (*AvailabilityGormRepository)(nil)

func (r *AvailabilityGormRepository) ListSlots(
	ctx context.Context,
	trainerID uint,
	activeOnly bool,
) ([]models.Availability, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Where("trainer_profile_id = ?", trainerID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	slots := []models.Availability{}
	if err := q.Order(slotOrder).Find(&slots).Error; err != nil {
		return nil, translate(err)
	}
	return slots, nil
}

func (r *AvailabilityGormRepository) GetSlot(
	ctx context.Context,
	slotID uint,
) (*models.Availability, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var slot models.Availability
	if err := db.First(&slot, slotID).Error; err != nil {
		return nil, translate(err)
	}
	return &slot, nil
}

func (r *AvailabilityGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.Availability,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockTrainer(tx, slot.TrainerProfileID); err != nil {
			return err
		}

		if slot.IsActive {
			existing, err := activeSlotsOn(tx, slot.TrainerProfileID, slot.Day)
			if err != nil {
				return err
			}
			if availability.ConflictsWith(*slot, existing) {
				return domain.ErrOverlap
			}
		}

		return tx.Create(slot).Error
	})
	return translate(err)
}

func (r *AvailabilityGormRepository) SetSlotActive(
	ctx context.Context,
	slot *models.Availability,
	active bool,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockTrainer(tx, slot.TrainerProfileID); err != nil {
			return err
		}

		if active {
			existing, err := activeSlotsOn(tx, slot.TrainerProfileID, slot.Day)
			if err != nil {
				return err
			}
			if availability.ConflictsWith(*slot, existing) {
				return domain.ErrOverlap
			}
		}

		res := tx.Model(slot).Update("is_active", active)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		slot.IsActive = active
		return nil
	})
	return translate(err)
}

func (r *AvailabilityGormRepository) DeleteSlot(
	ctx context.Context,
	slotID uint,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Delete(&models.Availability{}, slotID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func activeSlotsOn(tx *gorm.DB, trainerID uint, day string) ([]models.Availability, error) {
	var slots []models.Availability
	err := tx.
		Where("trainer_profile_id = ? AND day = ? AND is_active = ?", trainerID, day, true).
		Find(&slots).Error
	return slots, err
}
