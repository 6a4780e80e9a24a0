package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type BookingGormRepository struct {
	base
}

func NewBookingGormRepository(db *gorm.DB, timeout time.Duration) *BookingGormRepository {
	return &BookingGormRepository{base{db: db, timeout: timeout}}
}

var _ booking.Repository = (*BookingGormRepository)(nil)

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockTrainer(tx, b.TrainerProfileID); err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"trainer_profile_id = ? AND status IN ? AND starts_at < ? AND ends_at > ?",
				b.TrainerProfileID,
				booking.BlockingStatuses(),
				b.EndsAt,
				b.StartsAt,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrOverlap
		}

		return tx.Omit(clause.Associations).Create(b).Error
	})
	return translate(err)
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var b models.Booking
	if err := withRelations(db).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	b *models.Booking,
	from booking.Status,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, string(from)).
		Updates(map[string]any{
			"status":       b.Status,
			"confirmed_at": b.ConfirmedAt,
			"completed_at": b.CompletedAt,
			"cancelled_at": b.CancelledAt,
			"cancelled_by": b.CancelledBy,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&models.Booking{}).Where("id = ?", b.ID).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrStale
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
	f booking.ListFilter,
) ([]models.Booking, int64, error) {
	return r.list(ctx, f, "user_id = ?", userID)
}

func (r *BookingGormRepository) ListBookingsForTrainer(
	ctx context.Context,
	trainerID uint,
	f booking.ListFilter,
) ([]models.Booking, int64, error) {
	return r.list(ctx, f, "trainer_profile_id = ?", trainerID)
}

func (r *BookingGormRepository) list(
	ctx context.Context,
	f booking.ListFilter,
	owner string,
	ownerID uint,
) ([]models.Booking, int64, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Model(&models.Booking{}).Where(owner, ownerID)
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var bookings []models.Booking
	if err := withRelations(q).
		Order("starts_at DESC, id DESC").
		Limit(f.Page.Limit).
		Offset(f.Page.Offset()).
		Find(&bookings).Error; err != nil {
		return nil, 0, translate(err)
	}

	return bookings, total, nil
}

// withRelations preloads both parties, including soft-deleted ones, so
// history stays readable.
func withRelations(q *gorm.DB) *gorm.DB {
	unscoped := func(db *gorm.DB) *gorm.DB { return db.Unscoped() }
	return q.
		Preload("User", unscoped).
		Preload("TrainerProfile", unscoped).
		Preload("TrainerProfile.User", unscoped)
}
