package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type base struct {
	db      *gorm.DB
	timeout time.Duration
}

// conn returns a session bound to a per-call deadline.
func (b base) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if b.timeout <= 0 {
		return b.db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	return b.db.WithContext(ctx), cancel
}

// translate maps driver errors onto domain sentinels. Errors that are
// already sentinels pass through.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.ErrDuplicate
		case pgExclusionViolation:
			return domain.ErrOverlap
		}
		return err
	}

	if unavailable(err) {
		return fmt.Errorf("%w: %v", httperr.ErrStoreUnavailable, err)
	}
	return err
}

func unavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || pgconn.Timeout(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// lockTrainer takes a row lock on the trainer profile for the rest of tx.
// Writers that check-then-insert for one trainer serialize on it.
func lockTrainer(tx *gorm.DB, trainerID uint) (*models.TrainerProfile, error) {
	var p models.TrainerProfile
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, trainerID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
