// Package memory is a process-local store implementing every repository
// port. It serves STORE_DRIVER=memory and the test suites, and keeps the
// same atomicity guarantees as the postgres repositories by running each
// operation under one mutex.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type Store struct {
	mu     sync.Mutex
	nextID uint
	now    func() time.Time

	users     map[uint]models.User
	trainers  map[uint]models.TrainerProfile
	slots     map[uint]models.Availability
	bookings  map[uint]models.Booking
	reviews   map[uint]models.Review
	auditLogs []models.AuditLog
}

func New() *Store {
	return &Store{
		now:      time.Now,
		users:    map[uint]models.User{},
		trainers: map[uint]models.TrainerProfile{},
		slots:    map[uint]models.Availability{},
		bookings: map[uint]models.Booking{},
		reviews:  map[uint]models.Review{},
	}
}

func (s *Store) lock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrStoreUnavailable, err)
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func deletedAt(t time.Time) gorm.DeletedAt {
	return gorm.DeletedAt{Time: t, Valid: true}
}

func paginate[T any](items []T, page dto.PageRequest) []T {
	start := page.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
