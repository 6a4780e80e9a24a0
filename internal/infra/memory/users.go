package memory

import (
	"context"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/user"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var _ user.Repository = (*Store)(nil)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	for _, existing := range s.users {
		if !existing.DeletedAt.Valid && existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}

	now := s.now()
	u.ID = s.id()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = *u
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, u := range s.users {
		if !u.DeletedAt.Valid && u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	u, ok := s.activeUser(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	stored, ok := s.activeUser(u.ID)
	if !ok {
		return domain.ErrNotFound
	}
	u.CreatedAt = stored.CreatedAt
	u.UpdatedAt = s.now()
	s.users[u.ID] = *u
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	u, ok := s.activeUser(id)
	if !ok {
		return domain.ErrNotFound
	}

	now := s.now()
	u.DeletedAt = deletedAt(now)
	s.users[id] = u

	for _, p := range s.trainers {
		if p.UserID == id && !p.DeletedAt.Valid {
			s.deleteTrainer(p, id)
		}
	}
	for bid, b := range s.bookings {
		if b.UserID == id {
			s.bookings[bid] = cancelOpen(b, id, now)
		}
	}
	return nil
}

func (s *Store) activeUser(id uint) (models.User, bool) {
	u, ok := s.users[id]
	if !ok || u.DeletedAt.Valid {
		return models.User{}, false
	}
	return u, true
}
