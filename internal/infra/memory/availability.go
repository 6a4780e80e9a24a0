package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/availability"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var _ availability.Repository = (*Store)(nil)

func (s *Store) ListSlots(ctx context.Context, trainerID uint, activeOnly bool) ([]models.Availability, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.trainerSlots(trainerID, activeOnly), nil
}

func (s *Store) GetSlot(ctx context.Context, slotID uint) (*models.Availability, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	slot, ok := s.slots[slotID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &slot, nil
}

func (s *Store) CreateSlot(ctx context.Context, slot *models.Availability) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if slot.IsActive && availability.ConflictsWith(*slot, s.trainerSlots(slot.TrainerProfileID, true)) {
		return domain.ErrOverlap
	}

	now := s.now()
	slot.ID = s.id()
	slot.CreatedAt = now
	slot.UpdatedAt = now
	s.slots[slot.ID] = *slot
	return nil
}

func (s *Store) SetSlotActive(ctx context.Context, slot *models.Availability, active bool) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	stored, ok := s.slots[slot.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if active && availability.ConflictsWith(stored, s.trainerSlots(stored.TrainerProfileID, true)) {
		return domain.ErrOverlap
	}

	stored.IsActive = active
	stored.UpdatedAt = s.now()
	s.slots[slot.ID] = stored
	*slot = stored
	return nil
}

func (s *Store) DeleteSlot(ctx context.Context, slotID uint) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.slots[slotID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.slots, slotID)
	return nil
}

func (s *Store) trainerSlots(trainerID uint, activeOnly bool) []models.Availability {
	out := []models.Availability{}
	for _, slot := range s.slots {
		if slot.TrainerProfileID != trainerID {
			continue
		}
		if activeOnly && !slot.IsActive {
			continue
		}
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool {
		di := availability.Day(out[i].Day).Index()
		dj := availability.Day(out[j].Day).Index()
		if di != dj {
			return di < dj
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}
