package memory

import (
	"context"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var _ audit.Repository = (*Store)(nil)

func (s *Store) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	log.ID = s.id()
	if log.CreatedAt.IsZero() {
		log.CreatedAt = s.now()
	}
	s.auditLogs = append(s.auditLogs, *log)
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, f audit.ListFilter) ([]models.AuditLog, int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	var out []models.AuditLog
	// newest first
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		l := s.auditLogs[i]
		if l.UserID == nil || *l.UserID != f.UserID {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && l.CreatedAt.After(*f.To) {
			continue
		}
		out = append(out, l)
	}
	return paginate(out, f.Page), int64(len(out)), nil
}
