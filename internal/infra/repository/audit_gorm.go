package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type AuditGormRepository struct {
	base
}

func NewAuditGormRepository(db *gorm.DB, timeout time.Duration) *AuditGormRepository {
	return &AuditGormRepository{base{db: db, timeout: timeout}}
}

var _ audit.Repository = (*AuditGormRepository)(nil)

func (r *AuditGormRepository) CreateAuditLog(
	ctx context.Context,
	log *models.AuditLog,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return translate(db.Create(log).Error)
}

func (r *AuditGormRepository) ListAuditLogs(
	ctx context.Context,
	f audit.ListFilter,
) ([]models.AuditLog, int64, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Model(&models.AuditLog{}).Where("user_id = ?", f.UserID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Page.Limit).
		Offset(f.Page.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, translate(err)
	}
	return logs, total, nil
}
