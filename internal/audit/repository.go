package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type ListFilter struct {
	UserID uint
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   dto.PageRequest
}

type Repository interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f ListFilter) ([]models.AuditLog, int64, error)
}
