package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/traineme-api/internal/models"
)

// Logger persists events as audit_logs rows.
type Logger struct {
	repo Repository
}

func New(repo Repository) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Write(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: ev.At,
	}

	return l.repo.CreateAuditLog(ctx, &log)
}
