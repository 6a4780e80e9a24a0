package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/httpresp"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
)

type AuditLogsHandler struct {
	repo audit.Repository
}

func NewAuditLogsHandler(repo audit.Repository) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

// List returns the caller's own audit trail, newest first. from/to are
// YYYY-MM-DD days; unparsable values are ignored.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.ListFilter{
		UserID: middleware.Identity(c).UserID,
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   pageQuery(c),
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			f.From = &from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			end := to.Add(24 * time.Hour)
			f.To = &end
		}
	}

	logs, total, err := h.repo.ListAuditLogs(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, "list_audit_logs", err)
		return
	}

	httpresp.Paginated(c, dto.NewPage(logs, f.Page, total))
}
