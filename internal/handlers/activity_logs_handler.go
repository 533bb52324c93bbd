package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

type ActivityLogsHandler struct {
	store *store.Store
}

func NewActivityLogsHandler(st *store.Store) *ActivityLogsHandler {
	return &ActivityLogsHandler{store: st}
}

// List returns the company's activity trail, optionally narrowed by action
// and entity type. Attribution is by acting user, never by the entity.
func (h *ActivityLogsHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)

	logs, err := h.store.ActivityLogs(c.Request.Context(), companyID, store.ActivityLogFilter{
		Action:     c.Query("action"),
		EntityType: c.Query("entity"),
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.List(c, logs)
}
