package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
)

// writeStoreError maps store business errors onto HTTP statuses. Anything
// without a business code is a 500 and gets logged.
func writeStoreError(c *gin.Context, err error) {
	code, ok := httperr.AsBusiness(err)
	if !ok {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("store operation failed")
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch {
	case code == "login_already_exists":
		httperr.Conflict(c, code, "Login already exists.")
	case code == "client_has_appointments":
		httperr.Conflict(c, code, "Cannot delete client with appointments.")
	case code == "invalid_credentials":
		httperr.Unauthorized(c, code, "Invalid login or password.")
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Record not found.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}
