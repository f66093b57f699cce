package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mcp-manager/internal/app"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/service"
	"github.com/MKhiriev/mcp-manager/internal/store"
	"github.com/MKhiriev/mcp-manager/internal/utils"
	"github.com/MKhiriev/mcp-manager/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody:             http.StatusBadRequest,
	service.ErrNoServerConfigProvided: http.StatusBadRequest,
	service.ErrUnknownStore:           http.StatusBadRequest,

	store.ErrMalformedConfig: http.StatusInternalServerError,
	store.ErrReadingConfig:   http.StatusInternalServerError,
	store.ErrWritingConfig:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with {"error": "..."} and the status
// mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	msg := err.Error()
	if errors.Is(err, ErrInvalidRequestBody) {
		msg = app.MsgInvalidDataProvided
	}

	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Warn()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}
