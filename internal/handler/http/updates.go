package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/mcp-manager/internal/utils"
)

// getServerUpdates runs a full update scan. A client that goes away does not
// stop the lookups already in flight.
func (h *Handler) getServerUpdates(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	report, err := h.services.UpdateService.ScanForUpdates(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
