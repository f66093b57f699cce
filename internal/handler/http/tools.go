package http

import (
	"net/http"

	"github.com/MKhiriev/mcp-manager/internal/utils"
)

func (h *Handler) getTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.services.ToolService.ListTools(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tools, http.StatusOK)
}
