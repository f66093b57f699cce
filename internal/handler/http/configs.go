package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/mcp-manager/internal/service"
	"github.com/MKhiriev/mcp-manager/internal/utils"
	"github.com/MKhiriev/mcp-manager/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getMergedConfig(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.ConfigService.GetMergedConfig(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) getSecondaryConfig(w http.ResponseWriter, r *http.Request) {
	h.writeRawConfig(w, r, service.StoreSecondary)
}

func (h *Handler) getConfigByStore(w http.ResponseWriter, r *http.Request) {
	h.writeRawConfig(w, r, chi.URLParam(r, "store"))
}

func (h *Handler) writeRawConfig(w http.ResponseWriter, r *http.Request, store string) {
	doc, err := h.services.ConfigService.GetRawConfig(r.Context(), store)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) saveConfigs(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	result, err := h.services.ConfigService.SaveConfig(r.Context(), req.MCPServers)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
