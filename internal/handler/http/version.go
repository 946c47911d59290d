package http

import (
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/utils"
)

// liveness answers GET /api/test.
func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "API is working", nil)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "server version", h.services.AppInfoService.GetAppVersion(r.Context()))
}
