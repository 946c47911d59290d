package http

import (
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/utils"
)

// adminLogin is the entry point of the admin UI sign-in. The page itself is
// rendered client-side; the server only confirms the route exists.
func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "admin login", nil)
}

// adminHome is only reachable through the adminPage guard.
func (h *Handler) adminHome(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, adminLoginPath, http.StatusSeeOther)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "admin area", map[string]any{
		"email":     session.Identifier,
		"role":      session.Role,
		"expiresAt": session.ExpiresAt,
	})
}
