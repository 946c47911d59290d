package http

import (
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/models"
)

// adminLoginPath is where unauthenticated visitors of the admin UI are sent.
const adminLoginPath = "/admin/login"

// auth is the session guard of the admin API.
//
// The session token is taken from the "Authorization: Bearer <token>" header
// or, when the header is absent, from the admin cookie session. A missing,
// malformed, expired or revoked token is rejected with 401 Unauthorized.
// On success the resolved [models.Session] is stored in the request context
// (see [utils.GetSessionFromContext]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := h.resolveSession(r)
		if err != nil {
			writeError(w, r, err, "request rejected by session guard")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}

// adminPage guards the admin UI. Instead of a 401 it redirects to the login page.
func (h *Handler) adminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := h.resolveSession(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("path", r.URL.Path).Msg("redirecting to admin login")
			http.Redirect(w, r, adminLoginPath, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}

func (h *Handler) resolveSession(r *http.Request) (models.Session, error) {
	token, err := h.sessionToken(r)
	if err != nil {
		return models.Session{}, err
	}
	return h.services.AuthService.ValidateSession(r.Context(), token)
}

// sessionToken extracts the raw session token from the request.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return token, nil
	}

	// a cookie that fails authentication yields a fresh, empty session
	cookieSession, _ := h.cookies.Get(r, adminCookieName)
	if token, ok := cookieSession.Values[adminCookieTokenKey].(string); ok && token != "" {
		return token, nil
	}

	return "", ErrNoSessionToken
}
