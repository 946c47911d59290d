package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err, "login: bad request body")
		return
	}

	loginData, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	if err = h.saveCookieToken(w, r, loginData.Token); err != nil {
		writeError(w, r, err, "login: saving cookie session failed")
		return
	}

	log.Info().Int64("account_id", loginData.User.ID).Msg("admin signed in")
	utils.WriteSuccess(w, http.StatusOK, "login successful", loginData)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession, "me")
		return
	}

	account, err := h.services.AuthService.Account(r.Context(), session.AccountID)
	if err != nil {
		writeError(w, r, err, "me: account lookup failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "current user", account.View())
}

// logout revokes the session and clears the cookie. Logging out twice is not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession, "logout")
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), session); err != nil {
		writeError(w, r, err, "logout: revoking session failed")
		return
	}

	if err := h.clearCookieToken(w, r); err != nil {
		writeError(w, r, err, "logout: clearing cookie session failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "logged out", nil)
}

func (h *Handler) updateIdentifier(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession, "update identifier")
		return
	}

	var change models.IdentifierChange
	if err := decodeJSON(r, &change); err != nil {
		writeError(w, r, err, "update identifier: bad request body")
		return
	}

	loginData, err := h.services.AuthService.UpdateIdentifier(r.Context(), session.Identifier, change.NewIdentifier)
	if err != nil {
		writeError(w, r, err, "update identifier failed")
		return
	}

	if err = h.saveCookieToken(w, r, loginData.Token); err != nil {
		writeError(w, r, err, "update identifier: saving cookie session failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "email updated", loginData)
}

func (h *Handler) updateSecret(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession, "update secret")
		return
	}

	var change models.SecretChange
	if err := decodeJSON(r, &change); err != nil {
		writeError(w, r, err, "update secret: bad request body")
		return
	}

	if err := h.services.AuthService.UpdateSecret(r.Context(), session.Identifier, change); err != nil {
		writeError(w, r, err, "update secret failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "password updated", nil)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AuthService.ListAccounts(r.Context())
	if err != nil {
		writeError(w, r, err, "list accounts failed")
		return
	}

	views := make([]models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}

	utils.WriteSuccess(w, http.StatusOK, "accounts", views)
}

func (h *Handler) saveCookieToken(w http.ResponseWriter, r *http.Request, token string) error {
	cookieSession, _ := h.cookies.Get(r, adminCookieName)
	cookieSession.Values[adminCookieTokenKey] = token
	if err := cookieSession.Save(r, w); err != nil {
		return fmt.Errorf("error saving cookie session: %w", err)
	}
	return nil
}

func (h *Handler) clearCookieToken(w http.ResponseWriter, r *http.Request) error {
	cookieSession, _ := h.cookies.Get(r, adminCookieName)
	delete(cookieSession.Values, adminCookieTokenKey)
	cookieSession.Options.MaxAge = -1
	if err := cookieSession.Save(r, w); err != nil {
		return fmt.Errorf("error clearing cookie session: %w", err)
	}
	return nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
