package http

import (
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/models"
)

// enabledSocialLinks is the public view of the social links.
func (h *Handler) enabledSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.services.SocialLinksService.GetEnabled(r.Context())
	if err != nil {
		writeError(w, r, err, "get enabled social links failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "social links", links)
}

func (h *Handler) getSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.services.SocialLinksService.Get(r.Context())
	if err != nil {
		writeError(w, r, err, "get social links failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "social links", links)
}

func (h *Handler) saveSocialLinks(w http.ResponseWriter, r *http.Request) {
	var links models.SocialLinks
	if err := decodeJSON(r, &links); err != nil {
		writeError(w, r, err, "save social links: bad request body")
		return
	}

	saved, err := h.services.SocialLinksService.Save(r.Context(), links)
	if err != nil {
		writeError(w, r, err, "save social links failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "social links saved", saved)
}

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list settings failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "settings", settings)
}

func (h *Handler) upsertSetting(w http.ResponseWriter, r *http.Request) {
	var setting models.Setting
	if err := decodeJSON(r, &setting); err != nil {
		writeError(w, r, err, "upsert setting: bad request body")
		return
	}

	saved, err := h.services.SettingService.Upsert(r.Context(), setting)
	if err != nil {
		writeError(w, r, err, "upsert setting failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "setting saved", saved)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list users failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "users", users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err, "create user: bad request body")
		return
	}

	created, err := h.services.UserService.Create(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "create user failed")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "user created", created)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, "delete user")
		return
	}

	if err = h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "delete user failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "user deleted", nil)
}
