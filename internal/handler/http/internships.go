package http

import (
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/models"
)

// activeInternships is the public listing, optionally narrowed by ?category=.
func (h *Handler) activeInternships(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))

	internships, err := h.services.InternshipService.ListActive(r.Context(), category)
	if err != nil {
		writeError(w, r, err, "list active internships failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "internships", internships)
}

func (h *Handler) listInternships(w http.ResponseWriter, r *http.Request) {
	internships, err := h.services.InternshipService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list internships failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "internships", internships)
}

func (h *Handler) createInternship(w http.ResponseWriter, r *http.Request) {
	var internship models.Internship
	if err := decodeJSON(r, &internship); err != nil {
		writeError(w, r, err, "create internship: bad request body")
		return
	}

	created, err := h.services.InternshipService.Create(r.Context(), internship)
	if err != nil {
		writeError(w, r, err, "create internship failed")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "internship created", created)
}

func (h *Handler) updateInternship(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, "update internship")
		return
	}

	var update models.InternshipUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "update internship: bad request body")
		return
	}

	updated, err := h.services.InternshipService.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, "update internship failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "internship updated", updated)
}

func (h *Handler) deleteInternship(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, "delete internship")
		return
	}

	if err = h.services.InternshipService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "delete internship failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "internship deleted", nil)
}
