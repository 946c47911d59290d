package http

import (
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/models"
	"github.com/go-chi/chi/v5"
)

// verifyCertificate is the public lookup. The certificate id matches regardless of case.
func (h *Handler) verifyCertificate(w http.ResponseWriter, r *http.Request) {
	certificate, err := h.services.CertificateService.Verify(r.Context(), chi.URLParam(r, "certId"))
	if err != nil {
		writeError(w, r, err, "verify certificate failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "certificate is valid", certificate)
}

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.services.CertificateService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list certificates failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "certificates", certificates)
}

func (h *Handler) createCertificate(w http.ResponseWriter, r *http.Request) {
	var certificate models.Certificate
	if err := decodeJSON(r, &certificate); err != nil {
		writeError(w, r, err, "create certificate: bad request body")
		return
	}

	created, err := h.services.CertificateService.Create(r.Context(), certificate)
	if err != nil {
		writeError(w, r, err, "create certificate failed")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "certificate created", created)
}

func (h *Handler) updateCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, "update certificate")
		return
	}

	var update models.CertificateUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "update certificate: bad request body")
		return
	}

	updated, err := h.services.CertificateService.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, "update certificate failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "certificate updated", updated)
}

func (h *Handler) deleteCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, "delete certificate")
		return
	}

	if err = h.services.CertificateService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "delete certificate failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "certificate deleted", nil)
}

func (h *Handler) exportCertificates(w http.ResponseWriter, r *http.Request) {
	h.writeCSV(w, r, "certificates.csv", h.services.ExportService.ExportCertificates)
}
