package http

import (
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/models"
)

// submitMessage is the public contact form.
func (h *Handler) submitMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := decodeJSON(r, &message); err != nil {
		writeError(w, r, err, "submit message: bad request body")
		return
	}

	saved, err := h.services.MessageService.Submit(r.Context(), message)
	if err != nil {
		writeError(w, r, err, "submit message failed")
		return
	}

	logger.FromRequest(r).Info().Int64("message_id", saved.ID).Msg("contact message received")
	utils.WriteSuccess(w, http.StatusCreated, "message sent", saved)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	filter := models.MessageFilter{Status: models.MessageStatus(r.URL.Query().Get("status"))}

	messages, err := h.services.MessageService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "list messages failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "messages", messages)
}

func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := decodeJSON(r, &message); err != nil {
		writeError(w, r, err, "create message: bad request body")
		return
	}

	created, err := h.services.MessageService.Create(r.Context(), message)
	if err != nil {
		writeError(w, r, err, "create message failed")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "message created", created)
}

func (h *Handler) updateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, "update message")
		return
	}

	var update models.MessageUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "update message: bad request body")
		return
	}

	updated, err := h.services.MessageService.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, "update message failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "message updated", updated)
}

type messageStatusRequest struct {
	Status models.MessageStatus `json:"status"`
}

func (h *Handler) setMessageStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, "set message status")
		return
	}

	var req messageStatusRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "set message status: bad request body")
		return
	}

	updated, err := h.services.MessageService.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, r, err, "set message status failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "message status updated", updated)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, "delete message")
		return
	}

	if err = h.services.MessageService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "delete message failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "message deleted", nil)
}

func (h *Handler) exportMessages(w http.ResponseWriter, r *http.Request) {
	h.writeCSV(w, r, "messages.csv", h.services.ExportService.ExportMessages)
}
