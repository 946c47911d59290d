package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/service"
	"github.com/MKhiriev/skillvance-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitMessage_Public(t *testing.T) {
	messages := &mockMessageService{
		submitFn: func(_ context.Context, message models.Message) (models.Message, error) {
			assert.Equal(t, "Ann", message.Name)
			message.ID = 11
			message.Status = models.MessageStatusNew
			message.CreatedAt = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
			return message, nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	rr := serve(t, h, http.MethodPost, "/api/messages", `{"name":"Ann","email":"ann@example.com","message":"hi","status":"replied"}`, "")

	require.Equal(t, http.StatusCreated, rr.Code)
	data := dataMap(t, decodeEnvelope(t, rr))
	assert.Equal(t, float64(11), data["id"])
	assert.Equal(t, "new", data["status"])
}

func TestSubmitMessage_ValidationError(t *testing.T) {
	messages := &mockMessageService{
		submitFn: func(context.Context, models.Message) (models.Message, error) {
			return models.Message{}, fmt.Errorf("%w: email is required", service.ErrValidation)
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	rr := serve(t, h, http.MethodPost, "/api/messages", `{"name":"Ann"}`, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "email is required")
}

func TestListMessages_PassesStatusFilter(t *testing.T) {
	var got models.MessageFilter
	messages := &mockMessageService{
		listFn: func(_ context.Context, filter models.MessageFilter) ([]models.Message, error) {
			got = filter
			return []models.Message{{ID: 2}, {ID: 1}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	rr := serve(t, h, http.MethodGet, "/api/admin/messages?status=read", "", validToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.MessageStatusRead, got.Status)
	assert.Len(t, decodeEnvelope(t, rr).Data, 2)
}

func TestCreateMessage(t *testing.T) {
	messages := &mockMessageService{
		createFn: func(_ context.Context, message models.Message) (models.Message, error) {
			message.ID = 3
			return message, nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	rr := serve(t, h, http.MethodPost, "/api/admin/messages", `{"name":"Bob","email":"bob@example.com","message":"x"}`, validToken)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestUpdateMessage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "updated", target: "/api/admin/messages/5", wantStatus: http.StatusOK},
		{name: "missing", target: "/api/admin/messages/5", err: service.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "bad id", target: "/api/admin/messages/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", target: "/api/admin/messages/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := &mockMessageService{
				updateFn: func(_ context.Context, id int64, update models.MessageUpdate) (models.Message, error) {
					assert.Equal(t, int64(5), id)
					require.NotNil(t, update.Phone)
					assert.Nil(t, update.Name)
					return models.Message{ID: id, Phone: *update.Phone}, tt.err
				},
			}
			h := newTestHandler(t, &service.Services{MessageService: messages})

			rr := serve(t, h, http.MethodPut, tt.target, `{"phone":"+100"}`, validToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSetMessageStatus(t *testing.T) {
	messages := &mockMessageService{
		setStatusFn: func(_ context.Context, id int64, status models.MessageStatus) (models.Message, error) {
			if !status.Valid() {
				return models.Message{}, fmt.Errorf("%w: bad status", service.ErrValidation)
			}
			return models.Message{ID: id, Status: status}, nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	rr := serve(t, h, http.MethodPatch, "/api/admin/messages/4/status", `{"status":"replied"}`, validToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "replied", dataMap(t, decodeEnvelope(t, rr))["status"])

	rr = serve(t, h, http.MethodPatch, "/api/admin/messages/4/status", `{"status":"archived"}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteMessage(t *testing.T) {
	deleted := map[int64]bool{9: true}
	messages := &mockMessageService{
		deleteFn: func(_ context.Context, id int64) error {
			if !deleted[id] {
				return service.ErrNotFound
			}
			delete(deleted, id)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodDelete, "/api/admin/messages/9", "", validToken).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodDelete, "/api/admin/messages/9", "", validToken).Code)
}

func TestExportMessages(t *testing.T) {
	export := &mockExportService{
		exportMessagesFn: func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "Name,Email\nAnn,ann@example.com\n")
			return err
		},
	}
	h := newTestHandler(t, &service.Services{ExportService: export})

	rr := serve(t, h, http.MethodGet, "/api/admin/messages/export", "", validToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "messages.csv")
	assert.Equal(t, "Name,Email\nAnn,ann@example.com\n", rr.Body.String())
}

func TestExportMessages_FailureIsEnvelope(t *testing.T) {
	export := &mockExportService{
		exportMessagesFn: func(_ context.Context, w io.Writer) error {
			io.WriteString(w, "Name,Email\n")
			return assert.AnError
		},
	}
	h := newTestHandler(t, &service.Services{ExportService: export})

	rr := serve(t, h, http.MethodGet, "/api/admin/messages/export", "", validToken)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}
