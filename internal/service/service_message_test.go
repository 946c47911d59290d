package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/mock"
	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMessageSvc(t *testing.T) (*messageService, *mock.MockMessageRepository) {
	t.Helper()
	repo := mock.NewMockMessageRepository(gomock.NewController(t))

	svc := NewMessageService(repo, logger.Nop()).(*messageService)
	svc.now = func() time.Time { return testNow }

	return svc, repo
}

func contactMessage() models.Message {
	return models.Message{Name: "Ada", Email: "ada@example.com", Message: "Tell me about the ML track"}
}

func TestMessageService_Submit_ForcesNewStatus(t *testing.T) {
	svc, repo := newTestMessageSvc(t)

	submitted := contactMessage()
	submitted.ID = 99
	submitted.Status = models.MessageStatusReplied
	submitted.CreatedAt = time.Unix(0, 0)

	repo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.Message) (models.Message, error) {
			assert.Zero(t, m.ID)
			assert.Equal(t, models.MessageStatusNew, m.Status)
			assert.Equal(t, testNow, m.CreatedAt)
			m.ID = 1
			return m, nil
		},
	)

	created, err := svc.Submit(context.Background(), submitted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestMessageService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *models.Message)
	}{
		{name: "missing name", mutate: func(m *models.Message) { m.Name = "" }},
		{name: "malformed email", mutate: func(m *models.Message) { m.Email = "ada-at-example" }},
		{name: "missing message", mutate: func(m *models.Message) { m.Message = " " }},
		{name: "unknown status", mutate: func(m *models.Message) { m.Status = "archived" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestMessageSvc(t)

			m := contactMessage()
			tt.mutate(&m)

			_, err := svc.Create(context.Background(), m)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestMessageService_Update_MergesPartialPatch(t *testing.T) {
	svc, repo := newTestMessageSvc(t)
	ctx := context.Background()

	stored := contactMessage()
	stored.ID = 4
	stored.Phone = "+1 555 0100"
	stored.Status = models.MessageStatusNew
	stored.CreatedAt = testNow.Add(-48 * time.Hour)

	newName := "Ada Lovelace"
	repo.EXPECT().GetMessage(ctx, int64(4)).Return(stored, nil)
	repo.EXPECT().UpdateMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.Message) (models.Message, error) {
			assert.Equal(t, int64(4), m.ID)
			assert.Equal(t, "Ada Lovelace", m.Name)
			assert.Equal(t, "+1 555 0100", m.Phone)
			assert.Equal(t, stored.CreatedAt, m.CreatedAt)
			return m, nil
		},
	)

	updated, err := svc.Update(ctx, 4, models.MessageUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)
}

func TestMessageService_SetStatus(t *testing.T) {
	for _, status := range []models.MessageStatus{models.MessageStatusRead, models.MessageStatusReplied, models.MessageStatusNew} {
		t.Run(string(status), func(t *testing.T) {
			svc, repo := newTestMessageSvc(t)

			stored := contactMessage()
			stored.ID = 4
			stored.Status = models.MessageStatusReplied

			repo.EXPECT().GetMessage(gomock.Any(), int64(4)).Return(stored, nil)
			repo.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, m models.Message) (models.Message, error) { return m, nil },
			)

			updated, err := svc.SetStatus(context.Background(), 4, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		})
	}
}

func TestMessageService_SetStatus_Invalid(t *testing.T) {
	svc, _ := newTestMessageSvc(t)

	_, err := svc.SetStatus(context.Background(), 4, "spam")
	require.ErrorIs(t, err, ErrValidation)
}

func TestMessageService_NotFound(t *testing.T) {
	svc, repo := newTestMessageSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetMessage(ctx, int64(404)).Return(models.Message{}, store.ErrNotFound)
	_, err := svc.Update(ctx, 404, models.MessageUpdate{})
	require.ErrorIs(t, err, ErrNotFound)

	repo.EXPECT().DeleteMessage(ctx, int64(404)).Return(store.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, 404), ErrNotFound)
}

func TestMessageService_List_RejectsUnknownStatusFilter(t *testing.T) {
	svc, _ := newTestMessageSvc(t)

	_, err := svc.List(context.Background(), models.MessageFilter{Status: "archived"})
	require.ErrorIs(t, err, ErrValidation)
}
