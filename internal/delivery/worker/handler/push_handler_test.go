package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nearby/internal/domain/service"
	mockRepo "nearby/internal/mocks/repository"
	mockSvc "nearby/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushRequestBody(t *testing.T, event *service.ChangeEvent) *bytes.Buffer {
	t.Helper()

	eventData, err := json.Marshal(event)
	require.NoError(t, err)

	pushMsg := PubSubMessage{
		Subscription: "projects/test/subscriptions/change-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.New().String()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return bytes.NewBuffer(body)
}

func servePush(t *testing.T, h *PushHandler, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))

	return rec
}

func TestPushHandler_FansOutToFriends(t *testing.T) {
	moverID := uuid.New()
	friendA := uuid.New()
	friendB := uuid.New()

	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	friendshipRepo.EXPECT().
		ListAcceptedFriendIDs(mock.Anything, moverID).
		Return([]uuid.UUID{friendA, friendB}, nil).
		Once()

	notificationSvc := mockSvc.NewMockNotificationService(t)
	for _, friendID := range []uuid.UUID{friendA, friendB} {
		notificationSvc.EXPECT().
			SendToUser(mock.Anything, friendID, mock.MatchedBy(func(data map[string]string) bool {
				return data["kind"] == "location" && data["user_id"] == moverID.String()
			})).
			Return(nil).
			Once()
	}

	h := &PushHandler{
		logger:          slog.Default(),
		friendshipRepo:  friendshipRepo,
		notificationSvc: notificationSvc,
	}

	event := &service.ChangeEvent{
		Kind:       service.ChangeKindLocation,
		UserID:     moverID.String(),
		OccurredAt: time.Now(),
	}

	rec := servePush(t, h, pushRequestBody(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RepositoryFailureIsRetried(t *testing.T) {
	moverID := uuid.New()

	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	friendshipRepo.EXPECT().
		ListAcceptedFriendIDs(mock.Anything, moverID).
		Return(nil, errors.New("connection refused")).
		Once()

	h := &PushHandler{
		logger:          slog.Default(),
		friendshipRepo:  friendshipRepo,
		notificationSvc: mockSvc.NewMockNotificationService(t),
	}

	event := &service.ChangeEvent{
		Kind:       service.ChangeKindLocation,
		UserID:     moverID.String(),
		OccurredAt: time.Now(),
	}

	rec := servePush(t, h, pushRequestBody(t, event))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PartialSendFailureIsRetried(t *testing.T) {
	moverID := uuid.New()
	friendA := uuid.New()
	friendB := uuid.New()

	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	friendshipRepo.EXPECT().
		ListAcceptedFriendIDs(mock.Anything, moverID).
		Return([]uuid.UUID{friendA, friendB}, nil).
		Once()

	notificationSvc := mockSvc.NewMockNotificationService(t)
	notificationSvc.EXPECT().
		SendToUser(mock.Anything, friendA, mock.Anything).
		Return(nil).
		Once()
	notificationSvc.EXPECT().
		SendToUser(mock.Anything, friendB, mock.Anything).
		Return(errors.New("fcm unavailable")).
		Once()

	h := &PushHandler{
		logger:          slog.Default(),
		friendshipRepo:  friendshipRepo,
		notificationSvc: notificationSvc,
	}

	event := &service.ChangeEvent{
		Kind:       service.ChangeKindPresence,
		UserID:     moverID.String(),
		OccurredAt: time.Now(),
	}

	rec := servePush(t, h, pushRequestBody(t, event))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedUserIDIsNotRetried(t *testing.T) {
	h := &PushHandler{
		logger: slog.Default(),
	}

	event := &service.ChangeEvent{
		Kind:       service.ChangeKindLocation,
		UserID:     "not-a-uuid",
		OccurredAt: time.Now(),
	}

	// Absent mock expectations double as must-not-be-called assertions.
	rec := servePush(t, h, pushRequestBody(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DropsEventWhenPushDisabled(t *testing.T) {
	h := &PushHandler{
		logger:         slog.Default(),
		friendshipRepo: mockRepo.NewMockFriendshipRepository(t),
	}

	event := &service.ChangeEvent{
		Kind:       service.ChangeKindLocation,
		UserID:     uuid.New().String(),
		OccurredAt: time.Now(),
	}

	rec := servePush(t, h, pushRequestBody(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadBase64IsRejected(t *testing.T) {
	h := &PushHandler{
		logger: slog.Default(),
	}

	pushMsg := PubSubMessage{}
	pushMsg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	rec := servePush(t, h, bytes.NewBuffer(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_RequestIDPrefersAttributes(t *testing.T) {
	h := &PushHandler{logger: slog.Default()}

	pushMsg := &PubSubMessage{}
	pushMsg.Message.Attributes = map[string]string{"request_id": "attr-id"}
	event := &service.ChangeEvent{RequestID: "event-id"}

	got := h.extractRequestID(t.Context(), pushMsg, event)
	assert.Equal(t, "attr-id", got)

	pushMsg.Message.Attributes = nil
	got = h.extractRequestID(t.Context(), pushMsg, event)
	assert.Equal(t, "event-id", got)

	event.RequestID = ""
	got = h.extractRequestID(t.Context(), pushMsg, event)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}
