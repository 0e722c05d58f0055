package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nearby/config"
	"nearby/internal/delivery/http/middleware"
	"nearby/internal/delivery/http/response"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	presenceWriteWait       = 10 * time.Second
	defaultPresencePongWait = 60 * time.Second
	presencePublishTimeout  = 5 * time.Second
)

var presenceUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// PresenceHandlerParams holds dependencies for PresenceHandler, injected by Fx.
type PresenceHandlerParams struct {
	fx.In

	Config      *config.Config
	Tracker     service.PresenceTracker
	Publisher   service.ChangePublisher
	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// PresenceHandler owns the presence websocket and the friend-presence
// snapshot endpoint. A user is online while at least one socket is open;
// the tracker reference-counts sessions so parallel tabs collapse into a
// single online status.
type PresenceHandler struct {
	tracker     service.PresenceTracker
	publisher   service.ChangePublisher
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger

	pingInterval time.Duration
	pongWait     time.Duration
}

// NewPresenceHandler is the constructor for PresenceHandler
func NewPresenceHandler(params PresenceHandlerParams) *PresenceHandler {
	pongWait := defaultPresencePongWait
	if params.Config.Presence != nil && params.Config.Presence.PongTimeout > 0 {
		pongWait = params.Config.Presence.PongTimeout
	}

	pingInterval := (pongWait * 9) / 10
	if params.Config.Presence != nil && params.Config.Presence.PingInterval > 0 {
		pingInterval = params.Config.Presence.PingInterval
	}

	return &PresenceHandler{
		tracker:      params.Tracker,
		publisher:    params.Publisher,
		proximityUC:  params.ProximityUC,
		logger:       params.Logger,
		pingInterval: pingInterval,
		pongWait:     pongWait,
	}
}

// FriendPresence returns the online/offline status of the viewer's friends
func (h *PresenceHandler) FriendPresence(c echo.Context) error {
	viewerID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	statuses, err := h.proximityUC.FriendPresence(c.Request().Context(), viewerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, statuses, "Friend presence retrieved")
}

// Connect upgrades the request to a websocket presence session. The socket
// carries no application payload; its lifetime is the signal. Clients that
// stop answering pings are deregistered after the pong deadline lapses.
func (h *PresenceHandler) Connect(c echo.Context) error {
	viewerID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	conn, err := presenceUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}
	defer conn.Close()

	sessionID, becameOnline := h.tracker.Register(viewerID)
	if becameOnline {
		h.publishPresenceChange(viewerID)
	}
	defer func() {
		if becameOffline := h.tracker.Deregister(viewerID, sessionID); becameOffline {
			h.publishPresenceChange(viewerID)
		}
	}()

	h.logger.LogAttrs(c.Request().Context(), slog.LevelDebug, "presence session opened",
		slog.String("userID", viewerID.String()),
		slog.String("sessionID", sessionID.String()),
	)

	conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go h.pingLoop(conn, done)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	return nil
}

// pingLoop keeps an otherwise idle socket alive until the reader exits.
func (h *PresenceHandler) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(presenceWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// publishPresenceChange fans out an online/offline transition fire-and-forget.
// A failed publish degrades push freshness, never presence tracking itself.
func (h *PresenceHandler) publishPresenceChange(userID uuid.UUID) {
	event := &service.ChangeEvent{
		Kind:       service.ChangeKindPresence,
		UserID:     userID.String(),
		OccurredAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), presencePublishTimeout)
		defer cancel()

		if err := h.publisher.PublishChange(ctx, event); err != nil {
			h.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish presence change",
				slog.String("topic", event.Topic()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// getUserID extracts the authenticated viewer from the context
func (h *PresenceHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *PresenceHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
