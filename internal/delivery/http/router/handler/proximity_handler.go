package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nearby/internal/delivery/http/middleware"
	"nearby/internal/delivery/http/response"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// ProximityHandler serves the nearby-friends and nearby-events feeds.
type ProximityHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// NearbyFriends handles the friends-on-a-map query
func (h *ProximityHandler) NearbyFriends(c echo.Context) error {
	viewerID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	results, err := h.proximityUC.NearbyFriends(c.Request().Context(), viewerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Nearby friends retrieved")
}

// NearbyEvents handles the nearby-events query. radius_km is optional; zero
// or absent selects the configured default.
func (h *ProximityHandler) NearbyEvents(c echo.Context) error {
	viewerID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm < 0 {
			return response.BadRequest(c, "INVALID_RADIUS", "radius_km must be a non-negative number")
		}
	}

	results, err := h.proximityUC.NearbyEvents(c.Request().Context(), viewerID, radiusKm)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Nearby events retrieved")
}

// getUserID extracts the authenticated viewer from the context
func (h *ProximityHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *ProximityHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
