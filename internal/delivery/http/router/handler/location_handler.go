// Package handler contains the echo handlers for the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"nearby/internal/delivery/http/middleware"
	"nearby/internal/delivery/http/response"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest represents the request body for a position report
type ReportLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	IsSharing bool    `json:"is_sharing"`
}

// SetSharingRequest represents the request body for the ghost-mode toggle
type SetSharingRequest struct {
	IsSharing *bool `json:"is_sharing" validate:"required"`
}

// LocationResponse is the caller's own stored row.
type LocationResponse struct {
	UserID      uuid.UUID           `json:"user_id"`
	Coordinates *entity.Coordinates `json:"coordinates"`
	IsSharing   bool                `json:"is_sharing"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ReportLocation handles a device position report. Accepted and dropped
// reports both answer 202: the device retries on its own cadence either way.
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location report")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	accepted, err := h.locationUC.ReportLocation(c.Request().Context(), userID, &usecase.ReportLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsSharing: req.IsSharing,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]bool{"accepted": accepted}, "Location report received")
}

// SetSharing handles the ghost-mode toggle
func (h *LocationHandler) SetSharing(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req SetSharingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sharing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.locationUC.SetSharing(c.Request().Context(), userID, *req.IsSharing)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location), "Sharing preference updated")
}

// GetLocation handles retrieving the caller's own stored row
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location), "Location retrieved")
}

func toLocationResponse(location *entity.UserLocation) *LocationResponse {
	if location == nil {
		return nil
	}

	return &LocationResponse{
		UserID:      location.UserID,
		Coordinates: location.Coordinates(),
		IsSharing:   location.IsSharing,
		UpdatedAt:   location.UpdatedAt,
	}
}

// getUserID extracts the authenticated viewer from the context
func (h *LocationHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
