// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearby/internal/delivery/http/middleware"
	"nearby/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler  *handler.LocationHandler
	ProximityHandler *handler.ProximityHandler
	PresenceHandler  *handler.PresenceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler  *handler.LocationHandler
	proximityHandler *handler.ProximityHandler
	presenceHandler  *handler.PresenceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:  params.LocationHandler,
		proximityHandler: params.ProximityHandler,
		presenceHandler:  params.PresenceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location reporting and sharing toggles
	locationGroup := e.Group("/location")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.POST("", r.locationHandler.ReportLocation)
		locationGroup.PUT("/sharing", r.locationHandler.SetSharing)
		locationGroup.GET("", r.locationHandler.GetLocation)
	}

	// Proximity feeds
	nearbyGroup := e.Group("/nearby")
	nearbyGroup.Use(r.authMiddleware.Authenticate)
	{
		nearbyGroup.GET("/friends", r.proximityHandler.NearbyFriends)
		nearbyGroup.GET("/events", r.proximityHandler.NearbyEvents)
	}

	// Presence sessions and snapshots. The websocket dial authenticates via
	// the access_token query param fallback in the auth middleware.
	presenceGroup := e.Group("/presence")
	presenceGroup.Use(r.authMiddleware.Authenticate)
	{
		presenceGroup.GET("", r.presenceHandler.FriendPresence)
		presenceGroup.GET("/ws", r.presenceHandler.Connect)
	}
}
