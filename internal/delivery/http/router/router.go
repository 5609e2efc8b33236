// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	StatsHandler   *handler.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	statsHandler   *handler.StatsHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		statsHandler:   params.StatsHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.statsHandler.Root)

	api := e.Group("/api")
	{
		// Public endpoints
		api.GET("/health", r.statsHandler.HealthCheck)
		api.GET("/stats", r.statsHandler.GetStats)
		api.POST("/signup", r.userHandler.SignUp)
		api.POST("/signin", r.userHandler.SignIn)
	}

	// Endpoints that require a valid access token
	authed := e.Group("/api")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/profile", r.userHandler.GetProfile)
		authed.GET("/users", r.userHandler.ListUsers)
	}
}
