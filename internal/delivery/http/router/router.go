// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zephyr/internal/delivery/http/middleware"
	"zephyr/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SessionHandler *handler.SessionHandler
	PageHandler    *handler.PageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	sessionHandler *handler.SessionHandler
	pageHandler    *handler.PageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		sessionHandler: params.SessionHandler,
		pageHandler:    params.PageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth API, every route knows its browser and sees the cookie session when there is one
	authGroup := e.Group("/auth")
	authGroup.Use(r.authMiddleware.IdentifyClient, r.authMiddleware.LoadSession)
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/recovery", r.authHandler.Recovery)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.sessionHandler.GetSession)
		authGroup.GET("/session/events", r.sessionHandler.StreamSession)
		authGroup.POST("/session/refresh", r.sessionHandler.RefreshSession)
	}

	// Pages go through the route guard before reaching the frontend
	e.GET("/*", r.pageHandler.Serve, r.authMiddleware.IdentifyClient, r.authMiddleware.LoadSession, r.authMiddleware.GuardPage)
}
