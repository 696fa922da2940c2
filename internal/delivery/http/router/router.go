// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"
	"ledger/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	EntryHandler   *handler.EntryHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	entryHandler   *handler.EntryHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		entryHandler:   params.EntryHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
//
// The access gate runs on every route, public ones included, so a valid
// bearer token always yields a request-scoped principal. Whether the
// request is rejected without one is decided per group by RequireAuth.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes: registration and credential exchange.
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/authenticate", r.userHandler.Authenticate)
	}

	// Balance is read-protected.
	balanceGroup := api.Group("/users/:id/balance")
	balanceGroup.Use(r.authMiddleware.RequireAuth)
	balanceGroup.Use(r.authMiddleware.RequireCapability(entity.CapabilityReadBalance))
	{
		balanceGroup.GET("", r.userHandler.Balance)
	}

	// Entry routes require authentication and the entry-management capability.
	entryGroup := api.Group("/entries")
	entryGroup.Use(r.authMiddleware.RequireAuth)
	entryGroup.Use(r.authMiddleware.RequireCapability(entity.CapabilityManageEntries))
	{
		entryGroup.POST("", r.entryHandler.Create)
		entryGroup.GET("", r.entryHandler.Search)
		entryGroup.GET("/:id", r.entryHandler.GetByID)
		entryGroup.PUT("/:id", r.entryHandler.Update)
		entryGroup.PUT("/:id/status", r.entryHandler.UpdateStatus)
		entryGroup.DELETE("/:id", r.entryHandler.Delete)
	}
}
