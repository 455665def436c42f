// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"feastly/internal/delivery/http/middleware"
	"feastly/internal/delivery/http/router/handler"
	"feastly/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RestaurantHandler *handler.RestaurantHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		restaurantHandler: params.RestaurantHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Restaurant routes. Listing and detail are public, creation requires
	// an authenticated owner or admin.
	restaurantGroup := v1.Group("/restaurants")
	{
		restaurantGroup.GET("", r.restaurantHandler.List)
		restaurantGroup.GET("/:id", r.restaurantHandler.GetByID)
		restaurantGroup.POST("",
			r.restaurantHandler.Create,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleRestaurantOwner, entity.RoleAdmin),
		)
	}
}
