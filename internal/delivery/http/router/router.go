// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"favorites/config"
	"favorites/internal/delivery/http/middleware"
	"favorites/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	ProfileHandler    *handler.ProfileHandler
	ProductHandler    *handler.ProductHandler
	FavoriteHandler   *handler.FavoriteHandler
	AccountHandler    *handler.AccountHandler
	SessionMiddleware *middleware.SessionMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	profileHandler    *handler.ProfileHandler
	productHandler    *handler.ProductHandler
	favoriteHandler   *handler.FavoriteHandler
	accountHandler    *handler.AccountHandler
	sessionMiddleware *middleware.SessionMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		profileHandler:    params.ProfileHandler,
		productHandler:    params.ProductHandler,
		favoriteHandler:   params.FavoriteHandler,
		accountHandler:    params.AccountHandler,
		sessionMiddleware: params.SessionMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET(r.cfg.Metrics.Path, r.metricsMiddleware.Handler())
	}

	// Each resource answers every verb itself so the method override header
	// and the 405 envelope stay in one place.
	api := e.Group("/api", r.sessionMiddleware.Load)
	{
		api.Any("/profile", r.profileHandler.Handle)
		api.Any("/product", r.productHandler.Handle)
		api.Any("/favorite", r.favoriteHandler.Handle)
		api.Any("/signin", r.accountHandler.SignIn)
		api.Any("/signout", r.accountHandler.SignOut)
	}
}
