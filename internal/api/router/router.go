package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/foodorder/internal/api/handlers"
	"github.com/slooze/foodorder/internal/config"
	"github.com/slooze/foodorder/internal/middleware"
	"github.com/slooze/foodorder/internal/models"
)

type Router struct {
	app               *fiber.App
	authHandler       *handlers.AuthHandler
	restaurantHandler *handlers.RestaurantHandler
	menuItemHandler   *handlers.MenuItemHandler
	orderHandler      *handlers.OrderHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
	rateLimitCfg      config.RateLimitConfig
}

func NewRouter(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	restaurantHandler *handlers.RestaurantHandler,
	menuItemHandler *handlers.MenuItemHandler,
	orderHandler *handlers.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	rateLimitCfg config.RateLimitConfig,
) *Router {
	return &Router{
		app:               app,
		authHandler:       authHandler,
		restaurantHandler: restaurantHandler,
		menuItemHandler:   menuItemHandler,
		orderHandler:      orderHandler,
		authMiddleware:    authMiddleware,
		rateLimiter:       rateLimiter,
		rateLimitCfg:      rateLimitCfg,
	}
}

func (r *Router) SetupRoutes() {
	// Every route gets the identity populated when a token is present;
	// rejection is the job of the handlers and role guards.
	api := r.app.Group("/api", r.authMiddleware.Populate())

	api.Post("/auth/login", r.rateLimiter.RateLimit(middleware.RateLimitConfig{
		Enabled: r.rateLimitCfg.Enabled,
		Limit:   r.rateLimitCfg.Limit,
		Window:  r.rateLimitCfg.Window,
	}), r.authHandler.Login)

	api.Get("/restaurants", r.restaurantHandler.ListRestaurants)
	api.Get("/restaurants/:id", r.restaurantHandler.GetRestaurant)
	api.Post("/restaurants",
		r.authMiddleware.RequireRole(models.RoleAdmin),
		r.restaurantHandler.CreateRestaurant)

	api.Get("/menu-items/restaurant/:restaurantId", r.menuItemHandler.ListByRestaurant)
	api.Post("/menu-items/restaurant/:restaurantId", r.menuItemHandler.Create)

	api.Post("/orders",
		r.authMiddleware.RequireRole(models.RoleAdmin, models.RoleManager),
		r.orderHandler.Create)
	api.Get("/orders", r.orderHandler.ListMine)
	api.Post("/orders/:orderId/cancel",
		r.authMiddleware.RequireRole(models.RoleAdmin, models.RoleManager),
		r.orderHandler.Cancel)
	api.Patch("/orders/:orderId/payment-method",
		r.authMiddleware.RequireRole(models.RoleAdmin),
		r.orderHandler.UpdatePaymentMethod)
}
