package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/foodorder/internal/middleware"
	"github.com/slooze/foodorder/internal/models"
	"github.com/slooze/foodorder/internal/service"
	"github.com/slooze/foodorder/internal/validation"
)

type RestaurantHandler struct {
	catalog *service.CatalogService
}

func NewRestaurantHandler(catalog *service.CatalogService) *RestaurantHandler {
	return &RestaurantHandler{
		catalog: catalog,
	}
}

func (h *RestaurantHandler) ListRestaurants(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	restaurants, err := h.catalog.ListRestaurants(c.Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(restaurants)
}

func (h *RestaurantHandler) GetRestaurant(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid restaurant id",
		})
	}

	restaurant, err := h.catalog.GetRestaurant(c.Context(), actor, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(restaurant)
}

// CreateRestaurant sits behind RequireRole(ADMIN) in the router.
func (h *RestaurantHandler) CreateRestaurant(c *fiber.Ctx) error {
	var req models.CreateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	restaurant, err := h.catalog.CreateRestaurant(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(restaurant)
}
