package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/foodorder/internal/middleware"
	"github.com/slooze/foodorder/internal/models"
	"github.com/slooze/foodorder/internal/service"
	"github.com/slooze/foodorder/internal/validation"
)

type MenuItemHandler struct {
	catalog *service.CatalogService
}

func NewMenuItemHandler(catalog *service.CatalogService) *MenuItemHandler {
	return &MenuItemHandler{
		catalog: catalog,
	}
}

func (h *MenuItemHandler) ListByRestaurant(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	restaurantID, err := c.ParamsInt("restaurantId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid restaurant id",
		})
	}

	items, err := h.catalog.ListMenuItems(c.Context(), actor, restaurantID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

func (h *MenuItemHandler) Create(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	restaurantID, err := c.ParamsInt("restaurantId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid restaurant id",
		})
	}

	var req models.CreateMenuItemRequest
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

	item, err := h.catalog.CreateMenuItem(c.Context(), actor, restaurantID, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}
