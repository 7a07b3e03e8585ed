package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/foodorder/internal/middleware"
	"github.com/slooze/foodorder/internal/models"
	"github.com/slooze/foodorder/internal/service"
	"github.com/slooze/foodorder/internal/validation"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		orders: orders,
	}
}

// Create sits behind RequireRole(ADMIN, MANAGER) in the router.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	var req models.CreateOrderRequest
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

	order, err := h.orders.Create(c.Context(), actor, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.orders.ListMine(c.Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(orders)
}

// Cancel sits behind RequireRole(ADMIN, MANAGER) in the router.
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := c.ParamsInt("orderId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	order, err := h.orders.Cancel(c.Context(), actor, orderID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}

// UpdatePaymentMethod sits behind RequireRole(ADMIN) in the router.
func (h *OrderHandler) UpdatePaymentMethod(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	paymentMethod := c.Query("paymentMethod")
	if paymentMethod == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "paymentMethod is required",
		})
	}

	order, err := h.orders.UpdatePaymentMethod(c.Context(), orderID, paymentMethod)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}
