package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/foodorder/internal/apperr"
)

// fail maps a service error to its HTTP response through the fixed
// kind-to-status table. Untagged errors surface as a generic 500.
func fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	message := err.Error()
	if kind == apperr.KindInternal {
		message = "An unexpected error occurred"
	}
	return c.Status(apperr.HTTPStatus(kind)).JSON(fiber.Map{
		"error": message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
