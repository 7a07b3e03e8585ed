package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/foodorder/internal/models"
	"github.com/slooze/foodorder/internal/storage"
	"github.com/slooze/foodorder/internal/token"
	"github.com/slooze/foodorder/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	storage storage.Storage
	codec   *token.Codec
}

func NewAuthHandler(storage storage.Storage, codec *token.Codec) *AuthHandler {
	return &AuthHandler{
		storage: storage,
		codec:   codec,
	}
}

// Login checks the credentials and issues a signed token carrying the user's
// role and country.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
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

	user, err := h.storage.GetUserByUsername(c.Context(), req.Username)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect username or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect username or password",
		})
	}

	tokenString, err := h.codec.Issue(user.Username, user.Role, user.CountryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(models.LoginResponse{Token: tokenString})
}
