package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/swaupd/OsBlogApp/internal/apperrors"
)

// writeError maps a service error onto the HTTP response. Every failure is
// converted into a user-visible message here; nothing propagates further.
func writeError(c *fiber.Ctx, err error) error {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": verr.Message,
			"field":   verr.Field,
		})
	}

	var cerr *apperrors.ConflictError
	if errors.As(err, &cerr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": cerr.Message,
			"field":   cerr.Field,
		})
	}

	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid username or password",
		})
	}

	if errors.Is(err, apperrors.ErrEmptyCart) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":  "Your cart is empty",
			"redirect": "/api/v1/cart",
		})
	}

	var serr *apperrors.StorageError
	if errors.As(err, &serr) {
		log.Printf("storage failure: %v", serr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong saving your data. Please try again.",
		})
	}

	log.Printf("unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "An error occurred. Please try again.",
	})
}
