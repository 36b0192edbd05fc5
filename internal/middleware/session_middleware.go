package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swaupd/OsBlogApp/internal/session"
)

// LoginRequired is a Fiber middleware that guards routes needing an
// authenticated user. The session lives in memory only, so a restarted app
// rejects everything here until someone logs in again.
func LoginRequired(sess *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := sess.Current()
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Login required",
			})
		}

		// Expose the user to subsequent handlers.
		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)

		return c.Next()
	}
}
