package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Guard rejects requests without a valid bearer session token and stores
// the resolved username in c.Locals("username").
func Guard(sessions Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid session"})
		}

		username, err := sessions.Get(c.Context(), token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid session"})
		}

		c.Locals("username", username)
		c.Locals("sessionToken", token)
		return c.Next()
	}
}
