package leaderboard

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, service *Service) {
	r.Get("/leaderboard", func(c *fiber.Ctx) error {
		top, err := service.Top(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to load leaderboard"})
		}
		if top == nil {
			top = []Entry{}
		}
		return c.JSON(top)
	})
}
