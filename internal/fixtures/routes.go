package fixtures

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, service *Service) {
	// Full match records, concealed results included. No redaction is
	// performed; the front end simply does not render them.
	r.Get("/matches", func(c *fiber.Ctx) error {
		pool, err := service.Pool(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to load matches"})
		}
		if pool == nil {
			pool = []Match{}
		}
		return c.JSON(pool)
	})
}
