package standings

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, service *Service) {
	r.Get("/standings", func(c *fiber.Ctx) error {
		table, err := service.Table(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to load standings"})
		}
		if table == nil {
			table = []Entry{}
		}
		return c.JSON(table)
	})
}
