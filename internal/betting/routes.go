package betting

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the betting endpoints. Placement requires a
// session; history is read-only and open.
func RegisterRoutes(r fiber.Router, guard fiber.Handler, service *Service) {
	r.Post("/bet", guard, func(c *fiber.Ctx) error {
		type Req struct {
			Username   string      `json:"username"`
			Selections []Selection `json:"betSelections"`
			Stake      float64     `json:"stake"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		bet, err := service.Place(c.Context(), PlaceRequest{
			Username:   body.Username,
			Selections: body.Selections,
			Stake:      body.Stake,
		})
		if err != nil {
			switch {
			case IsNotFound(err):
				return c.Status(404).JSON(fiber.Map{"error": err.Error()})
			case IsValidation(err):
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			default:
				return c.Status(500).JSON(fiber.Map{"error": "failed to place bet"})
			}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"bet":     bet,
		})
	})

	r.Get("/bet-history/:username", func(c *fiber.Ctx) error {
		history, err := service.History(c.Context(), c.Params("username"))
		if err != nil {
			if IsNotFound(err) {
				return c.Status(404).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "failed to load bet history"})
		}
		return c.JSON(history)
	})
}
