package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the unauthenticated credential endpoints.
func RegisterRoutes(app fiber.Router, service *Service) {
	app.Post("/register", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Socials  string `json:"socials"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
		}

		profile, token, err := service.Register(c.Context(), body.Username, body.Password, body.Socials)
		if err != nil {
			if errors.Is(err, ErrMissingCredentials) || errors.Is(err, ErrUsernameTaken) {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "registration failed"})
		}

		return c.JSON(fiber.Map{
			"success":      true,
			"message":      "Registered successfully",
			"user":         profile,
			"sessionToken": token,
		})
	})

	app.Post("/login", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
		}

		profile, token, err := service.Login(c.Context(), body.Username, body.Password)
		if err != nil {
			if errors.Is(err, ErrMissingCredentials) {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			if errors.Is(err, ErrInvalidCredentials) {
				return c.Status(401).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "login failed"})
		}

		return c.JSON(fiber.Map{
			"success":      true,
			"message":      "Login successful",
			"user":         profile,
			"sessionToken": token,
		})
	})
}

// RegisterAPIRoutes mounts endpoints that sit behind the session guard.
func RegisterAPIRoutes(api fiber.Router, guard fiber.Handler, service *Service) {
	api.Get("/validate-session", guard, func(c *fiber.Ctx) error {
		username, _ := c.Locals("username").(string)

		profile, err := service.Get(c.Context(), username)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"user":    profile,
		})
	})
}
