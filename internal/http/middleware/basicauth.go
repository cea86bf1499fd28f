package middleware

import (
	"os"

	"backend-quicklink/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

// BasicAuth - guards the ops endpoints (snapshot export). Separate from
// the JWT admin session so exports can be scripted with curl.
func BasicAuth() fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			config.GetEnv("OPS_USER", "ops"): os.Getenv("OPS_PASS"),
		},
		Unauthorized: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		},
	})
}
