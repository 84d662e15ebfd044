package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RootHandler keeps the original API's root banner so existing frontends can
// probe the deployment.
func RootHandler(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Handsome OALA API is running"})
	})
}

func HealthHandler(router fiber.Router) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
