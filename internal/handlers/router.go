package handlers

import (
	"server/internal/app"
	"server/internal/handlers/middleware"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	RootHandler(router)
	HealthHandler(router)

	NewAssessmentHandler(*app, router).Register()
	NewOnePageInsuranceHandler(*app, router).Register()
	NewUserSettingsHandler(*app, router).Register()

	return nil
}
