package handlers

import (
	"errors"
	"server/internal/app"
	settingsController "server/internal/controllers/settings"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

type UserSettingsHandler struct {
	Handler
	controller settingsController.SettingsController
}

func NewUserSettingsHandler(app app.App, router fiber.Router) *UserSettingsHandler {
	log := logger.New("handlers").File("userSettings_handler")
	return &UserSettingsHandler{
		controller: *app.SettingsController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserSettingsHandler) Register() {
	settings := h.router.Group("/user-settings")
	settings.Post("/", h.upsertUserSettings)
	settings.Get("/", h.getUserSettings)
}

func (h *UserSettingsHandler) getUserSettings(c *fiber.Ctx) error {
	log := h.log.Function("getUserSettings")

	userEmail := c.Query("user_email")
	if userEmail == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "user_email is required"})
	}

	settings, err := h.controller.GetUserSettings(c.Context(), userEmail)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"detail": "User settings not found"})
	}
	if err != nil {
		log.Er("failed to get user settings", err, "userEmail", userEmail)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to get user settings"})
	}

	return c.JSON(settings)
}

func (h *UserSettingsHandler) upsertUserSettings(c *fiber.Ctx) error {
	log := h.log.Function("upsertUserSettings")

	var request UpsertUserSettingsRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse user settings request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "failed to parse user settings request"})
	}

	if request.UserEmail == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "user_email is required"})
	}

	settings, err := h.controller.UpsertUserSettings(c.Context(), &request)
	if err != nil {
		log.Er("failed to upsert user settings", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to upsert user settings"})
	}

	return c.JSON(settings)
}
